package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/service/cache/provider"
	"github.com/x-xyz/launchpad/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	near provider.Provider
	far  provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.near = primitive.NewPrimitive("near", 16)
	ts.far = primitive.NewPrimitive("far", 16)
	ts.im = NewCompound([]provider.Provider{ts.near, ts.far}).(*impl)
}

func TestCompound(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetWritesEveryLayer() {
	v := []byte("v")
	ts.Require().NoError(ts.im.Set(mockCtx, "k", v, time.Minute))

	for _, lyr := range []provider.Provider{ts.near, ts.far} {
		got, _, err := lyr.Get(mockCtx, "k")
		ts.NoError(err)
		ts.Equal(v, got)
	}
}

func (ts *testsuite) TestGetBackfillsNearLayer() {
	v := []byte("v")
	ts.Require().NoError(ts.far.Set(mockCtx, "k", v, time.Minute))

	_, _, err := ts.near.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)

	got, ttl, err := ts.im.Get(mockCtx, "k")
	ts.Require().NoError(err)
	ts.Equal(v, got)
	ts.True(ttl > 0)

	got, _, err = ts.near.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal(v, got)
}

func (ts *testsuite) TestMiss() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDelClearsEveryLayer() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.Require().NoError(ts.im.Del(mockCtx, "k"))

	for _, lyr := range []provider.Provider{ts.near, ts.far} {
		_, _, err := lyr.Get(mockCtx, "k")
		ts.Equal(provider.ErrNotFound, err)
	}
}
