package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 16)
}

func TestPrimitive(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestExpire() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Second))

	got, ttl, err := ts.im.Get(mockCtx, "k")
	ts.Require().NoError(err)
	ts.Equal([]byte("v"), got)
	ts.True(ttl <= time.Second)

	time.Sleep(1100 * time.Millisecond)
	_, _, err = ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestNoExpire() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), 0))

	_, ttl, err := ts.im.Get(mockCtx, "k")
	ts.Require().NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.Require().NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}
