package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain/keys"
	"github.com/x-xyz/launchpad/service/cache/provider"
	"github.com/x-xyz/launchpad/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type record struct {
	Address string `json:"address"`
	BaseURI string `json:"baseUri"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 16)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   keys.PfxCollection,
		Cache: ts.cache,
	}).(*impl)
}

func TestCache(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) raw(k string) ([]byte, error) {
	b, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	return b, err
}

func (ts *testsuite) TestGetMiss() {
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "0xabc", &record{}))
}

func (ts *testsuite) TestSetThenGet() {
	v := record{Address: "0xabc", BaseURI: "ipfs://x/"}
	ts.Require().NoError(ts.im.Set(mockCtx, v.Address, v))

	got := record{}
	ts.Require().NoError(ts.im.Get(mockCtx, v.Address, &got))
	ts.Equal(v, got)

	b, err := ts.raw(v.Address)
	ts.Require().NoError(err)
	stored := record{}
	ts.NoError(json.Unmarshal(b, &stored))
	ts.Equal(v, stored)

	time.Sleep(1100 * time.Millisecond)
	_, err = ts.raw(v.Address)
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFuncLoadsOnce() {
	calls := 0
	loader := func() (interface{}, error) {
		calls++
		return &record{Address: "0xabc"}, nil
	}

	got := record{}
	ts.Require().NoError(ts.im.GetByFunc(mockCtx, "0xabc", &got, loader))
	ts.Equal("0xabc", got.Address)

	again := record{}
	ts.Require().NoError(ts.im.GetByFunc(mockCtx, "0xabc", &again, loader))
	ts.Equal(got, again)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncLoaderError() {
	boom := errors.New("boom")
	err := ts.im.GetByFunc(mockCtx, "0xabc", &record{}, func() (interface{}, error) {
		return nil, boom
	})
	ts.Equal(boom, err)

	_, err = ts.raw("0xabc")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.Require().NoError(ts.im.Set(mockCtx, "0xabc", record{Address: "0xabc"}))
	ts.Require().NoError(ts.im.Del(mockCtx, "0xabc"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "0xabc", &record{}))
}
