package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/service/cache/provider"
	"github.com/x-xyz/launchpad/service/redis"
	mockRedis "github.com/x-xyz/launchpad/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func TestRedisProvider(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	v := []byte("v")
	ts.redis.On("Set", mockCtx, "k", v, time.Second).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, "k", v, time.Second))
}

func (ts *testsuite) TestSetWithoutTTL() {
	v := []byte("v")
	ts.redis.On("Set", mockCtx, "k", v, redis.Forever).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, "k", v, 0))
}

func (ts *testsuite) TestGet() {
	v := []byte("v")

	ts.redis.On("Get", mockCtx, "miss").Return(nil, redis.ErrNotFound).Once()
	_, _, err := ts.im.Get(mockCtx, "miss")
	ts.Equal(provider.ErrNotFound, err)

	ts.redis.On("Get", mockCtx, "k").Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, "k").Return(3, nil).Once()
	got, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal(v, got)
	ts.Equal(3*time.Second, ttl)

	ts.redis.On("Get", mockCtx, "forever").Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, "forever").Return(0, redis.ErrNoTTL).Once()
	_, ttl, err = ts.im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestGetError() {
	boom := errors.New("boom")
	ts.redis.On("Get", mockCtx, "k").Return(nil, boom).Once()
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(boom, err)
}

func (ts *testsuite) TestDel() {
	ts.redis.On("Del", mockCtx, "k").Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, "k"))
}
