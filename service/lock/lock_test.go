package lock

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/service/redis"
	mockRedis "github.com/x-xyz/launchpad/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type localSuite struct {
	suite.Suite
	im domain.Locker
}

func (ts *localSuite) SetupTest() {
	ts.im = NewLocal(Config{Wait: 100 * time.Millisecond})
}

func TestLocal(t *testing.T) {
	suite.Run(t, new(localSuite))
}

func (ts *localSuite) TestSerializesSameKey() {
	var (
		wg      sync.WaitGroup
		running int32
		overlap int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ts.im.WithLock(mockCtx, "drop:0xabc", func() error {
				if atomic.AddInt32(&running, 1) > 1 {
					atomic.StoreInt32(&overlap, 1)
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
			ts.NoError(err)
		}()
	}
	wg.Wait()
	ts.Equal(int32(0), overlap)
	ts.Empty(ts.im.(*localLocker).entries)
}

func (ts *localSuite) TestTimeout() {
	held := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = ts.im.WithLock(mockCtx, "listing:0", func() error {
			close(held)
			<-done
			return nil
		})
	}()
	<-held

	err := ts.im.WithLock(mockCtx, "listing:0", func() error { return nil })
	ts.Equal(domain.ErrLockTimeout, err)

	// other keys are not blocked
	ts.NoError(ts.im.WithLock(mockCtx, "listing:1", func() error { return nil }))
	close(done)
}

func (ts *localSuite) TestReturnsFnError() {
	boom := errors.New("boom")
	ts.Equal(boom, ts.im.WithLock(mockCtx, "k", func() error { return boom }))
	ts.NoError(ts.im.WithLock(mockCtx, "k", func() error { return nil }))
}

type redisSuite struct {
	suite.Suite
	redis *mockRedis.Service
	im    domain.Locker
}

func (ts *redisSuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis, Config{TTL: time.Second, Wait: 50 * time.Millisecond})
}

func (ts *redisSuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func TestRedis(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (ts *redisSuite) TestAcquireAndRelease() {
	key := "lock:drop:0xabc"
	ts.redis.On("SetNX", mockCtx, key, mock.Anything, time.Second).Return(nil).Once()
	ts.redis.On("ScriptDo", mockCtx, unlockScript, key, mock.Anything).Return(int64(1), nil).Once()

	called := false
	ts.NoError(ts.im.WithLock(mockCtx, "drop:0xabc", func() error {
		called = true
		return nil
	}))
	ts.True(called)
}

func (ts *redisSuite) TestRetryUntilFree() {
	key := "lock:listing:3"
	ts.redis.On("SetNX", mockCtx, key, mock.Anything, time.Second).Return(redis.ErrNotSet).Twice()
	ts.redis.On("SetNX", mockCtx, key, mock.Anything, time.Second).Return(nil).Once()
	ts.redis.On("ScriptDo", mockCtx, unlockScript, key, mock.Anything).Return(int64(1), nil).Once()

	ts.NoError(ts.im.WithLock(mockCtx, "listing:3", func() error { return nil }))
}

func (ts *redisSuite) TestTimeout() {
	key := "lock:listing:3"
	ts.redis.On("SetNX", mockCtx, key, mock.Anything, time.Second).Return(redis.ErrNotSet)

	err := ts.im.WithLock(mockCtx, "listing:3", func() error {
		ts.Fail("must not run without the lock")
		return nil
	})
	ts.Equal(domain.ErrLockTimeout, err)
}

func (ts *redisSuite) TestRedisError() {
	boom := errors.New("boom")
	ts.redis.On("SetNX", mockCtx, "lock:k", mock.Anything, time.Second).Return(boom).Once()
	ts.Equal(boom, ts.im.WithLock(mockCtx, "k", func() error { return nil }))
}
