package lock

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/launchpad/base/backoff"
	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/keys"
	"github.com/x-xyz/launchpad/service/redis"
)

// only the holder's token may delete the key
var unlockScript = redis.NewScript(1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	redis redis.Service
	cfg   Config
}

// NewRedis creates a locker shared by every instance using the same redis
func NewRedis(r redis.Service, cfg Config) domain.Locker {
	return &redisLocker{
		redis: r,
		cfg:   cfg.withDefaults(),
	}
}

func (l *redisLocker) WithLock(c ctx.Ctx, key string, fn func() error) error {
	key = keys.RedisKey(keys.PfxLock, key)
	token := uuid.NewString()

	if err := l.acquire(c, key, token); err != nil {
		return err
	}
	defer l.release(c, key, token)

	return fn()
}

func (l *redisLocker) acquire(c ctx.Ctx, key, token string) error {
	waitCtx, cancel := ctx.WithTimeout(c, l.cfg.Wait)
	defer cancel()

	b := backoff.NewExponential(10*time.Millisecond, 200*time.Millisecond)
	for {
		err := l.redis.SetNX(c, key, []byte(token), l.cfg.TTL)
		if err == nil {
			return nil
		} else if err != redis.ErrNotSet {
			c.WithFields(log.Fields{"err": err, "key": key}).Error("redis.SetNX failed")
			return err
		}

		// a sleep cut short by the wait deadline also reports DeadlineExceeded
		if err := b.Backoff(waitCtx); err != nil || waitCtx.Err() != nil {
			c.WithField("key", key).Warn("lock wait timeout")
			return domain.ErrLockTimeout
		}
	}
}

func (l *redisLocker) release(c ctx.Ctx, key, token string) {
	if _, err := l.redis.ScriptDo(c, unlockScript, key, token); err != nil {
		// the key still expires after TTL
		c.WithFields(log.Fields{"err": err, "key": key}).Error("unlock failed")
	}
}
