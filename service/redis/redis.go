package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain/keys"
)

// Forever is the expire value of keys without ttl
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key exists without expire
	ErrNoTTL = errors.New("key has no ttl")
	// ErrNotSet is returned by SetNX when the key already exists
	ErrNotSet = errors.New("key already exists")
	// ErrExpireNotExistOrTimeout is returned by Expire when the key does not exist
	ErrExpireNotExistOrTimeout = errors.New("key does not exist or the timeout could not be set")
)

// Service is the subset of redis commands the service uses
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX returns ErrNotSet when key is already held
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Expire(context ctx.Ctx, key string, ttl time.Duration) error
	TTL(context ctx.Ctx, key string) (int, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	ScriptDo(context ctx.Ctx, hdl *ScriptHdl, keysAndArgs ...interface{}) (interface{}, error)
	Name() string
}

// ScriptHdl is a lua script loaded lazily by EVALSHA
type ScriptHdl struct {
	keyCount int
	script   *redis.Script
}

// NewScript creates a script handle taking keyCount keys before its args
func NewScript(keyCount int, src string) *ScriptHdl {
	return &ScriptHdl{
		keyCount: keyCount,
		script:   redis.NewScript(keyCount, src),
	}
}

// Do runs the script on conn
func (s *ScriptHdl) Do(conn redis.Conn, keysAndArgs ...interface{}) (interface{}, error) {
	return s.script.Do(conn, keysAndArgs...)
}

func (s *ScriptHdl) prefix(keysAndArgs ...interface{}) string {
	if s.keyCount == 0 || len(keysAndArgs) == 0 {
		return ""
	}
	if k, ok := keysAndArgs[0].(string); ok {
		return keys.GetPrefix(k)
	}
	return ""
}
