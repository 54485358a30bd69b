package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Loader produces the value to cache on a miss. It must return a pointer.
type Loader func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service caches typed values on top of a byte provider
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, loader Loader) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
