package lock

import (
	"time"
)

// Config of a locker
type Config struct {
	// TTL bounds how long a crashed holder keeps the lock
	TTL time.Duration
	// Wait bounds how long WithLock blocks before domain.ErrLockTimeout
	Wait time.Duration
}

var defaultConfig = Config{
	TTL:  30 * time.Second,
	Wait: 10 * time.Second,
}

func (cfg Config) withDefaults() Config {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultConfig.TTL
	}
	if cfg.Wait <= 0 {
		cfg.Wait = defaultConfig.Wait
	}
	return cfg
}
