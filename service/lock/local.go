package lock

import (
	"sync"
	"time"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
)

type entry struct {
	sem  chan struct{}
	refs int
}

type localLocker struct {
	mu      sync.Mutex
	entries map[string]*entry
	wait    time.Duration
}

// NewLocal creates an in-process locker for single instance deployments and tests
func NewLocal(cfg Config) domain.Locker {
	return &localLocker{
		entries: map[string]*entry{},
		wait:    cfg.withDefaults().Wait,
	}
}

func (l *localLocker) WithLock(c ctx.Ctx, key string, fn func() error) error {
	e := l.ref(key)
	defer l.unref(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
	case <-timer.C:
		return domain.ErrLockTimeout
	case <-c.Done():
		return domain.ErrLockTimeout
	}
	defer func() { <-e.sem }()

	return fn()
}

func (l *localLocker) ref(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *localLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := l.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
