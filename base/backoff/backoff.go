package backoff

import (
	"context"
	"time"
)

// Backoff sleeps with a growing interval between retries
type Backoff struct {
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	next         func(count int, start time.Duration) time.Duration
}

func newBackoff(start, limit time.Duration, next func(int, time.Duration) time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit, next: next}
	b.Reset()
	return b
}

// NewExponential doubles the interval after every sleep, limit 0 means no cap
func NewExponential(start, limit time.Duration) *Backoff {
	return newBackoff(start, limit, func(count int, start time.Duration) time.Duration {
		return start << uint(count)
	})
}

func (b *Backoff) Reset() {
	b.count = 0
	b.NextDuration = b.duration()
}

// Backoff sleeps NextDuration, it returns early with ctx.Err() when ctx ends first
func (b *Backoff) Backoff(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(b.NextDuration)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.count++
	b.NextDuration = b.duration()
	return nil
}

func (b *Backoff) duration() time.Duration {
	d := b.next(b.count, b.start)
	if b.limit > 0 && (d > b.limit || d <= 0) {
		return b.limit
	}
	return d
}
