package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	assert.Equal(t, time.Millisecond, b.NextDuration)

	assert.NoError(t, b.Backoff(context.Background()))
	assert.Equal(t, 2*time.Millisecond, b.NextDuration)

	assert.NoError(t, b.Backoff(context.Background()))
	assert.Equal(t, 4*time.Millisecond, b.NextDuration)

	assert.NoError(t, b.Backoff(context.Background()))
	assert.Equal(t, 4*time.Millisecond, b.NextDuration, "capped by limit")

	b.Reset()
	assert.Equal(t, time.Millisecond, b.NextDuration)
}

func TestBackoffCancelled(t *testing.T) {
	b := NewExponential(time.Hour, 0)

	c, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, b.Backoff(c))
	assert.Equal(t, time.Hour, b.NextDuration, "a cancelled sleep does not advance")
}
