package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
)

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrSupplyExceeded))
	assert.True(t, IsRejection(xerrors.Errorf("mint: %w", ErrNotWhitelisted)))
	assert.False(t, IsRejection(ErrInternalServerError))
	assert.False(t, IsRejection(errors.New("connection reset")))
}
