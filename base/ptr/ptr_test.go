package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointers(t *testing.T) {
	s := String("ipfs://base/")
	assert.Equal(t, "ipfs://base/", *s)

	a, b := Int64(7), Int64(7)
	assert.Equal(t, *a, *b)
	assert.NotSame(t, a, b)

}
