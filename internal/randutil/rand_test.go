package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	t.Parallel()
	a, b := New(7), New(7)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestStreamsDiffer(t *testing.T) {
	t.Parallel()
	s0, s1 := Stream(7, 0), Stream(7, 1)
	same := 0
	for range 16 {
		if s0.Uint64() == s1.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 16)
}
