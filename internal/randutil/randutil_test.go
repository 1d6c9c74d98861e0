package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestChildIsReproducible(t *testing.T) {
	c1 := Child(New(7))
	c2 := Child(New(7))
	assert.Equal(t, c1.IntN(1000), c2.IntN(1000))
}
