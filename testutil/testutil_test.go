package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectors(t *testing.T) {
	rng := NewRNG(4711)

	x, y := Vectors[int16](rng, 33)

	assert.Len(t, x, 33)
	assert.Len(t, y, 33)
	assert.NotEqual(t, x, y)
}

func TestFloat32s(t *testing.T) {
	rng := NewRNG(4711)

	for _, v := range rng.Float32s(256) {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.Less(t, v, float32(1))
	}
}

func TestUnitVector(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UnitVector(64)

	require.Len(t, v, 64)
	assert.InDelta(t, 1.0, math.Sqrt(Dot(v, v)), 1e-5)
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	a := rng.Int8s(16)
	rng.Reset()
	b := rng.Int8s(16)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestReferences(t *testing.T) {
	x := []int8{1, 2, 3, 4}
	y := []int8{4, 3, 2, 1}

	assert.Equal(t, 20.0, SquaredL2(x, y))
	assert.Equal(t, 20.0, Dot(x, y))
	assert.Equal(t, 0.0, RelativeError(5, 5))
	assert.InDelta(t, 0.5, RelativeError(3, 2), 1e-12)
}
