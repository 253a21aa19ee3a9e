package simd

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"scalar", Scalar, true},
		{"generic", Scalar, true},
		{"SSE", SSE, true},
		{" sse2 ", SSE2, true},
		{"avx", AVX, true},
		{"Avx2", AVX2, true},
		{"avx512", AVX512, true},
		{"neon", Scalar, false},
		{"", Scalar, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseLevel(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	for _, l := range []Level{Scalar, SSE, SSE2, AVX, AVX2, AVX512} {
		parsed, ok := ParseLevel(l.String())
		require.True(t, ok)
		assert.Equal(t, l, parsed)
	}
	assert.Equal(t, "unknown", Level(42).String())
}

func TestFeaturesLevel(t *testing.T) {
	tests := []struct {
		name string
		f    Features
		want Level
	}{
		{"none", Features{}, Scalar},
		{"sse only", Features{SSE: true}, SSE},
		{"avx without avx2", Features{SSE: true, SSE2: true, AVX: true}, AVX},
		{"full", FeaturesAt(AVX512), AVX512},
		{"gap stops the walk", Features{SSE: true, AVX: true, AVX2: true}, SSE},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Level())
		})
	}
}

func TestFeaturesAtRoundTrip(t *testing.T) {
	for _, l := range []Level{Scalar, SSE, SSE2, AVX, AVX2, AVX512} {
		f := FeaturesAt(l)
		assert.Equal(t, l, f.Level())
		assert.True(t, f.Supports(l))
		assert.True(t, f.Supports(Scalar))
		if l < AVX512 {
			assert.False(t, f.Supports(l+1))
		}
	}
}

func TestResolveOverride(t *testing.T) {
	hw := FeaturesAt(AVX2)
	hw.Vendor = "GenuineIntel"

	t.Run("no override", func(t *testing.T) {
		c := resolve(hw, "")
		assert.False(t, c.overridden)
		assert.Equal(t, AVX2, c.features.Level())
	})

	t.Run("lowers level", func(t *testing.T) {
		c := resolve(hw, "sse2")
		assert.True(t, c.overridden)
		assert.Equal(t, SSE2, c.features.Level())
		assert.False(t, c.features.AVX)
		assert.Equal(t, "GenuineIntel", c.features.Vendor)
	})

	t.Run("cannot raise level", func(t *testing.T) {
		c := resolve(hw, "avx512")
		assert.False(t, c.overridden)
		assert.Equal(t, AVX2, c.features.Level())
	})

	t.Run("garbage is ignored", func(t *testing.T) {
		c := resolve(hw, "turbo")
		assert.False(t, c.overridden)
		assert.Equal(t, AVX2, c.features.Level())
	})

	t.Run("scalar always allowed", func(t *testing.T) {
		c := resolve(Features{}, "scalar")
		assert.True(t, c.overridden)
		assert.Equal(t, Scalar, c.features.Level())
	})
}

func TestDetectIsStable(t *testing.T) {
	first := Detect()
	features := CPU()

	var g errgroup.Group
	var mu sync.Mutex
	seen := make(map[Level]int)
	for range 32 {
		g.Go(func() error {
			l := Detect()
			mu.Lock()
			seen[l]++
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, seen, 1)
	assert.Equal(t, 32, seen[first])
	assert.Equal(t, features, CPU())
	assert.Equal(t, features.AVX512, SupportsAVX512())
	assert.Equal(t, features.AVX2, SupportsAVX2())
	assert.Equal(t, features.AVX, SupportsAVX())
	assert.Equal(t, features.SSE2, SupportsSSE2())
	assert.Equal(t, features.SSE, SupportsSSE())
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name    string
		f       Features
		integer Tier
		float   Tier
	}{
		{"scalar", Features{}, TierNaive, TierNaive},
		{"sse", FeaturesAt(SSE), TierNaive, TierSSE},
		{"sse2", FeaturesAt(SSE2), TierSSE, TierSSE},
		{"avx", FeaturesAt(AVX), TierSSE, TierAVX},
		{"avx2", FeaturesAt(AVX2), TierAVX, TierAVX},
		{"avx512", FeaturesAt(AVX512), TierAVX512, TierAVX512},
		{"avx512 alone", Features{AVX512: true}, TierAVX512, TierAVX512},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.integer, TierFor[int8](tc.f))
			assert.Equal(t, tc.integer, TierFor[uint8](tc.f))
			assert.Equal(t, tc.integer, TierFor[int16](tc.f))
			assert.Equal(t, tc.float, TierFor[float32](tc.f))
		})
	}
}
