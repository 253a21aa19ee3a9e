package simd

import (
	"fmt"
	"testing"

	"github.com/hupe1980/vecdist/testutil"
)

// Benchmarks compare tiers side by side on the same data. All tiers run on
// any CPU, so the numbers show the cost of each cascade shape, not hardware
// availability.
//
// Examples:
//   go test ./internal/simd -run '^$' -bench . -benchmem
//   go test ./internal/simd -run '^$' -bench 'L2/int8' -benchmem

var benchDims = []int{96, 128, 768, 1536}

func BenchmarkL2(b *testing.B) {
	b.Run("int8", func(b *testing.B) { benchKernel(b, L2[int8], 1) })
	b.Run("uint8", func(b *testing.B) { benchKernel(b, L2[uint8], 1) })
	b.Run("int16", func(b *testing.B) { benchKernel(b, L2[int16], 2) })
	b.Run("float32", func(b *testing.B) { benchKernel(b, L2[float32], 4) })
}

func BenchmarkCosine(b *testing.B) {
	b.Run("int8", func(b *testing.B) { benchKernel(b, Cosine[int8], 1) })
	b.Run("uint8", func(b *testing.B) { benchKernel(b, Cosine[uint8], 1) })
	b.Run("int16", func(b *testing.B) { benchKernel(b, Cosine[int16], 2) })
	b.Run("float32", func(b *testing.B) { benchKernel(b, Cosine[float32], 4) })
}

func benchKernel[T Element](b *testing.B, lookup func(Tier) Kernel[T], size int) {
	rng := testutil.NewRNG(1)
	for _, dim := range benchDims {
		x, y := testutil.Vectors[T](rng, dim)
		for _, tier := range Tiers {
			k := lookup(tier)
			b.Run(fmt.Sprintf("%s/%d", tier, dim), func(b *testing.B) {
				b.SetBytes(int64(2 * dim * size))
				b.ReportAllocs()
				for b.Loop() {
					_ = k(x, y, dim)
				}
			})
		}
	}
}

func BenchmarkSum(b *testing.B) {
	rng := testutil.NewRNG(1)
	for _, dim := range benchDims {
		x, y := testutil.Vectors[float32](rng, dim)
		for _, tier := range Tiers {
			k := Sum[float32](tier)
			b.Run(fmt.Sprintf("float32/%s/%d", tier, dim), func(b *testing.B) {
				b.SetBytes(int64(2 * dim * 4))
				b.ReportAllocs()
				for b.Loop() {
					k(x, y, dim)
				}
			})
		}
	}
}
