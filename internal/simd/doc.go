// Package simd provides tiered vector kernels with runtime dispatch.
//
// # Tiers
//
//   - Naive: scalar loop, unrolled by four
//   - SSE: 128-bit register cascade
//   - AVX: 256-bit register cascade
//   - AVX512: 512-bit register cascade
//
// Every tier produces the same result up to float32 summation order, for any
// dimension. A tier starts at its widest register width, folds the
// accumulator to the next narrower width for the remainder, and finishes with
// a scalar tail.
//
// # Capability detection
//
// The CPU is probed once, lazily, on first use. Set VECDIST_SIMD to cap the
// detected level (scalar, sse, sse2, avx, avx2, avx512). Build with -tags noasm
// to force the scalar level.
//
// # Element types
//
// int8, uint8, int16 and float32. Integer inputs are widened before any
// arithmetic and all reductions accumulate in float32.
package simd
