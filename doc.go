// Package vecdist provides runtime-dispatched distance kernels for dense
// vectors of int8, uint8, int16 and float32 elements.
//
// Three metrics are supported: squared L2, Cosine and InnerProduct. Cosine
// and InnerProduct share one kernel family computing BaseSquared minus the
// dot product, where the base is the largest magnitude of the element type
// (127, 255, 32767, or 1 for float32). Float vectors are expected to be
// unit-normalized for Cosine; see distance.NormalizeL2InPlace.
//
// # Quick Start
//
// Typed vectors go through the distance package:
//
//	d := distance.Compute([]int8{1, 2, 3, 4}, []int8{4, 3, 2, 1}, 4, distance.MetricL2) // 20
//
// Raw buffers whose element type is known only at runtime go through the
// kernel table:
//
//	d := vecdist.ComputeDistance(a, b, dim, distance.Float32, distance.MetricCosine)
//
// Resolve a kernel once and keep it for hot loops:
//
//	k, err := vecdist.Default().Distance(distance.UInt8, distance.MetricL2)
//	for _, v := range vectors {
//		_ = k(query, v, dim)
//	}
//
// # Capability Detection
//
// The CPU is probed once per process. Each element type is then served by the
// widest kernel tier (AVX512, AVX, SSE or Naive) the detected features allow.
// Set VECDIST_SIMD to scalar, sse, sse2, avx, avx2 or avx512 to lower the
// level; values above the hardware are ignored. Building with the noasm tag
// forces the scalar level.
//
// # Contracts
//
// Kernels read exactly dim elements from each input and never allocate. They
// do not validate their inputs: a buffer shorter than dim elements panics.
// Use KernelTable.Validate when buffers come from untrusted sources.
package vecdist
