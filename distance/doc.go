// Package distance provides vector distance calculations with runtime SIMD tier dispatch.
//
// Kernels exist for int8, uint8, int16 and float32 vectors and for every
// capability tier (naive, SSE, AVX, AVX-512). Select picks the fastest tier the
// running CPU supports; the result is a plain function to keep and call.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance
//   - MetricCosine: BaseSquared minus the dot product (smaller is closer)
//   - MetricInnerProduct: same kernel family as MetricCosine
//
// Float vectors used with MetricCosine must be unit-normalized; see
// NormalizeL2InPlace.
//
// # Usage
//
//	l2, err := distance.Select[int8](distance.MetricL2)
//	d := l2(a, b, dim)
//	distance.Accumulate(centroid, v, dim)
package distance
