package simd

// Squared Euclidean distance, one entry point per tier. K is the squared
// difference primitive for T. Results are accumulated in float32 whatever the
// element type.

func l2Naive[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return tail[T, K](x[:dim], y[:dim], 0)
}

func l2SSE[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return reduce[T, K](x[:dim], y[:dim], TierSSE)
}

func l2AVX[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return reduce[T, K](x[:dim], y[:dim], TierAVX)
}

func l2AVX512[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return reduce[T, K](x[:dim], y[:dim], TierAVX512)
}
