package simd

// Inner products and the cosine distance derived from them. K is the multiply
// primitive for T.

func dotNaive[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return tail[T, K](x[:dim], y[:dim], 0)
}

func dotSSE[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return reduce[T, K](x[:dim], y[:dim], TierSSE)
}

func dotAVX[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return reduce[T, K](x[:dim], y[:dim], TierAVX)
}

func dotAVX512[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return reduce[T, K](x[:dim], y[:dim], TierAVX512)
}

// The cosine distance is BaseSquared[T]() minus the dot product, so that a
// smaller value means closer vectors. Every tier goes through BaseSquared.

func cosineNaive[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return BaseSquared[T]() - dotNaive[T, K](x, y, dim)
}

func cosineSSE[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return BaseSquared[T]() - dotSSE[T, K](x, y, dim)
}

func cosineAVX[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return BaseSquared[T]() - dotAVX[T, K](x, y, dim)
}

func cosineAVX512[T Element, K laneKernel[T]](x, y []T, dim int) float32 {
	return BaseSquared[T]() - dotAVX512[T, K](x, y, dim)
}
