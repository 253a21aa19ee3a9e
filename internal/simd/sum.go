package simd

// In-place element-wise addition, one entry point per tier.

func sumNaive[T Element](x, y []T, dim int) {
	add(x[:dim], y[:dim], TierNaive)
}

func sumSSE[T Element](x, y []T, dim int) {
	add(x[:dim], y[:dim], TierSSE)
}

func sumAVX[T Element](x, y []T, dim int) {
	add(x[:dim], y[:dim], TierAVX)
}

func sumAVX512[T Element](x, y []T, dim int) {
	add(x[:dim], y[:dim], TierAVX512)
}
