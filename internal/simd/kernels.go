package simd

// Kernel computes a scalar from two vectors of dim elements.
//
// SAFETY: x and y must hold at least dim elements. Kernels read x[:dim] and
// y[:dim] only; shorter slices panic.
type Kernel[T Element] func(x, y []T, dim int) float32

// SumKernel adds y into x element-wise over dim elements.
type SumKernel[T Element] func(x, y []T, dim int)

// kernelSet holds every implementation for one element type, indexed by tier.
// The sets are built at package initialization from function references and
// are read-only afterwards.
type kernelSet[T Element] struct {
	l2     [numTiers]Kernel[T]
	dot    [numTiers]Kernel[T]
	cosine [numTiers]Kernel[T]
	sum    [numTiers]SumKernel[T]
}

func newKernelSet[T Element, Sqdf laneKernel[T], Mul laneKernel[T]]() *kernelSet[T] {
	return &kernelSet[T]{
		l2: [numTiers]Kernel[T]{
			TierNaive:  l2Naive[T, Sqdf],
			TierSSE:    l2SSE[T, Sqdf],
			TierAVX:    l2AVX[T, Sqdf],
			TierAVX512: l2AVX512[T, Sqdf],
		},
		dot: [numTiers]Kernel[T]{
			TierNaive:  dotNaive[T, Mul],
			TierSSE:    dotSSE[T, Mul],
			TierAVX:    dotAVX[T, Mul],
			TierAVX512: dotAVX512[T, Mul],
		},
		cosine: [numTiers]Kernel[T]{
			TierNaive:  cosineNaive[T, Mul],
			TierSSE:    cosineSSE[T, Mul],
			TierAVX:    cosineAVX[T, Mul],
			TierAVX512: cosineAVX512[T, Mul],
		},
		sum: [numTiers]SumKernel[T]{
			TierNaive:  sumNaive[T],
			TierSSE:    sumSSE[T],
			TierAVX:    sumAVX[T],
			TierAVX512: sumAVX512[T],
		},
	}
}

var (
	int8Kernels    = newKernelSet[int8, sqdfInt8, mulInt8]()
	uint8Kernels   = newKernelSet[uint8, sqdfUint8, mulUint8]()
	int16Kernels   = newKernelSet[int16, sqdfInt16, mulInt16]()
	float32Kernels = newKernelSet[float32, sqdfFloat32, mulFloat32]()
)

func kernelsFor[T Element]() *kernelSet[T] {
	var z T
	switch any(z).(type) {
	case int8:
		return any(int8Kernels).(*kernelSet[T])
	case uint8:
		return any(uint8Kernels).(*kernelSet[T])
	case int16:
		return any(int16Kernels).(*kernelSet[T])
	default:
		return any(float32Kernels).(*kernelSet[T])
	}
}

func clampTier(t Tier) Tier {
	if t >= numTiers {
		return TierAVX512
	}
	return t
}

// L2 returns the squared Euclidean distance kernel of tier t.
func L2[T Element](t Tier) Kernel[T] {
	return kernelsFor[T]().l2[clampTier(t)]
}

// Dot returns the raw inner product kernel of tier t.
func Dot[T Element](t Tier) Kernel[T] {
	return kernelsFor[T]().dot[clampTier(t)]
}

// Cosine returns the cosine distance kernel of tier t.
func Cosine[T Element](t Tier) Kernel[T] {
	return kernelsFor[T]().cosine[clampTier(t)]
}

// Sum returns the in-place accumulation kernel of tier t.
func Sum[T Element](t Tier) SumKernel[T] {
	return kernelsFor[T]().sum[clampTier(t)]
}

// ActiveTier returns the tier the detected capability selects for T.
func ActiveTier[T Element]() Tier {
	return TierFor[T](CPU())
}
