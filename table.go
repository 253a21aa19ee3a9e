package vecdist

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/internal/simd"
)

// DistanceFunc computes a distance between the first dim elements of two raw
// vector buffers. Buffers must be aligned to the element size.
type DistanceFunc func(a, b []byte, dim int) float32

// SumFunc adds the first dim elements of src into dst in place.
type SumFunc func(dst, src []byte, dim int)

// KernelTable maps (element type, metric) to the kernel serving it. The table
// is resolved once and is read-only afterwards, so it is safe for concurrent use.
type KernelTable struct {
	features   simd.Features
	level      distance.Level
	overridden bool
	logger     *Logger

	kernels [distance.NumElementTypes][distance.NumMetrics]DistanceFunc
	sum     [distance.NumElementTypes]SumFunc
	tiers   [distance.NumElementTypes]distance.Tier
}

// NewKernelTable resolves every kernel for the detected capability, or for
// the level pinned with WithLevel.
func NewKernelTable(optFns ...Option) *KernelTable {
	opts := options{logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&opts)
	}

	features := simd.CPU()
	if opts.pinned {
		pinned := simd.FeaturesAt(opts.level)
		pinned.Vendor, pinned.Brand = features.Vendor, features.Brand
		features = pinned
	}

	t := &KernelTable{
		features:   features,
		level:      features.Level(),
		overridden: !opts.pinned && simd.IsOverridden(),
		logger:     opts.logger,
	}

	fill[int8](t, distance.Int8)
	fill[uint8](t, distance.UInt8)
	fill[int16](t, distance.Int16)
	fill[float32](t, distance.Float32)

	ctx := context.Background()
	t.logger.LogCapabilities(ctx, t.Capabilities())
	for _, et := range distance.ElementTypes {
		t.logger.LogSelection(ctx, et, t.tiers[et])
	}

	return t
}

func fill[T distance.Element](t *KernelTable, et distance.ElementType) {
	tier := simd.TierFor[T](t.features)
	t.tiers[et] = tier

	l2 := wrap(simd.L2[T](tier))
	cosine := wrap(simd.Cosine[T](tier))

	t.kernels[et][distance.MetricL2] = l2
	t.kernels[et][distance.MetricCosine] = cosine
	t.kernels[et][distance.MetricInnerProduct] = cosine
	t.sum[et] = wrapSum(simd.Sum[T](tier))
}

func wrap[T distance.Element](k simd.Kernel[T]) DistanceFunc {
	return func(a, b []byte, dim int) float32 {
		return k(view[T](a, dim), view[T](b, dim), dim)
	}
}

func wrapSum[T distance.Element](k simd.SumKernel[T]) SumFunc {
	return func(dst, src []byte, dim int) {
		k(view[T](dst, dim), view[T](src, dim), dim)
	}
}

// view reinterprets the first dim elements of b as []T. It panics with a
// bounds error if b is too short.
func view[T distance.Element](b []byte, dim int) []T {
	var zero T
	b = b[:dim*int(unsafe.Sizeof(zero))]
	if dim == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), dim)
}

// Distance returns the kernel for element type et and metric m.
func (t *KernelTable) Distance(et distance.ElementType, m distance.Metric) (DistanceFunc, error) {
	if !et.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedElementType, et)
	}
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
	return t.kernels[et][m], nil
}

// Sum returns the accumulation kernel for element type et.
func (t *KernelTable) Sum(et distance.ElementType) (SumFunc, error) {
	if !et.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedElementType, et)
	}
	return t.sum[et], nil
}

// Tier reports which kernel tier serves element type et.
func (t *KernelTable) Tier(et distance.ElementType) (distance.Tier, error) {
	if !et.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedElementType, et)
	}
	return t.tiers[et], nil
}

// Level returns the capability level the table was resolved for.
func (t *KernelTable) Level() distance.Level {
	return t.level
}

// Capabilities returns the feature set the table was resolved for.
func (t *KernelTable) Capabilities() Capabilities {
	return capabilitiesOf(t.features, t.overridden)
}

// Validate checks that a and b each hold at least dim elements of type et.
// Kernels do not check their inputs; callers handling untrusted buffers
// validate first.
func (t *KernelTable) Validate(a, b []byte, dim int, et distance.ElementType) error {
	err := validate(a, b, dim, et)
	t.logger.LogValidation(context.Background(), et, dim, err)
	return err
}

func validate(a, b []byte, dim int, et distance.ElementType) error {
	if !et.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedElementType, et)
	}
	if dim < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	need := dim * et.Size()
	if got := min(len(a), len(b)); got < need {
		return &ErrBufferTooSmall{ElementType: et, Dimension: dim, Need: need, Got: got}
	}
	return nil
}
