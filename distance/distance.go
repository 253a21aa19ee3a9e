package distance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/hupe1980/vecdist/internal/simd"
)

var (
	// ErrUnsupportedMetric is returned when no kernel family serves a metric.
	ErrUnsupportedMetric = errors.New("unsupported metric")
	// ErrUnsupportedElementType is returned for an unknown element type.
	ErrUnsupportedElementType = errors.New("unsupported element type")
	// ErrUnsupportedLevel is returned for an unknown capability level name.
	ErrUnsupportedLevel = errors.New("unsupported capability level")
)

// Element is the set of vector element types: int8, uint8, int16, float32.
type Element = simd.Element

// Kernel computes a distance between x[:dim] and y[:dim].
type Kernel[T Element] = simd.Kernel[T]

// SumKernel adds y[:dim] into x[:dim] in place.
type SumKernel[T Element] = simd.SumKernel[T]

// Level is the detected SIMD capability level.
type Level = simd.Level

// Capability levels, narrowest first.
const (
	LevelScalar = simd.Scalar
	LevelSSE    = simd.SSE
	LevelSSE2   = simd.SSE2
	LevelAVX    = simd.AVX
	LevelAVX2   = simd.AVX2
	LevelAVX512 = simd.AVX512
)

// ParseLevel parses a capability level name such as "avx2" or "scalar".
func ParseLevel(s string) (Level, error) {
	l, ok := simd.ParseLevel(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLevel, s)
	}
	return l, nil
}

// Tier is a kernel implementation family.
type Tier = simd.Tier

// Kernel tiers, narrowest first.
const (
	TierNaive  = simd.TierNaive
	TierSSE    = simd.TierSSE
	TierAVX    = simd.TierAVX
	TierAVX512 = simd.TierAVX512
)

// TierFor returns the tier the selection policy picks for T at level l.
func TierFor[T Element](l Level) Tier {
	return simd.TierFor[T](simd.FeaturesAt(l))
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	// MetricL2 is the squared Euclidean distance.
	MetricL2 Metric = iota
	// MetricCosine is BaseSquared minus the dot product.
	MetricCosine
	// MetricInnerProduct shares the cosine kernel family.
	MetricInnerProduct

	// NumMetrics is the number of supported metrics.
	NumMetrics = iota
)

// Metrics lists every supported metric.
var Metrics = []Metric{MetricL2, MetricCosine, MetricInnerProduct}

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricInnerProduct:
		return "InnerProduct"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric parses a metric name, case-insensitively.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l2":
		return MetricL2, nil
	case "cosine":
		return MetricCosine, nil
	case "innerproduct", "ip", "dot":
		return MetricInnerProduct, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMetric, s)
	}
}

// Valid reports whether m names a supported metric.
func (m Metric) Valid() bool {
	return m >= 0 && m < NumMetrics
}

// ElementType identifies the element type of an untyped vector buffer.
type ElementType uint8

const (
	Int8 ElementType = iota
	UInt8
	Int16
	Float32

	// NumElementTypes is the number of supported element types.
	NumElementTypes = iota
)

// ElementTypes lists every supported element type.
var ElementTypes = []ElementType{Int8, UInt8, Int16, Float32}

func (t ElementType) String() string {
	switch t {
	case Int8:
		return "Int8"
	case UInt8:
		return "UInt8"
	case Int16:
		return "Int16"
	case Float32:
		return "Float"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// Size returns the element size in bytes, or 0 for an unknown type.
func (t ElementType) Size() int {
	switch t {
	case Int8, UInt8:
		return 1
	case Int16:
		return 2
	case Float32:
		return 4
	default:
		return 0
	}
}

// ParseElementType parses an element type name, case-insensitively.
func ParseElementType(s string) (ElementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int8":
		return Int8, nil
	case "uint8":
		return UInt8, nil
	case "int16":
		return Int16, nil
	case "float", "float32":
		return Float32, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedElementType, s)
	}
}

// Valid reports whether t names a supported element type.
func (t ElementType) Valid() bool {
	return t < NumElementTypes
}

// ElementTypeOf returns the ElementType of T.
func ElementTypeOf[T Element]() ElementType {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8
	case uint8:
		return UInt8
	case int16:
		return Int16
	default:
		return Float32
	}
}

// Select returns the distance kernel for metric m at the detected capability.
// Resolve once and keep the result; the lookup is cheap but not free.
func Select[T Element](m Metric) (Kernel[T], error) {
	return selectTier[T](m, simd.ActiveTier[T]())
}

// SelectAt returns the kernel the selection policy picks for T and m on a
// CPU with the given capability level.
func SelectAt[T Element](m Metric, l Level) (Kernel[T], error) {
	return selectTier[T](m, TierFor[T](l))
}

func selectTier[T Element](m Metric, t simd.Tier) (Kernel[T], error) {
	switch m {
	case MetricL2:
		return simd.L2[T](t), nil
	case MetricCosine, MetricInnerProduct:
		return simd.Cosine[T](t), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}

// SelectSum returns the accumulation kernel at the detected capability.
func SelectSum[T Element]() SumKernel[T] {
	return simd.Sum[T](simd.ActiveTier[T]())
}

// SelectSumAt returns the accumulation kernel for the given capability level.
func SelectSumAt[T Element](l Level) SumKernel[T] {
	return simd.Sum[T](TierFor[T](l))
}

// Compute returns the distance between x[:dim] and y[:dim] under metric m.
// It panics if m is not supported; use Select to handle that as an error.
func Compute[T Element](x, y []T, dim int, m Metric) float32 {
	k, err := Select[T](m)
	if err != nil {
		panic(err)
	}
	return k(x, y, dim)
}

// Accumulate adds y[:dim] into x[:dim] in place.
func Accumulate[T Element](x, y []T, dim int) {
	SelectSum[T]()(x, y, dim)
}

// Batch computes k(query, target_i) for a flattened block of targets, each
// dim elements long, writing one distance per target to out. It stops at
// whichever of out or targets runs out first.
func Batch[T Element](k Kernel[T], query, targets []T, dim int, out []float32) {
	if dim <= 0 || len(out) == 0 || len(query) < dim {
		return
	}
	q := query[:dim]
	n := min(len(out), len(targets)/dim)
	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = k(q, targets[offset:offset+dim], dim)
	}
}

// Base returns the largest magnitude of T used by the cosine metric.
func Base[T Element]() int64 {
	return simd.Base[T]()
}

// BaseSquared returns the cosine distance of orthogonal vectors of T.
func BaseSquared[T Element]() float32 {
	return simd.BaseSquared[T]()
}

// ConvertCosineSimilarityToDistance maps a cosine similarity in [-1, 1],
// higher meaning closer, to a distance in [0, 2], lower meaning closer.
func ConvertCosineSimilarityToDistance(cs float32) float32 {
	return 1 - cs
}

// ConvertDistanceBackToCosineSimilarity inverts ConvertCosineSimilarityToDistance.
func ConvertDistanceBackToCosineSimilarity(d float32) float32 {
	return 1 - d
}

// NormalizeL2InPlace L2-normalizes v in place so the float cosine kernel
// sees unit vectors.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := simd.Dot[float32](simd.ActiveTier[float32]())(v, v, len(v))
	if norm2 == 0 {
		return false
	}
	inv := 1 / math32.Sqrt(norm2)
	for i := range v {
		v[i] *= inv
	}
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := append([]float32(nil), src...)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}

// Detect returns the capability level of the running process.
func Detect() Level {
	return simd.Detect()
}
