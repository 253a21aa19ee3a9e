package vecdist

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/internal/simd"
)

// Capabilities describes the CPU features a kernel table was resolved for.
type Capabilities struct {
	Vendor string
	Brand  string

	SSE    bool
	SSE2   bool
	AVX    bool
	AVX2   bool
	AVX512 bool

	// Level is the effective capability level.
	Level distance.Level
	// Overridden reports whether VECDIST_SIMD lowered the detected level.
	Overridden bool
}

func capabilitiesOf(f simd.Features, overridden bool) Capabilities {
	return Capabilities{
		Vendor:     f.Vendor,
		Brand:      f.Brand,
		SSE:        f.SSE,
		SSE2:       f.SSE2,
		AVX:        f.AVX,
		AVX2:       f.AVX2,
		AVX512:     f.AVX512,
		Level:      f.Level(),
		Overridden: overridden,
	}
}

// DetectCapability returns the capability level of the running process.
// The probe runs once; later calls return the cached answer.
func DetectCapability() distance.Level {
	return simd.Detect()
}

// DetectCapabilities returns the full feature report of the running process.
func DetectCapabilities() Capabilities {
	return capabilitiesOf(simd.CPU(), simd.IsOverridden())
}

var defaultTable = sync.OnceValue(func() *KernelTable {
	return NewKernelTable()
})

// Default returns the process-wide kernel table, built on first use.
func Default() *KernelTable {
	return defaultTable()
}

// ComputeDistance returns the distance between the first dim elements of a
// and b, interpreted as et, under metric m.
//
// Inputs are not validated: an unknown element type or metric, or a buffer
// shorter than dim elements, panics. Use KernelTable.Validate for untrusted
// input.
func ComputeDistance(a, b []byte, dim int, et distance.ElementType, m distance.Metric) float32 {
	k, err := Default().Distance(et, m)
	if err != nil {
		panic(err)
	}
	return k(a, b, dim)
}

// Accumulate adds the first dim elements of src into dst in place.
// It panics under the same conditions as ComputeDistance.
func Accumulate(dst, src []byte, dim int, et distance.ElementType) {
	k, err := Default().Sum(et)
	if err != nil {
		panic(err)
	}
	k(dst, src, dim)
}

// Bytes views a typed vector as its raw byte buffer without copying.
func Bytes[T distance.Element](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*int(unsafe.Sizeof(zero)))
}
