package simd

import "unsafe"

// Element is the set of vector element types the kernels operate on.
type Element interface {
	int8 | uint8 | int16 | float32
}

// registerBytes is the size of the narrowest SIMD register (128 bits).
// Wider tiers are modelled as 2 or 4 of these side by side, which matches
// how x86 unpack and multiply-add instructions operate per 128-bit lane.
const registerBytes = 16

// lanesPerRegister is the number of float32 accumulator lanes in one register.
const lanesPerRegister = 4

// registerWidth returns how many elements of T fit in one 128-bit register.
func registerWidth[T Element]() int {
	var z T
	return registerBytes / int(unsafe.Sizeof(z))
}

// isFloat reports whether T is the 4-byte floating point type.
func isFloat[T Element]() bool {
	var z T
	_, ok := any(z).(float32)
	return ok
}

// laneKernel is a per-register primitive. apply consumes exactly one register
// worth of x and y and returns the four float32 lanes it contributes; scalar
// is the matching one-element operation used by tails.
type laneKernel[T Element] interface {
	apply(x, y []T) [lanesPerRegister]float32
	scalar(x, y T) float32
}

// Widening helpers. int8 sign-extends, uint8 zero-extends; both land in int16
// so the difference of any two elements fits without overflow.

func widenInt8(v int8) int16 { return int16(v) }

func widenUint8(v uint8) int16 { return int16(v) }

func widenInt16(v int16) int32 { return int32(v) }

// madd multiplies two pairs of int16 and sums them into one int32 lane.
// Widened bytes never reach the int32 limit.
func madd(a0, b0, a1, b1 int16) int32 {
	return int32(a0)*int32(b0) + int32(a1)*int32(b1)
}

// maddWide is madd for full-range words. Two products of -32768 sum to 2^31,
// so the pair is summed in int64 to keep the sign.
func maddWide(a0, b0, a1, b1 int16) int64 {
	return int64(a0)*int64(b0) + int64(a1)*int64(b1)
}

// Byte lanes: word k of the low half is element k, word k of the high half is
// element 8+k. Multiply-add pairs words (2k, 2k+1), and lo+hi are summed, so
// float lane k covers elements 2k, 2k+1, 8+2k and 9+2k.

type sqdfInt8 struct{}

func (sqdfInt8) apply(x, y []int8) (r [lanesPerRegister]float32) {
	x, y = x[:16], y[:16]
	for k := 0; k < lanesPerRegister; k++ {
		d0 := widenInt8(x[2*k]) - widenInt8(y[2*k])
		d1 := widenInt8(x[2*k+1]) - widenInt8(y[2*k+1])
		d2 := widenInt8(x[8+2*k]) - widenInt8(y[8+2*k])
		d3 := widenInt8(x[9+2*k]) - widenInt8(y[9+2*k])
		r[k] = float32(madd(d0, d0, d1, d1) + madd(d2, d2, d3, d3))
	}
	return r
}

func (sqdfInt8) scalar(x, y int8) float32 {
	c := float32(x) - float32(y)
	return c * c
}

type mulInt8 struct{}

func (mulInt8) apply(x, y []int8) (r [lanesPerRegister]float32) {
	x, y = x[:16], y[:16]
	for k := 0; k < lanesPerRegister; k++ {
		lo := madd(widenInt8(x[2*k]), widenInt8(y[2*k]), widenInt8(x[2*k+1]), widenInt8(y[2*k+1]))
		hi := madd(widenInt8(x[8+2*k]), widenInt8(y[8+2*k]), widenInt8(x[9+2*k]), widenInt8(y[9+2*k]))
		r[k] = float32(lo + hi)
	}
	return r
}

func (mulInt8) scalar(x, y int8) float32 {
	return float32(x) * float32(y)
}

type sqdfUint8 struct{}

func (sqdfUint8) apply(x, y []uint8) (r [lanesPerRegister]float32) {
	x, y = x[:16], y[:16]
	for k := 0; k < lanesPerRegister; k++ {
		d0 := widenUint8(x[2*k]) - widenUint8(y[2*k])
		d1 := widenUint8(x[2*k+1]) - widenUint8(y[2*k+1])
		d2 := widenUint8(x[8+2*k]) - widenUint8(y[8+2*k])
		d3 := widenUint8(x[9+2*k]) - widenUint8(y[9+2*k])
		r[k] = float32(madd(d0, d0, d1, d1) + madd(d2, d2, d3, d3))
	}
	return r
}

func (sqdfUint8) scalar(x, y uint8) float32 {
	c := float32(x) - float32(y)
	return c * c
}

type mulUint8 struct{}

func (mulUint8) apply(x, y []uint8) (r [lanesPerRegister]float32) {
	x, y = x[:16], y[:16]
	for k := 0; k < lanesPerRegister; k++ {
		lo := madd(widenUint8(x[2*k]), widenUint8(y[2*k]), widenUint8(x[2*k+1]), widenUint8(y[2*k+1]))
		hi := madd(widenUint8(x[8+2*k]), widenUint8(y[8+2*k]), widenUint8(x[9+2*k]), widenUint8(y[9+2*k]))
		r[k] = float32(lo + hi)
	}
	return r
}

func (mulUint8) scalar(x, y uint8) float32 {
	return float32(x) * float32(y)
}

// Word lanes: the squared difference widens each word to int32, subtracts,
// converts to float and squares there; lane k covers elements k and 4+k.

type sqdfInt16 struct{}

func (sqdfInt16) apply(x, y []int16) (r [lanesPerRegister]float32) {
	x, y = x[:8], y[:8]
	for k := 0; k < lanesPerRegister; k++ {
		dlo := float32(widenInt16(x[k]) - widenInt16(y[k]))
		dhi := float32(widenInt16(x[4+k]) - widenInt16(y[4+k]))
		r[k] = float32(dlo*dlo) + float32(dhi*dhi)
	}
	return r
}

func (sqdfInt16) scalar(x, y int16) float32 {
	c := float32(x) - float32(y)
	return c * c
}

// The word dot product is a single multiply-add: lane k covers 2k and 2k+1.
type mulInt16 struct{}

func (mulInt16) apply(x, y []int16) (r [lanesPerRegister]float32) {
	x, y = x[:8], y[:8]
	for k := 0; k < lanesPerRegister; k++ {
		r[k] = float32(maddWide(x[2*k], y[2*k], x[2*k+1], y[2*k+1]))
	}
	return r
}

func (mulInt16) scalar(x, y int16) float32 {
	return float32(x) * float32(y)
}

type sqdfFloat32 struct{}

func (sqdfFloat32) apply(x, y []float32) (r [lanesPerRegister]float32) {
	x, y = x[:4], y[:4]
	for k := 0; k < lanesPerRegister; k++ {
		d := x[k] - y[k]
		r[k] = d * d
	}
	return r
}

func (sqdfFloat32) scalar(x, y float32) float32 {
	c := x - y
	return c * c
}

type mulFloat32 struct{}

func (mulFloat32) apply(x, y []float32) (r [lanesPerRegister]float32) {
	x, y = x[:4], y[:4]
	for k := 0; k < lanesPerRegister; k++ {
		r[k] = x[k] * y[k]
	}
	return r
}

func (mulFloat32) scalar(x, y float32) float32 {
	return x * y
}
