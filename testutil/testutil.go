package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// Number is the set of vector element types the kernels accept.
type Number interface {
	int8 | uint8 | int16 | float32
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// Int8s returns n values spread over the full int8 range.
func (r *RNG) Int8s(n int) []int8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(r.rand.Intn(256) - 128)
	}
	return out
}

// Uint8s returns n values spread over the full uint8 range.
func (r *RNG) Uint8s(n int) []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(r.rand.Intn(256))
	}
	return out
}

// Int16s returns n values spread over the full int16 range.
func (r *RNG) Int16s(n int) []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(r.rand.Intn(65536) - 32768)
	}
	return out
}

// Float32s returns n values in range [-1, 1).
func (r *RNG) Float32s(n int) []float32 {
	out := make([]float32, n)
	r.FillUniformRange(out, -1, 1)
	return out
}

// UnitVector generates a single L2-normalized random vector.
func (r *RNG) UnitVector(dimensions int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float32, dimensions)
	var norm float64
	for j := range vec {
		v := r.rand.NormFloat64()
		vec[j] = float32(v)
		norm += v * v
	}

	if norm == 0 {
		norm = 1
	}

	invNorm := 1.0 / math.Sqrt(norm)
	for j := range vec {
		vec[j] = float32(float64(vec[j]) * invNorm)
	}
	return vec
}

// Vectors returns a pair of random vectors of T with n elements each.
func Vectors[T Number](r *RNG, n int) (x, y []T) {
	var z T
	switch any(z).(type) {
	case int8:
		return any(r.Int8s(n)).([]T), any(r.Int8s(n)).([]T)
	case uint8:
		return any(r.Uint8s(n)).([]T), any(r.Uint8s(n)).([]T)
	case int16:
		return any(r.Int16s(n)).([]T), any(r.Int16s(n)).([]T)
	default:
		return any(r.Float32s(n)).([]T), any(r.Float32s(n)).([]T)
	}
}

// SquaredL2 is the float64 reference for the squared Euclidean distance.
func SquaredL2[T Number](x, y []T) float64 {
	var sum float64
	for i := range x {
		d := float64(x[i]) - float64(y[i])
		sum += d * d
	}
	return sum
}

// Dot is the float64 reference for the inner product.
func Dot[T Number](x, y []T) float64 {
	var sum float64
	for i := range x {
		sum += float64(x[i]) * float64(y[i])
	}
	return sum
}

// RelativeError returns |got-want| relative to max(|want|, 1).
func RelativeError(got, want float64) float64 {
	return math.Abs(got-want) / math.Max(math.Abs(want), 1)
}
