package simd

// Base returns the largest magnitude an element of T represents for the
// cosine metric: the type maximum for integers and 1 for floats, which are
// expected to be unit-normalized.
func Base[T Element]() int64 {
	var z T
	switch any(z).(type) {
	case int8:
		return 127
	case uint8:
		return 255
	case int16:
		return 32767
	default:
		return 1
	}
}

// BaseSquared is the cosine distance of two orthogonal vectors of T and the
// value every cosine kernel subtracts the dot product from.
func BaseSquared[T Element]() float32 {
	b := Base[T]()
	return float32(b * b)
}
