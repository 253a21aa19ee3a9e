//go:build (!386 && !amd64) || noasm

package simd

// probe fails closed: without an x86 probe every kernel runs the scalar tier.
func probe() Features {
	return Features{}
}
