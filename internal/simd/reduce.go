package simd

// Tier is a kernel implementation family. Every tier is correct on every CPU;
// the tier only fixes the register width the cascade starts from.
type Tier uint8

const (
	// TierNaive runs only the scalar loop.
	TierNaive Tier = iota
	// TierSSE starts at 128-bit registers.
	TierSSE
	// TierAVX starts at 256-bit registers.
	TierAVX
	// TierAVX512 starts at 512-bit registers.
	TierAVX512

	numTiers
)

// Tiers lists every tier from narrowest to widest.
var Tiers = []Tier{TierNaive, TierSSE, TierAVX, TierAVX512}

// String returns the string representation of a Tier.
func (t Tier) String() string {
	switch t {
	case TierNaive:
		return "naive"
	case TierSSE:
		return "sse"
	case TierAVX:
		return "avx"
	case TierAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// registers returns the register width of the tier's widest loop, in 128-bit
// registers.
func (t Tier) registers() int {
	switch t {
	case TierSSE:
		return 1
	case TierAVX:
		return 2
	case TierAVX512:
		return 4
	default:
		return 0
	}
}

// TierFor applies the selection policy: the widest tier whose instructions are
// available for T, first match wins. The floating point path of each
// generation only needs the float half of the instruction set (AVX, SSE),
// integer paths need the later integer half (AVX2, SSE2).
func TierFor[T Element](f Features) Tier {
	float := isFloat[T]()
	switch {
	case f.AVX512:
		return TierAVX512
	case f.AVX2 || (float && f.AVX):
		return TierAVX
	case f.SSE2 || (float && f.SSE):
		return TierSSE
	default:
		return TierNaive
	}
}

// reduce computes sum(K(x_i, y_i)) over all of x with the cascading tail:
// the widest loop fills a 16-lane accumulator, which is folded in half before
// each narrower loop runs, down to a single 4-lane register. The four lanes
// are summed and the remainder goes through the scalar tail.
//
// len(y) must be at least len(x).
func reduce[T Element, K laneKernel[T]](x, y []T, t Tier) float32 {
	var k K
	w := registerWidth[T]()

	var acc [4 * lanesPerRegister]float32
	n := 0
	for regs := t.registers(); regs > 0; regs >>= 1 {
		block := regs * w
		for ; n+block <= len(x); n += block {
			for r := 0; r < regs; r++ {
				off := n + r*w
				v := k.apply(x[off:off+w], y[off:off+w])
				lane := acc[r*lanesPerRegister : (r+1)*lanesPerRegister]
				lane[0] += v[0]
				lane[1] += v[1]
				lane[2] += v[2]
				lane[3] += v[3]
			}
		}
		// Fold the high half of the accumulator onto the low half.
		half := regs * lanesPerRegister / 2
		if regs > 1 {
			for i := 0; i < half; i++ {
				acc[i] += acc[half+i]
			}
		}
	}
	diff := acc[0] + acc[1] + acc[2] + acc[3]

	return tail[T, K](x[n:], y[n:], diff)
}

// tail finishes a reduction one element at a time, unrolled by four while at
// least four elements remain.
func tail[T Element, K laneKernel[T]](x, y []T, diff float32) float32 {
	var k K
	n := len(x)
	y = y[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		diff += k.scalar(x[i], y[i])
		diff += k.scalar(x[i+1], y[i+1])
		diff += k.scalar(x[i+2], y[i+2])
		diff += k.scalar(x[i+3], y[i+3])
	}
	for ; i < n; i++ {
		diff += k.scalar(x[i], y[i])
	}
	return diff
}

// add adds y into x in place with the same widest-first block structure.
// Integer addition wraps, like the packed add instructions.
func add[T Element](x, y []T, t Tier) {
	w := registerWidth[T]()
	y = y[:len(x)]
	n := 0
	for regs := t.registers(); regs > 0; regs >>= 1 {
		block := regs * w
		for ; n+block <= len(x); n += block {
			xs, ys := x[n:n+block], y[n:n+block]
			for i := range xs {
				xs[i] += ys[i]
			}
		}
	}
	for ; n < len(x); n++ {
		x[n] += y[n]
	}
}
