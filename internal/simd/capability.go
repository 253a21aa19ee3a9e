package simd

import (
	"os"
	"strings"
	"sync"
)

// Level is the widest SIMD instruction tier confirmed on the running CPU.
// Levels are ordered: a higher level implies every lower one.
type Level uint8

const (
	// Scalar means no SIMD tier is assumed.
	Scalar Level = iota
	// SSE represents x86 SSE (128-bit float lanes).
	SSE
	// SSE2 represents x86 SSE2 (128-bit integer lanes).
	SSE2
	// AVX represents x86 AVX (256-bit float lanes).
	AVX
	// AVX2 represents x86 AVX2 (256-bit integer lanes).
	AVX2
	// AVX512 represents x86 AVX-512 F+BW+DQ (512-bit lanes).
	AVX512
)

// EnvOverride names the environment variable that caps the detected level.
const EnvOverride = "VECDIST_SIMD"

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE:
		return "sse"
	case SSE2:
		return "sse2"
	case AVX:
		return "avx"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level value.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic", "naive":
		return Scalar, true
	case "sse":
		return SSE, true
	case "sse2":
		return SSE2, true
	case "avx":
		return AVX, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Scalar, false
	}
}

// Features is the result of one CPU probe.
type Features struct {
	Vendor string
	Brand  string

	SSE    bool
	SSE2   bool
	AVX    bool
	AVX2   bool
	AVX512 bool // F, BW and DQ all present
}

// Level returns the highest level whose flag, and every flag below it, is set.
func (f Features) Level() Level {
	lvl := Scalar
	for _, step := range []struct {
		ok  bool
		lvl Level
	}{
		{f.SSE, SSE},
		{f.SSE2, SSE2},
		{f.AVX, AVX},
		{f.AVX2, AVX2},
		{f.AVX512, AVX512},
	} {
		if !step.ok {
			break
		}
		lvl = step.lvl
	}
	return lvl
}

// Supports reports whether the flag for l is set. Scalar is always supported.
func (f Features) Supports(l Level) bool {
	switch l {
	case Scalar:
		return true
	case SSE:
		return f.SSE
	case SSE2:
		return f.SSE2
	case AVX:
		return f.AVX
	case AVX2:
		return f.AVX2
	case AVX512:
		return f.AVX512
	default:
		return false
	}
}

// Cap clears every flag above l.
func (f Features) Cap(l Level) Features {
	f.SSE = f.SSE && l >= SSE
	f.SSE2 = f.SSE2 && l >= SSE2
	f.AVX = f.AVX && l >= AVX
	f.AVX2 = f.AVX2 && l >= AVX2
	f.AVX512 = f.AVX512 && l >= AVX512
	return f
}

// FeaturesAt returns the feature set implied by a level: every flag up to and
// including l is set. Vendor and brand are left empty.
func FeaturesAt(l Level) Features {
	return Features{
		SSE:    l >= SSE,
		SSE2:   l >= SSE2,
		AVX:    l >= AVX,
		AVX2:   l >= AVX2,
		AVX512: l >= AVX512,
	}
}

type capability struct {
	features   Features
	overridden bool
}

// detected holds the process-wide probe. It runs on first use and never
// changes afterwards; concurrent first callers block until it is done.
var detected = sync.OnceValue(func() capability {
	return resolve(probe(), os.Getenv(EnvOverride))
})

// resolve applies an override to a raw probe. An override that names a level
// the hardware lacks, or that does not parse, is ignored.
func resolve(f Features, override string) capability {
	if override == "" {
		return capability{features: f}
	}
	lvl, ok := ParseLevel(override)
	if !ok || !f.Supports(lvl) {
		return capability{features: f}
	}
	return capability{features: f.Cap(lvl), overridden: true}
}

// Detect returns the effective capability level of this process.
func Detect() Level {
	return detected().features.Level()
}

// CPU returns the effective feature set of this process.
func CPU() Features {
	return detected().features
}

// IsOverridden returns true if VECDIST_SIMD lowered the detected level.
func IsOverridden() bool {
	return detected().overridden
}

// SupportsAVX512 returns true if AVX-512 (F+BW+DQ) is available.
func SupportsAVX512() bool { return detected().features.AVX512 }

// SupportsAVX2 returns true if AVX2 is available.
func SupportsAVX2() bool { return detected().features.AVX2 }

// SupportsAVX returns true if AVX is available.
func SupportsAVX() bool { return detected().features.AVX }

// SupportsSSE2 returns true if SSE2 is available.
func SupportsSSE2() bool { return detected().features.SSE2 }

// SupportsSSE returns true if SSE is available.
func SupportsSSE() bool { return detected().features.SSE }
