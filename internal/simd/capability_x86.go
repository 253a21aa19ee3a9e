//go:build (386 || amd64) && !noasm

package simd

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// probe reads the CPU feature flags. x/sys/cpu already accounts for OS
// support of the wider register files; it does not expose SSE1, so that bit
// comes from cpuid.
func probe() Features {
	return Features{
		Vendor: cpuid.CPU.VendorString,
		Brand:  cpuid.CPU.BrandName,
		SSE:    cpuid.CPU.Supports(cpuid.SSE) || cpu.X86.HasSSE2,
		SSE2:   cpu.X86.HasSSE2,
		AVX:    cpu.X86.HasAVX,
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512DQ,
	}
}
