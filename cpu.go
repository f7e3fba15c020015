package rng

import (
	"golang.org/x/sys/cpu"
)

// cpuFeatures is the subset of CPU capabilities backend selection uses.
type cpuFeatures struct {
	avx2 bool
	sse2 bool
	simd bool // ARM64 Advanced SIMD
}

// hostFeatures reads the capabilities of the running CPU.
func hostFeatures() cpuFeatures {
	return cpuFeatures{
		avx2: cpu.X86.HasAVX2,
		sse2: cpu.X86.HasSSE2,
		simd: cpu.ARM64.HasASIMD,
	}
}

// selectBackend picks the widest backend f supports.
func selectBackend(f cpuFeatures) Backend {
	switch {
	case f.avx2:
		return BackendAVX2
	case f.sse2, f.simd:
		return BackendSSE2
	default:
		return BackendScalar
	}
}

// DetectBackend returns the backend BackendAuto resolves to on this CPU.
func DetectBackend() Backend {
	return selectBackend(hostFeatures())
}

// resolveBackend replaces BackendAuto with the detected backend.
func resolveBackend(b Backend) Backend {
	if b == BackendAuto {
		return DetectBackend()
	}
	return b
}
