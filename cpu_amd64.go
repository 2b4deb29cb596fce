//go:build amd64

package sigscan

import "golang.org/x/sys/cpu"

// simdDynamicAnchorAvailable reports whether the accelerated
// DynamicAnchor kernel should be preferred on this CPU. AVX2 support
// correlates with the modern microarchitectures this word-parallel
// scan is tuned for (wide execution ports, cheap unaligned 64-bit
// loads), so it doubles as a proxy for "fast enough to be worth it"
// even though the implementation itself (see kernel_dynamic_simd_amd64.go)
// is plain Go rather than hand-written assembly. Grounded on
// biggeezerdevelopment-simdjson-go's cpu_amd64.go.
func simdDynamicAnchorAvailable() bool {
	return cpu.X86.HasAVX2
}
