//go:build !amd64

package sigscan

// scanDynamicAnchorSIMD on non-amd64 builds delegates to the portable
// kernel; simdDynamicAnchorAvailable always returns false on these
// platforms, so scanDynamicAnchorDispatch never actually calls this
// path, but it is kept so the two build variants export the same
// symbol set.
func scanDynamicAnchorSIMD(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	return scanDynamicAnchorPortable(p, data, cancel)
}
