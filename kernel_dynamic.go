package sigscan

import "bytes"

// scanDynamicAnchorPortable is the portable DynamicAnchor kernel:
// anchor on the pattern's first solid cell, linear scan for that byte,
// derive the candidate start, verify with the generic full-match check.
func scanDynamicAnchorPortable(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	n := len(p.cells)
	if len(data) < n || p.firstSolidOffset < 0 {
		// An all-wildcard pattern has no anchor byte; treat it as
		// "not found" rather than matching everywhere.
		return 0, false
	}

	offset := p.firstSolidOffset
	anchor := p.cells[offset].Value
	pos := offset
	for pos < len(data) {
		if cancel.isSet() {
			return 0, false
		}
		idx := bytes.IndexByte(data[pos:], anchor)
		if idx < 0 {
			return 0, false
		}
		pos += idx
		start := pos - offset
		if start >= 0 && start+n <= len(data) && p.fullMatchAt(data, start) {
			return start, true
		}
		pos++
	}
	return 0, false
}

// scanDynamicAnchorDispatch is the cached kernelFunc for
// StrategyDynamicAnchor. It picks the SIMD-accelerated path when the
// platform build supports one and the range is at least simdMinRangeLen
// bytes long, falling back to the portable kernel otherwise. The two paths
// must agree on every input.
func scanDynamicAnchorDispatch(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	if p.firstSolidOffset < 0 {
		return 0, false
	}
	if simdDynamicAnchorAvailable() && len(data) >= simdMinRangeLen {
		return scanDynamicAnchorSIMD(p, data, cancel)
	}
	return scanDynamicAnchorPortable(p, data, cancel)
}
