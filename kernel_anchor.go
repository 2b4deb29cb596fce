package sigscan

import "bytes"

// scanForwardAnchor linear-scans for the pattern's first byte via the
// standard library's IndexByte (the Go analogue of memchr), verifying
// each candidate with the generic full-match check.
func scanForwardAnchor(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	n := len(p.cells)
	if len(data) < n {
		return 0, false
	}

	limit := len(data) - n
	pos := 0
	for pos <= limit {
		if cancel.isSet() {
			return 0, false
		}
		idx := bytes.IndexByte(data[pos:limit+1], p.firstByte)
		if idx < 0 {
			return 0, false
		}
		pos += idx
		if p.fullMatchAt(data, pos) {
			return pos, true
		}
		pos++
	}
	return 0, false
}

// scanBackwardAnchor linear-scans for the pattern's last byte, then
// derives the candidate start and verifies it.
func scanBackwardAnchor(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	n := len(p.cells)
	if len(data) < n {
		return 0, false
	}

	lastOffset := n - 1
	pos := lastOffset
	for pos < len(data) {
		if cancel.isSet() {
			return 0, false
		}
		idx := bytes.IndexByte(data[pos:], p.lastByte)
		if idx < 0 {
			return 0, false
		}
		pos += idx
		start := pos - lastOffset
		if start >= 0 && start+n <= len(data) && p.fullMatchAt(data, start) {
			return start, true
		}
		pos++
	}
	return 0, false
}

// scanDualAnchor is like scanForwardAnchor, but rejects a candidate
// before running the full-match check whenever the byte at the
// expected last position does not equal the pattern's last byte.
func scanDualAnchor(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	n := len(p.cells)
	if len(data) < n {
		return 0, false
	}

	last := n - 1
	limit := len(data) - n
	pos := 0
	for pos <= limit {
		if cancel.isSet() {
			return 0, false
		}
		idx := bytes.IndexByte(data[pos:limit+1], p.firstByte)
		if idx < 0 {
			return 0, false
		}
		pos += idx
		if data[pos+last] == p.lastByte && p.fullMatchAt(data, pos) {
			return pos, true
		}
		pos++
	}
	return 0, false
}
