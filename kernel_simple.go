package sigscan

import "bytes"

// scanSimple implements the Boyer-Moore-Horspool kernel for
// wildcard-free patterns. It advances the candidate window by the
// precomputed skip table whenever the last byte of the window
// mismatches, and only falls back to comparing the remaining n-1 bytes
// once the last byte already matches.
func scanSimple(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	n := len(p.rawBytes)
	if n == 0 || len(data) < n {
		return 0, false
	}

	last := n - 1
	lastByte := p.rawBytes[last]
	limit := len(data) - n

	for i := 0; i <= limit; {
		if cancel.isSet() {
			return 0, false
		}

		if data[i+last] == lastByte {
			if n == 1 || bytes.Equal(data[i:i+last], p.rawBytes[:last]) {
				return i, true
			}
		}
		i += p.bmhTable[data[i+last]]
	}
	return 0, false
}
