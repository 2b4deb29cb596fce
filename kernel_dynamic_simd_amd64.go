//go:build amd64

package sigscan

import (
	"encoding/binary"
	"math/bits"
)

// scanDynamicAnchorSIMD is the accelerated DynamicAnchor kernel. It
// avoids hand-written assembly entirely and instead uses SWAR ("SIMD
// within a register"): the anchor search processes memory eight bytes
// at a time via a branch-free byte-equality trick instead of one byte
// per loop iteration, and the confirmation step mask-compares up to a
// 16-byte window against the pattern's zero-padded prefix with a
// byte-by-byte loop over a precomputed validity mask. A better anchor
// byte is chosen by sampling byte frequencies over the range.
// Behavioral parity with scanDynamicAnchorPortable is required: both
// must return the same result for the same input.
func scanDynamicAnchorSIMD(p *CompiledPattern, data []byte, cancel *cancelToken) (int, bool) {
	n := len(p.cells)
	if len(data) < n {
		return 0, false
	}

	freq := sampleByteFrequencies(data)
	anchor := selectSIMDAnchor(p.cells, freq)
	if !anchor.ok {
		// No solid cell within the first 16 positions (but the pattern
		// does have one further in, since p.firstSolidOffset >= 0 is
		// checked by the caller): fall back to anchoring on whichever
		// solid cell the pattern actually has, exactly what the
		// portable kernel does.
		return scanDynamicAnchorPortable(p, data, cancel)
	}

	limit := len(data) - n
	// A valid match start s runs up to limit, but the anchor byte itself
	// sits at s+anchor.offset, not at s. So the anchor position has to
	// range up to limit+anchor.offset (clamped to the last byte of
	// data), not just up to limit - otherwise matches whose start is in
	// the last anchor.offset positions are missed entirely.
	anchorLimit := limit + anchor.offset
	if anchorLimit > len(data)-1 {
		anchorLimit = len(data) - 1
	}
	pos := anchor.offset
	endForWords := len(data) - 7

	for pos <= anchorLimit {
		if cancel.isSet() {
			return 0, false
		}

		// Coarse scan: find the next occurrence of the anchor byte,
		// eight bytes at a time, via a SWAR equality test.
		for pos < endForWords && pos <= anchorLimit {
			word := binary.LittleEndian.Uint64(data[pos:])
			hit := swarFindByte(word, anchor.byte)
			if hit == 8 {
				pos += 8
				continue
			}
			pos += hit
			break
		}
		if pos > anchorLimit {
			break
		}
		if data[pos] != anchor.byte {
			// Tail region too short for a word load; fall through to a
			// byte-by-byte scan for the remainder.
			idx := scalarIndexByte(data[pos:anchorLimit+1], anchor.byte)
			if idx < 0 {
				return 0, false
			}
			pos += idx
		}

		start := pos - anchor.offset
		if start >= 0 && start+n <= len(data) {
			if n <= simdWindow {
				if maskCompare16(data[start:], anchor.pattern, anchor.mask) {
					return start, true
				}
			} else if maskCompare16(data[start:], anchor.pattern, anchor.mask) && p.fullMatchAt(data, start) {
				return start, true
			}
		}
		pos++
	}
	return 0, false
}

// swarFindByte returns the index within word (0-7) of the first byte
// equal to b, or 8 if none match. It treats word as little-endian bytes.
func swarFindByte(word uint64, b byte) int {
	broadcast := uint64(b) * 0x0101010101010101
	x := word ^ broadcast
	// Classic "find zero byte" trick: (x-1) & ^x has the high bit of a
	// byte set wherever that byte of x was zero, provided no byte's low
	// 7 bits already borrowed from a neighbor; masking with 0x80 per
	// byte after the subtract keeps this exact for byte-wide lanes.
	y := (x - 0x0101010101010101) & ^x & 0x8080808080808080
	if y == 0 {
		return 8
	}
	return bits.TrailingZeros64(y) / 8
}

func scalarIndexByte(data []byte, b byte) int {
	for i, v := range data {
		if v == b {
			return i
		}
	}
	return -1
}

// maskCompare16 compares up to 16 bytes of data against pattern,
// wherever mask is 0xFF. Callers only invoke this once bounds for the
// full pattern have already been checked, but maskCompare16 itself
// only looks at however many of the first 16 bytes exist.
func maskCompare16(data []byte, pattern, mask [simdWindow]byte) bool {
	n := simdWindow
	if len(data) < n {
		n = len(data)
	}
	for i := 0; i < n; i++ {
		if mask[i] != 0 && data[i] != pattern[i] {
			return false
		}
	}
	return true
}
