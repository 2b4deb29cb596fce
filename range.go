package sigscan

// MemoryRange describes a contiguous span of bytes to scan. Base is the
// address reported alongside a match; Data is the caller-owned backing
// slice. Scan never copies or retains Data past the call that receives
// it.
type MemoryRange struct {
	Base uint64
	Data []byte
}

// chunkSize is the unit the range driver splits a MemoryRange into
// before handing pieces to the executor.
const chunkSize = 262144

// chunksFor splits data into overlapping windows of at most chunkSize
// bytes, each overlapping the next by n-1 bytes so that no occurrence
// of an n-byte pattern can be split across a chunk boundary.
func chunksFor(data []byte, n int) []MemoryRange {
	return chunksForSize(data, n, chunkSize)
}

// chunksForSize is chunksFor parameterized on the chunk size, split out
// so tests can exercise the overlap/straddle logic with a small size
// without a 256KiB buffer.
func chunksForSize(data []byte, n, size int) []MemoryRange {
	overlap := n - 1
	if overlap < 0 {
		overlap = 0
	}
	if len(data) == 0 {
		return nil
	}
	if len(data) <= size {
		return []MemoryRange{{Base: 0, Data: data}}
	}

	step := size - overlap
	if step <= 0 {
		step = size
	}

	var chunks []MemoryRange
	for start := 0; start < len(data); start += step {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, MemoryRange{Base: uint64(start), Data: data[start:end]})
		if end == len(data) {
			break
		}
	}
	return chunks
}

// Scan searches m for p, returning the absolute address of the lowest
// matching offset (m.Base plus the in-range offset) and true, or
// (0, false) if p does not occur in m. Large ranges are scanned in
// overlapping chunkSize windows so pattern state stays cache-resident;
// this is purely an implementation detail and does not change the
// result.
func (p *CompiledPattern) Scan(m MemoryRange) (uint64, bool) {
	if p.Len() == 0 {
		return 0, false
	}
	cancel := newCancelToken()
	for _, chunk := range chunksFor(m.Data, p.Len()) {
		if off, ok := p.kernel(p, chunk.Data, cancel); ok {
			return m.Base + chunk.Base + uint64(off), true
		}
	}
	return 0, false
}

// ScanMany scans ranges in order, returning the first match found in
// the first range that contains one. Ranges after the first match are
// not scanned.
func (p *CompiledPattern) ScanMany(ranges []MemoryRange) (uint64, bool) {
	for _, m := range ranges {
		if addr, ok := p.Scan(m); ok {
			return addr, true
		}
	}
	return 0, false
}
