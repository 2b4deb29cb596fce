package sigscan

// kernelFunc is the signature shared by all five scan kernels: scan
// memoryRange m for the pattern p, honoring cancel, and report the
// lowest matching offset relative to m.Data (not yet adjusted by
// m.Base). Returning an offset rather than an absolute address keeps
// the kernels free of any notion of "base".
type kernelFunc func(p *CompiledPattern, data []byte, cancel *cancelToken) (offset int, ok bool)

// CompiledPattern is an immutable, analyzed signature ready to scan. It
// is safe to share across goroutines and across many Scan calls: the
// cells, the chosen Strategy, and all auxiliary tables are computed
// once at construction time.
type CompiledPattern struct {
	cells    []Cell
	strategy Strategy
	kernel   kernelFunc

	// Simple/BMH auxiliary state.
	bmhTable [256]int
	rawBytes []byte

	// Anchor auxiliary state (meaningful subset depends on strategy).
	firstByte byte
	lastByte  byte

	// DynamicAnchor auxiliary state: offset of the first solid cell, or
	// -1 if the pattern has no solid cell at all (the all-wildcard edge
	// case, pinned to "not found" rather than matching everywhere).
	firstSolidOffset int
}

// FromCells builds a CompiledPattern directly from an already-parsed
// cell sequence, performing the same strategy analysis Compile does.
// It is the shared constructor used by Compile and by the literal
// subpackage's fixed-capacity variant, so both reuse exactly the same
// algorithmic contract.
func FromCells(cells []Cell) *CompiledPattern {
	p := &CompiledPattern{cells: cells}
	p.strategy = classify(cells)
	p.analyze()
	logPatternCompiled(p)
	return p
}

// Len returns the number of cells in the pattern.
func (p *CompiledPattern) Len() int {
	return len(p.cells)
}

// Cells returns the pattern's cells. The returned slice must not be
// mutated; CompiledPattern never copies it internally.
func (p *CompiledPattern) Cells() []Cell {
	return p.cells
}

// Strategy returns the strategy chosen for this pattern at compile time.
func (p *CompiledPattern) Strategy() Strategy {
	return p.strategy
}

// String renders the pattern in the same canonical form Cell.String
// uses, so Compile(p.String()) reproduces an equal pattern.
func (p *CompiledPattern) String() string {
	return cellsToString(p.cells)
}

// analyze precomputes the auxiliary tables for the pattern's strategy
// and caches the kernel function pointer.
func (p *CompiledPattern) analyze() {
	n := len(p.cells)
	if n > 0 {
		p.firstByte = p.cells[0].Value
		p.lastByte = p.cells[n-1].Value
	}

	switch p.strategy {
	case StrategySimple:
		p.rawBytes = make([]byte, n)
		for i, c := range p.cells {
			p.rawBytes[i] = c.Value
		}
		if n > 0 {
			p.bmhTable = buildBMHTable(p.rawBytes)
		}
		p.kernel = scanSimple
	case StrategyForwardAnchor:
		p.kernel = scanForwardAnchor
	case StrategyBackwardAnchor:
		p.kernel = scanBackwardAnchor
	case StrategyDualAnchor:
		p.kernel = scanDualAnchor
	case StrategyDynamicAnchor:
		p.firstSolidOffset = -1
		for i, c := range p.cells {
			if !c.IsWildcard {
				p.firstSolidOffset = i
				break
			}
		}
		p.kernel = scanDynamicAnchorDispatch
	}
}

// fullMatchAt reports whether every non-wildcard cell of the pattern
// matches data starting at offset s. It is the generic full-match check
// shared by every anchor kernel. Callers must ensure
// s+len(p.cells) <= len(data).
func (p *CompiledPattern) fullMatchAt(data []byte, s int) bool {
	for i, c := range p.cells {
		if !c.IsWildcard && data[s+i] != c.Value {
			return false
		}
	}
	return true
}
