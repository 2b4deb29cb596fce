// Package literal provides a fixed-capacity Pattern, capped at MaxLen
// cells and wrapping a sigscan.CompiledPattern, for callers who compile
// a small, known set of signatures once (typically into package-level
// vars). It mirrors the
// standard library's regexp.MustCompile idiom: Compile returns an
// error, MustCompile panics, and the latter is meant for initializing
// package-level vars where a malformed literal is a programming error.
package literal

import (
	"errors"
	"fmt"

	sigscan "github.com/SMlc666/urscan"
)

// MaxLen is the fixed capacity of a literal Pattern's cell array.
const MaxLen = 256

// ErrOverLength is returned by Compile when the parsed pattern has
// more than MaxLen cells.
var ErrOverLength = errors.New("literal: pattern exceeds maximum length")

// Pattern holds a signature's cells in a fixed-size array alongside the
// sigscan.CompiledPattern that supplies the actual strategy analysis and
// kernel. Both agree on cell content; the CompiledPattern keeps its own
// heap-allocated cell slice, so the array is a second copy of the cells,
// not a replacement for that slice.
type Pattern struct {
	cells [MaxLen]sigscan.Cell
	n     int
	cp    *sigscan.CompiledPattern
}

// Compile parses text exactly as sigscan.Compile does, additionally
// rejecting any pattern with more than MaxLen cells.
func Compile(text string) (*Pattern, error) {
	cp, err := sigscan.Compile(text)
	if err != nil {
		return nil, err
	}
	if cp.Len() > MaxLen {
		return nil, fmt.Errorf("literal: pattern has %d cells: %w", cp.Len(), ErrOverLength)
	}
	p := &Pattern{n: cp.Len(), cp: cp}
	copy(p.cells[:], cp.Cells())
	return p, nil
}

// MustCompile is Compile but panics on error, for package-level var
// initialization of a pattern known to be valid at compile time.
func MustCompile(text string) *Pattern {
	p, err := Compile(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of cells in the pattern.
func (p *Pattern) Len() int {
	return p.n
}

// Cells returns the pattern's cells as a slice over the fixed array.
// The returned slice must not be mutated.
func (p *Pattern) Cells() []sigscan.Cell {
	return p.cells[:p.n]
}

// String renders the pattern in the same canonical form as
// sigscan.CompiledPattern.String.
func (p *Pattern) String() string {
	return p.cp.String()
}

// Scan delegates to the underlying sigscan.CompiledPattern.
func (p *Pattern) Scan(m sigscan.MemoryRange) (uint64, bool) {
	return p.cp.Scan(m)
}

// ScanMany delegates to the underlying sigscan.CompiledPattern.
func (p *Pattern) ScanMany(ranges []sigscan.MemoryRange) (uint64, bool) {
	return p.cp.ScanMany(ranges)
}

// ScanParallel delegates to the underlying sigscan.CompiledPattern,
// using the default Executor.
func (p *Pattern) ScanParallel(m sigscan.MemoryRange) (uint64, bool) {
	return p.cp.ScanParallel(m)
}

// ScanManyParallel delegates to the underlying sigscan.CompiledPattern,
// using the default Executor.
func (p *Pattern) ScanManyParallel(ranges []sigscan.MemoryRange) (uint64, bool) {
	return p.cp.ScanManyParallel(ranges)
}
