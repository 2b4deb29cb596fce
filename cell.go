package sigscan

import (
	"fmt"
	"strings"
)

// Cell is a single position in a compiled pattern: either a solid byte
// value or a wildcard that matches any byte. Value is only meaningful
// when IsWildcard is false.
type Cell struct {
	Value      byte
	IsWildcard bool
}

// String renders a cell in canonical textual form: two uppercase hex
// digits for a solid byte, "?" for a wildcard.
func (c Cell) String() string {
	if c.IsWildcard {
		return "?"
	}
	return fmt.Sprintf("%02X", c.Value)
}

// cellsToString renders a slice of cells as a space-separated canonical
// pattern string, the inverse of parseCells. Round-tripping a compiled
// pattern through String and Compile yields an equal pattern.
func cellsToString(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
