package sigscan

// Strategy identifies which scan kernel a compiled pattern dispatches
// to. The set is closed and fixed at five members; a cached function
// pointer is the idiomatic Go stand-in for dispatch here — virtual
// dispatch buys nothing when the set never grows.
type Strategy int

const (
	// StrategySimple has no wildcards; scanned with Boyer-Moore-Horspool.
	StrategySimple Strategy = iota
	// StrategyForwardAnchor has a solid first cell and a wildcard last cell.
	StrategyForwardAnchor
	// StrategyBackwardAnchor has a wildcard first cell and a solid last cell.
	StrategyBackwardAnchor
	// StrategyDualAnchor has solid first and last cells with at least one
	// wildcard cell between them.
	StrategyDualAnchor
	// StrategyDynamicAnchor has wildcards at both ends.
	StrategyDynamicAnchor
)

// String returns the strategy's name, used in logging and tests.
func (s Strategy) String() string {
	switch s {
	case StrategySimple:
		return "Simple"
	case StrategyForwardAnchor:
		return "ForwardAnchor"
	case StrategyBackwardAnchor:
		return "BackwardAnchor"
	case StrategyDualAnchor:
		return "DualAnchor"
	case StrategyDynamicAnchor:
		return "DynamicAnchor"
	default:
		return "Unknown"
	}
}

// classify picks a pattern's strategy from the wildcard state of its
// first and last cells. A pattern with no wildcards at all is
// classified Simple, enabling Boyer-Moore-Horspool.
func classify(cells []Cell) Strategy {
	n := len(cells)
	if n == 0 {
		return StrategySimple
	}

	firstWildcard := cells[0].IsWildcard
	lastWildcard := cells[n-1].IsWildcard

	switch {
	case !firstWildcard && !lastWildcard:
		if hasWildcard(cells) {
			return StrategyDualAnchor
		}
		return StrategySimple
	case !firstWildcard && lastWildcard:
		return StrategyForwardAnchor
	case firstWildcard && !lastWildcard:
		return StrategyBackwardAnchor
	default:
		return StrategyDynamicAnchor
	}
}

func hasWildcard(cells []Cell) bool {
	for _, c := range cells {
		if c.IsWildcard {
			return true
		}
	}
	return false
}

// buildBMHTable computes the Boyer-Moore-Horspool bad-character skip
// table for a wildcard-free pattern: every slot starts at n, then for
// i in [0, n-2] the byte at i is given skip n-1-i. The last byte is
// deliberately excluded so the skip is never zero for the in-window
// byte.
func buildBMHTable(raw []byte) [256]int {
	var table [256]int
	n := len(raw)
	for i := range table {
		table[i] = n
	}
	for i := 0; i < n-1; i++ {
		table[raw[i]] = n - 1 - i
	}
	return table
}
