package sigscan

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Strategy
	}{
		{"empty", "", StrategySimple},
		{"no wildcards", "12 34 56", StrategySimple},
		{"forward anchor", "48 8B ?? ??", StrategyForwardAnchor},
		{"backward anchor", "?? BB CC 8B", StrategyBackwardAnchor},
		{"dual anchor", "48 ?? ?? 8B", StrategyDualAnchor},
		{"dynamic anchor", "?? 48 8B ??", StrategyDynamicAnchor},
		{"all wildcard", "?? ?? ??", StrategyDynamicAnchor},
		{"single solid byte", "AA", StrategySimple},
		{"single wildcard", "?", StrategyDynamicAnchor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells, err := parseCells(tc.text)
			if err != nil {
				t.Fatalf("parseCells(%q) returned error: %v", tc.text, err)
			}
			got := classify(cells)
			if got != tc.want {
				t.Fatalf("classify(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestBuildBMHTable(t *testing.T) {
	table := buildBMHTable([]byte{0x12, 0x34, 0x56})
	if table[0x12] != 2 {
		t.Fatalf("table[0x12] = %d, want 2", table[0x12])
	}
	if table[0x34] != 1 {
		t.Fatalf("table[0x34] = %d, want 1", table[0x34])
	}
	if table[0x56] != 3 {
		t.Fatalf("table[0x56] = %d, want 3 (last byte excluded from shortcut slots)", table[0x56])
	}
	if table[0x00] != 3 {
		t.Fatalf("table[0x00] = %d, want 3 (default skip)", table[0x00])
	}
}
