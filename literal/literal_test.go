package literal

import (
	"errors"
	"strings"
	"testing"

	sigscan "github.com/SMlc666/urscan"
)

func TestCompileAndScan(t *testing.T) {
	p, err := Compile("48 8B ?? AA")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}

	data := make([]byte, 64)
	for i := range data {
		data[i] = 0xCD
	}
	copy(data[20:], []byte{0x48, 0x8B, 0x05, 0xAA})

	addr, ok := p.Scan(sigscan.MemoryRange{Base: 0, Data: data})
	if !ok || addr != 20 {
		t.Fatalf("Scan = (%d, %v), want (20, true)", addr, ok)
	}
}

func TestCompileOverLength(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < MaxLen+1; i++ {
		sb.WriteString("AA ")
	}
	_, err := Compile(sb.String())
	if err == nil {
		t.Fatal("Compile returned nil error, want ErrOverLength")
	}
	if !errors.Is(err, ErrOverLength) {
		t.Fatalf("error = %v, want wrapping ErrOverLength", err)
	}
}

func TestCompileInvalidSyntaxPropagates(t *testing.T) {
	_, err := Compile("12 3G 56")
	if !errors.Is(err, sigscan.ErrInvalidSyntax) {
		t.Fatalf("error = %v, want wrapping sigscan.ErrInvalidSyntax", err)
	}
}

func TestMustCompilePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile did not panic on invalid pattern")
		}
	}()
	MustCompile("not hex")
}

func TestMustCompileSucceeds(t *testing.T) {
	p := MustCompile("AA BB CC")
	if p.String() != "AA BB CC" {
		t.Fatalf("String() = %q, want %q", p.String(), "AA BB CC")
	}
}
