package source

import (
	"testing"
)

func TestFileSet_ResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ath", []byte("abc\nde\n\nf"))

	tests := []struct {
		name     string
		off      uint32
		wantLine uint32
		wantCol  uint32
	}{
		{"first byte", 0, 1, 1},
		{"middle of first line", 2, 1, 3},
		{"newline belongs to its line", 3, 1, 4},
		{"start of second line", 4, 2, 1},
		{"empty line", 7, 3, 1},
		{"last line", 8, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.wantLine || start.Col != tt.wantCol {
				t.Fatalf("Resolve(%d) = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestFileSet_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ath", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	for i, want := range []string{"first", "second", "third"} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Fatalf("GetLine(%d) = %q, want %q", i+1, got, want)
		}
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("GetLine(4) = %q, want empty", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatalf("normalizeCRLF did not report changes")
	}
	if string(got) != "a\nb\rc\n" {
		t.Fatalf("normalizeCRLF = %q", got)
	}

	same, changed := normalizeCRLF([]byte("plain\ntext"))
	if changed || string(same) != "plain\ntext" {
		t.Fatalf("normalizeCRLF touched clean input")
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if !had || string(got) != "hi" {
		t.Fatalf("removeBOM = %q, %v", got, had)
	}
}
