package diag

import (
	"testing"

	"athena/internal/source"
)

func TestBag_CapacityLimit(t *testing.T) {
	bag := NewBag(2)
	d := Diagnostic{Severity: SevError, Code: LexUnknownChar}

	if !bag.Add(d) || !bag.Add(d) {
		t.Fatalf("adds under capacity failed")
	}
	if bag.Add(d) {
		t.Fatalf("add over capacity succeeded")
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestBag_Severities(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevInfo})
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("info counted as error/warning")
	}
	bag.Add(Diagnostic{Severity: SevWarning})
	if bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("warning misclassified")
	}
	bag.Add(Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Fatalf("error not detected")
	}
}

func TestBag_SortByPosition(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Primary: source.Span{Start: 30}})
	bag.Add(Diagnostic{Primary: source.Span{Start: 10}})
	bag.Add(Diagnostic{Primary: source.Span{Start: 20}})
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.Start != 10 || items[1].Primary.Start != 20 || items[2].Primary.Start != 30 {
		t.Fatalf("sort order = %d %d %d", items[0].Primary.Start, items[1].Primary.Start, items[2].Primary.Start)
	}
}

func TestCode_IDRanges(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{DeclDuplicateFixity, "DCL3004"},
		{ResGenericArity, "RES4003"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Fatalf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestReporter_BagAndNop(t *testing.T) {
	bag := NewBag(4)
	var r Reporter = BagReporter{Bag: bag}
	r.Report(LexUnknownChar, SevError, source.Span{}, "boom", nil)
	if bag.Len() != 1 {
		t.Fatalf("bag reporter did not collect")
	}

	r = NopReporter{}
	r.Report(LexUnknownChar, SevError, source.Span{}, "dropped", nil)
	if bag.Len() != 1 {
		t.Fatalf("nop reporter leaked into the bag")
	}
}
