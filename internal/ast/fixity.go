package ast

// FixityKind is an operator's associativity.
type FixityKind uint8

const (
	FixityLeft FixityKind = iota
	FixityRight
	FixityPrefix
)

// Fixity pairs associativity with a precedence in 0..9.
type Fixity struct {
	Kind FixityKind
	Prec uint8
}

// DefaultFixity applies to operators with no fixity declaration.
var DefaultFixity = Fixity{Kind: FixityLeft, Prec: 9}
