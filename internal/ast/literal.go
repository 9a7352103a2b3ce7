package ast

import (
	"athena/internal/source"
)

// LiteralKind selects the active payload of a Literal.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitFloat
	LitChar
	LitString
)

// Literal is a tagged union over the literal payloads.
type Literal struct {
	Kind LiteralKind
	I    int64
	F    float64
	C    rune
	S    source.StringID
}
