package token

import (
	"athena/internal/source"
)

// Token represents a single source token with its location and payload.
// Line and Col are the 1-based position of the first byte; the layout pass
// compares Col against the open block columns.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32
	Col  uint32

	// Payloads. ID holds the interned name for VarID/ConID/VarSym and the
	// interned contents for String chunks. The numeric fields are only
	// meaningful for the matching literal kinds.
	ID       source.StringID
	IntVal   int64
	FloatVal float64
	CharVal  rune
}

// IsLiteral reports whether the token is a literal (the meta-kind of the
// token set).
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Integer, Float, Char, String:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwType, KwData, KwForeign, KwImport, KwLet, KwVar, KwIf, KwThen,
		KwElse, KwCase, KwOf, KwWhile, KwDo, KwInfix, KwInfixL, KwInfixR,
		KwPrefix:
		return true
	default:
		return false
	}
}

// IsSynthetic reports whether the token was produced by the layout pass
// rather than scanned from the source.
func (t Token) IsSynthetic() bool {
	return t.Kind == EndOfStmt || t.Kind == EndOfBlock
}
