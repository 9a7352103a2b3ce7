package lexer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"athena/internal/token"
)

// scanIdentOrKeyword scans an identifier, classifying it as a keyword, a
// ConID (leading upper-case letter), or a VarID. Identifiers are
// NFC-normalized before interning so visually identical spellings intern to
// the same ID.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()

	first, _ := lx.cursor.PeekRune()
	for !lx.cursor.EOF() {
		r, size := lx.cursor.PeekRune()
		if size == 1 {
			if !isIdentContinueByte(byte(r)) {
				break
			}
		} else if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		_ = lx.cursor.BumpRune()
	}

	text := lx.cursor.Text(mark)
	name := text
	if !norm.NFC.IsNormalString(name) {
		name = norm.NFC.String(name)
	}

	tok := token.Token{
		Span: lx.cursor.SpanFrom(mark),
		Text: text,
		Line: mark.Line,
		Col:  mark.Col,
	}

	if kw, ok := token.LookupKeyword(name); ok {
		tok.Kind = kw
		return tok
	}

	if unicode.IsUpper(first) {
		tok.Kind = token.ConID
	} else {
		tok.Kind = token.VarID
	}
	tok.ID = lx.interner.Intern(name)
	return tok
}
