package lexer

import (
	"athena/internal/diag"
	"athena/internal/token"
)

// scanOperatorOrPunct scans single-character punctuation and symbolic
// operator runs. Reserved operators get their own kinds; anything else is a
// VarSym with an interned name.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch ch {
	case ',':
		_ = lx.cursor.Bump()
		return lx.punct(mark, token.Comma)
	case '`':
		_ = lx.cursor.Bump()
		return lx.punct(mark, token.Grave)
	case '(':
		_ = lx.cursor.Bump()
		return lx.punct(mark, token.ParenL)
	case ')':
		_ = lx.cursor.Bump()
		return lx.punct(mark, token.ParenR)
	case '{':
		_ = lx.cursor.Bump()
		if len(lx.fmtDepth) > 0 {
			lx.fmtDepth[len(lx.fmtDepth)-1]++
		}
		return lx.punct(mark, token.BraceL)
	case '}':
		_ = lx.cursor.Bump()
		if len(lx.fmtDepth) > 0 {
			if lx.fmtDepth[len(lx.fmtDepth)-1] == 0 {
				return lx.endOfFormatToken(mark)
			}
			lx.fmtDepth[len(lx.fmtDepth)-1]--
		}
		return lx.punct(mark, token.BraceR)
	}

	if !isSymbolByte(ch) {
		_ = lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(mark)
		lx.report(diag.LexUnknownChar, sp, "unknown character "+string(rune(ch)))
		return token.Token{
			Kind: token.Invalid,
			Span: sp,
			Text: lx.cursor.Text(mark),
			Line: mark.Line,
			Col:  mark.Col,
		}
	}

	for isSymbolByte(lx.cursor.Peek()) {
		_ = lx.cursor.Bump()
	}
	text := lx.cursor.Text(mark)

	tok := token.Token{
		Span: lx.cursor.SpanFrom(mark),
		Text: text,
		Line: mark.Line,
		Col:  mark.Col,
	}
	switch text {
	case ":":
		tok.Kind = token.OpColon
	case "=":
		tok.Kind = token.OpEquals
	case "|":
		tok.Kind = token.OpBar
	case "$":
		tok.Kind = token.OpDollar
	case "->":
		tok.Kind = token.OpArrowR
	case ".":
		tok.Kind = token.OpDot
	default:
		tok.Kind = token.VarSym
		tok.ID = lx.interner.Intern(text)
	}
	return tok
}

func (lx *Lexer) punct(mark Mark, kind token.Kind) token.Token {
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.Text(mark),
		Line: mark.Line,
		Col:  mark.Col,
	}
}
