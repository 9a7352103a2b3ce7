package lexer

import (
	"strconv"

	"athena/internal/diag"
	"athena/internal/token"
)

// scanNumber scans an integer or floating-point literal. Supported forms:
// decimal integers, 0x hexadecimal integers, and floats with a fractional
// part and/or a decimal exponent.
func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == 'x' || b1 == 'X') {
			_ = lx.cursor.Bump()
			_ = lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) {
				_ = lx.cursor.Bump()
			}
			return lx.intToken(mark, lx.cursor.Text(mark)[2:], 16)
		}
	}

	for isDec(lx.cursor.Peek()) {
		_ = lx.cursor.Bump()
	}

	isFloat := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		isFloat = true
		_ = lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			_ = lx.cursor.Bump()
		}
	}
	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		if next := lx.cursor.PeekAt(1); isDec(next) ||
			((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
			isFloat = true
			_ = lx.cursor.Bump()
			if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
				_ = lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) {
				_ = lx.cursor.Bump()
			}
		}
	}

	text := lx.cursor.Text(mark)
	if !isFloat {
		return lx.intToken(mark, text, 10)
	}

	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(mark), "malformed float literal "+strconv.Quote(text))
	}
	return token.Token{
		Kind:     token.Float,
		Span:     lx.cursor.SpanFrom(mark),
		Text:     text,
		Line:     mark.Line,
		Col:      mark.Col,
		FloatVal: val,
	}
}

func (lx *Lexer) intToken(mark Mark, digits string, base int) token.Token {
	val, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(mark), "malformed integer literal "+strconv.Quote(lx.cursor.Text(mark)))
	}
	return token.Token{
		Kind:   token.Integer,
		Span:   lx.cursor.SpanFrom(mark),
		Text:   lx.cursor.Text(mark),
		Line:   mark.Line,
		Col:    mark.Col,
		IntVal: val,
	}
}
