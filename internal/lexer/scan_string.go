package lexer

import (
	"strings"

	"athena/internal/diag"
	"athena/internal/token"
)

// scanString scans a string literal starting at the opening quote. A bare
// '{' inside the literal splits it: the chunk so far is emitted as a String
// token, StartOfFormat is queued, and the lexer switches to expression
// scanning until the matching '}' (see scanOperatorOrPunct).
func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	_ = lx.cursor.Bump() // opening quote
	return lx.scanStringChunk(mark)
}

// scanStringChunk scans string content up to a closing quote or the start of
// an embedded format expression. mark points at the token start (the opening
// quote, or the position just past the closing brace of the preceding format
// expression).
func (lx *Lexer) scanStringChunk(mark Mark) token.Token {
	var val strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			lx.report(diag.LexUnterminatedString, lx.cursor.SpanFrom(mark), "unterminated string literal")
			return lx.stringToken(mark, val.String())
		}
		switch lx.cursor.Peek() {
		case '"':
			_ = lx.cursor.Bump()
			return lx.stringToken(mark, val.String())
		case '\\':
			lx.scanEscape(&val)
		case '{':
			tok := lx.stringToken(mark, val.String())
			fmtMark := lx.cursor.Mark()
			_ = lx.cursor.Bump()
			lx.queue = append(lx.queue, token.Token{
				Kind: token.StartOfFormat,
				Span: lx.cursor.SpanFrom(fmtMark),
				Text: "{",
				Line: fmtMark.Line,
				Col:  fmtMark.Col,
			})
			lx.fmtDepth = append(lx.fmtDepth, 0)
			return tok
		default:
			val.WriteRune(lx.cursor.BumpRune())
		}
	}
}

func (lx *Lexer) stringToken(mark Mark, val string) token.Token {
	return token.Token{
		Kind: token.String,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.Text(mark),
		Line: mark.Line,
		Col:  mark.Col,
		ID:   lx.interner.Intern(val),
	}
}

// scanEscape consumes a backslash escape and appends its value to val.
func (lx *Lexer) scanEscape(val *strings.Builder) {
	mark := lx.cursor.Mark()
	_ = lx.cursor.Bump() // backslash
	if lx.cursor.EOF() {
		lx.report(diag.LexInvalidEscape, lx.cursor.SpanFrom(mark), "invalid escape sequence")
		return
	}
	switch ch := lx.cursor.Bump(); ch {
	case 'n':
		val.WriteByte('\n')
	case 't':
		val.WriteByte('\t')
	case 'r':
		val.WriteByte('\r')
	case '0':
		val.WriteByte(0)
	case '\\', '"', '\'', '{', '}':
		val.WriteByte(ch)
	default:
		lx.report(diag.LexInvalidEscape, lx.cursor.SpanFrom(mark), "invalid escape sequence '\\"+string(ch)+"'")
	}
}

// scanChar scans a character literal.
func (lx *Lexer) scanChar() token.Token {
	mark := lx.cursor.Mark()
	_ = lx.cursor.Bump() // opening quote

	var value rune
	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		lx.report(diag.LexUnterminatedChar, lx.cursor.SpanFrom(mark), "unterminated character literal")
		return lx.charToken(mark, 0)
	}
	if lx.cursor.Peek() == '\\' {
		var buf strings.Builder
		lx.scanEscape(&buf)
		for _, r := range buf.String() {
			value = r
			break
		}
	} else {
		value = lx.cursor.BumpRune()
	}

	if !lx.cursor.Eat('\'') {
		lx.report(diag.LexUnterminatedChar, lx.cursor.SpanFrom(mark), "unterminated character literal")
	}
	return lx.charToken(mark, value)
}

func (lx *Lexer) charToken(mark Mark, value rune) token.Token {
	return token.Token{
		Kind:    token.Char,
		Span:    lx.cursor.SpanFrom(mark),
		Text:    lx.cursor.Text(mark),
		Line:    mark.Line,
		Col:     mark.Col,
		CharVal: value,
	}
}

// endOfFormatToken closes the innermost string format expression.
func (lx *Lexer) endOfFormatToken(mark Mark) token.Token {
	lx.fmtDepth = lx.fmtDepth[:len(lx.fmtDepth)-1]
	lx.resumeString = true
	return token.Token{
		Kind: token.EndOfFormat,
		Span: lx.cursor.SpanFrom(mark),
		Text: "}",
		Line: mark.Line,
		Col:  mark.Col,
	}
}
