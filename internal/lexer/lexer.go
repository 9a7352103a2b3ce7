package lexer

import (
	"slices"

	"athena/internal/diag"
	"athena/internal/source"
	"athena/internal/token"
)

// Lexer scans one source file and synthesizes layout tokens from
// indentation. Blocks are opened by the parser through PushIndent; the lexer
// closes them itself when a dedent drops below the innermost block column.
type Lexer struct {
	file     *source.File
	interner *source.Interner
	cursor   Cursor
	opts     Options

	indents []uint32      // open block columns, innermost last
	queue   []token.Token // synthetic and split tokens waiting to be returned
	held    *token.Token  // scanned token parked behind the queue

	fmtDepth     []uint32 // brace nesting per open string format
	resumeString bool     // continue a string chunk after EndOfFormat
}

// New creates a lexer over file. Identifiers and string contents are interned
// into in.
func New(file *source.File, in *source.Interner, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		interner: in,
		cursor:   NewCursor(file),
		opts:     opts,
	}
}

// Interner returns the interner used for token payloads.
func (lx *Lexer) Interner() *source.Interner {
	return lx.interner
}

// Next returns the next token, including synthesized EndOfStmt/EndOfBlock.
// After the input is exhausted it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	for {
		if len(lx.queue) > 0 {
			tok := lx.queue[0]
			lx.queue = lx.queue[1:]
			return tok
		}
		if lx.held != nil {
			tok := *lx.held
			if tok.Kind != token.EOF {
				lx.held = nil
			}
			return tok
		}

		// A finished format expression resumes the surrounding string
		// chunk right after the closing brace.
		// The scanned token goes into the queue ahead of anything the scan
		// itself queued (a StartOfFormat after a string chunk).
		if lx.resumeString {
			lx.resumeString = false
			n := len(lx.queue)
			cand := lx.scanStringChunk(lx.cursor.Mark())
			lx.queue = slices.Insert(lx.queue, n, cand)
			continue
		}

		newline := lx.skipTrivia()

		// Layout runs on the upcoming token's position, before the token
		// itself is scanned, so its synthetics always precede anything the
		// scan may queue.
		if lx.cursor.EOF() {
			lx.runLayout(0, true)
			eof := token.Token{
				Kind: token.EOF,
				Span: lx.emptySpan(),
				Line: lx.cursor.Line,
				Col:  0,
			}
			lx.held = &eof
			continue
		}
		lx.runLayout(lx.cursor.Col, newline)

		n := len(lx.queue)
		cand := lx.scanToken()
		lx.queue = slices.Insert(lx.queue, n, cand)
	}
}

// runLayout compares the upcoming token's column against the open blocks
// and queues the due synthetic tokens: one EndOfBlock per closed block,
// then an EndOfStmt when the column lands exactly on a block's indent.
func (lx *Lexer) runLayout(col uint32, newline bool) {
	if !newline {
		return
	}
	for len(lx.indents) > 0 && col < lx.indents[len(lx.indents)-1] {
		lx.queue = append(lx.queue, lx.synthetic(token.EndOfBlock, col))
		lx.indents = lx.indents[:len(lx.indents)-1]
	}
	if len(lx.indents) > 0 && col == lx.indents[len(lx.indents)-1] {
		lx.queue = append(lx.queue, lx.synthetic(token.EndOfStmt, col))
	}
}

func (lx *Lexer) synthetic(kind token.Kind, col uint32) token.Token {
	return token.Token{
		Kind: kind,
		Span: lx.emptySpan(),
		Line: lx.cursor.Line,
		Col:  col,
	}
}

// PushIndent opens a layout block at the given column. Called by the parser
// when it instantiates an indentation level at the current token.
func (lx *Lexer) PushIndent(col uint32) {
	lx.indents = append(lx.indents, col)
}

// BlockDepth returns the number of open layout blocks.
func (lx *Lexer) BlockDepth() int {
	return len(lx.indents)
}

// TrimIndents pops blocks until at most depth remain. The lexer itself pops
// on dedent, so closing an already-closed block is a no-op.
func (lx *Lexer) TrimIndents(depth int) {
	for len(lx.indents) > depth {
		lx.indents = lx.indents[:len(lx.indents)-1]
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipTrivia consumes whitespace and comments. Reports whether at least one
// newline was crossed.
func (lx *Lexer) skipTrivia() bool {
	newline := false
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			_ = lx.cursor.Bump()
		case '\n':
			_ = lx.cursor.Bump()
			newline = true
		case '-':
			if !lx.atLineComment() {
				return newline
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				_ = lx.cursor.Bump()
			}
		default:
			return newline
		}
	}
	return newline
}

// atLineComment reports whether the cursor sits on a comment: a run of two
// or more dashes not followed by another symbol character (so '-->' stays an
// operator).
func (lx *Lexer) atLineComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '-' || b1 != '-' {
		return false
	}
	i := uint32(2)
	for lx.cursor.PeekAt(i) == '-' {
		i++
	}
	return !isSymbolByte(lx.cursor.PeekAt(i))
}

// scanToken scans one concrete token at the cursor. Trivia has already been
// skipped.
func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	case isDec(ch):
		return lx.scanNumber()
	case isIdentStartByte(ch) || ch >= 0x80:
		return lx.scanIdentOrKeyword()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	lx.opts.reporter().Report(code, diag.SevError, sp, msg, nil)
}
