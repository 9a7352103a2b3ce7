package lexer

import (
	"slices"

	"athena/internal/token"
)

// Snapshot captures the full mutable lexer state: cursor position, indent
// stack, queued synthetic tokens, the held lookahead, and the string-format
// state. Snapshots are stack-structured; nested saves compose.
type Snapshot struct {
	cursor       Cursor
	indents      []uint32
	queue        []token.Token
	held         *token.Token
	fmtDepth     []uint32
	resumeString bool
}

// Save captures the lexer state for backtracking.
func (lx *Lexer) Save() Snapshot {
	var held *token.Token
	if lx.held != nil {
		h := *lx.held
		held = &h
	}
	return Snapshot{
		cursor:       lx.cursor,
		indents:      slices.Clone(lx.indents),
		queue:        slices.Clone(lx.queue),
		held:         held,
		fmtDepth:     slices.Clone(lx.fmtDepth),
		resumeString: lx.resumeString,
	}
}

// Restore rewinds the lexer to a previously saved state.
func (lx *Lexer) Restore(s Snapshot) {
	lx.cursor = s.cursor
	lx.indents = s.indents
	lx.queue = s.queue
	lx.held = s.held
	lx.fmtDepth = s.fmtDepth
	lx.resumeString = s.resumeString
}
