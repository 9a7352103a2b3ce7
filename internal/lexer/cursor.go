package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"athena/internal/source"
)

// Cursor is a position inside a source buffer with line/column tracking.
// Columns are 1-based; a tab advances the column to the next multiple-of-8
// boundary plus one.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File: f,
		Off:  0,
		Line: 1,
		Col:  1,
	}
}

func (c *Cursor) limit() uint32 {
	return uint32(len(c.File.Content)) //nolint:gosec // checked in NewCursor
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 reads the current and next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// PeekAt reads the byte at offset delta from the cursor, or 0 past EOF.
func (c *Cursor) PeekAt(delta uint32) byte {
	if c.Off+delta >= c.limit() {
		return 0
	}
	return c.File.Content[c.Off+delta]
}

// Bump consumes one byte, updating line and column. Returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	switch b {
	case '\n':
		c.Line++
		c.Col = 1
	case '\t':
		c.Col = c.Col + 8 - (c.Col-1)%8
	default:
		c.Col++
	}
	return b
}

// BumpRune consumes one UTF-8 rune, counting it as a single column.
func (c *Cursor) BumpRune() rune {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf {
		return rune(c.Bump())
	}
	r, size := utf8.DecodeRune(c.File.Content[c.Off:])
	c.Off += uint32(size) //nolint:gosec // size <= 4
	c.Col++
	return r
}

// PeekRune decodes the current rune without consuming it.
func (c *Cursor) PeekRune() (rune, uint32) {
	if c.EOF() {
		return 0, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, size := utf8.DecodeRune(c.File.Content[c.Off:])
	return r, uint32(size) //nolint:gosec // size <= 4
}

// Eat consumes the next byte when it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		_ = c.Bump()
		return true
	}
	return false
}

// Mark remembers a position so the caller can later build a span or rewind.
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// SpanFrom builds the span from a mark to the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.Off,
		End:   c.Off,
	}
}

// Reset rewinds the cursor to a mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = m.Off
	c.Line = m.Line
	c.Col = m.Col
}

// Text returns the source bytes from a mark to the current offset.
func (c *Cursor) Text(m Mark) string {
	return string(c.File.Content[m.Off:c.Off])
}
