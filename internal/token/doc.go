// Package token defines the lexical token kinds of the athena front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly for tokens that came from the source;
//     synthetic tokens (EndOfStmt, EndOfBlock) carry an empty span at the
//     position that triggered them.
//   - Identifier, constructor, operator, and string payloads are interned by
//     the lexer; Token.ID is the interned handle.
//   - Reserved operators (= | $ -> . :) have their own kinds and never
//     appear as VarSym.
package token
