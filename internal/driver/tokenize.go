// Package driver wires the front-end phases together for the CLI: file
// loading, tokenization, parsing, resolution, directory sweeps, and the
// result cache.
package driver

import (
	"athena/internal/diag"
	"athena/internal/lexer"
	"athena/internal/source"
	"athena/internal/token"
)

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Tokens   []token.Token
	Bag      *diag.Bag
}

// Tokenize lexes one file to EOF. A root layout block is opened at the
// first token so statement and block terminators appear the way the parser
// would see them.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	in := source.NewInterner()
	lx := lexer.New(file, in, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	first := lx.Next()
	tokens = append(tokens, first)
	if first.Kind != token.EOF {
		lx.PushIndent(first.Col)
		for {
			tok := lx.Next()
			tokens = append(tokens, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
	}

	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Interner: in,
		Tokens:   tokens,
		Bag:      bag,
	}, nil
}
