package driver

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/lexer"
	"athena/internal/parser"
	"athena/internal/source"
)

// ParseResult is the outcome of parsing one file.
type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Builder  *ast.Builder
	Module   *ast.Module
	Bag      *diag.Bag
}

// Parse lexes and parses one file.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fs.Get(fileID), maxDiagnostics), nil
}

// ParseVirtual parses an in-memory buffer, for tests and stdin.
func ParseVirtual(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fs.Get(fileID), maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	in := source.NewInterner()
	lx := lexer.New(file, in, lexer.Options{Reporter: reporter})
	b := ast.NewBuilder(ast.Hints{})

	res := parser.ParseFile(file, lx, b, parser.Options{Reporter: reporter})

	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Interner: in,
		Builder:  b,
		Module:   res.Module,
		Bag:      bag,
	}
}
