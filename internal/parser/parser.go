package parser

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/lexer"
	"athena/internal/source"
	"athena/internal/token"
)

// Options configures a parse.
type Options struct {
	// MaxErrors bounds reported syntax errors; 0 means unbounded.
	MaxErrors uint
	// Reporter receives diagnostics. Nil drops them.
	Reporter diag.Reporter
}

// Result is the outcome of parsing one file.
type Result struct {
	Module *ast.Module
	Errors uint
}

// Parser is the per-file recursive-descent parser. It holds a single token
// of lookahead against the layout lexer and allocates every node through the
// builder's arenas.
type Parser struct {
	lx   *lexer.Lexer
	b    *ast.Builder
	mod  *ast.Module
	tok  token.Token
	opts Options

	errs  uint
	quiet int // inside tryParse: count errors, do not report
}

// ParseFile parses one source file into a Module. The lexer must be fresh.
func ParseFile(file *source.File, lx *lexer.Lexer, b *ast.Builder, opts Options) Result {
	p := &Parser{
		lx:   lx,
		b:    b,
		mod:  ast.NewModule(file.ID),
		opts: opts,
	}
	p.tok = lx.Next()
	p.parseModule()
	return Result{Module: p.mod, Errors: p.errs}
}

// parseModule reads declarations separated by statement ends until the
// module block closes.
func (p *Parser) parseModule() {
	if p.tok.Kind == token.EOF {
		return
	}
	level := p.openLevel()
	p.parseDecl()
	for p.tok.Kind == token.EndOfStmt {
		p.eat()
		if p.tok.Kind == token.EndOfBlock || p.tok.Kind == token.EOF {
			break
		}
		p.parseDecl()
	}

	if p.tok.Kind != token.EndOfBlock {
		p.error(diag.SynExpectEndOfBlock, "Expected end of statement block.")
	}

	level.end()
	p.eat()
}

// parseDecl dispatches one top-level declaration and recovers to the next
// statement boundary on failure.
func (p *Parser) parseDecl() {
	switch p.tok.Kind {
	case token.KwType:
		p.parseTypeDecl()
	case token.KwData:
		p.parseDataDecl()
	case token.KwForeign:
		p.parseForeignDecl()
	case token.KwInfix, token.KwInfixL, token.KwInfixR, token.KwPrefix:
		p.parseFixity()
	default:
		if name, ok := p.tryParseVar(); ok {
			p.parseFunDecl(name)
		} else {
			p.error(diag.SynUnexpectedToken, "Expected a declaration.")
			p.resync()
		}
	}
}

// resync advances to the next statement boundary so the rest of the file
// still parses.
func (p *Parser) resync() {
	for p.tok.Kind != token.EndOfStmt &&
		p.tok.Kind != token.EndOfBlock &&
		p.tok.Kind != token.EOF {
		p.eat()
	}
}
