package parser

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/lexer"
	"athena/internal/source"
	"athena/internal/token"
)

// eat consumes the current token and advances the lookahead.
func (p *Parser) eat() {
	p.tok = p.lx.Next()
}

// at reports whether the lookahead has the given kind.
func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

// error reports a syntax diagnostic at the lookahead token and returns the
// zero expression for use in tail positions. Inside tryParse attempts the
// report is suppressed: a failed attempt must leave no trace.
func (p *Parser) error(code diag.Code, msg string) ast.ExprID {
	p.errs++
	if p.quiet > 0 {
		return ast.NoExprID
	}
	if p.opts.Reporter != nil && (p.opts.MaxErrors == 0 || p.errs <= p.opts.MaxErrors) {
		p.opts.Reporter.Report(code, diag.SevError, p.tok.Span, msg, nil)
	}
	return ast.NoExprID
}

// save captures parser and lexer state for backtracking.
type checkpoint struct {
	lex  lexer.Snapshot
	tok  token.Token
	errs uint
}

func (p *Parser) save() checkpoint {
	return checkpoint{lex: p.lx.Save(), tok: p.tok, errs: p.errs}
}

func (p *Parser) restore(c checkpoint) {
	p.lx.Restore(c.lex)
	p.tok = c.tok
	p.errs = c.errs
}

// tryParseExpr runs f; when it yields no node the lexer and parser rewind
// exactly. This is the only form of backtracking.
func (p *Parser) tryParseExpr(f func() ast.ExprID) ast.ExprID {
	c := p.save()
	p.quiet++
	v := f()
	p.quiet--
	if !v.IsValid() {
		p.restore(c)
	}
	return v
}

// tryParseType is tryParseExpr for type productions.
func (p *Parser) tryParseType(f func() ast.TypeID) ast.TypeID {
	c := p.save()
	p.quiet++
	v := f()
	p.quiet--
	if !v.IsValid() {
		p.restore(c)
	}
	return v
}

// tryParseName is tryParseExpr for name productions (parseVar, parseQop).
func (p *Parser) tryParseName(f func() (source.StringID, bool)) (source.StringID, bool) {
	c := p.save()
	p.quiet++
	v, ok := f()
	p.quiet--
	if !ok {
		p.restore(c)
	}
	return v, ok
}

// indentLevel is an open layout block. The lexer closes blocks itself on
// dedent; end() only trims levels that are still open (single-line blocks,
// blocks cut short by errors).
type indentLevel struct {
	p     *Parser
	depth int
}

// openLevel starts a layout block at the current token's column.
func (p *Parser) openLevel() indentLevel {
	p.lx.PushIndent(p.tok.Col)
	return indentLevel{p: p, depth: p.lx.BlockDepth()}
}

func (l indentLevel) end() {
	l.p.lx.TrimIndents(l.depth - 1)
}
