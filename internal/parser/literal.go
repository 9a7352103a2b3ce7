package parser

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/token"
)

// toLiteral converts a literal token into an AST literal. Reaching it with
// any other kind is a compiler bug and aborts.
func toLiteral(tok token.Token) ast.Literal {
	switch tok.Kind {
	case token.Integer:
		return ast.Literal{Kind: ast.LitInt, I: tok.IntVal}
	case token.Float:
		return ast.Literal{Kind: ast.LitFloat, F: tok.FloatVal}
	case token.Char:
		return ast.Literal{Kind: ast.LitChar, C: tok.CharVal}
	case token.String:
		return ast.Literal{Kind: ast.LitString, S: tok.ID}
	default:
		panic("parser: invalid literal kind " + tok.Kind.String())
	}
}

// parseLiteral parses a literal token; string literals may expand into
// format expressions.
func (p *Parser) parseLiteral() ast.ExprID {
	if p.at(token.String) {
		return p.parseStringLiteral()
	}
	lit := toLiteral(p.tok)
	sp := p.tok.Span
	p.eat()
	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprLit, Span: sp, Lit: lit})
}

// parseStringLiteral reassembles an interpolated string from the lexer's
// String/StartOfFormat/EndOfFormat stream. The first chunk carries no
// expression; every following chunk carries the expression that preceded
// it.
func (p *Parser) parseStringLiteral() ast.ExprID {
	str := p.tok.ID
	sp := p.tok.Span
	p.eat()

	if !p.at(token.StartOfFormat) {
		return p.b.Exprs.New(ast.Expr{
			Kind: ast.ExprLit,
			Span: sp,
			Lit:  ast.Literal{Kind: ast.LitString, S: str},
		})
	}

	chunks := []ast.FormatChunk{{Str: str}}
	for p.at(token.StartOfFormat) {
		p.eat()
		expr := p.parseInfixExpr()
		if !expr.IsValid() {
			return ast.NoExprID
		}
		if !p.at(token.EndOfFormat) {
			return p.error(diag.SynExpectEndOfFormat, "Expected end of string format after this expression.")
		}
		p.eat()
		if !p.at(token.String) {
			return p.error(diag.SynUnexpectedToken, "Expected a string chunk after a format expression.")
		}
		chunks = append(chunks, ast.FormatChunk{Str: p.tok.ID, Expr: expr})
		sp = sp.Cover(p.tok.Span)
		p.eat()
	}

	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprFormat, Span: sp, Chunks: chunks})
}
