package parser

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/source"
	"athena/internal/token"
)

// parseExpr parses a statement sequence inside its own layout block. A
// single expression stays as-is; two or more become a Multi.
func (p *Parser) parseExpr() ast.ExprID {
	level := p.openLevel()
	expr := p.parseTypedExpr()
	if !expr.IsValid() {
		level.end()
		return p.error(diag.SynExpectExpression, "Expected an expression.")
	}

	if !p.at(token.EndOfStmt) {
		level.end()
		if p.at(token.EndOfBlock) {
			p.eat()
		}
		return expr
	}

	stmts := []ast.ExprID{expr}
	span := p.b.Exprs.Get(expr).Span
	for p.at(token.EndOfStmt) {
		p.eat()
		expr = p.parseTypedExpr()
		if !expr.IsValid() {
			level.end()
			return p.error(diag.SynExpectExpression, "Expected an expression.")
		}
		stmts = append(stmts, expr)
		span = span.Cover(p.b.Exprs.Get(expr).Span)
	}

	level.end()
	if p.at(token.EndOfBlock) {
		p.eat()
	}
	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprMulti, Span: span, Args: stmts})
}

// parseTypedExpr parses: infixexpr (':' type)?
func (p *Parser) parseTypedExpr() ast.ExprID {
	expr := p.parseInfixExpr()
	if !expr.IsValid() {
		return ast.NoExprID
	}

	if p.at(token.OpColon) {
		p.eat()
		typ := p.parseType()
		if !typ.IsValid() {
			return ast.NoExprID
		}
		span := p.b.Exprs.Get(expr).Span
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprCoerce, Span: span, Inner: expr, Type: typ})
	}
	return expr
}

// parseInfixExpr parses assignment, the '$' application shortcut, and
// binary operator application. Operator chains come out right-leaning; the
// resolver reshapes them from the fixity table.
func (p *Parser) parseInfixExpr() ast.ExprID {
	lhs := p.parsePrefixExpr()
	if !lhs.IsValid() {
		return p.error(diag.SynExpectExpression, "Expected an expression.")
	}
	span := p.b.Exprs.Get(lhs).Span

	switch {
	case p.at(token.OpEquals):
		p.eat()
		value := p.parseInfixExpr()
		if !value.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected an expression after assignment.")
		}
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprAssign, Span: span, L: lhs, R: value})

	case p.at(token.OpDollar):
		p.eat()
		value := p.parseInfixExpr()
		if !value.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected a right-hand side for a binary operator.")
		}
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprApp, Span: span, Callee: lhs, Args: []ast.ExprID{value}})
	}

	if op, ok := p.tryParseName(p.parseQop); ok {
		rhs := p.parseInfixExpr()
		if !rhs.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected a right-hand side for a binary operator.")
		}
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprInfix, Span: span, Op: op, L: lhs, R: rhs})
	}

	return lhs
}

// parsePrefixExpr parses: varsym leftexpr | leftexpr
func (p *Parser) parsePrefixExpr() ast.ExprID {
	if p.at(token.VarSym) && p.tok.Text != "\\" {
		op := p.tok.ID
		span := p.tok.Span
		p.eat()
		arg := p.parseLeftExpr()
		if !arg.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected expression after a prefix operator.")
		}
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprPrefix, Span: span, Op: op, Inner: arg})
	}
	return p.parseLeftExpr()
}

// parseLeftExpr parses lambda, let/var, if, case, while, or a call chain.
func (p *Parser) parseLeftExpr() ast.ExprID {
	switch {
	case p.at(token.VarSym) && p.tok.Text == "\\":
		return p.parseLambda()

	case p.at(token.KwLet):
		p.eat()
		return p.parseVarDeclExpr(true)

	case p.at(token.KwVar):
		p.eat()
		return p.parseVarDeclExpr(false)

	case p.at(token.KwCase):
		return p.parseCaseExpr()

	case p.at(token.KwIf):
		span := p.tok.Span
		p.eat()
		cond := p.parseInfixExpr()
		if !cond.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected an expression after 'if'.")
		}

		// Allow then/else at the same indentation as the if itself.
		if p.at(token.EndOfStmt) {
			p.eat()
		}

		if !p.at(token.KwThen) {
			return p.error(diag.SynExpectThen, "Expected 'then' after if-expression.")
		}
		p.eat()
		then := p.parseExpr()
		if !then.IsValid() {
			return ast.NoExprID
		}

		// else is optional.
		els := p.tryParseExpr(p.parseElse)
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprIf, Span: span, Cond: cond, Then: then, Else: els})

	case p.at(token.KwWhile):
		span := p.tok.Span
		p.eat()
		cond := p.parseInfixExpr()
		if !cond.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected expression after 'while'.")
		}
		if !p.at(token.KwDo) {
			return p.error(diag.SynExpectDo, "Expected 'do' after while-expression.")
		}
		p.eat()
		body := p.parseExpr()
		if !body.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected expression after 'do'.")
		}
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprWhile, Span: span, Cond: cond, Then: body})

	default:
		return p.parseCallExpr()
	}
}

// parseLambda parses: '\' varid+ '->' expr
func (p *Parser) parseLambda() ast.ExprID {
	span := p.tok.Span
	p.eat() // backslash

	var params []source.StringID
	for p.at(token.VarID) {
		params = append(params, p.tok.ID)
		p.eat()
	}
	if len(params) == 0 {
		return p.error(diag.SynExpectIdentifier, "Expected parameters after '\\'.")
	}
	if !p.at(token.OpArrowR) {
		return p.error(diag.SynExpectArrow, "Expected '->' after lambda parameters.")
	}
	p.eat()

	body := p.parseExpr()
	if !body.IsValid() {
		return ast.NoExprID
	}
	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprLam, Span: span, Params: params, Then: body})
}

// parseCaseExpr parses: 'case' expr 'of' alts, with the alternatives in
// their own layout block.
func (p *Parser) parseCaseExpr() ast.ExprID {
	span := p.tok.Span
	p.eat() // 'case'

	scrut := p.parseInfixExpr()
	if !scrut.IsValid() {
		return p.error(diag.SynExpectExpression, "Expected an expression after 'case'.")
	}
	if !p.at(token.KwOf) {
		return p.error(diag.SynExpectOf, "Expected 'of' after case-expression.")
	}
	p.eat()

	level := p.openLevel()
	var alts []ast.CaseAlt
	alt, ok := p.parseCaseAlt()
	if !ok {
		level.end()
		return ast.NoExprID
	}
	alts = append(alts, alt)
	for p.at(token.EndOfStmt) {
		p.eat()
		alt, ok := p.parseCaseAlt()
		if !ok {
			level.end()
			return ast.NoExprID
		}
		alts = append(alts, alt)
	}
	level.end()
	if p.at(token.EndOfBlock) {
		p.eat()
	}

	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprCase, Span: span, Cond: scrut, Alts: alts})
}

// parseCaseAlt parses one alternative: pattern '->' expr
func (p *Parser) parseCaseAlt() (ast.CaseAlt, bool) {
	pat := p.parsePattern()
	if !pat.IsValid() {
		return ast.CaseAlt{}, false
	}
	if !p.at(token.OpArrowR) {
		p.error(diag.SynExpectArrow, "Expected '->' after a case pattern.")
		return ast.CaseAlt{}, false
	}
	p.eat()
	body := p.parseExpr()
	if !body.IsValid() {
		return ast.CaseAlt{}, false
	}
	return ast.CaseAlt{Pat: pat, Body: body}, true
}

// parsePattern parses a literal, a variable binding, or a constructor with
// variable bindings.
func (p *Parser) parsePattern() ast.PatID {
	switch {
	case p.tok.IsLiteral():
		lit := toLiteral(p.tok)
		sp := p.tok.Span
		p.eat()
		return p.b.Pats.New(ast.Pat{Kind: ast.PatLit, Span: sp, Lit: lit})

	case p.at(token.VarID):
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		return p.b.Pats.New(ast.Pat{Kind: ast.PatVar, Span: sp, Name: id})

	case p.at(token.ConID):
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		pat := ast.Pat{Kind: ast.PatCon, Span: sp, Name: id}
		for p.at(token.VarID) {
			pat.Args = append(pat.Args, p.tok.ID)
			p.eat()
		}
		return p.b.Pats.New(pat)
	}
	p.error(diag.SynUnexpectedToken, "Expected a pattern.")
	return ast.NoPatID
}

// parseElse parses the optional else arm, permitting a statement end before
// the keyword.
func (p *Parser) parseElse() ast.ExprID {
	if p.at(token.EndOfStmt) {
		p.eat()
	}
	if !p.at(token.KwElse) {
		return ast.NoExprID
	}
	p.eat()
	return p.parseExpr()
}

// parseCallExpr parses function application: a callee followed by as many
// argument expressions as will parse.
func (p *Parser) parseCallExpr() ast.ExprID {
	callee := p.parseAppExpr()
	if !callee.IsValid() {
		return p.error(diag.SynExpectExpression, "Expected an expression.")
	}

	arg := p.tryParseExpr(p.parseAppExpr)
	if !arg.IsValid() {
		return callee
	}
	args := []ast.ExprID{arg}
	for {
		arg = p.tryParseExpr(p.parseAppExpr)
		if !arg.IsValid() {
			break
		}
		args = append(args, arg)
	}
	span := p.b.Exprs.Get(callee).Span
	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprApp, Span: span, Callee: callee, Args: args})
}

// parseAppExpr parses: baseexpr ('.' baseexpr)?
func (p *Parser) parseAppExpr() ast.ExprID {
	e := p.parseBaseExpr()
	if !e.IsValid() {
		return ast.NoExprID
	}

	if p.at(token.OpDot) {
		p.eat()
		rhs := p.parseBaseExpr()
		if !rhs.IsValid() {
			return ast.NoExprID
		}
		span := p.b.Exprs.Get(e).Span
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprField, Span: span, L: e, R: rhs})
	}
	return e
}

// parseBaseExpr parses a literal, parenthesized expression, tuple
// construction, constructor, or variable.
func (p *Parser) parseBaseExpr() ast.ExprID {
	switch {
	case p.tok.IsLiteral():
		return p.parseLiteral()

	case p.at(token.ParenL):
		p.eat()
		expr := p.parseExpr()
		if !expr.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected expression after '('.")
		}
		if !p.at(token.ParenR) {
			return p.error(diag.SynUnclosedParen, "Expected ')' after '(' and an expression.")
		}
		p.eat()
		// Parenthesized expressions keep a separate node to preserve
		// ordering constraints.
		span := p.b.Exprs.Get(expr).Span
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprNested, Span: span, Inner: expr})

	case p.at(token.BraceL):
		return p.parseTupleConstruct()

	case p.at(token.ConID):
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		typ := p.b.Types.New(ast.Type{Kind: ast.TypeCon, Span: sp, Con: id})
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprConstruct, Span: sp, Type: typ})
	}

	varSpan := p.tok.Span
	if name, ok := p.tryParseVar(); ok {
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprVar, Span: varSpan, Name: name})
	}
	return p.error(diag.SynExpectExpression, "Expected an expression.")
}

// parseVarDeclExpr parses one or more let/var declarations in their own
// layout block.
func (p *Parser) parseVarDeclExpr(constant bool) ast.ExprID {
	level := p.openLevel()

	expr := p.parseDeclExpr(constant)
	if !expr.IsValid() {
		level.end()
		return p.error(diag.SynExpectExpression, "Expected declaration after 'var' or 'let'.")
	}

	if !p.at(token.EndOfStmt) {
		level.end()
		if p.at(token.EndOfBlock) {
			p.eat()
		}
		return expr
	}

	stmts := []ast.ExprID{expr}
	span := p.b.Exprs.Get(expr).Span
	for p.at(token.EndOfStmt) {
		p.eat()
		expr = p.parseDeclExpr(constant)
		if !expr.IsValid() {
			level.end()
			return p.error(diag.SynExpectExpression, "Expected declaration after 'var' or 'let'.")
		}
		stmts = append(stmts, expr)
		span = span.Cover(p.b.Exprs.Get(expr).Span)
	}

	level.end()
	if p.at(token.EndOfBlock) {
		p.eat()
	}
	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprMulti, Span: span, Args: stmts})
}

// parseDeclExpr parses: varid ['=' typedexpr]
func (p *Parser) parseDeclExpr(constant bool) ast.ExprID {
	if !p.at(token.VarID) {
		return p.error(diag.SynExpectIdentifier, "Expected identifier.")
	}
	id := p.tok.ID
	sp := p.tok.Span
	p.eat()

	if p.at(token.OpEquals) {
		p.eat()
		init := p.parseTypedExpr()
		if !init.IsValid() {
			return p.error(diag.SynExpectExpression, "Expected expression.")
		}
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprDecl, Span: sp, Name: id, Inner: init, Const: constant})
	}
	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprDecl, Span: sp, Name: id, Const: constant})
}

// parseTupleConstruct parses: '{' field (',' field)* '}' | '{' '}'
func (p *Parser) parseTupleConstruct() ast.ExprID {
	start := p.tok.Span
	p.eat() // '{'

	if p.at(token.BraceR) {
		sp := start.Cover(p.tok.Span)
		p.eat()
		return p.b.Exprs.New(ast.Expr{Kind: ast.ExprUnit, Span: sp})
	}

	var fields []ast.ConstructField
	f, ok := p.parseTupleConstructField()
	if !ok {
		return p.error(diag.SynExpectExpression, "Expected one or more tuple fields.")
	}
	fields = append(fields, f)

	for p.at(token.Comma) {
		p.eat()
		f, ok := p.parseTupleConstructField()
		if !ok {
			return ast.NoExprID
		}
		fields = append(fields, f)
	}

	if !p.at(token.BraceR) {
		return p.error(diag.SynUnclosedBrace, "Expected '}'.")
	}
	sp := start.Cover(p.tok.Span)
	p.eat()
	return p.b.Exprs.New(ast.Expr{Kind: ast.ExprConstruct, Span: sp, Fields: fields})
}

// parseTupleConstructField parses: typedexpr | varid '=' typedexpr
func (p *Parser) parseTupleConstructField() (ast.ConstructField, bool) {
	var field ast.ConstructField

	if p.at(token.VarID) {
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		if p.at(token.OpEquals) {
			field.Name = id
			p.eat()
			field.Value = p.parseTypedExpr()
		} else {
			field.Value = p.b.Exprs.New(ast.Expr{Kind: ast.ExprVar, Span: sp, Name: id})
		}
	} else {
		field.Value = p.parseTypedExpr()
	}

	if !field.Value.IsValid() {
		return ast.ConstructField{}, false
	}
	return field, true
}
