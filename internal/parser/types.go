package parser

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/token"
)

// parseType parses: '*' type | ConID | VarID | tupletype ('->' type)?
func (p *Parser) parseType() ast.TypeID {
	switch {
	case p.at(token.VarSym) && p.tok.Text == "*":
		// Pointer sigil.
		start := p.tok.Span
		p.eat()
		inner := p.parseType()
		if !inner.IsValid() {
			return ast.NoTypeID
		}
		node := *p.b.Types.Get(inner)
		node.Kind = ast.TypePtr
		node.Inner = inner
		node.Span = start.Cover(node.Span)
		return p.b.Types.New(node)

	case p.at(token.ConID):
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		base := p.b.Types.New(ast.Type{Kind: ast.TypeCon, Span: sp, Con: id})
		return p.parseTypeApps(base)

	case p.at(token.VarID):
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		return p.b.Types.New(ast.Type{Kind: ast.TypeGen, Span: sp, Con: id})

	case p.at(token.BraceL):
		tup := p.parseTupleType()
		if !tup.IsValid() {
			return ast.NoTypeID
		}
		if p.at(token.OpArrowR) {
			p.eat()
			ret := p.parseType()
			node := p.b.Types.Get(tup)
			return p.b.Types.New(ast.Type{
				Kind:   ast.TypeFun,
				Span:   node.Span,
				Fields: node.Fields,
				Ret:    ret,
			})
		}
		return tup
	}

	p.error(diag.SynExpectType, "Expected a type.")
	return ast.NoTypeID
}

// parseTypeApps parses type arguments applied to a named base type, e.g.
// 'Pair Int Bool'. Arguments are atomic types; application does not nest to
// the right.
func (p *Parser) parseTypeApps(base ast.TypeID) ast.TypeID {
	var args []ast.TypeID
	for {
		arg := p.tryParseType(p.parseTypeAtom)
		if !arg.IsValid() {
			break
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return base
	}
	node := p.b.Types.Get(base)
	return p.b.Types.New(ast.Type{
		Kind: ast.TypeApp,
		Span: node.Span,
		Base: base,
		Args: args,
	})
}

// parseTypeAtom parses a type without consuming application arguments.
func (p *Parser) parseTypeAtom() ast.TypeID {
	switch {
	case p.at(token.VarSym) && p.tok.Text == "*":
		start := p.tok.Span
		p.eat()
		inner := p.parseTypeAtom()
		if !inner.IsValid() {
			return ast.NoTypeID
		}
		node := *p.b.Types.Get(inner)
		node.Kind = ast.TypePtr
		node.Inner = inner
		node.Span = start.Cover(node.Span)
		return p.b.Types.New(node)

	case p.at(token.ConID):
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		return p.b.Types.New(ast.Type{Kind: ast.TypeCon, Span: sp, Con: id})
	case p.at(token.VarID):
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		return p.b.Types.New(ast.Type{Kind: ast.TypeGen, Span: sp, Con: id})
	case p.at(token.BraceL):
		return p.parseTupleType()
	}
	p.error(diag.SynExpectType, "Expected a type.")
	return ast.NoTypeID
}

// parseSimpleType parses a declared type head: ConID VarID*
func (p *Parser) parseSimpleType() (ast.SimpleType, bool) {
	if !p.at(token.ConID) {
		p.error(diag.DeclExpectTypeName, "expected type name.")
		return ast.SimpleType{}, false
	}
	st := ast.SimpleType{Name: p.tok.ID, Span: p.tok.Span}
	p.eat()
	for p.at(token.VarID) {
		st.Params = append(st.Params, p.tok.ID)
		p.eat()
	}
	return st, true
}

// parseTupleType parses: '{' (tupfield (',' tupfield)*)? '}'
// An empty brace pair is the unit type.
func (p *Parser) parseTupleType() ast.TypeID {
	if !p.at(token.BraceL) {
		p.error(diag.SynUnclosedBrace, "Expected '{'.")
		return ast.NoTypeID
	}
	start := p.tok.Span
	p.eat()

	if p.at(token.BraceR) {
		sp := start.Cover(p.tok.Span)
		p.eat()
		return p.b.Types.New(ast.Type{Kind: ast.TypeUnit, Span: sp})
	}

	var fields []ast.TupleField
	f, ok := p.parseTupleField()
	if !ok {
		p.error(diag.SynExpectType, "Expected one or more tuple fields.")
		return ast.NoTypeID
	}
	fields = append(fields, f)

	for p.at(token.Comma) {
		p.eat()
		f, ok := p.parseTupleField()
		if !ok {
			return ast.NoTypeID
		}
		fields = append(fields, f)
	}

	if !p.at(token.BraceR) {
		p.error(diag.SynUnclosedBrace, "Expected '}'.")
		return ast.NoTypeID
	}
	sp := start.Cover(p.tok.Span)
	p.eat()
	return p.b.Types.New(ast.Type{Kind: ast.TypeTup, Span: sp, Fields: fields})
}

// parseTupleField parses one type-tuple field:
//
//	varid : type          (named field)
//	varid [= typedexpr]   (generic reference or named default)
//	type  [= typedexpr]
func (p *Parser) parseTupleField() (ast.TupleField, bool) {
	var field ast.TupleField

	// A leading varid is either the field name or a generic type,
	// depending on what follows.
	if p.at(token.VarID) {
		id := p.tok.ID
		sp := p.tok.Span
		p.eat()
		switch {
		case p.at(token.OpColon):
			p.eat()
			field.Type = p.parseType()
			field.Name = id
		case p.at(token.OpEquals):
			field.Name = id
		default:
			field.Type = p.b.Types.New(ast.Type{Kind: ast.TypeGen, Span: sp, Con: id})
		}
	} else {
		field.Type = p.parseType()
	}

	if p.at(token.OpEquals) {
		p.eat()
		field.Default = p.parseTypedExpr()
	}

	if !field.Type.IsValid() && !field.Default.IsValid() {
		return ast.TupleField{}, false
	}
	return field, true
}
