package parser

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/source"
	"athena/internal/token"
)

// parseFunDecl parses the body of a function declaration after its name:
//
//	var : arg0 ... argn = expr        (named positional arguments)
//	var = expr                        (value binding)
//	var tupletype [-> type] = expr    (full signature)
//	var -> type = expr                (return type only)
func (p *Parser) parseFunDecl(name source.StringID) {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.OpColon:
		p.eat()

		// Zero or more named arguments become positional tuple fields.
		var fields []ast.TupleField
		for p.at(token.VarID) {
			fields = append(fields, ast.TupleField{Name: p.tok.ID})
			p.eat()
		}
		args := p.b.Types.New(ast.Type{Kind: ast.TypeTup, Span: start, Fields: fields})

		if !p.at(token.OpEquals) {
			p.error(diag.DeclExpectEquals, "Expected '=' after a function declaration.")
			p.resync()
			return
		}
		p.eat()

		if body := p.parseExpr(); body.IsValid() {
			p.pushDecl(ast.Decl{Kind: ast.DeclFun, Span: start, Name: name, Body: body, Args: args})
		} else {
			p.error(diag.DeclExpectBody, "Expected a function body expression.")
			p.resync()
		}

	case token.OpEquals:
		p.eat()
		if body := p.parseExpr(); body.IsValid() {
			p.pushDecl(ast.Decl{Kind: ast.DeclFun, Span: start, Name: name, Body: body})
		} else {
			p.error(diag.DeclExpectBody, "Expected a function body expression.")
			p.resync()
		}

	case token.BraceL:
		// The argument list is a tuple type, optionally followed by a
		// return type.
		args := p.parseTupleType()
		var ret ast.TypeID
		if p.at(token.OpArrowR) {
			p.eat()
			ret = p.parseType()
		}

		if !p.at(token.OpEquals) {
			p.error(diag.DeclExpectEquals, "Expected '=' after a function signature.")
			p.resync()
			return
		}
		p.eat()

		if body := p.parseExpr(); body.IsValid() {
			p.pushDecl(ast.Decl{Kind: ast.DeclFun, Span: start, Name: name, Body: body, Args: args, Ret: ret})
		} else {
			p.error(diag.DeclExpectBody, "Expected a function body expression.")
			p.resync()
		}

	case token.OpArrowR:
		p.eat()
		ret := p.parseType()
		if !p.at(token.OpEquals) {
			p.error(diag.DeclExpectEquals, "Expected '=' after a function signature.")
			p.resync()
			return
		}
		p.eat()

		if body := p.parseExpr(); body.IsValid() {
			p.pushDecl(ast.Decl{Kind: ast.DeclFun, Span: start, Name: name, Body: body, Ret: ret})
		} else {
			p.error(diag.DeclExpectBody, "Expected a function body expression.")
			p.resync()
		}

	default:
		p.error(diag.SynUnexpectedToken, "Expected ':' or '=' after a function name declaration.")
		p.resync()
	}
}

// parseTypeDecl parses: type simpletype = type
// The parameter names on the head become the generic binding positions of
// the alias.
func (p *Parser) parseTypeDecl() {
	start := p.tok.Span
	p.eat() // 'type'
	simple, ok := p.parseSimpleType()
	if !ok {
		p.resync()
		return
	}
	if !p.at(token.OpEquals) {
		p.error(diag.DeclExpectEquals, "expected '=' after type name.")
		p.resync()
		return
	}
	p.eat()
	if target := p.parseType(); target.IsValid() {
		p.pushDecl(ast.Decl{Kind: ast.DeclType, Span: start, Name: simple.Name, Simple: simple, Target: target})
	} else {
		p.error(diag.SynExpectType, "expected type after 'type t ='.")
		p.resync()
	}
}

// parseDataDecl parses: data simpletype = constr ('|' constr)*
func (p *Parser) parseDataDecl() {
	start := p.tok.Span
	p.eat() // 'data'
	simple, ok := p.parseSimpleType()
	if !ok {
		p.resync()
		return
	}
	if !p.at(token.OpEquals) {
		p.error(diag.DeclExpectEquals, "Expected '=' after type name.")
		p.resync()
		return
	}
	p.eat()

	var constrs []ast.Constr
	c, ok := p.parseConstr()
	if !ok {
		p.error(diag.DeclExpectConstructor, "expected at least one constructor.")
		p.resync()
		return
	}
	constrs = append(constrs, c)
	for p.at(token.OpBar) {
		p.eat()
		c, ok := p.parseConstr()
		if !ok {
			p.error(diag.DeclExpectConstructor, "expected a constructor definition.")
			p.resync()
			return
		}
		constrs = append(constrs, c)
	}

	p.pushDecl(ast.Decl{Kind: ast.DeclData, Span: start, Simple: simple, Constrs: constrs})
}

// parseConstr parses one constructor: conid atype1 ... atypen (n >= 0).
func (p *Parser) parseConstr() (ast.Constr, bool) {
	if !p.at(token.ConID) {
		p.error(diag.DeclExpectConstructor, "expected constructor name.")
		return ast.Constr{}, false
	}
	c := ast.Constr{Name: p.tok.ID, Span: p.tok.Span}
	p.eat()

	// Arguments are atomic types so that 'C Maybe Int' stays two
	// arguments rather than one application.
	for {
		t := p.tryParseType(p.parseTypeAtom)
		if !t.IsValid() {
			break
		}
		c.Types = append(c.Types, t)
	}
	return c, true
}

// parseForeignDecl parses:
//
//	foreign import [convention] "externName" localName : type
func (p *Parser) parseForeignDecl() {
	start := p.tok.Span
	p.eat() // 'foreign'
	if !p.at(token.KwImport) {
		p.error(diag.DeclExpectImport, "expected 'import'.")
		p.resync()
		return
	}
	p.eat()

	// Optional calling convention, defaulting to ccall.
	convention := ast.ConventionCCall
	if p.at(token.VarID) {
		switch p.tok.Text {
		case "ccall":
			convention = ast.ConventionCCall
		case "stdcall":
			convention = ast.ConventionStdcall
		case "cpp":
			convention = ast.ConventionCpp
		default:
			p.error(diag.DeclUnknownConvention, "unknown calling convention.")
		}
		p.eat()
	}

	var externName source.StringID
	if p.at(token.String) {
		externName = p.tok.ID
		p.eat()
	} else {
		p.error(diag.DeclExpectForeignName, "expected name string.")
	}

	var localName source.StringID
	if p.at(token.VarID) {
		localName = p.tok.ID
		p.eat()
	} else {
		p.error(diag.SynExpectIdentifier, "expected an identifier.")
	}

	if p.at(token.OpColon) {
		p.eat()
	} else {
		p.error(diag.SynUnexpectedToken, "expected ':'.")
	}

	typ := p.parseType()
	p.pushDecl(ast.Decl{
		Kind:       ast.DeclForeign,
		Span:       start,
		Name:       localName,
		ExternName: externName,
		Target:     typ,
		Convention: convention,
	})
}

// parseFixity parses: (infix|infixl|infixr|prefix) [digit] op (',' op)*
func (p *Parser) parseFixity() {
	f := ast.DefaultFixity
	switch p.tok.Kind {
	case token.KwInfix, token.KwInfixL:
		f.Kind = ast.FixityLeft
	case token.KwInfixR:
		f.Kind = ast.FixityRight
	case token.KwPrefix:
		f.Kind = ast.FixityPrefix
	default:
		return
	}
	p.eat()

	// Optional precedence; the default of 9 matches undeclared operators.
	if p.at(token.Integer) {
		if p.tok.IntVal < 0 || p.tok.IntVal > 9 {
			p.error(diag.DeclBadPrecedence, "operator precedence must be between 0 and 9.")
		} else {
			f.Prec = uint8(p.tok.IntVal)
		}
		p.eat()
	}

	// At least one operator, then any number of comma-separated ones.
	p.addFixity(f)
	for p.at(token.Comma) {
		p.eat()
		p.addFixity(f)
	}
}

func (p *Parser) addFixity(f ast.Fixity) {
	if !p.at(token.VarSym) {
		p.error(diag.DeclExpectOperator, "Expected one or more operators after a fixity declaration or ','.")
		return
	}
	if !p.mod.AddFixity(p.tok.ID, f) {
		p.error(diag.DeclDuplicateFixity, "This operator has already had its precedence defined.")
	}
	p.eat()
}

func (p *Parser) pushDecl(d ast.Decl) {
	p.mod.Declarations = append(p.mod.Declarations, p.b.Decls.New(d))
}

// parseVar parses: varid | '(' varsym ')'
func (p *Parser) parseVar() (source.StringID, bool) {
	if p.at(token.VarID) {
		id := p.tok.ID
		p.eat()
		return id, true
	}
	if p.at(token.ParenL) {
		p.eat()
		if p.at(token.VarSym) {
			id := p.tok.ID
			p.eat()
			if p.at(token.ParenR) {
				p.eat()
				return id, true
			}
		}
	}
	return source.NoStringID, false
}

func (p *Parser) tryParseVar() (source.StringID, bool) {
	return p.tryParseName(p.parseVar)
}

// parseQop parses: varsym | '`' varid '`'
func (p *Parser) parseQop() (source.StringID, bool) {
	if p.at(token.VarSym) {
		id := p.tok.ID
		p.eat()
		return id, true
	}
	if p.at(token.Grave) {
		p.eat()
		if p.at(token.VarID) {
			id := p.tok.ID
			p.eat()
			if p.at(token.Grave) {
				p.eat()
				return id, true
			}
		}
	}
	return source.NoStringID, false
}
