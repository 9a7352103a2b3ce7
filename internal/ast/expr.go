package ast

import (
	"athena/internal/source"
)

// ExprKind selects the variant of an expression node.
type ExprKind uint8

const (
	ExprLit ExprKind = iota
	ExprVar
	ExprPrefix
	ExprInfix
	ExprApp
	ExprField
	ExprConstruct
	ExprNested
	ExprIf
	ExprWhile
	ExprCase
	ExprMulti
	ExprDecl
	ExprAssign
	ExprCoerce
	ExprFormat
	ExprUnit
	ExprLam
)

// ConstructField is one field of a tuple construction: an optional name and
// the value expression.
type ConstructField struct {
	Name  source.StringID
	Value ExprID
}

// FormatChunk pairs a fixed string chunk with the expression that preceded
// it. The first chunk of a format expression carries no expression.
type FormatChunk struct {
	Str  source.StringID
	Expr ExprID
}

// CaseAlt is one alternative of a case expression.
type CaseAlt struct {
	Pat  PatID
	Body ExprID
}

// Expr is an expression node. The active payload depends on Kind.
type Expr struct {
	Kind ExprKind
	Span source.Span

	Lit    Literal         // ExprLit
	Name   source.StringID // ExprVar, ExprDecl
	Op     source.StringID // ExprPrefix, ExprInfix
	L      ExprID          // ExprInfix, ExprField, ExprAssign lhs
	R      ExprID          // ExprInfix, ExprField, ExprAssign rhs
	Inner  ExprID          // ExprPrefix arg, ExprNested, ExprCoerce, ExprDecl init
	Callee ExprID          // ExprApp
	Args   []ExprID        // ExprApp, ExprMulti
	Type   TypeID          // ExprCoerce, ExprConstruct
	Fields []ConstructField
	Cond   ExprID // ExprIf, ExprWhile
	Then   ExprID // ExprIf then, ExprWhile body
	Else   ExprID // ExprIf (NoExprID when absent)
	Alts   []CaseAlt
	Chunks []FormatChunk
	Params []source.StringID // ExprLam
	Const  bool              // ExprDecl
}

// Exprs is the arena of expression nodes.
type Exprs struct {
	Arena *Arena[Expr]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{Arena: NewArena[Expr](capHint)}
}

func (e *Exprs) New(node Expr) ExprID {
	return ExprID(e.Arena.Allocate(node))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}
