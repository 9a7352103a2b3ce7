package ast

import (
	"athena/internal/source"
)

// DeclKind selects the variant of a top-level declaration.
type DeclKind uint8

const (
	DeclFun DeclKind = iota
	DeclData
	DeclType
	DeclForeign
)

// ForeignConvention is the calling convention of a foreign import.
type ForeignConvention uint8

const (
	ConventionCCall ForeignConvention = iota
	ConventionStdcall
	ConventionCpp
)

func (c ForeignConvention) String() string {
	switch c {
	case ConventionCCall:
		return "ccall"
	case ConventionStdcall:
		return "stdcall"
	case ConventionCpp:
		return "cpp"
	}
	return "unknown"
}

// Constr is one constructor of a data declaration: a name and zero or more
// argument types.
type Constr struct {
	Name  source.StringID
	Types []TypeID
	Span  source.Span
}

// Decl is a top-level declaration. Payload by Kind:
//   - DeclFun: Name, Body, Args (a TypeTup node, NoTypeID when the function
//     is declared without parentheses), Ret (NoTypeID when omitted).
//   - DeclData: Simple, Constrs.
//   - DeclType: Name, Target.
//   - DeclForeign: ExternName, Name, Target, Convention.
type Decl struct {
	Kind DeclKind
	Span source.Span

	Name    source.StringID
	Body    ExprID
	Args    TypeID
	Ret     TypeID
	Simple  SimpleType
	Constrs []Constr
	Target  TypeID

	ExternName source.StringID
	Convention ForeignConvention
}

// Decls is the arena of declaration nodes.
type Decls struct {
	Arena *Arena[Decl]
}

func NewDecls(capHint uint) *Decls {
	return &Decls{Arena: NewArena[Decl](capHint)}
}

func (d *Decls) New(node Decl) DeclID {
	return DeclID(d.Arena.Allocate(node))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}
