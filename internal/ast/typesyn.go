package ast

import (
	"athena/internal/source"
)

// TypeKind selects the variant of a syntactic type node.
type TypeKind uint8

const (
	// TypeUnit is the empty tuple type {}.
	TypeUnit TypeKind = iota
	// TypeCon is a named (constructor) type reference.
	TypeCon
	// TypeGen is a lower-case generic parameter reference.
	TypeGen
	// TypeTup is a tuple type { field, ... }.
	TypeTup
	// TypePtr is a pointer to the inner type.
	TypePtr
	// TypeFun is a function type with tuple parameters and a return type.
	TypeFun
	// TypeApp applies a base type to type arguments.
	TypeApp
)

// TupleField is one field of a tuple type: an optional name, a type, and an
// optional default value. A field with a name and no type refers to a
// generic parameter.
type TupleField struct {
	Type    TypeID
	Name    source.StringID
	Default ExprID
}

// Type is a syntactic type node. The active payload depends on Kind:
// Con/Gen use Con; Ptr uses Inner; Tup and Fun use Fields (+ Ret for Fun);
// App uses Base and Args.
type Type struct {
	Kind TypeKind
	Span source.Span

	Con    source.StringID
	Inner  TypeID
	Fields []TupleField
	Ret    TypeID
	Base   TypeID
	Args   []TypeID
}

// SimpleType is a declared type head: the type name plus its ordered
// generic parameter names. Parameter position is the binding index of the
// generic.
type SimpleType struct {
	Name   source.StringID
	Params []source.StringID
	Span   source.Span
}

// Types is the arena of syntactic type nodes.
type Types struct {
	Arena *Arena[Type]
}

func NewTypes(capHint uint) *Types {
	return &Types{Arena: NewArena[Type](capHint)}
}

func (t *Types) New(node Type) TypeID {
	return TypeID(t.Arena.Allocate(node))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}
