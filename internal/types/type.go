package types

import (
	"athena/internal/ast"
	"athena/internal/source"
)

// Type is one node of the resolved type graph. Every node carries a
// resolved flag and a canonical pointer: for every kind but Alias the
// canonical points at the node itself; a resolved alias points through to
// its target.
//
// Nodes are allocated through a Table and identified by pointer. Tuples,
// pointers, and lvalues are hash-consed: structural equality collapses to
// pointer identity.
type Type struct {
	Kind      Kind
	ID        uint32 // stable per-table sequence number, used for hashing
	Resolved  bool
	Canonical *Type

	Prim    PrimKind
	Inner   *Type   // KindPtr, KindLvalue
	Fields  []Field // KindTuple
	Alias   *AliasData
	Variant *VariantData
	Gen     *GenData
	App     *AppData
	Fun     *FunData
}

// Field is one slot of a resolved tuple. Two tuples with the same field
// types but different names are distinct types.
type Field struct {
	Name     source.StringID
	Index    uint32
	Type     *Type
	Parent   *Type
	Default  ast.ExprID
	Resolved bool
}

// AliasData backs a KindAlias node. Decl is non-nil while the alias is
// unresolved; resolveAlias nulls it and fills Canonical.
type AliasData struct {
	Decl     *AliasDecl
	Generics uint32
}

// AliasDecl is the unresolved state of an alias: the syntactic target plus
// the scope and type head it must resolve under.
type AliasDecl struct {
	Target ast.TypeID
	Simple *ast.SimpleType
	Scope  *Scope
}

// VariantData backs a KindVariant node.
type VariantData struct {
	Decl         *VariantDecl
	Constructors []*VarConstructor
	Generics     uint32
}

// VariantDecl is the unresolved state of a variant.
type VariantDecl struct {
	Simple *ast.SimpleType
	Scope  *Scope
}

// VarConstructor is one alternative of a variant type. DataType aggregates
// the contents: Unit for none, the single content, or their tuple.
type VarConstructor struct {
	Name     source.StringID
	Parent   *Type
	Contents []*Type
	DataType *Type
	Decl     *ConstrDecl
}

// ConstrDecl is the unresolved state of a constructor: its syntactic
// argument types.
type ConstrDecl struct {
	Types []ast.TypeID
}

// GenData backs a KindGen node: a reference to the index-th parameter of
// the enclosing type head.
type GenData struct {
	Index          uint32
	Constraints    []Constraint
	TypeConstraint *Type
}

// Constraint is a named requirement attached to a generic.
type Constraint struct {
	Name source.StringID
}

// AppData backs a KindApp node: an application of a generic parameter to
// arguments that cannot be evaluated until instantiation. Apps keeps the
// syntactic argument list.
type AppData struct {
	BaseIndex uint32
	Apps      []ast.TypeID
}

// FunData backs a KindFun node.
type FunData struct {
	Args []*Type
	Ret  *Type
}

// IsGeneric reports whether the type is a generic parameter reference.
func (t *Type) IsGeneric() bool { return t.Kind == KindGen }

// IsAlias reports whether the type is an alias.
func (t *Type) IsAlias() bool { return t.Kind == KindAlias }

// IsVariant reports whether the type is a variant.
func (t *Type) IsVariant() bool { return t.Kind == KindVariant }

// Generics returns the number of generic parameters for aliases and
// variants, and 0 otherwise.
func (t *Type) Generics() uint32 {
	switch t.Kind {
	case KindAlias:
		return t.Alias.Generics
	case KindVariant:
		return t.Variant.Generics
	default:
		return 0
	}
}
