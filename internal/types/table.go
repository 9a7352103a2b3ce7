package types

import (
	"athena/internal/source"
)

// Table owns every resolved type of a compilation: singletons, primitives,
// and the hash-cons tables for tuples, pointers, and lvalues. Types are
// never freed individually; the table is discarded with the module.
type Table struct {
	nextID uint32

	unit    *Type
	unknown *Type
	boolT   *Type

	prims   map[PrimKind]*Type
	primMap map[source.StringID]*Type

	tuples  map[uint64]*Type
	ptrs    map[*Type]*Type
	lvalues map[*Type]*Type
}

// NewTable seeds a table with the built-in types. Primitive names are
// interned into in so that resolution can look them up by StringID.
func NewTable(in *source.Interner) *Table {
	t := &Table{
		prims:   make(map[PrimKind]*Type, 4),
		primMap: make(map[source.StringID]*Type, 8),
		tuples:  make(map[uint64]*Type, 32),
		ptrs:    make(map[*Type]*Type, 16),
		lvalues: make(map[*Type]*Type, 16),
	}

	t.unit = t.New(KindUnit)
	t.unit.Resolved = true
	t.unknown = t.New(KindUnknown)
	t.unknown.Resolved = true
	t.boolT = t.New(KindBool)
	t.boolT.Resolved = true

	for _, p := range []PrimKind{PrimInt, PrimFloat, PrimChar, PrimString} {
		n := t.New(KindPrim)
		n.Prim = p
		n.Resolved = true
		t.prims[p] = n
		t.primMap[in.Intern(p.String())] = n
	}
	t.primMap[in.Intern("Bool")] = t.boolT

	return t
}

// New allocates a fresh type node with its canonical pointing at itself.
func (t *Table) New(kind Kind) *Type {
	t.nextID++
	n := &Type{Kind: kind, ID: t.nextID}
	n.Canonical = n
	return n
}

// GetUnit returns the unique unit type.
func (t *Table) GetUnit() *Type { return t.unit }

// GetUnknown returns the sentinel for unresolvable types.
func (t *Table) GetUnknown() *Type { return t.unknown }

// GetBool returns the Bool primitive.
func (t *Table) GetBool() *Type { return t.boolT }

// GetPrim returns a primitive by kind.
func (t *Table) GetPrim(p PrimKind) *Type { return t.prims[p] }

// FindPrim looks a primitive up by its interned name.
func (t *Table) FindPrim(name source.StringID) (*Type, bool) {
	p, ok := t.primMap[name]
	return p, ok
}

// GetTuple returns the canonical tuple for a structural hash. When the hash
// is new it inserts a fresh, empty tuple node and returns found=false; the
// caller populates the fields.
func (t *Table) GetTuple(hash uint64) (tuple *Type, found bool) {
	if existing, ok := t.tuples[hash]; ok {
		return existing, true
	}
	n := t.New(KindTuple)
	t.tuples[hash] = n
	return n, false
}

// TupleOf re-interns a tuple built from already-resolved fields, as needed
// when instantiation rewrites field types.
func (t *Table) TupleOf(fields []Field) *Type {
	var h Hasher
	for i := range fields {
		h.AddType(fields[i].Type)
		if fields[i].Name != source.NoStringID {
			h.AddName(fields[i].Name)
		}
	}
	tuple, found := t.GetTuple(h.Sum())
	if found {
		return tuple
	}
	resolved := true
	for i := range fields {
		fields[i].Index = uint32(i) //nolint:gosec // bounded by field count
		fields[i].Parent = tuple
		if fields[i].Type != nil && !fields[i].Type.Resolved {
			resolved = false
		}
	}
	tuple.Fields = fields
	tuple.Resolved = resolved
	return tuple
}

// GetPtr returns the canonical pointer type for an inner type.
func (t *Table) GetPtr(inner *Type) *Type {
	if existing, ok := t.ptrs[inner]; ok {
		return existing
	}
	n := t.New(KindPtr)
	n.Inner = inner
	n.Resolved = inner.Resolved
	t.ptrs[inner] = n
	return n
}

// GetLV returns the canonical lvalue wrapper for an inner type.
func (t *Table) GetLV(inner *Type) *Type {
	if existing, ok := t.lvalues[inner]; ok {
		return existing
	}
	n := t.New(KindLvalue)
	n.Inner = inner
	n.Resolved = inner.Resolved
	t.lvalues[inner] = n
	return n
}
