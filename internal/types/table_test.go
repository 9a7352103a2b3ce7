package types

import (
	"testing"

	"athena/internal/source"
)

func TestTable_Singletons(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)

	if table.GetUnit() != table.GetUnit() {
		t.Fatalf("unit is not unique")
	}
	if table.GetUnknown() == table.GetUnit() {
		t.Fatalf("unknown and unit collide")
	}
	if !table.GetUnknown().Resolved {
		t.Fatalf("the unknown sentinel must read as resolved")
	}
}

func TestTable_PrimLookup(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)

	intName := in.Intern("Int")
	p, ok := table.FindPrim(intName)
	if !ok || p.Kind != KindPrim || p.Prim != PrimInt {
		t.Fatalf("FindPrim(Int) = %+v, %v", p, ok)
	}

	boolName := in.Intern("Bool")
	b, ok := table.FindPrim(boolName)
	if !ok || b != table.GetBool() {
		t.Fatalf("FindPrim(Bool) did not return the Bool singleton")
	}
}

func TestTable_TupleConsing(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)
	intT := table.GetPrim(PrimInt)
	x := in.Intern("x")
	y := in.Intern("y")

	t1 := table.TupleOf([]Field{{Name: x, Type: intT}, {Name: y, Type: intT}})
	t2 := table.TupleOf([]Field{{Name: x, Type: intT}, {Name: y, Type: intT}})
	if t1 != t2 {
		t.Fatalf("structurally equal tuples are distinct objects")
	}

	a := in.Intern("a")
	b := in.Intern("b")
	t3 := table.TupleOf([]Field{{Name: a, Type: intT}, {Name: b, Type: intT}})
	if t3 == t1 {
		t.Fatalf("tuples with different field names must be distinct")
	}

	// A name on one field is enough to distinguish.
	unnamed := table.TupleOf([]Field{{Type: intT}, {Type: intT}})
	if unnamed == t1 {
		t.Fatalf("named and unnamed tuples collide")
	}
}

func TestTable_TupleFieldBookkeeping(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)
	intT := table.GetPrim(PrimInt)

	tup := table.TupleOf([]Field{{Type: intT}, {Type: table.GetPrim(PrimFloat)}})
	if len(tup.Fields) != 2 {
		t.Fatalf("fields = %d", len(tup.Fields))
	}
	for i, f := range tup.Fields {
		if f.Index != uint32(i) {
			t.Fatalf("field %d has index %d", i, f.Index)
		}
		if f.Parent != tup {
			t.Fatalf("field %d parent not set", i)
		}
	}
	if !tup.Resolved {
		t.Fatalf("tuple of resolved prims must be resolved")
	}
}

func TestTable_PtrConsing(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)
	intT := table.GetPrim(PrimInt)

	p1 := table.GetPtr(intT)
	p2 := table.GetPtr(intT)
	if p1 != p2 {
		t.Fatalf("pointers to the same type are distinct")
	}
	if p1 == table.GetPtr(table.GetPrim(PrimFloat)) {
		t.Fatalf("pointers to different types collide")
	}
}

func TestTable_LvalueConsing(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)
	intT := table.GetPrim(PrimInt)

	l1 := table.GetLV(intT)
	l2 := table.GetLV(intT)
	if l1 != l2 {
		t.Fatalf("lvalues of the same type are distinct")
	}
	if l1.Kind != KindLvalue || l1.Inner != intT {
		t.Fatalf("lvalue shape = %+v", l1)
	}
}

func TestScope_ShadowingLookup(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)
	x := in.Intern("x")

	outer := NewScope(nil)
	outerVar := &Variable{Name: x, Type: table.GetPrim(PrimInt)}
	outer.Variables = append(outer.Variables, outerVar)

	inner := NewScope(outer)
	innerVar := &Variable{Name: x, Type: table.GetPrim(PrimFloat)}
	inner.Shadows = append(inner.Shadows, innerVar)

	if got := inner.FindVar(x); got != innerVar {
		t.Fatalf("inner lookup = %+v, want the shadow", got)
	}
	if got := outer.FindVar(x); got != outerVar {
		t.Fatalf("outer lookup = %+v, want the outer binding", got)
	}
	if got := outer.FindLocalVar(x); got != outerVar {
		t.Fatalf("FindLocalVar missed the local binding")
	}
	if got := inner.FindLocalVar(in.Intern("missing")); got != nil {
		t.Fatalf("FindLocalVar crossed the frame boundary")
	}
}

func TestScope_TypeAndConstructorLookupWalksToRoot(t *testing.T) {
	in := source.NewInterner()
	table := NewTable(in)

	root := NewScope(nil)
	mid := NewScope(root)
	leaf := NewScope(mid)

	name := in.Intern("Thing")
	typ := table.New(KindVariant)
	root.Types[name] = typ
	if got := leaf.FindType(name); got != typ {
		t.Fatalf("FindType did not walk to the root")
	}

	cname := in.Intern("MkThing")
	c := &VarConstructor{Name: cname, Parent: typ}
	root.Constructors[cname] = c
	if got := leaf.FindConstructor(cname); got != c {
		t.Fatalf("FindConstructor did not walk to the root")
	}
}
