package resolver

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/source"
	"athena/internal/types"
)

// resolveType resolves one syntactic type node. It never mutates its input;
// everything it produces lives in the type table. Unresolvable names come
// back as the Unknown sentinel after a reported error, so callers always
// hold a valid type.
//
// tscope is the enclosing declared type head, if any: generic parameter
// references resolve to their 0-based position in its parameter list.
func (r *Resolver) resolveType(scope *types.Scope, id ast.TypeID, constructor bool, tscope *ast.SimpleType) *types.Type {
	if !id.IsValid() {
		return r.types.GetUnknown()
	}
	node := r.b.Types.Get(id)

	switch node.Kind {
	case ast.TypeUnit:
		return r.types.GetUnit()

	case ast.TypePtr:
		return r.types.GetPtr(r.resolveType(scope, node.Inner, constructor, tscope))

	case ast.TypeTup:
		return r.resolveTuple(scope, node, tscope)

	case ast.TypeFun:
		return r.resolveFun(scope, node, tscope)

	case ast.TypeGen:
		if tscope != nil {
			if index, ok := genIndex(tscope, node.Con); ok {
				g := r.types.New(types.KindGen)
				g.Gen = &types.GenData{Index: index}
				g.Resolved = false
				return g
			}
		}
		r.error(diag.ResUndefinedGeneric, node.Span, "undefined generic type")
		return r.types.GetUnknown()

	case ast.TypeApp:
		// Resolve the base and instantiate it for the arguments. When the
		// base is itself generic the application stays unevaluated until
		// the surrounding type is instantiated.
		base := r.resolveType(scope, node.Base, constructor, tscope)
		if base.IsGeneric() {
			a := r.types.New(types.KindApp)
			a.App = &types.AppData{BaseIndex: base.Gen.Index, Apps: node.Args}
			a.Resolved = false
			return a
		}
		return r.instantiateType(scope, base, node.Args, tscope, node.Span)

	case ast.TypeCon:
		if constructor {
			if c := scope.FindConstructor(node.Con); c != nil {
				return c.Parent
			}
			// The Bool primitive has separate constructors.
			switch node.Con {
			case r.trueID, r.falseID:
				return r.types.GetBool()
			case r.boolID:
				r.error(diag.ResBoolConstructor, node.Span, "'Bool' cannot be used as a constructor; use True or False instead")
			default:
				if p, ok := r.types.FindPrim(node.Con); ok {
					return p
				}
			}
			return r.types.GetUnknown()
		}

		if t := scope.FindType(node.Con); t != nil {
			return r.lazyResolve(t)
		}
		if p, ok := r.types.FindPrim(node.Con); ok {
			return p
		}
		return r.types.GetUnknown()
	}

	return r.types.GetUnknown()
}

// genIndex returns the 0-based position of name in the type head's
// parameter list.
func genIndex(tscope *ast.SimpleType, name source.StringID) (uint32, bool) {
	for i, p := range tscope.Params {
		if p == name {
			return uint32(i), true //nolint:gosec // parameter count
		}
	}
	return 0, false
}

// resolveTuple canonicalizes a tuple type. The hash folds every resolved
// field type and every present field name, so tuples that differ only in a
// name stay distinct. A fresh slot from the cons table is populated in
// place; a hit is returned as-is.
func (r *Resolver) resolveTuple(scope *types.Scope, node *ast.Type, tscope *ast.SimpleType) *types.Type {
	var h types.Hasher
	for _, f := range node.Fields {
		t := r.resolveType(scope, f.Type, false, tscope)
		h.AddType(t)
		if f.Name != source.NoStringID {
			h.AddName(f.Name)
		}
	}

	tuple, found := r.types.GetTuple(h.Sum())
	if !found {
		resolved := true
		for i, f := range node.Fields {
			t := r.resolveType(scope, f.Type, false, tscope)
			if !t.Resolved {
				resolved = false
			}
			tuple.Fields = append(tuple.Fields, types.Field{
				Name:     f.Name,
				Index:    uint32(i), //nolint:gosec // field count
				Type:     t,
				Parent:   tuple,
				Default:  f.Default,
				Resolved: true,
			})
		}
		tuple.Resolved = resolved
	}
	return tuple
}

// resolveFun resolves a function type's parameters and return type.
func (r *Resolver) resolveFun(scope *types.Scope, node *ast.Type, tscope *ast.SimpleType) *types.Type {
	f := r.types.New(types.KindFun)
	data := &types.FunData{}
	resolved := true
	for _, field := range node.Fields {
		t := r.resolveType(scope, field.Type, false, tscope)
		if !t.Resolved {
			resolved = false
		}
		data.Args = append(data.Args, t)
	}
	data.Ret = r.resolveType(scope, node.Ret, false, tscope)
	if !data.Ret.Resolved {
		resolved = false
	}
	f.Fun = data
	f.Resolved = resolved
	return f
}

// lazyResolve forces an alias or variant whose declaration has not been
// processed yet. Safe to call any number of times: once resolved, the
// declaration pointer is nil and the call is a no-op.
func (r *Resolver) lazyResolve(t *types.Type) *types.Type {
	if t.Kind == types.KindAlias && t.Alias.Decl != nil {
		r.resolveAlias(t)
	} else if t.Kind == types.KindVariant && t.Variant.Decl != nil {
		r.resolveVariant(t)
	}
	return t
}

// resolveAlias fills the alias target and drops the declaration. The
// canonical may itself still be unresolved when the alias participates in a
// cycle through a not-yet-resolved variant; the resolved flag propagates
// from the target.
func (r *Resolver) resolveAlias(t *types.Type) *types.Type {
	decl := t.Alias.Decl
	if decl == nil {
		if t.Resolved {
			return t.Canonical
		}
		return t
	}
	t.Alias.Decl = nil
	t.Canonical = r.resolveType(decl.Scope, decl.Target, false, decl.Simple)
	t.Resolved = t.Canonical.Resolved
	if t.Resolved {
		return t.Canonical
	}
	return t
}

// resolveVariant resolves every declared constructor: each argument type is
// resolved under the variant's own scope and type head, and the
// constructor's data type becomes Unit, the single content, or the tuple of
// contents. The declaration pointers are dropped first so recursive
// variants do not re-enter.
func (r *Resolver) resolveVariant(t *types.Type) *types.Type {
	decl := t.Variant.Decl
	if decl == nil {
		return t
	}
	t.Variant.Decl = nil

	for _, c := range t.Variant.Constructors {
		cdecl := c.Decl
		if cdecl == nil {
			continue
		}
		c.Decl = nil
		for _, astType := range cdecl.Types {
			c.Contents = append(c.Contents, r.resolveType(decl.Scope, astType, false, decl.Simple))
		}
		switch len(c.Contents) {
		case 0:
			c.DataType = r.types.GetUnit()
		case 1:
			c.DataType = c.Contents[0]
		default:
			c.DataType = r.types.TupleOf(contentFields(c.Contents))
		}
	}
	return t
}

func contentFields(contents []*types.Type) []types.Field {
	fields := make([]types.Field, len(contents))
	for i, t := range contents {
		fields[i] = types.Field{Index: uint32(i), Type: t, Resolved: t.Resolved} //nolint:gosec // content count
	}
	return fields
}

// instantiateType substitutes the arguments into a generic alias or
// variant. The argument count must match the declared parameter count; on
// any mismatch the base comes back unchanged after a reported error.
func (r *Resolver) instantiateType(scope *types.Scope, base *types.Type, apps []ast.TypeID, tscope *ast.SimpleType, sp source.Span) *types.Type {
	if !base.IsAlias() && !base.IsVariant() {
		r.error(diag.ResNotGeneric, sp, "must be a generic type")
		return base
	}
	r.lazyResolve(base)

	generics := base.Generics()
	if uint32(len(apps)) != generics { //nolint:gosec // argument count
		r.error(diag.ResGenericArity, sp, "number of generics in the type must be equal to the amount applied")
		return base
	}

	list := make([]*types.Type, 0, len(apps))
	for _, app := range apps {
		list = append(list, r.resolveType(scope, app, false, tscope))
	}

	var subst func(t *types.Type) *types.Type
	subst = func(t *types.Type) *types.Type {
		switch t.Kind {
		case types.KindGen:
			if t.Gen.Index < uint32(len(list)) { //nolint:gosec // argument count
				return list[t.Gen.Index]
			}
			return r.types.GetUnknown()
		case types.KindApp:
			if t.App.BaseIndex < uint32(len(list)) { //nolint:gosec // argument count
				return r.instantiateType(scope, list[t.App.BaseIndex], t.App.Apps, tscope, sp)
			}
			return r.types.GetUnknown()
		default:
			return t
		}
	}
	return r.mapType(subst, base)
}

// mapType rebuilds a type bottom-up with f applied to every generic and
// unevaluated application. Aliases are traversed through their canonical
// target; tuples re-intern through the cons table; variants deep-clone
// their constructor lists so constraints on one instantiation never leak
// into another.
func (r *Resolver) mapType(f func(*types.Type) *types.Type, t *types.Type) *types.Type {
	switch t.Kind {
	case types.KindAlias:
		return r.mapType(f, t.Canonical)

	case types.KindTuple:
		fields := make([]types.Field, len(t.Fields))
		copy(fields, t.Fields)
		for i := range fields {
			fields[i].Type = r.mapType(f, fields[i].Type)
		}
		return r.types.TupleOf(fields)

	case types.KindVariant:
		clone := r.types.New(types.KindVariant)
		clone.Resolved = t.Resolved
		clone.Variant = &types.VariantData{Generics: t.Variant.Generics}
		for _, c := range t.Variant.Constructors {
			cc := &types.VarConstructor{Name: c.Name, Parent: clone}
			for _, content := range c.Contents {
				cc.Contents = append(cc.Contents, r.mapType(f, content))
			}
			switch len(cc.Contents) {
			case 0:
				cc.DataType = r.types.GetUnit()
			case 1:
				cc.DataType = cc.Contents[0]
			default:
				cc.DataType = r.types.TupleOf(contentFields(cc.Contents))
			}
			clone.Variant.Constructors = append(clone.Variant.Constructors, cc)
		}
		return clone

	case types.KindLvalue:
		return r.types.GetLV(f(t.Inner))

	case types.KindGen:
		return f(t)

	case types.KindApp:
		return f(t)

	case types.KindPtr:
		return r.types.GetPtr(f(t.Inner))

	default:
		return t
	}
}

// Constrain adds a named constraint to a generic type. Calling it on
// anything else is a compiler bug.
func (r *Resolver) Constrain(t *types.Type, c types.Constraint) {
	if !t.Canonical.IsGeneric() {
		panic("resolver: constrain on a non-generic type")
	}
	t.Canonical.Gen.Constraints = append(t.Canonical.Gen.Constraints, c)
}

// ConstrainType sets the type bound of a generic type. Merging two bounds
// is not supported.
func (r *Resolver) ConstrainType(t *types.Type, bound *types.Type) {
	if !t.Canonical.IsGeneric() {
		panic("resolver: constrain on a non-generic type")
	}
	g := t.Canonical.Gen
	if g.TypeConstraint != nil {
		panic("resolver: merging type constraints is not implemented")
	}
	g.TypeConstraint = bound
}
