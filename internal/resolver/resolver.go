// Package resolver turns a parsed module into a resolved one: it builds the
// scope tree, canonicalizes structural types through the type table, lazily
// resolves aliases and variants, instantiates generics, and attaches types
// to declarations.
package resolver

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/source"
	"athena/internal/types"
)

// Result is the resolved module.
type Result struct {
	Scope     *types.Scope
	Functions []*types.Function
	Table     *types.Table
}

// Resolver walks one module. Resolution errors never abort: they are
// reported and the Unknown sentinel stands in so later passes always see a
// well-formed graph.
type Resolver struct {
	b     *ast.Builder
	mod   *ast.Module
	types *types.Table
	in    *source.Interner
	rep   diag.Reporter

	scope *types.Scope
	funs  []*types.Function

	trueID  source.StringID
	falseID source.StringID
	boolID  source.StringID
}

// New creates a resolver over a parsed module.
func New(mod *ast.Module, b *ast.Builder, in *source.Interner, table *types.Table, rep diag.Reporter) *Resolver {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &Resolver{
		b:       b,
		mod:     mod,
		types:   table,
		in:      in,
		rep:     rep,
		scope:   types.NewScope(nil),
		trueID:  in.Intern("True"),
		falseID: in.Intern("False"),
		boolID:  in.Intern("Bool"),
	}
}

// Resolve runs both passes: install every top-level declaration into the
// module scope in order, then resolve function signatures and bodies.
// Functions are in scope before any body is visited, so mutual recursion
// needs no forward declarations.
func (r *Resolver) Resolve() Result {
	for _, id := range r.mod.Declarations {
		r.installDecl(id)
	}
	for _, f := range r.funs {
		r.resolveFunction(f)
	}
	return Result{Scope: r.scope, Functions: r.funs, Table: r.types}
}

// Scope returns the module scope.
func (r *Resolver) Scope() *types.Scope {
	return r.scope
}

func (r *Resolver) error(code diag.Code, sp source.Span, msg string) {
	r.rep.Report(code, diag.SevError, sp, msg, nil)
}

// installDecl puts one declaration into the module scope. Aliases and
// variants stay lazy: only the declaration head is recorded here.
func (r *Resolver) installDecl(id ast.DeclID) {
	d := r.b.Decls.Get(id)
	switch d.Kind {
	case ast.DeclData:
		simple := d.Simple
		v := r.types.New(types.KindVariant)
		v.Resolved = true
		v.Variant = &types.VariantData{
			Decl:     &types.VariantDecl{Simple: &simple, Scope: r.scope},
			Generics: uint32(len(simple.Params)), //nolint:gosec // parameter count
		}
		for _, c := range d.Constrs {
			vc := &types.VarConstructor{
				Name:   c.Name,
				Parent: v,
				Decl:   &types.ConstrDecl{Types: c.Types},
			}
			if _, exists := r.scope.Constructors[c.Name]; exists {
				r.error(diag.ResDuplicateDefinition, c.Span, "constructor "+r.in.MustLookup(c.Name)+" is already defined")
				continue
			}
			r.scope.Constructors[c.Name] = vc
			v.Variant.Constructors = append(v.Variant.Constructors, vc)
		}
		r.declareType(simple.Name, v, d.Span)

	case ast.DeclType:
		simple := d.Simple
		a := r.types.New(types.KindAlias)
		a.Alias = &types.AliasData{
			Decl:     &types.AliasDecl{Target: d.Target, Simple: &simple, Scope: r.scope},
			Generics: uint32(len(simple.Params)), //nolint:gosec // parameter count
		}
		r.declareType(d.Name, a, d.Span)

	case ast.DeclFun:
		f := &types.Function{Name: d.Name, Decl: id}
		if _, exists := r.scope.Functions[d.Name]; exists {
			r.error(diag.ResDuplicateDefinition, d.Span, "function "+r.in.MustLookup(d.Name)+" is already defined")
			return
		}
		r.scope.Functions[d.Name] = f
		r.funs = append(r.funs, f)

	case ast.DeclForeign:
		f := &types.Function{
			Name: d.Name,
			Decl: id,
			Foreign: &types.ForeignInfo{
				ExternName: d.ExternName,
				Convention: d.Convention,
			},
		}
		t := r.resolveType(r.scope, d.Target, false, nil)
		if t.Kind == types.KindFun {
			f.Args = r.types.TupleOf(funArgFields(t))
			f.Ret = t.Fun.Ret
		} else {
			f.Ret = t
		}
		if _, exists := r.scope.Functions[d.Name]; exists {
			r.error(diag.ResDuplicateDefinition, d.Span, "function "+r.in.MustLookup(d.Name)+" is already defined")
			return
		}
		r.scope.Functions[d.Name] = f
	}
}

func (r *Resolver) declareType(name source.StringID, t *types.Type, sp source.Span) {
	if _, exists := r.scope.Types[name]; exists {
		r.error(diag.ResDuplicateDefinition, sp, "type "+r.in.MustLookup(name)+" is already defined")
		return
	}
	r.scope.Types[name] = t
}

func funArgFields(t *types.Type) []types.Field {
	fields := make([]types.Field, len(t.Fun.Args))
	for i, a := range t.Fun.Args {
		fields[i] = types.Field{Index: uint32(i), Type: a, Resolved: a.Resolved} //nolint:gosec // arg count
	}
	return fields
}

// resolveFunction resolves one function's signature, builds its body scope
// with the parameters bound, and types the body.
func (r *Resolver) resolveFunction(f *types.Function) {
	d := r.b.Decls.Get(f.Decl)

	if d.Args.IsValid() {
		f.Args = r.resolveType(r.scope, d.Args, false, nil)
	}
	if d.Ret.IsValid() {
		f.Ret = r.resolveType(r.scope, d.Ret, false, nil)
	}

	f.Scope = types.NewScope(r.scope)
	if d.Args.IsValid() {
		argsNode := r.b.Types.Get(d.Args)
		if argsNode.Kind == ast.TypeTup {
			for _, field := range argsNode.Fields {
				if field.Name == source.NoStringID {
					continue
				}
				var t *types.Type
				if field.Type.IsValid() {
					t = r.resolveType(r.scope, field.Type, false, nil)
				} else {
					t = r.types.GetUnknown()
				}
				f.Scope.Variables = append(f.Scope.Variables, &types.Variable{
					Name:     field.Name,
					Type:     t,
					Constant: true,
					FunParam: true,
				})
			}
		}
	}

	if d.Body.IsValid() {
		f.Body = r.resolveExpr(f.Scope, d.Body)
		if f.Ret == nil {
			f.Ret = f.Body
		}
	}
}
