package resolver

import (
	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/source"
	"athena/internal/types"
)

// resolveExpr types one expression and binds the names inside it. This is
// the light pass that makes declarations carry types; full inference is a
// later phase. Unknown stands in wherever the type cannot be computed
// locally.
func (r *Resolver) resolveExpr(scope *types.Scope, id ast.ExprID) *types.Type {
	if !id.IsValid() {
		return r.types.GetUnknown()
	}
	e := r.b.Exprs.Get(id)

	switch e.Kind {
	case ast.ExprLit:
		switch e.Lit.Kind {
		case ast.LitInt:
			return r.types.GetPrim(types.PrimInt)
		case ast.LitFloat:
			return r.types.GetPrim(types.PrimFloat)
		case ast.LitChar:
			return r.types.GetPrim(types.PrimChar)
		case ast.LitString:
			return r.types.GetPrim(types.PrimString)
		}
		return r.types.GetUnknown()

	case ast.ExprVar:
		if v := scope.FindVar(e.Name); v != nil {
			if v.Type != nil {
				return v.Type
			}
			return r.types.GetUnknown()
		}
		if f := scope.FindFun(e.Name); f != nil {
			if f.Ret != nil {
				return f.Ret
			}
			return r.types.GetUnknown()
		}
		r.error(diag.ResUndefinedVariable, e.Span, "undefined variable "+r.in.MustLookup(e.Name))
		return r.types.GetUnknown()

	case ast.ExprPrefix:
		r.resolveExpr(scope, e.Inner)
		return r.types.GetUnknown()

	case ast.ExprInfix:
		// Operator chains arrive right-leaning from the parser; rebuild
		// them from the fixity table before descending.
		return r.resolveInfixTree(scope, r.reorderInfix(id))

	case ast.ExprApp:
		calleeType := r.resolveExpr(scope, e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(scope, arg)
		}
		callee := r.b.Exprs.Get(e.Callee)
		if callee.Kind == ast.ExprVar {
			if f := scope.FindFun(callee.Name); f != nil && f.Ret != nil {
				return f.Ret
			}
		}
		if calleeType.Kind == types.KindFun {
			return calleeType.Fun.Ret
		}
		return r.types.GetUnknown()

	case ast.ExprField:
		r.resolveExpr(scope, e.L)
		return r.types.GetUnknown()

	case ast.ExprConstruct:
		if e.Type.IsValid() {
			return r.resolveType(scope, e.Type, true, nil)
		}
		// Anonymous tuple construction: the type is the consed tuple of
		// the field value types.
		fields := make([]types.Field, 0, len(e.Fields))
		for i, f := range e.Fields {
			t := r.resolveExpr(scope, f.Value)
			fields = append(fields, types.Field{
				Name:     f.Name,
				Index:    uint32(i), //nolint:gosec // field count
				Type:     t,
				Resolved: t.Resolved,
			})
		}
		return r.types.TupleOf(fields)

	case ast.ExprNested:
		return r.resolveExpr(scope, e.Inner)

	case ast.ExprIf:
		r.resolveExpr(scope, e.Cond)
		thenType := r.resolveExpr(scope, e.Then)
		if e.Else.IsValid() {
			r.resolveExpr(scope, e.Else)
			return thenType
		}
		return r.types.GetUnit()

	case ast.ExprWhile:
		r.resolveExpr(scope, e.Cond)
		r.resolveExpr(scope, e.Then)
		return r.types.GetUnit()

	case ast.ExprCase:
		scrutType := r.resolveExpr(scope, e.Cond)
		var result *types.Type
		for _, alt := range e.Alts {
			armScope := types.NewScope(scope)
			r.bindPattern(armScope, alt.Pat, scrutType)
			t := r.resolveExpr(armScope, alt.Body)
			if result == nil {
				result = t
			}
		}
		if result == nil {
			return r.types.GetUnknown()
		}
		return result

	case ast.ExprMulti:
		blockScope := types.NewScope(scope)
		var last *types.Type
		for _, stmt := range e.Args {
			last = r.resolveExpr(blockScope, stmt)
		}
		if last == nil {
			return r.types.GetUnit()
		}
		return last

	case ast.ExprDecl:
		var t *types.Type
		if e.Inner.IsValid() {
			t = r.resolveExpr(scope, e.Inner)
		} else {
			t = r.types.GetUnknown()
		}
		if !e.Const {
			// Mutable bindings are storage locations.
			t = r.types.GetLV(t)
		}
		r.declareVar(scope, e.Name, t, e.Const)
		return t

	case ast.ExprAssign:
		r.resolveExpr(scope, e.L)
		return r.resolveExpr(scope, e.R)

	case ast.ExprCoerce:
		r.resolveExpr(scope, e.Inner)
		return r.resolveType(scope, e.Type, false, nil)

	case ast.ExprFormat:
		for _, chunk := range e.Chunks {
			if chunk.Expr.IsValid() {
				r.resolveExpr(scope, chunk.Expr)
			}
		}
		return r.types.GetPrim(types.PrimString)

	case ast.ExprUnit:
		return r.types.GetUnit()

	case ast.ExprLam:
		lamScope := types.NewScope(scope)
		data := &types.FunData{}
		for _, p := range e.Params {
			t := r.types.GetUnknown()
			lamScope.Variables = append(lamScope.Variables, &types.Variable{
				Name:     p,
				Type:     t,
				Constant: true,
				FunParam: true,
			})
			data.Args = append(data.Args, t)
		}
		data.Ret = r.resolveExpr(lamScope, e.Then)
		f := r.types.New(types.KindFun)
		f.Fun = data
		return f
	}

	return r.types.GetUnknown()
}

// resolveInfixTree walks an already-reordered operator tree, resolving the
// operands. Reordering must not run again here: the rebuilt tree is final.
func (r *Resolver) resolveInfixTree(scope *types.Scope, id ast.ExprID) *types.Type {
	e := r.b.Exprs.Get(id)
	if e == nil {
		return r.types.GetUnknown()
	}
	if e.Kind != ast.ExprInfix {
		return r.resolveExpr(scope, id)
	}
	r.resolveInfixTree(scope, e.L)
	r.resolveInfixTree(scope, e.R)
	return r.types.GetUnknown()
}

// declareVar introduces a binding. A name that already resolves in an
// enclosing scope becomes a shadow, which lookup prefers.
func (r *Resolver) declareVar(scope *types.Scope, name source.StringID, t *types.Type, constant bool) {
	v := &types.Variable{Name: name, Type: t, Constant: constant}
	if scope.FindVar(name) != nil {
		scope.Shadows = append(scope.Shadows, v)
	} else {
		scope.Variables = append(scope.Variables, v)
	}
}

// bindPattern introduces the bindings of a case pattern into the arm scope.
func (r *Resolver) bindPattern(scope *types.Scope, id ast.PatID, scrutType *types.Type) {
	pat := r.b.Pats.Get(id)
	if pat == nil {
		return
	}
	switch pat.Kind {
	case ast.PatLit:
		// Nothing to bind.
	case ast.PatVar:
		r.declareVar(scope, pat.Name, scrutType, true)
	case ast.PatCon:
		c := scope.FindConstructor(pat.Name)
		if c == nil {
			r.error(diag.ResUndefinedVariable, pat.Span, "undefined constructor "+r.in.MustLookup(pat.Name))
		} else {
			r.lazyResolve(c.Parent)
		}
		for i, name := range pat.Args {
			t := r.types.GetUnknown()
			if c != nil && i < len(c.Contents) {
				t = c.Contents[i]
			}
			r.declareVar(scope, name, t, true)
		}
	}
}
