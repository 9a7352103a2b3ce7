package ast

// Hints sizes the builder's arenas.
type Hints struct{ Exprs, Types, Decls, Pats uint }

// Builder owns the AST arenas for one parse. All node allocation funnels
// through it; nodes live as long as the builder.
type Builder struct {
	Exprs *Exprs
	Types *Types
	Decls *Decls
	Pats  *Pats
}

func NewBuilder(hints Hints) *Builder {
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 9
	}
	if hints.Types == 0 {
		hints.Types = 1 << 7
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Pats == 0 {
		hints.Pats = 1 << 5
	}
	return &Builder{
		Exprs: NewExprs(hints.Exprs),
		Types: NewTypes(hints.Types),
		Decls: NewDecls(hints.Decls),
		Pats:  NewPats(hints.Pats),
	}
}
