package resolver

import (
	"athena/internal/ast"
	"athena/internal/source"
)

// reorderInfix rebuilds a right-leaning operator chain into the shape the
// fixity table dictates. The parser commits to a flat right spine; this
// pass flattens it back into operands and operators and re-parents them
// with an operator stack. Operators without a declared fixity are
// left-associative at precedence 9. New nodes go into the AST arena; the
// original chain is left untouched.
func (r *Resolver) reorderInfix(id ast.ExprID) ast.ExprID {
	root := r.b.Exprs.Get(id)
	if root.Kind != ast.ExprInfix {
		return id
	}

	// Flatten the right spine. A chain of n operators has n+1 operands.
	operands := []ast.ExprID{root.L}
	ops := []source.StringID{root.Op}
	cur := root.R
	for {
		n := r.b.Exprs.Get(cur)
		if n == nil || n.Kind != ast.ExprInfix {
			break
		}
		operands = append(operands, n.L)
		ops = append(ops, n.Op)
		cur = n.R
	}
	operands = append(operands, cur)

	if len(ops) == 1 {
		return id
	}

	// Shunting-yard over the fixity table.
	var outStack []ast.ExprID
	var opStack []source.StringID

	reduce := func() {
		op := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		rhs := outStack[len(outStack)-1]
		lhs := outStack[len(outStack)-2]
		outStack = outStack[:len(outStack)-2]
		span := r.b.Exprs.Get(lhs).Span.Cover(r.b.Exprs.Get(rhs).Span)
		outStack = append(outStack, r.b.Exprs.New(ast.Expr{
			Kind: ast.ExprInfix,
			Span: span,
			Op:   op,
			L:    lhs,
			R:    rhs,
		}))
	}

	outStack = append(outStack, operands[0])
	for i, op := range ops {
		f := r.mod.Fixity(op)
		for len(opStack) > 0 {
			top := r.mod.Fixity(opStack[len(opStack)-1])
			if top.Prec > f.Prec || (top.Prec == f.Prec && f.Kind != ast.FixityRight) {
				reduce()
			} else {
				break
			}
		}
		opStack = append(opStack, op)
		outStack = append(outStack, operands[i+1])
	}
	for len(opStack) > 0 {
		reduce()
	}
	return outStack[0]
}
