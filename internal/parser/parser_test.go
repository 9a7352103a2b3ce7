package parser

import (
	"testing"

	"athena/internal/ast"
	"athena/internal/diag"
	"athena/internal/lexer"
	"athena/internal/source"
)

type parseFixture struct {
	Module   *ast.Module
	Builder  *ast.Builder
	Interner *source.Interner
	Bag      *diag.Bag
}

func parseSource(t *testing.T, src string) parseFixture {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ath", []byte(src))
	in := source.NewInterner()
	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(id), in, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	b := ast.NewBuilder(ast.Hints{})
	res := ParseFile(fs.Get(id), lx, b, Options{Reporter: diag.BagReporter{Bag: bag}})
	return parseFixture{Module: res.Module, Builder: b, Interner: in, Bag: bag}
}

func (f parseFixture) decl(t *testing.T, i int) *ast.Decl {
	t.Helper()
	if i >= len(f.Module.Declarations) {
		t.Fatalf("declaration %d missing; have %d", i, len(f.Module.Declarations))
	}
	return f.Builder.Decls.Get(f.Module.Declarations[i])
}

func (f parseFixture) name(id source.StringID) string {
	return f.Interner.MustLookup(id)
}

func (f parseFixture) expr(id ast.ExprID) *ast.Expr {
	return f.Builder.Exprs.Get(id)
}

func requireClean(t *testing.T, f parseFixture) {
	t.Helper()
	if f.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", f.Bag.Items())
	}
}

func TestParse_ValueBindings(t *testing.T) {
	f := parseSource(t, "f = 1\ng = f")
	requireClean(t, f)

	if len(f.Module.Declarations) != 2 {
		t.Fatalf("declarations = %d, want 2", len(f.Module.Declarations))
	}

	d0 := f.decl(t, 0)
	if d0.Kind != ast.DeclFun || f.name(d0.Name) != "f" {
		t.Fatalf("decl 0 = kind %v name %q", d0.Kind, f.name(d0.Name))
	}
	body0 := f.expr(d0.Body)
	if body0.Kind != ast.ExprLit || body0.Lit.Kind != ast.LitInt || body0.Lit.I != 1 {
		t.Fatalf("f body = %+v", body0)
	}

	d1 := f.decl(t, 1)
	body1 := f.expr(d1.Body)
	if body1.Kind != ast.ExprVar || f.name(body1.Name) != "f" {
		t.Fatalf("g body = kind %v name %q", body1.Kind, f.name(body1.Name))
	}
}

func TestParse_NamedArgFunction(t *testing.T) {
	f := parseSource(t, "add: x y = x")
	requireClean(t, f)

	d := f.decl(t, 0)
	if !d.Args.IsValid() {
		t.Fatalf("named-arg function has no args tuple")
	}
	args := f.Builder.Types.Get(d.Args)
	if args.Kind != ast.TypeTup || len(args.Fields) != 2 {
		t.Fatalf("args = kind %v fields %d", args.Kind, len(args.Fields))
	}
	if f.name(args.Fields[0].Name) != "x" || f.name(args.Fields[1].Name) != "y" {
		t.Fatalf("arg names = %q %q", f.name(args.Fields[0].Name), f.name(args.Fields[1].Name))
	}
	if args.Fields[0].Type.IsValid() {
		t.Fatalf("named positional args carry no type")
	}
}

func TestParse_SignatureFunction(t *testing.T) {
	f := parseSource(t, "inc {x: Int} -> Int = x")
	requireClean(t, f)

	d := f.decl(t, 0)
	args := f.Builder.Types.Get(d.Args)
	if args.Kind != ast.TypeTup || len(args.Fields) != 1 {
		t.Fatalf("args = kind %v fields %d", args.Kind, len(args.Fields))
	}
	field := args.Fields[0]
	if f.name(field.Name) != "x" {
		t.Fatalf("field name = %q", f.name(field.Name))
	}
	ft := f.Builder.Types.Get(field.Type)
	if ft.Kind != ast.TypeCon || f.name(ft.Con) != "Int" {
		t.Fatalf("field type = kind %v con %q", ft.Kind, f.name(ft.Con))
	}
	ret := f.Builder.Types.Get(d.Ret)
	if ret.Kind != ast.TypeCon || f.name(ret.Con) != "Int" {
		t.Fatalf("ret = kind %v con %q", ret.Kind, f.name(ret.Con))
	}
}

func TestParse_ReturnTypeOnly(t *testing.T) {
	f := parseSource(t, "f -> Int = 1")
	requireClean(t, f)

	d := f.decl(t, 0)
	if d.Args.IsValid() {
		t.Fatalf("args should be absent")
	}
	if !d.Ret.IsValid() {
		t.Fatalf("ret missing")
	}
}

func TestParse_OperatorBinding(t *testing.T) {
	f := parseSource(t, "(+) = 1")
	requireClean(t, f)

	d := f.decl(t, 0)
	if f.name(d.Name) != "+" {
		t.Fatalf("name = %q, want +", f.name(d.Name))
	}
}

func TestParse_TypeDecl(t *testing.T) {
	f := parseSource(t, "type Pair a b = {a, b}")
	requireClean(t, f)

	d := f.decl(t, 0)
	if d.Kind != ast.DeclType || f.name(d.Simple.Name) != "Pair" {
		t.Fatalf("decl = kind %v name %q", d.Kind, f.name(d.Simple.Name))
	}
	if len(d.Simple.Params) != 2 {
		t.Fatalf("params = %d, want 2", len(d.Simple.Params))
	}
	target := f.Builder.Types.Get(d.Target)
	if target.Kind != ast.TypeTup || len(target.Fields) != 2 {
		t.Fatalf("target = kind %v fields %d", target.Kind, len(target.Fields))
	}
	// Bare lower-case fields are generic references, not names.
	g0 := f.Builder.Types.Get(target.Fields[0].Type)
	if g0.Kind != ast.TypeGen || f.name(g0.Con) != "a" {
		t.Fatalf("field 0 = kind %v con %q", g0.Kind, f.name(g0.Con))
	}
}

func TestParse_DataDecl(t *testing.T) {
	f := parseSource(t, "data Maybe a = Just a | Nothing")
	requireClean(t, f)

	d := f.decl(t, 0)
	if d.Kind != ast.DeclData || f.name(d.Simple.Name) != "Maybe" {
		t.Fatalf("decl = kind %v name %q", d.Kind, f.name(d.Simple.Name))
	}
	if len(d.Constrs) != 2 {
		t.Fatalf("constructors = %d, want 2", len(d.Constrs))
	}
	if f.name(d.Constrs[0].Name) != "Just" || len(d.Constrs[0].Types) != 1 {
		t.Fatalf("constr 0 = %q with %d args", f.name(d.Constrs[0].Name), len(d.Constrs[0].Types))
	}
	if f.name(d.Constrs[1].Name) != "Nothing" || len(d.Constrs[1].Types) != 0 {
		t.Fatalf("constr 1 = %q with %d args", f.name(d.Constrs[1].Name), len(d.Constrs[1].Types))
	}
}

func TestParse_DataDeclNoConstructors(t *testing.T) {
	f := parseSource(t, "data Void =")
	if !f.Bag.HasErrors() {
		t.Fatalf("expected a diagnostic for a constructor-less data declaration")
	}
}

func TestParse_ForeignDecl(t *testing.T) {
	f := parseSource(t, "foreign import ccall \"puts\" puts : {s: String} -> Int")
	requireClean(t, f)

	d := f.decl(t, 0)
	if d.Kind != ast.DeclForeign {
		t.Fatalf("decl kind = %v", d.Kind)
	}
	if f.name(d.ExternName) != "puts" || f.name(d.Name) != "puts" {
		t.Fatalf("names = %q %q", f.name(d.ExternName), f.name(d.Name))
	}
	if d.Convention != ast.ConventionCCall {
		t.Fatalf("convention = %v", d.Convention)
	}
	target := f.Builder.Types.Get(d.Target)
	if target.Kind != ast.TypeFun {
		t.Fatalf("foreign type = %v, want function", target.Kind)
	}
}

func TestParse_ForeignDefaultConvention(t *testing.T) {
	f := parseSource(t, "foreign import \"abs\" abs : Int")
	requireClean(t, f)
	if d := f.decl(t, 0); d.Convention != ast.ConventionCCall {
		t.Fatalf("default convention = %v, want ccall", d.Convention)
	}
}

func TestParse_FixityRegistration(t *testing.T) {
	f := parseSource(t, "infixl 6 +, -\ninfixr 5 ++\nf = 1")
	requireClean(t, f)

	plus := f.Interner.Intern("+")
	minus := f.Interner.Intern("-")
	concat := f.Interner.Intern("++")

	if got := f.Module.Fixity(plus); got.Kind != ast.FixityLeft || got.Prec != 6 {
		t.Fatalf("fixity of + = %+v", got)
	}
	if got := f.Module.Fixity(minus); got.Kind != ast.FixityLeft || got.Prec != 6 {
		t.Fatalf("fixity of - = %+v", got)
	}
	if got := f.Module.Fixity(concat); got.Kind != ast.FixityRight || got.Prec != 5 {
		t.Fatalf("fixity of ++ = %+v", got)
	}
}

func TestParse_FixityDefault(t *testing.T) {
	f := parseSource(t, "f = 1")
	op := f.Interner.Intern("<*>")
	if got := f.Module.Fixity(op); got != ast.DefaultFixity {
		t.Fatalf("undeclared fixity = %+v, want %+v", got, ast.DefaultFixity)
	}
}

func TestParse_FixityDuplicate(t *testing.T) {
	f := parseSource(t, "infixl 6 +\ninfixl 7 +\nf = 1")
	if !f.Bag.HasErrors() {
		t.Fatalf("expected duplicate fixity diagnostic")
	}
	found := false
	for _, d := range f.Bag.Items() {
		if d.Code == diag.DeclDuplicateFixity {
			found = true
		}
	}
	if !found {
		t.Fatalf("no DeclDuplicateFixity in %v", f.Bag.Items())
	}
}

func TestParse_LayoutBlockBody(t *testing.T) {
	f := parseSource(t, "f =\n  let x = 1\n      y = 2\n  x")
	requireClean(t, f)

	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprMulti || len(body.Args) != 2 {
		t.Fatalf("body = kind %v stmts %d", body.Kind, len(body.Args))
	}

	letPart := f.expr(body.Args[0])
	if letPart.Kind != ast.ExprMulti || len(letPart.Args) != 2 {
		t.Fatalf("let part = kind %v stmts %d", letPart.Kind, len(letPart.Args))
	}
	x := f.expr(letPart.Args[0])
	if x.Kind != ast.ExprDecl || f.name(x.Name) != "x" || !x.Const {
		t.Fatalf("first let decl = %+v", x)
	}
	y := f.expr(letPart.Args[1])
	if y.Kind != ast.ExprDecl || f.name(y.Name) != "y" {
		t.Fatalf("second let decl = %+v", y)
	}

	tail := f.expr(body.Args[1])
	if tail.Kind != ast.ExprVar || f.name(tail.Name) != "x" {
		t.Fatalf("tail = kind %v name %q", tail.Kind, f.name(tail.Name))
	}
}

func TestParse_VarDeclMutable(t *testing.T) {
	f := parseSource(t, "f =\n  var n = 0")
	requireClean(t, f)

	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprDecl || body.Const {
		t.Fatalf("var decl = %+v, want mutable decl", body)
	}
}

func TestParse_StringInterpolation(t *testing.T) {
	f := parseSource(t, "greet = \"hi {name}!\"")
	requireClean(t, f)

	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprFormat || len(body.Chunks) != 2 {
		t.Fatalf("body = kind %v chunks %d", body.Kind, len(body.Chunks))
	}
	if f.name(body.Chunks[0].Str) != "hi " || body.Chunks[0].Expr.IsValid() {
		t.Fatalf("chunk 0 = %+v", body.Chunks[0])
	}
	if f.name(body.Chunks[1].Str) != "!" {
		t.Fatalf("chunk 1 str = %q", f.name(body.Chunks[1].Str))
	}
	embedded := f.expr(body.Chunks[1].Expr)
	if embedded.Kind != ast.ExprVar || f.name(embedded.Name) != "name" {
		t.Fatalf("chunk 1 expr = %+v", embedded)
	}
}

func TestParse_PlainString(t *testing.T) {
	f := parseSource(t, "s = \"plain\"")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprLit || body.Lit.Kind != ast.LitString {
		t.Fatalf("body = %+v", body)
	}
}

func TestParse_IfThenElse(t *testing.T) {
	// then/else sit on the same column as the if itself; the statement
	// ends they produce are skipped inside the if-expression.
	f := parseSource(t, "f = if c\n    then 1\n    else 2")
	requireClean(t, f)

	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprIf {
		t.Fatalf("body kind = %v", body.Kind)
	}
	if !body.Else.IsValid() {
		t.Fatalf("else arm missing")
	}
}

func TestParse_IfWithoutElse(t *testing.T) {
	f := parseSource(t, "f = if c then 1")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprIf || body.Else.IsValid() {
		t.Fatalf("body = %+v, want if without else", body)
	}
}

func TestParse_While(t *testing.T) {
	f := parseSource(t, "f = while c do step")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprWhile {
		t.Fatalf("body kind = %v", body.Kind)
	}
}

func TestParse_Case(t *testing.T) {
	f := parseSource(t, "f = case m of\n      Just x -> x\n      Nothing -> 0")
	requireClean(t, f)

	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprCase || len(body.Alts) != 2 {
		t.Fatalf("body = kind %v alts %d", body.Kind, len(body.Alts))
	}
	p0 := f.Builder.Pats.Get(body.Alts[0].Pat)
	if p0.Kind != ast.PatCon || f.name(p0.Name) != "Just" || len(p0.Args) != 1 {
		t.Fatalf("alt 0 pattern = %+v", p0)
	}
	p1 := f.Builder.Pats.Get(body.Alts[1].Pat)
	if p1.Kind != ast.PatCon || f.name(p1.Name) != "Nothing" {
		t.Fatalf("alt 1 pattern = %+v", p1)
	}
}

func TestParse_Lambda(t *testing.T) {
	f := parseSource(t, "f = \\x y -> x")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprLam || len(body.Params) != 2 {
		t.Fatalf("body = kind %v params %d", body.Kind, len(body.Params))
	}
}

func TestParse_InfixRightLeaning(t *testing.T) {
	f := parseSource(t, "f = a - b - c")
	requireClean(t, f)

	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprInfix {
		t.Fatalf("body kind = %v", body.Kind)
	}
	// The parser always leans right; fixity is applied later.
	if l := f.expr(body.L); l.Kind != ast.ExprVar {
		t.Fatalf("lhs = %v, want Var", l.Kind)
	}
	r := f.expr(body.R)
	if r.Kind != ast.ExprInfix {
		t.Fatalf("rhs = %v, want the nested Infix of a right-leaning tree", r.Kind)
	}
}

func TestParse_BacktickInfix(t *testing.T) {
	f := parseSource(t, "f = a `div` b")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprInfix || f.name(body.Op) != "div" {
		t.Fatalf("body = kind %v op %q", body.Kind, f.name(body.Op))
	}
}

func TestParse_DollarShortcut(t *testing.T) {
	f := parseSource(t, "f = g $ 1")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprApp || len(body.Args) != 1 {
		t.Fatalf("body = kind %v args %d", body.Kind, len(body.Args))
	}
}

func TestParse_Assignment(t *testing.T) {
	f := parseSource(t, "f =\n  var n = 0\n  n = 1")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprMulti || len(body.Args) != 2 {
		t.Fatalf("body = %+v", body)
	}
	assign := f.expr(body.Args[1])
	if assign.Kind != ast.ExprAssign {
		t.Fatalf("second stmt = %v, want Assign", assign.Kind)
	}
}

func TestParse_Coerce(t *testing.T) {
	f := parseSource(t, "f = 1 : Int")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprCoerce {
		t.Fatalf("body kind = %v", body.Kind)
	}
}

func TestParse_Application(t *testing.T) {
	f := parseSource(t, "f = g x y")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprApp || len(body.Args) != 2 {
		t.Fatalf("body = kind %v args %d", body.Kind, len(body.Args))
	}
}

func TestParse_FieldAccess(t *testing.T) {
	f := parseSource(t, "f = p.x")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprField {
		t.Fatalf("body kind = %v", body.Kind)
	}
}

func TestParse_TupleConstruct(t *testing.T) {
	f := parseSource(t, "f = {x = 1, 2}")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprConstruct || len(body.Fields) != 2 {
		t.Fatalf("body = kind %v fields %d", body.Kind, len(body.Fields))
	}
	if f.name(body.Fields[0].Name) != "x" {
		t.Fatalf("field 0 name = %q", f.name(body.Fields[0].Name))
	}
	if body.Fields[1].Name != source.NoStringID {
		t.Fatalf("field 1 should be positional")
	}
}

func TestParse_UnitValue(t *testing.T) {
	f := parseSource(t, "f = {}")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprUnit {
		t.Fatalf("body kind = %v", body.Kind)
	}
}

func TestParse_ConstructorExpr(t *testing.T) {
	f := parseSource(t, "f = Nothing")
	requireClean(t, f)
	body := f.expr(f.decl(t, 0).Body)
	if body.Kind != ast.ExprConstruct || !body.Type.IsValid() {
		t.Fatalf("body = %+v", body)
	}
}

func TestParse_PointerType(t *testing.T) {
	f := parseSource(t, "f {p: *Int} = p")
	requireClean(t, f)
	args := f.Builder.Types.Get(f.decl(t, 0).Args)
	pt := f.Builder.Types.Get(args.Fields[0].Type)
	if pt.Kind != ast.TypePtr {
		t.Fatalf("field type = %v, want pointer", pt.Kind)
	}
	inner := f.Builder.Types.Get(pt.Inner)
	if inner.Kind != ast.TypeCon || f.name(inner.Con) != "Int" {
		t.Fatalf("pointer inner = %+v", inner)
	}
}

func TestParse_ErrorRecovery(t *testing.T) {
	f := parseSource(t, "f @ 1\ng = 2")
	if !f.Bag.HasErrors() {
		t.Fatalf("expected diagnostics for the malformed declaration")
	}
	// The file keeps parsing past the bad statement.
	found := false
	for i := range f.Module.Declarations {
		if f.name(f.decl(t, i).Name) == "g" {
			found = true
		}
	}
	if !found {
		t.Fatalf("declaration after the error was not recovered")
	}
}
