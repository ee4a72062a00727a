package ast_test

import (
	"testing"

	"clow/internal/ast"
	"clow/internal/source"
	"clow/internal/token"
	"clow/internal/types"
)

func loc(line, col, start uint32) source.Loc {
	return source.Loc{Line: line, Col: col, LineStart: start}
}

func TestExprs_Literals(t *testing.T) {
	exprs := ast.NewExprs(0)

	intID := exprs.NewInt(loc(1, 1, 0), 42)
	floatID := exprs.NewFloat(loc(1, 4, 0), 2.5)
	identID := exprs.NewIdent(loc(2, 1, 10), "x")
	strID := exprs.NewString(loc(2, 3, 10), "hi")

	if data, ok := exprs.Int(intID); !ok || data.Value != 42 {
		t.Fatalf("Int payload = %+v, %v", data, ok)
	}
	if data, ok := exprs.Float(floatID); !ok || data.Value != 2.5 {
		t.Fatalf("Float payload = %+v, %v", data, ok)
	}
	if data, ok := exprs.Ident(identID); !ok || data.Name != "x" {
		t.Fatalf("Ident payload = %+v, %v", data, ok)
	}
	if data, ok := exprs.String(strID); !ok || data.Value != "hi" {
		t.Fatalf("String payload = %+v, %v", data, ok)
	}

	// Доступ с неверным kind не срабатывает.
	if _, ok := exprs.Float(intID); ok {
		t.Fatal("Float accessor accepted an Int node")
	}
	if _, ok := exprs.Int(ast.NoExprID); ok {
		t.Fatal("Int accessor accepted NoExprID")
	}
}

func TestExprs_BinaryIsAlwaysPair(t *testing.T) {
	exprs := ast.NewExprs(0)
	left := exprs.NewInt(loc(1, 1, 0), 1)
	right := exprs.NewInt(loc(1, 5, 0), 2)
	bin := exprs.NewBinary(loc(1, 3, 0), token.OpAdd, left, right)

	data, ok := exprs.Binary(bin)
	if !ok {
		t.Fatal("Binary payload missing")
	}
	if data.Op != token.OpAdd || data.Left != left || data.Right != right {
		t.Fatalf("Binary payload = %+v", data)
	}

	node := exprs.Get(bin)
	if node.Kind != ast.ExprBinary || node.Loc != loc(1, 3, 0) {
		t.Fatalf("node = %+v", node)
	}
}

func TestExprs_Unary(t *testing.T) {
	exprs := ast.NewExprs(0)
	operand := exprs.NewIdent(loc(1, 2, 0), "flag")
	un := exprs.NewUnary(loc(1, 1, 0), token.OpNot, operand)

	data, ok := exprs.Unary(un)
	if !ok || data.Op != token.OpNot || data.Operand != operand {
		t.Fatalf("Unary payload = %+v, %v", data, ok)
	}
}

func TestExprs_VarMultiDeclaration(t *testing.T) {
	// Моделирует `int a, b = 1, c;` — общий тип, по одному
	// опциональному инициализатору на имя.
	exprs := ast.NewExprs(0)
	one := exprs.NewInt(loc(1, 12, 0), 1)
	varID := exprs.NewVar(loc(1, 1, 0), types.FromName("int"), []ast.VarDecl{
		{Name: "a"},
		{Name: "b", Init: one},
		{Name: "c"},
	})

	data, ok := exprs.Var(varID)
	if !ok {
		t.Fatal("Var payload missing")
	}
	if !data.Type.Equal(types.FromName("int")) {
		t.Fatalf("Type = %v", data.Type)
	}
	if len(data.Decls) != 3 {
		t.Fatalf("Decls = %+v", data.Decls)
	}
	if data.Decls[0].Init.IsValid() || data.Decls[2].Init.IsValid() {
		t.Fatal("a and c must have no initializer")
	}
	if data.Decls[1].Init != one {
		t.Fatalf("b initializer = %v, want %v", data.Decls[1].Init, one)
	}
}

func TestExprs_FuncAndClass(t *testing.T) {
	exprs := ast.NewExprs(0)
	body := []ast.ExprID{exprs.NewInt(loc(2, 3, 9), 0)}
	fnID := exprs.NewFunc(loc(1, 1, 0), "main",
		ast.ModPub, []types.Type{types.FromName("int")}, body)

	fn, ok := exprs.Func(fnID)
	if !ok || fn.Name != "main" {
		t.Fatalf("Func payload = %+v, %v", fn, ok)
	}
	if !fn.Mods.Has(ast.ModPub) || fn.Mods.Has(ast.ModConst) {
		t.Fatalf("Mods = %v", fn.Mods)
	}
	if len(fn.Types) != 1 || len(fn.Body) != 1 {
		t.Fatalf("Types/Body = %v/%v", fn.Types, fn.Body)
	}

	clsID := exprs.NewClass(loc(4, 1, 20), "Point",
		ast.ModPub|ast.ModConst, []types.Type{types.FromName("float")}, nil)
	cls, ok := exprs.Class(clsID)
	if !ok || cls.Name != "Point" || !cls.Mods.Has(ast.ModPub|ast.ModConst) {
		t.Fatalf("Class payload = %+v, %v", cls, ok)
	}
}

func TestExprs_IfChain(t *testing.T) {
	exprs := ast.NewExprs(0)
	cond1 := exprs.NewIdent(loc(1, 4, 0), "a")
	body1 := []ast.ExprID{exprs.NewInt(loc(1, 9, 0), 1)}
	cond2 := exprs.NewIdent(loc(2, 6, 12), "b")
	body2 := []ast.ExprID{exprs.NewInt(loc(2, 11, 12), 2)}
	elseBody := []ast.ExprID{exprs.NewInt(loc(3, 8, 26), 3)}

	ifID := exprs.NewIf(loc(1, 1, 0), []ast.IfArm{
		{Cond: cond1, Body: body1},
		{Cond: cond2, Body: body2},
	}, elseBody)

	data, ok := exprs.If(ifID)
	if !ok {
		t.Fatal("If payload missing")
	}
	if len(data.Arms) != 2 {
		t.Fatalf("Arms = %+v", data.Arms)
	}
	if data.Arms[0].Cond != cond1 || data.Arms[1].Cond != cond2 {
		t.Fatal("arm conditions misattached")
	}
	if len(data.Else) != 1 {
		t.Fatalf("Else = %+v", data.Else)
	}

	// Цепочка без else.
	noElse := exprs.NewIf(loc(5, 1, 40), []ast.IfArm{{Cond: cond1, Body: body1}}, nil)
	data, _ = exprs.If(noElse)
	if data.Else != nil {
		t.Fatal("absent else must be nil")
	}
}

func TestModifiers_String(t *testing.T) {
	cases := []struct {
		mods ast.Modifiers
		want string
	}{
		{0, ""},
		{ast.ModPub, "pub"},
		{ast.ModConst, "const"},
		{ast.ModPub | ast.ModConst, "pub const"},
	}
	for _, tt := range cases {
		if got := tt.mods.String(); got != tt.want {
			t.Fatalf("Modifiers(%b).String() = %q, want %q", tt.mods, got, tt.want)
		}
	}
}
