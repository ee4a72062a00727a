package token_test

import (
	"testing"

	"clow/internal/source"
	"clow/internal/token"
)

func TestIsLiteral(t *testing.T) {
	loc := source.Loc{Line: 1, Col: 1}
	lits := []token.Token{
		token.NewInt(loc, 42),
		token.NewFloat(loc, 4.2),
		token.NewStr(loc, "hi"),
	}
	for _, tok := range lits {
		if !tok.IsLiteral() {
			t.Fatalf("%v should be literal", tok)
		}
	}
	non := []token.Token{
		token.NewIdent(loc, "x"),
		token.NewKeyword(loc, token.KwIf),
		token.NewPunct(token.LParen, loc),
		token.NewOp(loc, token.OpAdd, token.OpBinary),
	}
	for _, tok := range non {
		if tok.IsLiteral() {
			t.Fatalf("%v must NOT be literal", tok)
		}
	}
}

func TestIsPunct(t *testing.T) {
	loc := source.Loc{Line: 1, Col: 1}
	punct := []token.Kind{
		token.Dot, token.Semi, token.Colon, token.Comma, token.Arrow,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LCurly, token.RCurly,
	}
	for _, k := range punct {
		if !token.NewPunct(k, loc).IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	if token.NewIdent(loc, "x").IsPunct() {
		t.Fatal("Ident must NOT be punct")
	}
	if token.NewPunct(token.EOF, loc).IsPunct() {
		t.Fatal("EOF must NOT be punct")
	}
}

func TestToken_ZeroCopyText(t *testing.T) {
	// Текст токена — срез исходного буфера, не копия.
	buf := source.New("mem", `say "hello" end`)
	contents := buf.Text[5:10]
	tok := token.NewStr(buf.LocAt(4), contents)
	if tok.Text != "hello" {
		t.Fatalf("Text = %q, want %q", tok.Text, "hello")
	}
	if tok.Loc != (source.Loc{Line: 1, Col: 5, LineStart: 0}) {
		t.Fatalf("Loc = %+v", tok.Loc)
	}
}

func TestToken_String(t *testing.T) {
	loc := source.Loc{Line: 1, Col: 1}
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.NewInt(loc, 7), "Int(7)"},
		{token.NewStr(loc, "s"), `Str("s")`},
		{token.NewKeyword(loc, token.KwFun), "Keyword(fn)"},
		{token.NewOp(loc, token.OpSub, token.OpUnary), "Op(-, unary)"},
		{token.NewPunct(token.Semi, loc), "Semi"},
	}
	for _, tt := range cases {
		if got := tt.tok.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
