package token

import (
	"fmt"

	"clow/internal/source"
)

// Token represents a single lexical unit with the location of its first
// character. Only the payload field matching Kind is meaningful; the rest
// stay zero.
type Token struct {
	Kind  Kind
	Loc   source.Loc
	Int   uint64  // Kind == Int
	Float float64 // Kind == Float
	Text  string  // Kind == Str | Ident; slice of the source buffer
	Word  Keyword // Kind == Kw
	Op    Operator
	Form  OpForm // reading of Op, decided by the lexer
}

// NewPunct builds a punctuation token (Dot..RCurly) or EOF/Invalid.
func NewPunct(kind Kind, loc source.Loc) Token {
	return Token{Kind: kind, Loc: loc}
}

// NewInt builds an integer literal token.
func NewInt(loc source.Loc, value uint64) Token {
	return Token{Kind: Int, Loc: loc, Int: value}
}

// NewFloat builds a float literal token.
func NewFloat(loc source.Loc, value float64) Token {
	return Token{Kind: Float, Loc: loc, Float: value}
}

// NewStr builds a string literal token. text must be a slice of the source
// buffer the loc was produced from.
func NewStr(loc source.Loc, text string) Token {
	return Token{Kind: Str, Loc: loc, Text: text}
}

// NewIdent builds an identifier token. name must be a slice of the source
// buffer the loc was produced from.
func NewIdent(loc source.Loc, name string) Token {
	return Token{Kind: Ident, Loc: loc, Text: name}
}

// NewKeyword builds a keyword token.
func NewKeyword(loc source.Loc, word Keyword) Token {
	return Token{Kind: Kw, Loc: loc, Word: word}
}

// NewOp builds an operator token with its reading.
func NewOp(loc source.Loc, op Operator, form OpForm) Token {
	return Token{Kind: Op, Loc: loc, Op: op, Form: form}
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Int, Float, Str:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Dot, Semi, Colon, Comma, Arrow, LParen, RParen, LBrace, RBrace, LCurly, RCurly:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind == Kw }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// String renders the token for debug output; it is not the canonical source
// spelling except where the two coincide.
func (t Token) String() string {
	switch t.Kind {
	case Int:
		return fmt.Sprintf("Int(%d)", t.Int)
	case Float:
		return fmt.Sprintf("Float(%g)", t.Float)
	case Str:
		return fmt.Sprintf("Str(%q)", t.Text)
	case Ident:
		return fmt.Sprintf("Ident(%s)", t.Text)
	case Kw:
		return fmt.Sprintf("Keyword(%s)", t.Word)
	case Op:
		return fmt.Sprintf("Op(%s, %s)", t.Op, t.Form)
	default:
		return t.Kind.String()
	}
}
