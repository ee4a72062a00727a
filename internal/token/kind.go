package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Dot represents the '.' token.
	Dot // .
	// Semi represents the ';' token.
	Semi // ;
	// Colon represents the ':' token.
	Colon // :
	// Comma represents the ',' token.
	Comma // ,
	// Arrow represents the '->' token.
	Arrow // ->
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// LBrace represents the '[' token.
	LBrace // [
	// RBrace represents the ']' token.
	RBrace // ]
	// LCurly represents the '{' token.
	LCurly // {
	// RCurly represents the '}' token.
	RCurly // }

	// Int represents an integer literal; the value lives in Token.Int.
	Int
	// Float represents a float literal; the value lives in Token.Float.
	Float
	// Str represents a string literal; the contents live in Token.Text.
	Str

	// Ident represents an identifier; the name lives in Token.Text.
	Ident
	// Kw represents a language keyword; the value lives in Token.Word.
	Kw
	// Op represents an operator; the value lives in Token.Op with its
	// reading in Token.Form.
	Op
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Dot:     "Dot",
	Semi:    "Semi",
	Colon:   "Colon",
	Comma:   "Comma",
	Arrow:   "Arrow",
	LParen:  "LParen",
	RParen:  "RParen",
	LBrace:  "LBrace",
	RBrace:  "RBrace",
	LCurly:  "LCurly",
	RCurly:  "RCurly",
	Int:     "Int",
	Float:   "Float",
	Str:     "Str",
	Ident:   "Ident",
	Kw:      "Keyword",
	Op:      "Op",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
