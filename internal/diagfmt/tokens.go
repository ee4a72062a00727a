package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"clow/internal/token"
)

// TokenOutput is the machine-readable shape of one token.
type TokenOutput struct {
	Kind  string  `json:"kind"`
	Line  uint32  `json:"line"`
	Col   uint32  `json:"col"`
	Int   uint64  `json:"int,omitempty"`
	Float float64 `json:"float,omitempty"`
	Text  string  `json:"text,omitempty"`
	Word  string  `json:"word,omitempty"`
	Op    string  `json:"op,omitempty"`
	Form  string  `json:"form,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-20s at %d:%d\n",
			i+1, tok.String(), tok.Loc.Line, tok.Loc.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		entry := TokenOutput{
			Kind: tok.Kind.String(),
			Line: tok.Loc.Line,
			Col:  tok.Loc.Col,
		}
		switch tok.Kind {
		case token.Int:
			entry.Int = tok.Int
		case token.Float:
			entry.Float = tok.Float
		case token.Str, token.Ident:
			entry.Text = tok.Text
		case token.Kw:
			entry.Word = tok.Word.String()
		case token.Op:
			entry.Op = tok.Op.String()
			entry.Form = tok.Form.String()
		}
		out = append(out, entry)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
