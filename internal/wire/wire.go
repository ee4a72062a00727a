// Package wire serializes the front end's data shapes so separate
// processes (lexer, parser, inspectors) can hand them to each other.
// Artifacts are msgpack with an explicit schema version; decode rejects
// versions it does not know. Serialization necessarily copies string
// payloads once — decoded tokens and nodes alias the artifact's own
// decoded source, not the producer's buffer.
package wire

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"clow/internal/source"
	"clow/internal/token"
)

// Schema versions - increment when the payload format changes.
const (
	tokensSchemaVersion uint16 = 1
	exprsSchemaVersion  uint16 = 1
)

// ErrSchema is returned when an artifact carries an unknown schema version.
var ErrSchema = errors.New("unsupported artifact schema")

type locRec struct {
	Line      uint32
	Col       uint32
	LineStart uint32
}

func encodeLoc(l source.Loc) locRec {
	return locRec{Line: l.Line, Col: l.Col, LineStart: l.LineStart}
}

func (r locRec) decode() source.Loc {
	return source.Loc{Line: r.Line, Col: r.Col, LineStart: r.LineStart}
}

type tokenRec struct {
	Kind  uint8
	Loc   locRec
	Int   uint64
	Float float64
	Text  string
	Word  uint8
	Op    uint8
	Form  uint8
}

type tokensArtifact struct {
	Schema uint16
	Name   string
	Source string
	Tokens []tokenRec
}

// EncodeTokens serializes a token stream together with the context it was
// produced from.
func EncodeTokens(ctx source.Context, toks []token.Token) ([]byte, error) {
	artifact := tokensArtifact{
		Schema: tokensSchemaVersion,
		Name:   ctx.Name,
		Source: ctx.Text,
		Tokens: make([]tokenRec, 0, len(toks)),
	}
	for _, t := range toks {
		artifact.Tokens = append(artifact.Tokens, tokenRec{
			Kind:  uint8(t.Kind),
			Loc:   encodeLoc(t.Loc),
			Int:   t.Int,
			Float: t.Float,
			Text:  t.Text,
			Word:  uint8(t.Word),
			Op:    uint8(t.Op),
			Form:  uint8(t.Form),
		})
	}
	return msgpack.Marshal(&artifact)
}

// DecodeTokens deserializes a token artifact. The returned context owns the
// decoded source text; tokens reference it.
func DecodeTokens(data []byte) (source.Context, []token.Token, error) {
	var artifact tokensArtifact
	if err := msgpack.Unmarshal(data, &artifact); err != nil {
		return source.Context{}, nil, fmt.Errorf("decode token artifact: %w", err)
	}
	if artifact.Schema != tokensSchemaVersion {
		return source.Context{}, nil, fmt.Errorf("%w: tokens v%d", ErrSchema, artifact.Schema)
	}

	ctx := source.NewContext(artifact.Name, artifact.Source)
	toks := make([]token.Token, 0, len(artifact.Tokens))
	for i, rec := range artifact.Tokens {
		if rec.Kind > uint8(token.Op) {
			return source.Context{}, nil, fmt.Errorf("token %d: unknown kind %d", i, rec.Kind)
		}
		toks = append(toks, token.Token{
			Kind:  token.Kind(rec.Kind),
			Loc:   rec.Loc.decode(),
			Int:   rec.Int,
			Float: rec.Float,
			Text:  rec.Text,
			Word:  token.Keyword(rec.Word),
			Op:    token.Operator(rec.Op),
			Form:  token.OpForm(rec.Form),
		})
	}
	return ctx, toks, nil
}
