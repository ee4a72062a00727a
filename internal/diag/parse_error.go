// Package diag carries parse failures from the producer phases (lexer,
// parser) to a renderer. It never recovers or retries; whether an error
// aborts a compilation unit is the producing phase's policy.
package diag

import (
	"fmt"
	"io"
	"strings"

	"clow/internal/source"
)

// ParseError is one failure: what went wrong, which source it happened in,
// and where. The Context borrows the same buffer the error's Loc was
// produced from, which is what makes O(1) line recovery possible.
type ParseError struct {
	Code Code
	Ctx  source.Context
	Loc  source.Loc
}

// NewParseError builds a ParseError over the given context and location.
func NewParseError(code Code, ctx source.Context, loc source.Loc) ParseError {
	return ParseError{Code: code, Ctx: ctx, Loc: loc}
}

// Render writes the diagnostic in the stable contract format:
//
//	Error on {name}:{line}:{col}> {message}
//	  {full text of the offending line}
//
// The offending line is recovered by slicing the buffer at Loc.LineStart;
// rendering cannot fail for any defined code.
func (e ParseError) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Error on %s:%d:%d> %s\n  %s",
		e.Ctx.Name, e.Loc.Line, e.Loc.Col, e.Code.Message(), e.Ctx.Line(e.Loc))
	return err
}

// String returns the rendered diagnostic.
func (e ParseError) String() string {
	var b strings.Builder
	_ = e.Render(&b)
	return b.String()
}

// Error makes ParseError usable as a Go error.
func (e ParseError) Error() string {
	return e.String()
}
