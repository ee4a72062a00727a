package source

import (
	"strings"
)

// Context names a source buffer for diagnostics: a human-readable label
// (usually a file path) plus a borrowed view of the full text. It does not
// own the text and is cheap to copy.
type Context struct {
	Name string
	Text string
}

// NewContext builds a Context over the given label and text.
func NewContext(name, text string) Context {
	return Context{Name: name, Text: text}
}

// Line returns the full text of the line starting at loc.LineStart, without
// the terminator. The final line of a buffer with no trailing newline is
// returned whole. A LineStart past the end of the buffer yields "".
// The producer guarantees LineStart falls on a valid boundary; no recovery
// is attempted here.
func (c Context) Line(loc Loc) string {
	if loc.LineStart >= uint32(len(c.Text)) {
		return ""
	}
	rest := c.Text[loc.LineStart:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}
