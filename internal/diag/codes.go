package diag

import (
	"fmt"
)

// Code identifies one diagnosable failure mode. The numbering leaves room
// for parser (2000) and later-phase ranges as they get specified.
type Code uint16

const (
	// UnknownCode - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001
)

func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", c)
	default:
		return fmt.Sprintf("E%04d", c)
	}
}

// Message returns the human-readable text rendered after the location
// header. Stable: golden tests depend on the exact wording.
func (c Code) Message() string {
	switch c {
	case LexUnterminatedString:
		return "Unterminated string literal"
	default:
		return "Unknown error"
	}
}
