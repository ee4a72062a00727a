package source

import (
	"fmt"
)

// Loc is a resolved position in a source buffer: 1-based line and column
// plus the byte offset where the line begins. Carrying LineStart lets any
// consumer recover the full offending line in O(1) without re-scanning the
// buffer from the start.
type Loc struct {
	Line      uint32 // 1-based
	Col       uint32 // 1-based
	LineStart uint32 // в байтах, начало строки Line
}

// IsValid reports whether the location has been filled in at all.
// The zero Loc (line 0) is the "no location" marker.
func (l Loc) IsValid() bool {
	return l.Line != 0
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}
