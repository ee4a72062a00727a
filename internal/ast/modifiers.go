package ast

import (
	"strings"
)

// Modifiers is the named flag set carried by function and class definitions.
// The parser decides which modifiers a definition gets; this layer only
// stores them. Unknown future bits stay representable.
type Modifiers uint8

const (
	// ModPub marks a public definition.
	ModPub Modifiers = 1 << iota
	// ModConst marks a const definition.
	ModConst
)

// Has reports whether every bit of m is set.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

func (mods Modifiers) String() string {
	if mods == 0 {
		return ""
	}
	var parts []string
	if mods.Has(ModPub) {
		parts = append(parts, "pub")
	}
	if mods.Has(ModConst) {
		parts = append(parts, "const")
	}
	return strings.Join(parts, " ")
}
