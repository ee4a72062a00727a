// Package types defines the type-expression sublanguage embedded in
// variable, function and class nodes: five built-in scalar kinds plus
// nominal and generic user types. Values are immutable once built.
package types

import (
	"strings"
)

// Kind discriminates the type-expression variants.
type Kind uint8

const (
	// KindByte is the built-in u8 scalar.
	KindByte Kind = iota
	// KindInt is the built-in i32 scalar.
	KindInt
	// KindLong is the built-in i64 scalar.
	KindLong
	// KindFloat is the built-in f32 scalar.
	KindFloat
	// KindDouble is the built-in f64 scalar.
	KindDouble
	// KindClass is a user-defined type referenced by name. Whether the name
	// exists is the resolution phase's business, not this layer's.
	KindClass
	// KindGeneric is a named template applied to type arguments. Never
	// produced by FromName; it takes explicit type-argument syntax.
	KindGeneric
)

// Type is one type expression. Name is meaningful for KindClass and
// KindGeneric; Args only for KindGeneric. Name is a slice of the source
// buffer the type was read from.
type Type struct {
	Kind Kind
	Name string
	Args []Type
}

// scalarNames maps the five reserved lowercase spellings to scalar kinds.
// Регистрозависимо, без нормализации.
var scalarNames = map[string]Kind{
	"byte":   KindByte,
	"int":    KindInt,
	"long":   KindLong,
	"float":  KindFloat,
	"double": KindDouble,
}

// FromName converts an identifier into a Type. Total over all strings: the
// five reserved spellings become scalars, everything else a Class reference
// with the name preserved exactly.
func FromName(name string) Type {
	if kind, ok := scalarNames[name]; ok {
		return Type{Kind: kind}
	}
	return Type{Kind: KindClass, Name: name}
}

// Class builds a nominal type reference.
func Class(name string) Type {
	return Type{Kind: KindClass, Name: name}
}

// Generic builds a parameterized type applying args to the named template.
func Generic(name string, args ...Type) Type {
	return Type{Kind: KindGeneric, Name: name, Args: args}
}

// IsScalar reports whether the type is one of the five built-in kinds.
func (t Type) IsScalar() bool {
	return t.Kind <= KindDouble
}

// Equal reports structural equality of two type expressions.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Name != other.Name || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// String renders the canonical spelling: the reserved name for scalars, the
// bare name for classes, name<a, b> for generics.
func (t Type) String() string {
	switch t.Kind {
	case KindByte:
		return "byte"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindClass:
		return t.Name
	case KindGeneric:
		var b strings.Builder
		b.WriteString(t.Name)
		b.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte('>')
		return b.String()
	}
	return "Type(?)"
}
