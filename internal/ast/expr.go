package ast

import (
	"clow/internal/source"
)

// ExprKind enumerates the different kinds of expression nodes.
type ExprKind uint8

const (
	// ExprInt represents an integer literal.
	ExprInt ExprKind = iota
	// ExprFloat represents a float literal.
	ExprFloat
	// ExprIdent represents an identifier reference.
	ExprIdent
	// ExprString represents a string literal.
	ExprString
	// ExprArray represents an array literal.
	ExprArray
	// ExprUnary represents a prefix operation.
	ExprUnary
	// ExprBinary represents a binary operation with exactly two operands.
	ExprBinary
	// ExprVar represents one or more variable declarations sharing a type.
	ExprVar
	// ExprFunc represents a function definition.
	ExprFunc
	// ExprClass represents a class definition.
	ExprClass
	// ExprIf represents an if/elif*/else chain as a single node.
	ExprIf
)

var exprKindNames = [...]string{
	ExprInt:    "Int",
	ExprFloat:  "Float",
	ExprIdent:  "Ident",
	ExprString: "String",
	ExprArray:  "Array",
	ExprUnary:  "Unary",
	ExprBinary: "Binary",
	ExprVar:    "Var",
	ExprFunc:   "Func",
	ExprClass:  "Class",
	ExprIf:     "If",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "ExprKind(?)"
}

// Expr is one syntax node: its kind, where it starts, and an index into the
// kind-specific payload arena. Nodes are immutable after construction.
type Expr struct {
	Kind    ExprKind
	Loc     source.Loc
	Payload PayloadID
}
