package ast

type (
	// ExprID identifies an expression node within one Exprs store.
	ExprID uint32
	// PayloadID identifies the kind-specific payload of a node.
	PayloadID uint32
)

const (
	// NoExprID marks an absent child (e.g. a declaration without an
	// initializer).
	NoExprID ExprID = 0
	// NoPayloadID marks a node without payload.
	NoPayloadID PayloadID = 0
)

// IsValid reports whether the ID refers to an allocated node.
func (id ExprID) IsValid() bool { return id != NoExprID }
