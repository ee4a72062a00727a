package ast

import (
	"clow/internal/source"
	"clow/internal/token"
	"clow/internal/types"
)

// ExprIntData is the payload of an integer literal.
type ExprIntData struct {
	Value uint64
}

// ExprFloatData is the payload of a float literal.
type ExprFloatData struct {
	Value float64
}

// ExprIdentData is the payload of an identifier reference. Name is a slice
// of the source buffer.
type ExprIdentData struct {
	Name string
}

// ExprStringData is the payload of a string literal. Value is a slice of
// the source buffer.
type ExprStringData struct {
	Value string
}

// ExprArrayData is the payload of an array literal.
type ExprArrayData struct {
	Elems []ExprID
}

// ExprUnaryData is the payload of a prefix operation.
type ExprUnaryData struct {
	Op      token.Operator
	Operand ExprID
}

// ExprBinaryData is the payload of a binary operation. A binary node always
// has exactly two operands, created together; the struct makes a third (or
// a missing one) unrepresentable.
type ExprBinaryData struct {
	Op    token.Operator
	Left  ExprID
	Right ExprID
}

// VarDecl is one declared name with its optional initializer. NoExprID
// means no initializer; each name owns at most one.
type VarDecl struct {
	Name string // slice of the source buffer
	Init ExprID
}

// ExprVarData is the payload of a declaration like `int a, b = 1, c;`:
// every name shares the declared type.
type ExprVarData struct {
	Type  types.Type
	Decls []VarDecl
}

// ExprFuncData is the payload of a function definition. Types holds the
// parameter and return types in parser order.
type ExprFuncData struct {
	Name  string
	Mods  Modifiers
	Types []types.Type
	Body  []ExprID
}

// ExprClassData is the payload of a class definition, shaped like a
// function's: member types plus a body of nodes.
type ExprClassData struct {
	Name  string
	Mods  Modifiers
	Types []types.Type
	Body  []ExprID
}

// IfArm is one condition with the block it guards.
type IfArm struct {
	Cond ExprID
	Body []ExprID
}

// ExprIfData is the payload of an if/elif*/else chain. Else is nil when the
// chain has no else block.
type ExprIfData struct {
	Arms []IfArm
	Else []ExprID
}

// Exprs manages allocation of expression nodes. One Exprs store holds one
// tree (or forest) derived from one source buffer.
type Exprs struct {
	Arena    *Arena[Expr]
	Ints     *Arena[ExprIntData]
	Floats   *Arena[ExprFloatData]
	Idents   *Arena[ExprIdentData]
	Strings  *Arena[ExprStringData]
	Arrays   *Arena[ExprArrayData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
	Vars     *Arena[ExprVarData]
	Funcs    *Arena[ExprFuncData]
	Classes  *Arena[ExprClassData]
	Ifs      *Arena[ExprIfData]
}

// NewExprs creates an Exprs with every arena preallocated to capHint.
// If capHint is 0, a default of 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Ints:     NewArena[ExprIntData](capHint),
		Floats:   NewArena[ExprFloatData](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Strings:  NewArena[ExprStringData](capHint),
		Arrays:   NewArena[ExprArrayData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Vars:     NewArena[ExprVarData](capHint),
		Funcs:    NewArena[ExprFuncData](capHint),
		Classes:  NewArena[ExprClassData](capHint),
		Ifs:      NewArena[ExprIfData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, loc source.Loc, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Loc:     loc,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID, nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Len returns the number of allocated nodes.
func (e *Exprs) Len() uint32 {
	return e.Arena.Len()
}

// NewInt creates an integer literal node.
func (e *Exprs) NewInt(loc source.Loc, value uint64) ExprID {
	payload := e.Ints.Allocate(ExprIntData{Value: value})
	return e.new(ExprInt, loc, PayloadID(payload))
}

// Int returns the integer payload for the given node.
func (e *Exprs) Int(id ExprID) (*ExprIntData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprInt {
		return nil, false
	}
	return e.Ints.Get(uint32(expr.Payload)), true
}

// NewFloat creates a float literal node.
func (e *Exprs) NewFloat(loc source.Loc, value float64) ExprID {
	payload := e.Floats.Allocate(ExprFloatData{Value: value})
	return e.new(ExprFloat, loc, PayloadID(payload))
}

// Float returns the float payload for the given node.
func (e *Exprs) Float(id ExprID) (*ExprFloatData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFloat {
		return nil, false
	}
	return e.Floats.Get(uint32(expr.Payload)), true
}

// NewIdent creates an identifier node. name must be a slice of the source
// buffer the loc was produced from.
func (e *Exprs) NewIdent(loc source.Loc, name string) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, loc, PayloadID(payload))
}

// Ident returns the identifier payload for the given node.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewString creates a string literal node. value must be a slice of the
// source buffer.
func (e *Exprs) NewString(loc source.Loc, value string) ExprID {
	payload := e.Strings.Allocate(ExprStringData{Value: value})
	return e.new(ExprString, loc, PayloadID(payload))
}

// String returns the string payload for the given node.
func (e *Exprs) String(id ExprID) (*ExprStringData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprString {
		return nil, false
	}
	return e.Strings.Get(uint32(expr.Payload)), true
}

// NewArray creates an array literal node.
func (e *Exprs) NewArray(loc source.Loc, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: elems})
	return e.new(ExprArray, loc, PayloadID(payload))
}

// Array returns the array payload for the given node.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewUnary creates a prefix operation node.
func (e *Exprs) NewUnary(loc source.Loc, op token.Operator, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, loc, PayloadID(payload))
}

// Unary returns the unary payload for the given node.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary operation node.
func (e *Exprs) NewBinary(loc source.Loc, op token.Operator, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, loc, PayloadID(payload))
}

// Binary returns the binary payload for the given node.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewVar creates a declaration node. Every decl shares typ.
func (e *Exprs) NewVar(loc source.Loc, typ types.Type, decls []VarDecl) ExprID {
	payload := e.Vars.Allocate(ExprVarData{Type: typ, Decls: decls})
	return e.new(ExprVar, loc, PayloadID(payload))
}

// Var returns the declaration payload for the given node.
func (e *Exprs) Var(id ExprID) (*ExprVarData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprVar {
		return nil, false
	}
	return e.Vars.Get(uint32(expr.Payload)), true
}

// NewFunc creates a function definition node.
func (e *Exprs) NewFunc(loc source.Loc, name string, mods Modifiers, typs []types.Type, body []ExprID) ExprID {
	payload := e.Funcs.Allocate(ExprFuncData{Name: name, Mods: mods, Types: typs, Body: body})
	return e.new(ExprFunc, loc, PayloadID(payload))
}

// Func returns the function payload for the given node.
func (e *Exprs) Func(id ExprID) (*ExprFuncData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFunc {
		return nil, false
	}
	return e.Funcs.Get(uint32(expr.Payload)), true
}

// NewClass creates a class definition node.
func (e *Exprs) NewClass(loc source.Loc, name string, mods Modifiers, typs []types.Type, body []ExprID) ExprID {
	payload := e.Classes.Allocate(ExprClassData{Name: name, Mods: mods, Types: typs, Body: body})
	return e.new(ExprClass, loc, PayloadID(payload))
}

// Class returns the class payload for the given node.
func (e *Exprs) Class(id ExprID) (*ExprClassData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprClass {
		return nil, false
	}
	return e.Classes.Get(uint32(expr.Payload)), true
}

// NewIf creates an if/elif*/else node. elseBody nil means no else block.
func (e *Exprs) NewIf(loc source.Loc, arms []IfArm, elseBody []ExprID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{Arms: arms, Else: elseBody})
	return e.new(ExprIf, loc, PayloadID(payload))
}

// If returns the if-chain payload for the given node.
func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}
