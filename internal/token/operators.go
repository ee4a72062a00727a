package token

// Operator enumerates the arithmetic, comparison, logical, bitwise and
// assignment operators.
type Operator uint8

const (
	// OpAdd represents the '+' operator.
	OpAdd Operator = iota // +
	// OpSub represents the '-' operator.
	OpSub // -
	// OpMul represents the '*' operator.
	OpMul // *
	// OpDiv represents the '/' operator.
	OpDiv // /
	// OpMod represents the '%' operator.
	OpMod // %
	// OpSet represents the '=' operator.
	OpSet // =
	// OpEqu represents the '==' operator.
	OpEqu // ==
	// OpNeq represents the '!=' operator.
	OpNeq // !=
	// OpLt represents the '<' operator.
	OpLt // <
	// OpLte represents the '<=' operator.
	OpLte // <=
	// OpGt represents the '>' operator.
	OpGt // >
	// OpGte represents the '>=' operator.
	OpGte // >=
	// OpAnd represents the '&&' operator.
	OpAnd // &&
	// OpOr represents the '||' operator.
	OpOr // ||
	// OpNot represents the '!' operator.
	OpNot // !
	// OpXor represents the '^' operator.
	OpXor // ^
	// OpShl represents the '<<' operator.
	OpShl // <<
	// OpShr represents the '>>' operator.
	OpShr // >>
	// OpBitOr represents the '|' operator.
	OpBitOr // |
	// OpBitAnd represents the '&' operator.
	OpBitAnd // &
	// OpBitNot represents the '~' operator.
	OpBitNot // ~

	operatorCount // всегда последний
)

// operatorSpellings is the canonical symbol of every operator, unique across
// the enumeration. Diagnostics and source reconstruction rely on it being
// the exact inverse of the lexer's recognition rules.
var operatorSpellings = [operatorCount]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpSet:    "=",
	OpEqu:    "==",
	OpNeq:    "!=",
	OpLt:     "<",
	OpLte:    "<=",
	OpGt:     ">",
	OpGte:    ">=",
	OpAnd:    "&&",
	OpOr:     "||",
	OpNot:    "!",
	OpXor:    "^",
	OpShl:    "<<",
	OpShr:    ">>",
	OpBitOr:  "|",
	OpBitAnd: "&",
	OpBitNot: "~",
}

func (o Operator) String() string {
	if o < operatorCount {
		return operatorSpellings[o]
	}
	return "Operator(?)"
}

// OpForm distinguishes the two readings an operator token can have when the
// same symbol serves more than one role (e.g. '-' as negation vs.
// subtraction). The lexer decides the reading; downstream phases only carry
// it.
type OpForm uint8

const (
	// OpBinary is the infix reading of an operator token.
	OpBinary OpForm = iota
	// OpUnary is the prefix reading of an operator token.
	OpUnary
)

func (f OpForm) String() string {
	switch f {
	case OpBinary:
		return "binary"
	case OpUnary:
		return "unary"
	}
	return "OpForm(?)"
}
