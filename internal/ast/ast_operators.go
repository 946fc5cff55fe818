package ast

import "fmt"

// BinaryOperator is the operator of a BinaryExpression.
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBoolAnd
	OpBoolOr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpEqual
	OpNotEqual
	OpAssign
	OpShiftLeft
	OpShiftRight
	OpGreater
	OpLess
	OpGreaterEqual
	OpLessEqual
	OpSequence
)

var binaryOperators = [...]struct{ name, symbol string }{
	OpAdd:          {"add", "+"},
	OpSub:          {"sub", "-"},
	OpMul:          {"mul", "*"},
	OpDiv:          {"div", "/"},
	OpMod:          {"mod", "%"},
	OpBoolAnd:      {"and", "&&"},
	OpBoolOr:       {"or", "||"},
	OpBitAnd:       {"bitand", "&"},
	OpBitOr:        {"bitor", "|"},
	OpBitXor:       {"bitxor", "^"},
	OpEqual:        {"eq", "=="},
	OpNotEqual:     {"neq", "!="},
	OpAssign:       {"assign", "="},
	OpShiftLeft:    {"shl", "<<"},
	OpShiftRight:   {"shr", ">>"},
	OpGreater:      {"gt", ">"},
	OpLess:         {"lt", "<"},
	OpGreaterEqual: {"gte", ">="},
	OpLessEqual:    {"lte", "<="},
	OpSequence:     {"seq", ","},
}

func (op BinaryOperator) String() string {
	if op < 0 || int(op) >= len(binaryOperators) {
		return fmt.Sprintf("binop(%d)", int(op))
	}
	return binaryOperators[op].symbol
}

// Name returns the mnemonic used by tree documents ("add", "assign", ...).
func (op BinaryOperator) Name() string {
	if op < 0 || int(op) >= len(binaryOperators) {
		return op.String()
	}
	return binaryOperators[op].name
}

// LookupBinaryOperator finds an operator by mnemonic.
func LookupBinaryOperator(name string) (BinaryOperator, bool) {
	for i, op := range binaryOperators {
		if op.name == name {
			return BinaryOperator(i), true
		}
	}
	return 0, false
}

// UnaryOperator is the operator of a UnaryExpression.
type UnaryOperator int

const (
	OpRef UnaryOperator = iota
	OpDeref
	OpPreInc
	OpPostInc
	OpPreDec
	OpPostDec
	OpBoolNot
	OpBitNot
	OpSizeof
	OpPlus
	OpMinus
)

var unaryOperators = [...]struct{ name, symbol string }{
	OpRef:     {"ref", "&"},
	OpDeref:   {"deref", "*"},
	OpPreInc:  {"preinc", "++_"},
	OpPostInc: {"postinc", "_++"},
	OpPreDec:  {"predec", "--_"},
	OpPostDec: {"postdec", "_--"},
	OpBoolNot: {"not", "!"},
	OpBitNot:  {"bitnot", "~"},
	OpSizeof:  {"sizeof", "sizeof"},
	OpPlus:    {"plus", "+"},
	OpMinus:   {"minus", "-"},
}

func (op UnaryOperator) String() string {
	if op < 0 || int(op) >= len(unaryOperators) {
		return fmt.Sprintf("unop(%d)", int(op))
	}
	return unaryOperators[op].symbol
}

// Name returns the mnemonic used by tree documents ("ref", "deref", ...).
func (op UnaryOperator) Name() string {
	if op < 0 || int(op) >= len(unaryOperators) {
		return op.String()
	}
	return unaryOperators[op].name
}

// LookupUnaryOperator finds an operator by mnemonic.
func LookupUnaryOperator(name string) (UnaryOperator, bool) {
	for i, op := range unaryOperators {
		if op.name == name {
			return UnaryOperator(i), true
		}
	}
	return 0, false
}

// IsIncDec reports whether op is one of the increment/decrement forms.
func (op UnaryOperator) IsIncDec() bool {
	switch op {
	case OpPreInc, OpPostInc, OpPreDec, OpPostDec:
		return true
	}
	return false
}
