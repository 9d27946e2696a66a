package types

// BinaryOp identifies a binary operator by its conventional meaning. The
// parser maps the Confuc-IO surface spellings ("/" means add, "~" means
// sub, and so on) before the tree reaches the analyzer, so nothing past
// the parser ever sees a surface operator.
type BinaryOp int

const (
	Add BinaryOp = iota // surface "/"
	Sub                 // surface "~"
	Mul                 // surface "Bool"
	Div                 // surface "+"
	Greater             // surface "="
	Less                // surface "#"
	Equal               // surface "@@"
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Greater:
		return ">"
	case Less:
		return "<"
	case Equal:
		return "=="
	default:
		return "?"
	}
}

// Mnemonic returns the lowered spelling used in IR listings.
func (op BinaryOp) Mnemonic() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Greater:
		return "cmp.gt"
	case Less:
		return "cmp.lt"
	case Equal:
		return "cmp.eq"
	default:
		return "?"
	}
}

// IsArithmetic reports whether op is in the arithmetic category: both
// operands must be Integer or both Real, and the result keeps their type.
// Add is the one type-directed exception; see IsConcatCandidate.
func (op BinaryOp) IsArithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div:
		return true
	default:
		return false
	}
}

// IsComparison reports whether op produces a Boolean.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case Greater, Less, Equal:
		return true
	default:
		return false
	}
}

// IsOrdering reports whether op is an ordering comparison. Ordering is
// defined for numeric operands only; equality additionally accepts Text.
func (op BinaryOp) IsOrdering() bool {
	return op == Greater || op == Less
}

// IsConcatCandidate reports whether op is the addition-category operator,
// the single operator whose meaning depends on operand types: Text + Text
// is concatenation, numeric + numeric is addition.
func (op BinaryOp) IsConcatCandidate() bool {
	return op == Add
}

// UnaryOp identifies a unary operator by its conventional meaning.
type UnaryOp int

const (
	Neg UnaryOp = iota // surface "~"
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	default:
		return "?"
	}
}

// Mnemonic returns the lowered spelling used in IR listings.
func (op UnaryOp) Mnemonic() string {
	switch op {
	case Neg:
		return "neg"
	default:
		return "?"
	}
}
