// Package boolop implements the sixteen two-input boolean operators
// selectable by a bnl operator code.
package boolop

// Code selects one of the sixteen two-input boolean functions. The code is
// its own truth table: bit 3-(2L+R) of the code is the result for operands
// (L, R).
type Code uint8

// The sixteen operators, in truth-table order.
const (
	False Code = iota // constant false
	And
	Nimply // L AND NOT R
	Left
	ConvNimply // NOT L AND R
	Right
	Xor
	Or
	Nor
	Xnor
	NotRight
	ConvImply // L OR NOT R
	NotLeft
	Imply // NOT L OR R
	Nand
	True // constant true
)

// NumCodes is the number of distinct operator codes.
const NumCodes = 16

// Valid reports whether the code names one of the sixteen operators.
func (c Code) Valid() bool {
	return c <= True
}

// Compute applies the operator selected by code to the two operands. It is
// total over all code values: codes above True behave as the constant-true
// operator.
func Compute(left, right bool, code Code) bool {
	switch code {
	case False:
		return false
	case And:
		return left && right
	case Nimply:
		return left && !right
	case Left:
		return left
	case ConvNimply:
		return !left && right
	case Right:
		return right
	case Xor:
		return left != right
	case Or:
		return left || right
	case Nor:
		return !(left || right)
	case Xnor:
		return left == right
	case NotRight:
		return !right
	case ConvImply:
		return left || !right
	case NotLeft:
		return !left
	case Imply:
		return !left || right
	case Nand:
		return !(left && right)
	default:
		return true
	}
}

var names = [NumCodes]string{
	"false",
	"and",
	"nimply",
	"left",
	"cnimply",
	"right",
	"xor",
	"or",
	"nor",
	"xnor",
	"notright",
	"cimply",
	"notleft",
	"imply",
	"nand",
	"true",
}

// String returns the operator mnemonic. Out-of-range codes render as the
// constant-true operator, matching Compute.
func (c Code) String() string {
	if !c.Valid() {
		c = True
	}
	return names[c]
}
