package exprcalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expression is a finite arithmetic expression tree. The variant set is
// closed: a value is either a Number leaf or one of the four binary nodes,
// each exclusively owning its two subtrees. Trees are immutable once built
// and evaluation never mutates them, so any Expression may be evaluated
// repeatedly and from any goroutine.
type Expression interface {
	fmt.Stringer
	isExpression()
}

// Number is a leaf holding a floating-point value.
type Number struct {
	Value float64
}

// Add is the sum of two subtrees.
type Add struct {
	Left, Right Expression
}

// Subtract is the difference of two subtrees.
type Subtract struct {
	Left, Right Expression
}

// Multiply is the product of two subtrees.
type Multiply struct {
	Left, Right Expression
}

// Divide is the quotient of two subtrees.
type Divide struct {
	Left, Right Expression
}

func (Number) isExpression()   {}
func (Add) isExpression()      {}
func (Subtract) isExpression() {}
func (Multiply) isExpression() {}
func (Divide) isExpression()   {}

func (n Number) String() string   { return formatValue(n.Value) }
func (a Add) String() string      { return binary(a.Left, "+", a.Right) }
func (s Subtract) String() string { return binary(s.Left, "-", s.Right) }
func (m Multiply) String() string { return binary(m.Left, "*", m.Right) }
func (d Divide) String() string   { return binary(d.Left, "/", d.Right) }

// binary renders a node as "(left OP right)", fully parenthesized no matter
// what the operators are. The text mirrors the tree shape, not precedence.
func binary(left Expression, op string, right Expression) string {
	return "(" + left.String() + " " + op + " " + right.String() + ")"
}

// formatValue renders a double in decimal with at least one fractional
// digit: 5 prints as "5.0", 0.5 as "0.5".
func formatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
