package exprcalc

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is the only evaluation failure. The divisor check is an
// exact comparison against zero: an extremely small nonzero divisor is
// valid and yields a huge or infinite quotient, not an error.
var ErrDivisionByZero = errors.New("Division by zero")

// Evaluate walks the tree depth first, left to right, and returns the
// numeric result. The first failing subtree wins: its error propagates up
// unchanged and no later subtree is evaluated.
func Evaluate(expr Expression) (float64, error) {
	switch e := expr.(type) {
	case Number:
		return e.Value, nil
	case Add:
		left, right, err := operands(e.Left, e.Right)
		if err != nil {
			return 0, err
		}
		return left + right, nil
	case Subtract:
		left, right, err := operands(e.Left, e.Right)
		if err != nil {
			return 0, err
		}
		return left - right, nil
	case Multiply:
		left, right, err := operands(e.Left, e.Right)
		if err != nil {
			return 0, err
		}
		return left * right, nil
	case Divide:
		left, right, err := operands(e.Left, e.Right)
		if err != nil {
			return 0, err
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("invalid expression: %v", expr)
}

func operands(l, r Expression) (float64, float64, error) {
	left, err := Evaluate(l)
	if err != nil {
		return 0, 0, err
	}
	right, err := Evaluate(r)
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}
