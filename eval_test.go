package exprcalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want float64
	}{
		{"number", Number{42}, 42},
		{"add", Add{Number{5}, Number{3}}, 8},
		{"subtract", Subtract{Number{10}, Number{4}}, 6},
		{"multiply", Multiply{Number{6}, Number{7}}, 42},
		{"divide", Divide{Number{10}, Number{4}}, 2.5},
		{"negative leaf", Add{Number{-5}, Number{3}}, -2},
		{"nested", Multiply{Add{Number{1}, Number{2}}, Subtract{Number{10}, Number{4}}}, 18},
		{"deep nesting", Divide{Multiply{Add{Number{1}, Number{1}}, Number{6}}, Subtract{Number{7}, Number{3}}}, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Evaluate(test.expr)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate(Divide{Number{1}, Number{0}})
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.EqualError(t, err, "Division by zero")

	_, err = Evaluate(Divide{Number{-7.5}, Number{0}})
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluateErrorPropagation(t *testing.T) {
	// a failing left branch surfaces through a healthy right branch
	_, err := Evaluate(Add{Divide{Number{1}, Number{0}}, Number{5}})
	require.ErrorIs(t, err, ErrDivisionByZero)

	// a failure buried several levels deep keeps its message unchanged
	expr := Multiply{Number{2}, Subtract{Number{1}, Divide{Number{3}, Number{0}}}}
	_, err = Evaluate(expr)
	require.EqualError(t, err, "Division by zero")
}

func TestEvaluateTinyDivisor(t *testing.T) {
	// the zero check is exact equality, so a denormal divisor is accepted
	// and overflows to +Inf instead of failing
	got, err := Evaluate(Divide{Number{1}, Number{5e-324}})
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}

func TestEvaluateIdempotent(t *testing.T) {
	expr := Divide{Add{Number{9}, Number{3}}, Number{4}}
	first, err := Evaluate(expr)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Evaluate(expr)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
