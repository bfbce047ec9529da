package exprcalc

import (
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Parse builds an expression from a single line of text. The grammar is
// deliberately small: one numeric token, or exactly "left op right" with op
// one of + - * / and both operands numeric. No precedence, no parentheses,
// no operator chains. Anything else parses to mo.None: malformed input is
// an absence, not an error.
func Parse(line string) mo.Option[Expression] {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return mo.None[Expression]()
		}
		return mo.Some[Expression](Number{Value: v})
	case 3:
		left, errLeft := strconv.ParseFloat(fields[0], 64)
		right, errRight := strconv.ParseFloat(fields[2], 64)
		if errLeft != nil || errRight != nil {
			return mo.None[Expression]()
		}
		l := Number{Value: left}
		r := Number{Value: right}
		switch fields[1] {
		case "+":
			return mo.Some[Expression](Add{Left: l, Right: r})
		case "-":
			return mo.Some[Expression](Subtract{Left: l, Right: r})
		case "*":
			return mo.Some[Expression](Multiply{Left: l, Right: r})
		case "/":
			return mo.Some[Expression](Divide{Left: l, Right: r})
		}
	}
	return mo.None[Expression]()
}
