package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluate computes the value of a four-operation arithmetic expression.
// Splitting happens at the rightmost lowest-precedence operator first, so
// "2+3*4" evaluates to 14. A leading minus negates the rest of the
// expression. Parentheses are not supported.
func Evaluate(expr string) (float64, error) {
	expr = strings.ReplaceAll(expr, " ", "")

	if pos := strings.LastIndex(expr, "+"); pos >= 0 {
		left, err := Evaluate(expr[:pos])
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(expr[pos+1:])
		if err != nil {
			return 0, err
		}
		return Add(left, right)
	}

	if pos := strings.LastIndex(expr, "-"); pos >= 0 {
		if pos == 0 {
			number, err := Evaluate(expr[1:])
			if err != nil {
				return 0, err
			}
			return -number, nil
		}
		left, err := Evaluate(expr[:pos])
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(expr[pos+1:])
		if err != nil {
			return 0, err
		}
		return Subtract(left, right)
	}

	if pos := strings.LastIndex(expr, "*"); pos >= 0 {
		left, err := Evaluate(expr[:pos])
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(expr[pos+1:])
		if err != nil {
			return 0, err
		}
		return Multiply(left, right)
	}

	if pos := strings.LastIndex(expr, "/"); pos >= 0 {
		left, err := Evaluate(expr[:pos])
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(expr[pos+1:])
		if err != nil {
			return 0, err
		}
		return Divide(left, right)
	}

	value, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}
	return value, nil
}
