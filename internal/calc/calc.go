// Package calc implements the arithmetic operations and expression
// evaluation behind the calc command.
package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidExpression = errors.New("invalid expression")
)

// checked rejects results that escaped the float64 range.
func checked(result float64) (float64, error) {
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("%w: result overflow", ErrInvalidExpression)
	}
	return result, nil
}

func Add(a, b float64) (float64, error) {
	return checked(a + b)
}

func Subtract(a, b float64) (float64, error) {
	return checked(a - b)
}

func Multiply(a, b float64) (float64, error) {
	return checked(a * b)
}

func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checked(a / b)
}

func Power(base, exp float64) (float64, error) {
	if base < 0 && exp != math.Trunc(exp) {
		return 0, fmt.Errorf("%w: cannot calculate non-integer power of negative number", ErrInvalidExpression)
	}
	return checked(math.Pow(base, exp))
}

func SquareRoot(number float64) (float64, error) {
	if number < 0 {
		return 0, fmt.Errorf("%w: cannot calculate square root of negative number", ErrInvalidExpression)
	}
	return math.Sqrt(number), nil
}
