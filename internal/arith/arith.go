// Package arith holds the calculator's arithmetic helpers. They are pure and
// have no side effects.
package arith

import "calc/internal/errors"

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or an E0100 error wrapping errors.ErrDivisionByZero
// when b is zero. The error is not recovered here.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.DivisionByZero(a)
	}
	return a / b, nil
}
