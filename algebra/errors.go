// SPDX-License-Identifier: MIT
// Package: algebra
//
// errors.go — sentinel errors for the algebra package.
//
// Error policy:
//   • The two arithmetic classes are aliases of the matrix sentinels, so a
//     caller can match either name with errors.Is.
//   • Operator functions attach "<Op>(<kind>, <kind>)" context via %w.

package algebra

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/matrix"
)

// ErrDivisionByZero is returned when Zero is the divisor of Div or FloorDiv.
var ErrDivisionByZero = matrix.ErrDivisionByZero

// ErrUnsupportedOperation is returned for undefined combinations, e.g. any
// division involving a sparse divisor or a sparse matrix divided by Identity.
var ErrUnsupportedOperation = matrix.ErrUnsupportedOperation

// ErrUnknownOperand indicates a Go value that Of cannot classify.
var ErrUnknownOperand = fmt.Errorf("algebra: unknown operand type: %w", matrix.ErrValidation)

// algebraErrorf prefixes err with the operator and the operand kinds.
func algebraErrorf(op string, a, b Kind, err error) error {
	return fmt.Errorf("%s(%s, %s): %w", op, a, b, err)
}
