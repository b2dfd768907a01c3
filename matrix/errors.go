// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the module.
// All algorithms MUST return these sentinels (possibly wrapped with %w) and
// tests MUST check them via errors.Is. No algorithm should panic on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR CLASSES
// -------------
// Three classes are exposed. Every validation sentinel below wraps
// ErrValidation, so callers can branch either on the precise sentinel
// (errors.Is(err, ErrBadShape)) or on the class (errors.Is(err, ErrValidation)).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> rank -> shape -> dimension mismatch -> index range.

var (
	// ErrValidation is the class of every precondition violation on input
	// type, rank or shape.
	ErrValidation = errors.New("validation failed")

	// ErrDivisionByZero is returned when a Zero sentinel is used as a divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedOperation marks an operator combination that is undefined,
	// e.g. dividing by a sparse matrix or adding a non-zero scalar to one.
	ErrUnsupportedOperation = errors.New("operation not supported")
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative extent,
	// unsupported numDims, zero-sized dense export).
	ErrBadShape = fmt.Errorf("matrix: invalid shape: %w", ErrValidation)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, or Mul where a.cols != b.rows.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", ErrValidation)

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", ErrValidation)

	// ErrRank signals an array of unsupported rank for the requested operation.
	ErrRank = fmt.Errorf("matrix: unsupported rank: %w", ErrValidation)

	// ErrNilArray indicates that a nil *Array or nil Operator was passed.
	ErrNilArray = fmt.Errorf("matrix: nil operand: %w", ErrValidation)

	// ErrNotDense indicates an input that is not a recognized dense array type.
	ErrNotDense = fmt.Errorf("matrix: input is not a dense array: %w", ErrValidation)
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
