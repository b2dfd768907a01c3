// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/rank/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// ValidateArray ensures the array reference is non-nil.
// Returns ErrNilArray if a == nil.
// Complexity: O(1).
func ValidateArray(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateArray", ErrNilArray)
	}

	return nil
}

// ValidateOperator ensures the operator reference is non-nil, including a
// typed nil *Sparse stored in the interface.
// Complexity: O(1).
func ValidateOperator(op Operator) error {
	if s, ok := op.(*Sparse); op == nil || (ok && s == nil) {
		return validatorErrorf("ValidateOperator", ErrNilArray)
	}

	return nil
}

// ValidateRank checks that a has one of the allowed ranks.
//
// Inputs: non-nil *Array, allowed ranks.
// Errors: ErrNilArray, ErrRank.
// Complexity: O(len(allowed)).
func ValidateRank(a *Array, allowed ...int) error {
	if err := ValidateArray(a); err != nil {
		return validatorErrorf("ValidateRank", err)
	}
	for _, r := range allowed {
		if a.Rank() == r {
			return nil
		}
	}

	return validatorErrorf("ValidateRank", fmt.Errorf("rank %d not in %v: %w", a.Rank(), allowed, ErrRank))
}

// ValidateShape ensures every extent is non-negative.
// Complexity: O(len(shape)).
func ValidateShape(shape []int) error {
	for axis, n := range shape {
		if n < 0 {
			return validatorErrorf("ValidateShape", fmt.Errorf("axis %d extent %d: %w", axis, n, ErrBadShape))
		}
	}

	return nil
}

// ValidateSameDims – Composite: NotNil(a) → NotNil(b) → equal Dims.
//
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels on operators.
func ValidateSameDims(a, b Operator) error {
	if err := ValidateOperator(a); err != nil {
		return validatorErrorf("ValidateSameDims", err)
	}
	if err := ValidateOperator(b); err != nil {
		return validatorErrorf("ValidateSameDims", err)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return validatorErrorf("ValidateSameDims",
			fmt.Errorf("%dx%d vs %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks that op is square (rows == cols).
// Complexity: O(1).
func ValidateSquare(op Operator) error {
	if err := ValidateOperator(op); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	r, c := op.Dims()
	if r != c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", r, c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}
