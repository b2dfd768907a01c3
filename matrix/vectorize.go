// SPDX-License-Identifier: MIT
// Package: matrix
//
// Canonical vectorization: every multi-dimensional quantity of a tensor grid
// is flattened with the first axis varying fastest (column-major / Fortran
// order) before it meets a sparse operator.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opMkvc = "Mkvc"

// Mkvc flattens a in column-major order and returns it with numDims axes:
//
//	numDims=1 → (n)
//	numDims=2 → (n, 1)
//	numDims=3 → (n, 1, 1)
//
// The element count is preserved and Mkvc(Mkvc(x, 1), 1) equals Mkvc(x, 1).
// Errors: ErrNilArray, ErrBadShape (numDims ∉ {1,2,3}).
// Complexity: O(size).
func Mkvc(a *Array, numDims int) (*Array, error) {
	if err := ValidateArray(a); err != nil {
		return nil, matrixErrorf(opMkvc, err)
	}
	n := a.Size()
	var shape []int
	switch numDims {
	case 1:
		shape = []int{n}
	case 2:
		shape = []int{n, 1}
	case 3:
		shape = []int{n, 1, 1}
	default:
		return nil, matrixErrorf(opMkvc, fmt.Errorf("numDims=%d: %w", numDims, ErrBadShape))
	}

	return &Array{shape: shape, data: a.ColumnMajor()}, nil
}

// MkvcMat vectorizes a gonum matrix (the legacy matrix-like input) by first
// converting it to a 2-D Array.
func MkvcMat(m mat.Matrix, numDims int) (*Array, error) {
	if m == nil {
		return nil, matrixErrorf(opMkvc, ErrNilArray)
	}

	return Mkvc(FromMat(m), numDims)
}
