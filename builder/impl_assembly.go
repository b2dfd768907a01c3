// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_assembly.go - identity, empty and Kronecker constructors used to lift
// 1-D stencils onto 2-D and 3-D tensor meshes.
//
// Contract:
//   - Extents ≥ MinExtent (else ErrBadSize).
//   - Kron3 is evaluated left to right: (A ⊗ B) ⊗ C.

package builder

import (
	"github.com/opengeophysics/matrixutils/matrix"
)

// SpEye returns the n×n sparse identity.
// Errors: ErrBadSize (n < 0).
func SpEye(n int) (*matrix.Sparse, error) {
	if err := validateMin(MethodSpEye, n, MinExtent); err != nil {
		return nil, err
	}
	eye, err := matrix.NewSparseIdentity(n)
	if err != nil {
		return nil, builderErrorf(MethodSpEye, err, "")
	}

	return eye, nil
}

// SpZeros returns an n1×n2 matrix with no stored entries.
// Errors: ErrBadSize (negative extent).
func SpZeros(n1, n2 int) (*matrix.Sparse, error) {
	if err := validateMin(MethodSpZeros, n1, MinExtent); err != nil {
		return nil, err
	}
	if err := validateMin(MethodSpZeros, n2, MinExtent); err != nil {
		return nil, err
	}
	z, err := matrix.NewSparseZeros(n1, n2)
	if err != nil {
		return nil, builderErrorf(MethodSpZeros, err, "")
	}

	return z, nil
}

// Kron3 returns A ⊗ B ⊗ C.
// For a mesh with n1×n2×n3 cells, Kron3(I3, I2, D1) applies the 1-D operator
// D1 along the first (fastest) axis of the column-major vectorization.
// Errors: matrix.ErrNilArray.
// Complexity: O(nnz(A)·nnz(B)·nnz(C)).
func Kron3(a, b, c matrix.Operator) (*matrix.Sparse, error) {
	ab, err := matrix.Kron(a, b)
	if err != nil {
		return nil, builderErrorf(MethodKron3, err, "")
	}
	out, err := matrix.Kron(ab, c)
	if err != nil {
		return nil, builderErrorf(MethodKron3, err, "")
	}

	return out, nil
}
