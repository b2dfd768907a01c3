// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_diag.go - implementation of the diagonal constructors Diag, SDiag and SDInv.
//
// Contract:
//   - Diagonal values are stored in order; exact zeros are not stored.
//   - SDiag flattens dense input in column-major order (matrix.Mkvc) first,
//     so diag(x) lines up with every other vectorized grid quantity.
//   - SDiag(Zero) is Zero: absent physical properties stay absent.
//   - Inputs are never mutated.
//
// Complexity:
//   - Time: O(n), Space: O(n).

package builder

import (
	"github.com/opengeophysics/matrixutils/algebra"
	"github.com/opengeophysics/matrixutils/matrix"
)

// Diag returns the len(h)×len(h) sparse diagonal matrix diag(h).
// An empty h yields the 0×0 matrix.
func Diag(h []float64) *matrix.Sparse {
	return matrix.NewSparseDiag(h)
}

// SDiag builds diag(mkvc(v)) for an algebra operand.
//
//   - Zero   → Zero (unchanged).
//   - Scalar → 1×1 diagonal.
//   - Dense  → diagonal of the column-major flattening.
//   - Identity and Sparse are rejected with matrix.ErrNotDense.
func SDiag(v any) (algebra.Value, error) {
	val, err := algebra.Of(v)
	if err != nil {
		return nil, builderErrorf(MethodSDiag, err, "")
	}
	switch t := val.(type) {
	case algebra.Zero:
		return t, nil
	case algebra.Scalar:
		return algebra.Sparse{Op: Diag([]float64{float64(t)})}, nil
	case algebra.Dense:
		flat, err := matrix.Mkvc(t.A, 1)
		if err != nil {
			return nil, builderErrorf(MethodSDiag, err, "")
		}
		return algebra.Sparse{Op: Diag(flat.Data())}, nil
	default:
		return nil, builderErrorf(MethodSDiag, matrix.ErrNotDense, "%s operand", val.Kind())
	}
}

// SDiagArray is SDiag for a dense array, returning the concrete CSR type.
func SDiagArray(a *matrix.Array) (*matrix.Sparse, error) {
	flat, err := matrix.Mkvc(a, 1)
	if err != nil {
		return nil, builderErrorf(MethodSDiag, err, "")
	}

	return Diag(flat.Data()), nil
}

// SDInv returns diag(1/diag(m)), the inverse of a diagonal operator.
// Off-diagonal entries of m are ignored. A zero diagonal entry yields +Inf
// in that position; callers must avoid it.
// Complexity: O(n log nnz(row)).
func SDInv(m matrix.Operator) (*matrix.Sparse, error) {
	if err := matrix.ValidateOperator(m); err != nil {
		return nil, builderErrorf(MethodSDInv, err, "")
	}
	r, c := m.Dims()
	n := r
	if c < n {
		n = c
	}
	d := make([]float64, n)
	m.DoNonZero(func(i, j int, v float64) {
		if i == j {
			d[i] += v
		}
	})
	for i, v := range d {
		d[i] = 1 / v
	}

	return Diag(d), nil
}
