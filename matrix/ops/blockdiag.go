// SPDX-License-Identifier: MIT
// Package ops provides block operations built on the matrix and builder packages.
// blockdiag.go inverts stacks of small dense tensors (one 2×2 or 3×3 matrix per
// mesh cell) in closed form and assembles the result as a sparse block matrix.
package ops

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/builder"
	"github.com/opengeophysics/matrixutils/matrix"
)

const (
	opInv2x2 = "Inv2x2"
	opInv3x3 = "Inv3x3"
)

// Inverse2x2 holds the per-cell components of the inverse of a 2×2 stack.
// Component Bij[k] is entry (i,j) of the inverse of the k-th tensor.
type Inverse2x2 struct {
	B11, B12 []float64
	B21, B22 []float64
}

// Inverse3x3 holds the per-cell components of the inverse of a 3×3 stack.
type Inverse3x3 struct {
	B11, B12, B13 []float64
	B21, B22, B23 []float64
	B31, B32, B33 []float64
}

// flatten vectorizes every component (column-major) and checks equal lengths.
func flatten(op string, comps ...*matrix.Array) ([][]float64, error) {
	out := make([][]float64, len(comps))
	for k, a := range comps {
		v, err := matrix.Mkvc(a, 1)
		if err != nil {
			return nil, fmt.Errorf("%s: component %d: %w", op, k, err)
		}
		out[k] = v.Data()
		if len(out[k]) != len(out[0]) {
			return nil, fmt.Errorf("%s: component %d has %d values, want %d: %w",
				op, k, len(out[k]), len(out[0]), matrix.ErrDimensionMismatch)
		}
	}

	return out, nil
}

// Inv2x2 inverts the stack [[a11_k, a12_k], [a21_k, a22_k]] entry by entry:
//
//	inv_k = 1/(a11·a22 − a21·a12) · [[a22, −a12], [−a21, a11]]
//
// Components are flattened with matrix.Mkvc first and must have equal length.
// Singular tensors are not detected; their entries become ±Inf or NaN.
//
// Errors: matrix.ErrNilArray, matrix.ErrDimensionMismatch.
// Complexity: O(n).
func Inv2x2(a11, a12, a21, a22 *matrix.Array) (*Inverse2x2, error) {
	c, err := flatten(opInv2x2, a11, a12, a21, a22)
	if err != nil {
		return nil, err
	}
	n := len(c[0])
	inv := &Inverse2x2{
		B11: make([]float64, n), B12: make([]float64, n),
		B21: make([]float64, n), B22: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		x11, x12, x21, x22 := c[0][k], c[1][k], c[2][k], c[3][k]
		detInv := 1 / (x11*x22 - x21*x12)
		inv.B11[k] = detInv * x22
		inv.B12[k] = -detInv * x12
		inv.B21[k] = -detInv * x21
		inv.B22[k] = detInv * x11
	}

	return inv, nil
}

// Matrix assembles the (2n)×(2n) operator
//
//	[ diag(B11) diag(B12) ]
//	[ diag(B21) diag(B22) ]
func (inv *Inverse2x2) Matrix() (*matrix.Sparse, error) {
	return assemble(opInv2x2, [][][]float64{
		{inv.B11, inv.B12},
		{inv.B21, inv.B22},
	})
}

// Inv2x2BlockDiagonal inverts the stack and assembles the sparse operator.
func Inv2x2BlockDiagonal(a11, a12, a21, a22 *matrix.Array) (*matrix.Sparse, error) {
	inv, err := Inv2x2(a11, a12, a21, a22)
	if err != nil {
		return nil, err
	}

	return inv.Matrix()
}

// Inv3x3 inverts a stack of 3×3 tensors with the adjugate formula.
//
// Implementation:
//   - Stage 1: flatten and length-check the nine components.
//   - Stage 2: per entry, det by cofactor expansion, then the nine signed
//     cofactors divided by det.
//
// Errors: matrix.ErrNilArray, matrix.ErrDimensionMismatch.
// Complexity: O(n).
func Inv3x3(a11, a12, a13, a21, a22, a23, a31, a32, a33 *matrix.Array) (*Inverse3x3, error) {
	c, err := flatten(opInv3x3, a11, a12, a13, a21, a22, a23, a31, a32, a33)
	if err != nil {
		return nil, err
	}
	n := len(c[0])
	mk := func() []float64 { return make([]float64, n) }
	inv := &Inverse3x3{
		B11: mk(), B12: mk(), B13: mk(),
		B21: mk(), B22: mk(), B23: mk(),
		B31: mk(), B32: mk(), B33: mk(),
	}
	for k := 0; k < n; k++ {
		x11, x12, x13 := c[0][k], c[1][k], c[2][k]
		x21, x22, x23 := c[3][k], c[4][k], c[5][k]
		x31, x32, x33 := c[6][k], c[7][k], c[8][k]

		det := x31*x12*x23 - x31*x13*x22 - x21*x12*x33 +
			x21*x13*x32 + x11*x22*x33 - x11*x23*x32

		inv.B11[k] = (x22*x33 - x23*x32) / det
		inv.B12[k] = -(x12*x33 - x13*x32) / det
		inv.B13[k] = (x12*x23 - x13*x22) / det

		inv.B21[k] = (x31*x23 - x21*x33) / det
		inv.B22[k] = -(x31*x13 - x11*x33) / det
		inv.B23[k] = (x21*x13 - x11*x23) / det

		inv.B31[k] = -(x31*x22 - x21*x32) / det
		inv.B32[k] = (x31*x12 - x11*x32) / det
		inv.B33[k] = -(x21*x12 - x11*x22) / det
	}

	return inv, nil
}

// Matrix assembles the (3n)×(3n) operator of diag(Bij) blocks.
func (inv *Inverse3x3) Matrix() (*matrix.Sparse, error) {
	return assemble(opInv3x3, [][][]float64{
		{inv.B11, inv.B12, inv.B13},
		{inv.B21, inv.B22, inv.B23},
		{inv.B31, inv.B32, inv.B33},
	})
}

// Inv3x3BlockDiagonal inverts the stack and assembles the sparse operator.
func Inv3x3BlockDiagonal(a11, a12, a13, a21, a22, a23, a31, a32, a33 *matrix.Array) (*matrix.Sparse, error) {
	inv, err := Inv3x3(a11, a12, a13, a21, a22, a23, a31, a32, a33)
	if err != nil {
		return nil, err
	}

	return inv.Matrix()
}

// assemble builds vstack(hstack(diag(b[i][0]), …), …).
func assemble(op string, blocks [][][]float64) (*matrix.Sparse, error) {
	rows := make([]matrix.Operator, len(blocks))
	for i, row := range blocks {
		ds := make([]matrix.Operator, len(row))
		for j, b := range row {
			ds[j] = builder.Diag(b)
		}
		h, err := matrix.HStack(ds...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rows[i] = h
	}
	out, err := matrix.VStack(rows...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
