// SPDX-License-Identifier: MIT
// Package: ops
//
// blockinv.go - inversion of stacked k×k tensors of any order.
//
// Inv2x2 and Inv3x3 cover the common cases in closed form. InvBlockDiagonal
// handles any k by inverting every cell's k×k matrix with gonum (LU with
// partial pivoting) in a scratch buffer reused across cells.

package ops

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/opengeophysics/matrixutils/matrix"
)

const opInvBlock = "InvBlockDiagonal"

// ErrSingular is returned when a cell's tensor is exactly singular.
var ErrSingular = fmt.Errorf("ops: singular block: %w", matrix.ErrDivisionByZero)

// InvBlockDiagonal inverts a stack of k×k tensors given as k·k components in
// row-major order (a11, a12, …, a1k, a21, …, akk) and assembles the
// (k·n)×(k·n) operator of diag(Bij) blocks.
//
// Implementation:
//   - Stage 1: flatten and length-check the components.
//   - Stage 2: per cell, fill the k×k scratch matrix and invert it with
//     mat.Dense.Inverse. Ill-conditioned cells are accepted; an infinite
//     condition number (zero pivot) is ErrSingular.
//   - Stage 3: assemble vstack(hstack(diag(Bi1), …, diag(Bik)), …).
//
// Errors: matrix.ErrBadShape (k < 1), matrix.ErrDimensionMismatch
// (len(comps) ≠ k·k or unequal lengths), matrix.ErrNilArray, ErrSingular.
// Complexity: O(n·k³) time, O(n·k²) memory.
func InvBlockDiagonal(k int, comps ...*matrix.Array) (*matrix.Sparse, error) {
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d: %w", opInvBlock, k, matrix.ErrBadShape)
	}
	if len(comps) != k*k {
		return nil, fmt.Errorf("%s: %d components for k=%d: %w", opInvBlock, len(comps), k, matrix.ErrDimensionMismatch)
	}
	c, err := flatten(opInvBlock, comps...)
	if err != nil {
		return nil, err
	}
	n := len(c[0])

	// blocks[i][j][cell] = entry (i,j) of the inverse of that cell's tensor
	blocks := make([][][]float64, k)
	for i := range blocks {
		blocks[i] = make([][]float64, k)
		for j := range blocks[i] {
			blocks[i][j] = make([]float64, n)
		}
	}
	a := mat.NewDense(k, k, nil)
	var inv mat.Dense
	for cell := 0; cell < n; cell++ {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				a.Set(i, j, c[i*k+j][cell])
			}
		}
		if err := invertCell(&inv, a); err != nil {
			return nil, fmt.Errorf("%s: cell %d: %w", opInvBlock, cell, err)
		}
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				blocks[i][j][cell] = inv.At(i, j)
			}
		}
	}

	return assemble(opInvBlock, blocks)
}

// invertCell stores a⁻¹ in dst. gonum reports a poorly conditioned but
// invertible matrix as a finite mat.Condition; only an infinite one is fatal.
func invertCell(dst *mat.Dense, a *mat.Dense) error {
	err := dst.Inverse(a)
	if err == nil {
		return nil
	}
	var cond mat.Condition
	if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
		return nil
	}

	return fmt.Errorf("%v: %w", err, ErrSingular)
}
