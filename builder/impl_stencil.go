// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_stencil.go - implementation of the 1-D staggered-grid stencils DDx, Av
// and AvExtrap.
//
// A 1-D mesh of n cells has n+1 nodes. The stencils map between the two:
//
//	DDx(n)       n×(n+1)  node → cell   row i: −1 at i, +1 at i+1
//	Av(n)        n×(n+1)  node → cell   row i: ½ at i and i+1
//	AvExtrap(n)  (n+1)×n  cell → node   interior row i: ½ at i−1 and i;
//	                                    rows 0 and n: 1 on the nearest cell
//
// Contract:
//   - n ≥ MinCells (else ErrBadSize).
//   - Entries are emitted as triplets, never through a dense intermediate.
//
// Complexity:
//   - Time: O(n log n) (CSR assembly), Space: O(n).

package builder

import (
	"github.com/opengeophysics/matrixutils/matrix"
)

// twoBand assembles an r×c operator with values lo at (i, i+offLo) and hi at
// (i, i+offLo+1) for every row i where the column is in range.
func twoBand(method string, r, c, offLo int, lo, hi float64) (*matrix.Sparse, error) {
	rows := make([]int, 0, 2*r)
	cols := make([]int, 0, 2*r)
	vals := make([]float64, 0, 2*r)
	for i := 0; i < r; i++ {
		if j := i + offLo; j >= 0 && j < c {
			rows, cols, vals = append(rows, i), append(cols, j), append(vals, lo)
		}
		if j := i + offLo + 1; j >= 0 && j < c {
			rows, cols, vals = append(rows, i), append(cols, j), append(vals, hi)
		}
	}
	s, err := matrix.NewSparse(r, c, rows, cols, vals)
	if err != nil {
		return nil, builderErrorf(method, err, "")
	}

	return s, nil
}

// DDx returns the n×(n+1) first-difference operator.
// Errors: ErrBadSize (n < MinCells).
func DDx(n int) (*matrix.Sparse, error) {
	if err := validateMin(MethodDDx, n, MinCells); err != nil {
		return nil, err
	}

	return twoBand(MethodDDx, n, n+1, 0, -1, 1)
}

// Av returns the n×(n+1) node-to-cell averaging operator.
// Errors: ErrBadSize (n < MinCells).
func Av(n int) (*matrix.Sparse, error) {
	if err := validateMin(MethodAv, n, MinCells); err != nil {
		return nil, err
	}

	return twoBand(MethodAv, n, n+1, 0, halfWeight, halfWeight)
}

// AvExtrap returns the (n+1)×n cell-to-node averaging operator.
//
// Implementation:
//   - Stage 1: the two half-weight bands at (i, i−1) and (i, i).
//   - Stage 2: add another half weight at (0, 0) and (n, n−1), so each
//     boundary node takes the value of its single neighboring cell.
//
// Errors: ErrBadSize (n < MinCells).
func AvExtrap(n int) (*matrix.Sparse, error) {
	if err := validateMin(MethodAvExtrap, n, MinCells); err != nil {
		return nil, err
	}
	bands, err := twoBand(MethodAvExtrap, n+1, n, -1, halfWeight, halfWeight)
	if err != nil {
		return nil, err
	}
	ends, err := matrix.NewSparse(n+1, n, []int{0, n}, []int{0, n - 1}, []float64{halfWeight, halfWeight})
	if err != nil {
		return nil, builderErrorf(MethodAvExtrap, err, "")
	}
	out, err := matrix.Add(bands, ends)
	if err != nil {
		return nil, builderErrorf(MethodAvExtrap, err, "")
	}

	return out, nil
}
