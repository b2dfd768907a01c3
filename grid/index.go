// SPDX-License-Identifier: MIT
// Package: grid
//
// index.go - conversions between linear indices and subscript tuples.
//
// Contract:
//   - Every extent of shape must be positive (else matrix.ErrBadShape).
//   - Linear indices lie in [0, Π shape); subscripts lie in [0, shape[k]).
//   - The order (ColumnMajor by default) is chosen with WithOrder.

package grid

import (
	"fmt"
	"math"

	"github.com/opengeophysics/matrixutils/matrix"
)

const (
	opInd2Sub      = "Ind2Sub"
	opInd2SubArray = "Ind2SubArray"
	opSub2Ind      = "Sub2Ind"
)

// validateExtents requires every extent to be positive and returns Π shape.
func validateExtents(op string, shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, gridErrorf(op, fmt.Errorf("empty shape: %w", matrix.ErrBadShape))
	}
	size := 1
	for ax, n := range shape {
		if n <= 0 {
			return 0, gridErrorf(op, fmt.Errorf("axis %d extent %d: %w", ax, n, matrix.ErrBadShape))
		}
		size *= n
	}

	return size, nil
}

// axisOrder lists the axes from fastest to slowest varying.
func axisOrder(rank int, order Order) []int {
	axes := make([]int, rank)
	for k := range axes {
		if order == RowMajor {
			axes[k] = rank - 1 - k
		} else {
			axes[k] = k
		}
	}

	return axes
}

// Ind2Sub converts linear indices to subscripts.
// The result holds one sequence per axis: subs[ax][k] is the subscript of
// inds[k] along axis ax.
//
// Example (shape (5, 2), column-major): Ind2Sub([5 2], [0 4 5 9]) =
// [[0 4 0 4] [0 0 1 1]].
//
// Errors: matrix.ErrBadShape, matrix.ErrOutOfRange.
// Complexity: O(len(inds)·len(shape)).
func Ind2Sub(shape []int, inds []int, opts ...Option) ([][]int, error) {
	size, err := validateExtents(opInd2Sub, shape)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	subs := make([][]int, len(shape))
	for ax := range subs {
		subs[ax] = make([]int, len(inds))
	}
	axes := axisOrder(len(shape), o.order)
	for k, ind := range inds {
		if ind < 0 || ind >= size {
			return nil, gridErrorf(opInd2Sub, fmt.Errorf("index %d for shape %v: %w", ind, shape, matrix.ErrOutOfRange))
		}
		rem := ind
		for _, ax := range axes {
			subs[ax][k] = rem % shape[ax]
			rem /= shape[ax]
		}
	}

	return subs, nil
}

// Ind2SubArray is Ind2Sub for a 1-D array of integral values.
// Errors: matrix.ErrRank (rank ≠ 1), matrix.ErrValidation (non-integral
// value), plus those of Ind2Sub.
func Ind2SubArray(shape []int, inds *matrix.Array, opts ...Option) ([][]int, error) {
	if err := matrix.ValidateRank(inds, 1); err != nil {
		return nil, gridErrorf(opInd2SubArray, err)
	}
	vals := inds.Data()
	ints := make([]int, len(vals))
	for k, v := range vals {
		if math.Trunc(v) != v || math.IsInf(v, 0) {
			return nil, gridErrorf(opInd2SubArray, fmt.Errorf("index %v is not an integer: %w", v, matrix.ErrValidation))
		}
		ints[k] = int(v)
	}

	return Ind2Sub(shape, ints, opts...)
}

// Sub2Ind converts subscript tuples to linear indices in column-major order.
// Each argument is one tuple of len(shape) subscripts.
//
// For a one-axis shape the subscripts already are linear indices and are
// returned unchanged (concatenated, without range checks).
//
// Errors: matrix.ErrBadShape, matrix.ErrDimensionMismatch, matrix.ErrOutOfRange.
// Complexity: O(len(subs)·len(shape)).
func Sub2Ind(shape []int, subs ...[]int) ([]int, error) {
	return Sub2IndOpts(shape, subs)
}

// Sub2IndOpts is Sub2Ind with options (see WithOrder).
func Sub2IndOpts(shape []int, subs [][]int, opts ...Option) ([]int, error) {
	if _, err := validateExtents(opSub2Ind, shape); err != nil {
		return nil, err
	}
	if len(shape) == 1 {
		out := make([]int, 0, len(subs))
		for _, row := range subs {
			out = append(out, row...)
		}

		return out, nil
	}
	o := gatherOptions(opts...)

	axes := axisOrder(len(shape), o.order)
	out := make([]int, len(subs))
	for k, row := range subs {
		if len(row) != len(shape) {
			return nil, gridErrorf(opSub2Ind, fmt.Errorf("row %d has %d subscripts, want %d: %w",
				k, len(row), len(shape), matrix.ErrDimensionMismatch))
		}
		ind, stride := 0, 1
		for _, ax := range axes {
			if row[ax] < 0 || row[ax] >= shape[ax] {
				return nil, gridErrorf(opSub2Ind, fmt.Errorf("row %d axis %d subscript %d for shape %v: %w",
					k, ax, row[ax], shape, matrix.ErrOutOfRange))
			}
			ind += row[ax] * stride
			stride *= shape[ax]
		}
		out[k] = ind
	}

	return out, nil
}
