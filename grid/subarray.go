// SPDX-License-Identifier: MIT
// Package: grid

package grid

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/matrix"
)

const opGetSubArray = "GetSubArray"

// GetSubArray extracts the sub-array A[ind[0], ind[1](, ind[2])] formed by the
// Cartesian product of the index lists, one list per axis:
//
//	out[i, j] = A[ind[0][i], ind[1][j]]
//
// Negative indices count from the end of the axis (-1 is the last element).
//
// Errors: matrix.ErrNilArray, matrix.ErrRank (rank ∉ {2,3}),
// matrix.ErrDimensionMismatch (len(ind) ≠ rank), matrix.ErrOutOfRange.
// Complexity: O(Π len(ind[k])).
func GetSubArray(a *matrix.Array, ind [][]int) (*matrix.Array, error) {
	if err := matrix.ValidateRank(a, 2, 3); err != nil {
		return nil, gridErrorf(opGetSubArray, err)
	}
	shape := a.Shape()
	if len(ind) != len(shape) {
		return nil, gridErrorf(opGetSubArray, fmt.Errorf("%d index lists for rank %d: %w",
			len(ind), len(shape), matrix.ErrDimensionMismatch))
	}

	// resolve negative indices once up front
	lists := make([][]int, len(ind))
	outShape := make([]int, len(ind))
	for ax, list := range ind {
		lists[ax] = make([]int, len(list))
		for k, i := range list {
			if i < 0 {
				i += shape[ax]
			}
			if i < 0 || i >= shape[ax] {
				return nil, gridErrorf(opGetSubArray, fmt.Errorf("axis %d index %d for extent %d: %w",
					ax, list[k], shape[ax], matrix.ErrOutOfRange))
			}
			lists[ax][k] = i
		}
		outShape[ax] = len(list)
	}

	out, err := matrix.NewArray(outShape...)
	if err != nil {
		return nil, gridErrorf(opGetSubArray, err)
	}
	src := make([]int, len(shape))
	dst := make([]int, len(shape))
	var walk func(ax int) error
	walk = func(ax int) error {
		if ax == len(shape) {
			v, err := a.At(src...)
			if err != nil {
				return err
			}

			return out.Set(v, dst...)
		}
		for k, i := range lists[ax] {
			src[ax], dst[ax] = i, k
			if err := walk(ax + 1); err != nil {
				return err
			}
		}

		return nil
	}
	if err := walk(0); err != nil {
		return nil, gridErrorf(opGetSubArray, err)
	}

	return out, nil
}
