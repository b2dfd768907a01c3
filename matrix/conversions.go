// Package matrix provides converters between Arrays, gonum matrices and the
// loosely typed point lists accepted at the geometry boundary.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opAsArrayNxDim = "AsArrayNxDim"

// FromMat copies any gonum matrix into a 2-D Array.
//
// Time Complexity: O(r*c)
func FromMat(m mat.Matrix) *Array {
	r, c := m.Dims()
	out := &Array{shape: []int{r, c}, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out
}

// ToMat copies a rank-1 (as a column) or rank-2 Array into a *mat.Dense.
// Errors: ErrRank, ErrBadShape (zero-sized, gonum forbids empty Dense).
func (a *Array) ToMat() (*mat.Dense, error) {
	switch a.Rank() {
	case 1:
		if a.shape[0] == 0 {
			return nil, matrixErrorf("ToMat", ErrBadShape)
		}
		return mat.NewDense(a.shape[0], 1, a.Data()), nil
	case 2:
		if a.shape[0] == 0 || a.shape[1] == 0 {
			return nil, matrixErrorf("ToMat", ErrBadShape)
		}
		return mat.NewDense(a.shape[0], a.shape[1], a.Data()), nil
	default:
		return nil, matrixErrorf("ToMat", fmt.Errorf("rank %d: %w", a.Rank(), ErrRank))
	}
}

// IsScalar reports whether x is a Go numeric scalar or a single-element
// Array or gonum matrix.
func IsScalar(x any) bool {
	switch v := x.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case *Array:
		return v != nil && v.Size() == 1
	case mat.Matrix:
		r, c := v.Dims()
		return r == 1 && c == 1
	default:
		return false
	}
}

// AsArrayNxDim coerces a point list into an N×dim matrix.
//
// Accepted inputs: []float64, [][]float64, *Array (rank 1 or 2), mat.Matrix.
// A 1-D input becomes a single column when dim == 1 and a single row
// (one point) when dim > 1.
//
// Errors: ErrNotDense (unsupported input), ErrRank, ErrDimensionMismatch
// (column count != dim), ErrBadShape (dim < 1 or empty input).
func AsArrayNxDim(pts any, dim int) (*mat.Dense, error) {
	if dim < 1 {
		return nil, matrixErrorf(opAsArrayNxDim, fmt.Errorf("dim=%d: %w", dim, ErrBadShape))
	}
	var a *Array
	switch v := pts.(type) {
	case []float64:
		a = Vector(v...)
	case [][]float64:
		var err error
		if a, err = FromRows(v); err != nil {
			return nil, matrixErrorf(opAsArrayNxDim, err)
		}
	case *Array:
		if err := ValidateRank(v, 1, 2); err != nil {
			return nil, matrixErrorf(opAsArrayNxDim, err)
		}
		a = v
	case mat.Matrix:
		a = FromMat(v)
	default:
		return nil, matrixErrorf(opAsArrayNxDim, fmt.Errorf("%T: %w", pts, ErrNotDense))
	}

	if a.Rank() == 1 {
		if dim == 1 {
			a = &Array{shape: []int{a.Size(), 1}, data: a.data}
		} else {
			a = &Array{shape: []int{1, a.Size()}, data: a.data}
		}
	}
	if a.shape[1] != dim {
		return nil, matrixErrorf(opAsArrayNxDim,
			fmt.Errorf("pts must have shape (nPts, %d), got (%d, %d): %w", dim, a.shape[0], a.shape[1], ErrDimensionMismatch))
	}

	return a.ToMat()
}
