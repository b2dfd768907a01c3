// SPDX-License-Identifier: MIT
// Package: grid
//
// ndgrid.go - tensor-product point sets from 1..3 axis vectors.
//
// Contract:
//   - Axes are flattened with matrix.Mkvc; shape beyond the element count is ignored.
//   - Point k of the vector form has subscripts (i, j, l) with
//     k = i + n1·(j + n2·l), i.e. the first axis varies fastest.
//   - Results are freshly allocated; inputs are never mutated.

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/opengeophysics/matrixutils/matrix"
)

const (
	opNDGrid       = "NDGrid"
	opNDGridArrays = "NDGridArrays"
)

// axisData validates the axis count and flattens every axis.
func axisData(op string, axes []*matrix.Array) ([][]float64, error) {
	if len(axes) == 0 || len(axes) > MaxAxes {
		return nil, gridErrorf(op, fmt.Errorf("got %d axes: %w", len(axes), ErrAxisCount))
	}
	out := make([][]float64, len(axes))
	for d, a := range axes {
		v, err := matrix.Mkvc(a, 1)
		if err != nil {
			return nil, gridErrorf(op, fmt.Errorf("axis %d: %w", d, err))
		}
		out[d] = v.Data()
	}

	return out, nil
}

// extents returns the per-axis lengths and their product.
func extents(xs [][]float64) ([]int, int) {
	n := make([]int, len(xs))
	total := 1
	for d, x := range xs {
		n[d] = len(x)
		total *= n[d]
	}

	return n, total
}

// NDGrid returns every grid point as a row of an N×d matrix, N = n1·…·nd.
//
// Example:
//
//	NDGrid([1 2 3], [1 2]) =
//	  [1 1]
//	  [2 1]
//	  [3 1]
//	  [1 2]
//	  [2 2]
//	  [3 2]
//
// Errors: ErrAxisCount, matrix.ErrNilArray, matrix.ErrBadShape (an empty axis;
// gonum has no empty Dense).
// Complexity: O(N·d).
func NDGrid(axes ...*matrix.Array) (*mat.Dense, error) {
	xs, err := axisData(opNDGrid, axes)
	if err != nil {
		return nil, err
	}
	n, total := extents(xs)
	if total == 0 {
		return nil, gridErrorf(opNDGrid, fmt.Errorf("extents %v: %w", n, matrix.ErrBadShape))
	}

	d := len(xs)
	data := make([]float64, total*d)
	sub := make([]int, d) // odometer, first axis fastest
	for k := 0; k < total; k++ {
		for ax := 0; ax < d; ax++ {
			data[k*d+ax] = xs[ax][sub[ax]]
		}
		for ax := 0; ax < d; ax++ {
			sub[ax]++
			if sub[ax] < n[ax] {
				break
			}
			sub[ax] = 0
		}
	}

	return mat.NewDense(total, d, data), nil
}

// NDGridArrays returns one array per axis, each of shape (n1[, n2[, n3]]),
// where the d-th array holds x_d broadcast along the other axes:
// X1[i,j] = x1[i], X2[i,j] = x2[j].
//
// A single axis is returned as a 1-D copy.
// Errors: ErrAxisCount, matrix.ErrNilArray.
// Complexity: O(N·d).
func NDGridArrays(axes ...*matrix.Array) ([]*matrix.Array, error) {
	xs, err := axisData(opNDGridArrays, axes)
	if err != nil {
		return nil, err
	}
	n, total := extents(xs)

	d := len(xs)
	bufs := make([][]float64, d)
	for ax := range bufs {
		bufs[ax] = make([]float64, total)
	}
	sub := make([]int, d) // odometer, last axis fastest (row-major storage)
	for k := 0; k < total; k++ {
		for ax := 0; ax < d; ax++ {
			bufs[ax][k] = xs[ax][sub[ax]]
		}
		for ax := d - 1; ax >= 0; ax-- {
			sub[ax]++
			if sub[ax] < n[ax] {
				break
			}
			sub[ax] = 0
		}
	}

	out := make([]*matrix.Array, d)
	for ax, buf := range bufs {
		a, err := matrix.FromSlice(buf, n...)
		if err != nil {
			return nil, gridErrorf(opNDGridArrays, err)
		}
		out[ax] = a
	}

	return out, nil
}
