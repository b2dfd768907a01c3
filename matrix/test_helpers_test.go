// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Array and Sparse kernels.
//   • Keep all data finite so numeric policy never interferes with assertions.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opengeophysics/matrixutils/matrix"
)

// tol is the absolute tolerance for float comparisons in this package.
const tol = 1e-12

// hide wraps an Operator to mask its concrete *Sparse type, forcing the
// kernels through their generic DoNonZero paths.
type hide struct{ matrix.Operator }

// mustArray builds an Array from row-major data or fails the test.
func mustArray(t testing.TB, data []float64, shape ...int) *matrix.Array {
	t.Helper()
	a, err := matrix.FromSlice(data, shape...)
	require.NoError(t, err)

	return a
}

// mustRows builds a 2-D Array from rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Array {
	t.Helper()
	a, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return a
}

// mustSparse builds a CSR matrix from COO triplets or fails the test.
func mustSparse(t testing.TB, r, c int, rows, cols []int, vals []float64, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparse(r, c, rows, cols, vals, opts...)
	require.NoError(t, err)

	return s
}

// sparseFromRows stores every non-zero of a dense row list.
func sparseFromRows(t testing.TB, rows [][]float64) *matrix.Sparse {
	t.Helper()
	var ri, ci []int
	var vs []float64
	c := 0
	for i, row := range rows {
		c = len(row)
		for j, v := range row {
			if v != 0 {
				ri, ci, vs = append(ri, i), append(ci, j), append(vs, v)
			}
		}
	}

	return mustSparse(t, len(rows), c, ri, ci, vs)
}

// denseRows materializes an Operator as [][]float64 for readable assertions.
func denseRows(op matrix.Operator) [][]float64 {
	r, c := op.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}
	op.DoNonZero(func(i, j int, v float64) { out[i][j] += v })

	return out
}

// randSparse returns an r×c matrix with roughly density*r*c entries in
// [-1,1), seeded for reproducibility.
func randSparse(t testing.TB, r, c int, density float64, seed int64) *matrix.Sparse {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var ri, ci []int
	var vs []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				ri, ci, vs = append(ri, i), append(ci, j), append(vs, 2*rng.Float64()-1)
			}
		}
	}

	return mustSparse(t, r, c, ri, ci, vs)
}
