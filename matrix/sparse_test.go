// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for CSR construction and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/opengeophysics/matrixutils/matrix"
)

// TestNewSparse_Validation covers the constructor error paths.
func TestNewSparse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		rows    []int
		cols    []int
		vals    []float64
		wantErr error
	}{
		{"negative rows", -1, 2, nil, nil, nil, matrix.ErrBadShape},
		{"length mismatch", 2, 2, []int{0}, []int{0, 1}, []float64{1}, matrix.ErrDimensionMismatch},
		{"row out of range", 2, 2, []int{2}, []int{0}, []float64{1}, matrix.ErrOutOfRange},
		{"col out of range", 2, 2, []int{0}, []int{-1}, []float64{1}, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewSparse(tc.r, tc.c, tc.rows, tc.cols, tc.vals)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, matrix.ErrValidation)
		})
	}
}

// TestNewSparse_DuplicatesAndZeros sums duplicates and drops exact zeros.
func TestNewSparse_DuplicatesAndZeros(t *testing.T) {
	rows := []int{1, 0, 1, 0}
	cols := []int{1, 0, 1, 1}
	vals := []float64{2, 5, 3, 0}

	s := mustSparse(t, 2, 2, rows, cols, vals)
	require.Equal(t, 2, s.NNZ())
	require.Equal(t, [][]float64{{5, 0}, {0, 5}}, denseRows(s))

	kept := mustSparse(t, 2, 2, rows, cols, vals, matrix.WithKeepZeros())
	require.Equal(t, 3, kept.NNZ())

	cancel := mustSparse(t, 1, 1, []int{0, 0}, []int{0, 0}, []float64{1, -1})
	require.Zero(t, cancel.NNZ())
}

// TestSparse_DoNonZeroOrder visits rows in order with ascending columns.
func TestSparse_DoNonZeroOrder(t *testing.T) {
	s := mustSparse(t, 3, 3, []int{2, 0, 0, 1}, []int{0, 2, 0, 1}, []float64{4, 2, 1, 3})
	var got [][3]float64
	s.DoNonZero(func(i, j int, v float64) { got = append(got, [3]float64{float64(i), float64(j), v}) })
	require.Equal(t, [][3]float64{{0, 0, 1}, {0, 2, 2}, {1, 1, 3}, {2, 0, 4}}, got)
}

// TestSparse_Accessors covers At, Get, Diagonal and the panic contract.
func TestSparse_Accessors(t *testing.T) {
	s := sparseFromRows(t, [][]float64{{1, 0, 2}, {0, 3, 0}})

	require.Equal(t, 2.0, s.At(0, 2))
	require.Zero(t, s.At(1, 0))
	v, err := s.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	_, err = s.Get(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Panics(t, func() { s.At(0, 3) })

	require.Equal(t, []float64{1, 3}, s.Diagonal())
}

// TestSparseIdentityAndDiag checks the structured constructors.
func TestSparseIdentityAndDiag(t *testing.T) {
	eye, err := matrix.NewSparseIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 3, eye.NNZ())
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, denseRows(eye))

	_, err = matrix.NewSparseIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	d := matrix.NewSparseDiag([]float64{2, 0, 5})
	require.Equal(t, 2, d.NNZ())
	require.Equal(t, []float64{2, 0, 5}, d.Diagonal())
	require.Equal(t, 3, matrix.NewSparseDiag([]float64{2, 0, 5}, matrix.WithKeepZeros()).NNZ())

	z, err := matrix.NewSparseZeros(2, 4)
	require.NoError(t, err)
	r, c := z.Dims()
	require.Equal(t, [2]int{2, 4}, [2]int{r, c})
	require.Zero(t, z.NNZ())
}

// TestSparse_GonumInterop uses *Sparse wherever gonum expects a mat.Matrix.
func TestSparse_GonumInterop(t *testing.T) {
	s := sparseFromRows(t, [][]float64{{1, 2}, {0, 3}})
	x := mat.NewDense(2, 1, []float64{1, 1})

	var y mat.Dense
	y.Mul(s, x)
	require.Equal(t, []float64{3, 3}, y.RawMatrix().Data)

	require.InDelta(t, math.Sqrt(14), mat.Norm(s, 2), tol)

	st := s.T()
	require.Equal(t, 2.0, st.At(1, 0))

	d, err := s.ToDense()
	require.NoError(t, err)
	require.True(t, mat.Equal(d, mat.NewDense(2, 2, []float64{1, 2, 0, 3})))

	empty, err := matrix.NewSparseZeros(0, 3)
	require.NoError(t, err)
	_, err = empty.ToDense()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestSparse_ToArray materializes into a row-major Array.
func TestSparse_ToArray(t *testing.T) {
	s := sparseFromRows(t, [][]float64{{0, 7}, {1, 0}})
	a := s.ToArray()
	require.Equal(t, []int{2, 2}, a.Shape())
	require.Equal(t, []float64{0, 7, 1, 0}, a.Data())

	require.Equal(t, a.Data(), matrix.ArrayOf(hide{s}).Data())
}

// TestAllClose covers tolerance, dimension checks and infinities.
func TestAllClose(t *testing.T) {
	a := sparseFromRows(t, [][]float64{{1, 0}, {0, 2}})
	b := sparseFromRows(t, [][]float64{{1 + 1e-12, 0}, {0, 2}})
	c := sparseFromRows(t, [][]float64{{1.1, 0}, {0, 2}})

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, c)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, c, matrix.WithEpsilon(0.1))
	require.NoError(t, err)
	require.True(t, ok)

	inf := matrix.NewSparseDiag([]float64{math.Inf(1), 1})
	ok, err = matrix.AllClose(inf, inf)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, sparseFromRows(t, [][]float64{{1, 0, 0}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestWithEpsilon_PanicsOnInvalid guards the option constructor.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
