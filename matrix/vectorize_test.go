// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Mkvc.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/opengeophysics/matrixutils/matrix"
)

// TestMkvc_Shapes checks the requested trailing singleton axes.
func TestMkvc_Shapes(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tests := []struct {
		numDims int
		want    []int
	}{
		{1, []int{6}},
		{2, []int{6, 1}},
		{3, []int{6, 1, 1}},
	}
	for _, tc := range tests {
		v, err := matrix.Mkvc(a, tc.numDims)
		require.NoError(t, err)
		require.Equal(t, tc.want, v.Shape())
		require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, v.Data(), "column-major order")
	}

	_, err := matrix.Mkvc(a, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Mkvc(a, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Mkvc(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilArray)
}

// TestMkvc_Idempotent: vectorizing a vector changes nothing.
func TestMkvc_Idempotent(t *testing.T) {
	a := mustArray(t, []float64{0, 1, 10, 11, 100, 101, 110, 111}, 2, 2, 2)
	once, err := matrix.Mkvc(a, 1)
	require.NoError(t, err)
	twice, err := matrix.Mkvc(once, 1)
	require.NoError(t, err)
	require.Equal(t, once.Shape(), twice.Shape())
	require.Equal(t, once.Data(), twice.Data())
	require.Equal(t, a.Size(), once.Size())

	col, err := matrix.Mkvc(once, 2)
	require.NoError(t, err)
	back, err := matrix.Mkvc(col, 1)
	require.NoError(t, err)
	require.Equal(t, once.Data(), back.Data())
}

// TestMkvcMat accepts gonum matrices.
func TestMkvcMat(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	v, err := matrix.MkvcMat(m, 2)
	require.NoError(t, err)
	require.Equal(t, []int{4, 1}, v.Shape())
	require.Equal(t, []float64{1, 3, 2, 4}, v.Data())

	_, err = matrix.MkvcMat(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilArray)
}
