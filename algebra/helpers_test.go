// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opengeophysics/matrixutils/algebra"
	"github.com/opengeophysics/matrixutils/matrix"
)

var (
	posI = algebra.NewIdentity(true)
	negI = algebra.NewIdentity(false)
)

func vec(vals ...float64) algebra.Dense { return algebra.Dense{A: matrix.Vector(vals...)} }

func rows(t *testing.T, r [][]float64) algebra.Dense {
	t.Helper()
	a, err := matrix.FromRows(r)
	require.NoError(t, err)

	return algebra.Dense{A: a}
}

func sparse(t *testing.T, r [][]float64) algebra.Sparse {
	t.Helper()
	var ri, ci []int
	var vs []float64
	c := 0
	for i, row := range r {
		c = len(row)
		for j, v := range row {
			if v != 0 {
				ri, ci, vs = append(ri, i), append(ci, j), append(vs, v)
			}
		}
	}
	s, err := matrix.NewSparse(len(r), c, ri, ci, vs)
	require.NoError(t, err)

	return algebra.Sparse{Op: s}
}

// denseData extracts the row-major data of a Dense result.
func denseData(t *testing.T, v algebra.Value) []float64 {
	t.Helper()
	d, ok := v.(algebra.Dense)
	require.Truef(t, ok, "want Dense, got %T", v)

	return d.A.Data()
}

// sparseRows materializes a Sparse result.
func sparseRows(t *testing.T, v algebra.Value) [][]float64 {
	t.Helper()
	s, ok := v.(algebra.Sparse)
	require.Truef(t, ok, "want Sparse, got %T", v)
	a := matrix.ArrayOf(s.Op)
	r, c := s.Op.Dims()
	data := a.Data()
	out := make([][]float64, r)
	for i := range out {
		out[i] = data[i*c : (i+1)*c]
	}

	return out
}
