// SPDX-License-Identifier: MIT

package algebra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opengeophysics/matrixutils/algebra"
	"github.com/opengeophysics/matrixutils/matrix"
)

// TestZero_Rules exercises the additive-identity sentinel against every kind.
func TestZero_Rules(t *testing.T) {
	t.Parallel()

	z := algebra.Zero{}
	operands := map[string]algebra.Value{
		"zero":     z,
		"identity": posI,
		"scalar":   algebra.Scalar(3),
		"dense":    vec(1, 2),
		"sparse":   sparse(t, [][]float64{{1, 0}, {0, 2}}),
	}
	for name, x := range operands {
		x := x
		t.Run(name, func(t *testing.T) {
			v, err := algebra.Add(z, x)
			require.NoError(t, err)
			require.Equal(t, x, v, "Z+x")

			v, err = algebra.Add(x, z)
			require.NoError(t, err)
			require.Equal(t, x, v, "x+Z")

			v, err = algebra.Sub(x, z)
			require.NoError(t, err)
			require.Equal(t, x, v, "x-Z")

			v, err = algebra.Mul(z, x)
			require.NoError(t, err)
			require.Equal(t, z, v, "Z*x")

			v, err = algebra.Mul(x, z)
			require.NoError(t, err)
			require.Equal(t, z, v, "x*Z")

			v, err = algebra.Div(z, x)
			require.NoError(t, err)
			require.Equal(t, z, v, "Z/x")

			v, err = algebra.FloorDiv(z, x)
			require.NoError(t, err)
			require.Equal(t, z, v, "Z//x")

			if x.Kind() != algebra.KindZero {
				_, err = algebra.Div(x, z)
				require.ErrorIs(t, err, algebra.ErrDivisionByZero, "x/Z")
				_, err = algebra.FloorDiv(x, z)
				require.ErrorIs(t, err, algebra.ErrDivisionByZero, "x//Z")
			}
		})
	}
}

// TestZero_Unary covers negation, transpose and Z-x.
func TestZero_Unary(t *testing.T) {
	z := algebra.Zero{}

	v, err := algebra.Neg(z)
	require.NoError(t, err)
	require.Equal(t, z, v)

	v, err = algebra.Pos(z)
	require.NoError(t, err)
	require.Equal(t, z, v)

	v, err = algebra.Transpose(z)
	require.NoError(t, err)
	require.Equal(t, z, v)

	v, err = algebra.Sub(z, algebra.Scalar(4))
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(-4), v)

	v, err = algebra.Sub(z, vec(1, -2))
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2}, denseData(t, v))

	// Z/Z: the numerator rule wins
	v, err = algebra.Div(z, z)
	require.NoError(t, err)
	require.Equal(t, z, v)

	// plain Go numbers are accepted
	v, err = algebra.Add(z, 7)
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(7), v)
}

// TestIdentity_AddSub covers ±I with scalars, dense and sparse operands.
func TestIdentity_AddSub(t *testing.T) {
	v, err := algebra.Add(posI, posI)
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(2), v)

	v, err = algebra.Add(posI, negI)
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(0), v)

	v, err = algebra.Add(algebra.Scalar(3), negI)
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(2), v)

	v, err = algebra.Add(posI, vec(1, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, denseData(t, v))

	v, err = algebra.Sub(vec(1, 2), posI)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, denseData(t, v))

	s := sparse(t, [][]float64{{1, 2}, {0, 3}})
	v, err = algebra.Add(posI, s)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 2}, {0, 4}}, sparseRows(t, v))

	v, err = algebra.Add(s, negI)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 2}, {0, 2}}, sparseRows(t, v))

	v, err = algebra.Sub(s, posI)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 2}, {0, 2}}, sparseRows(t, v))

	_, err = algebra.Add(posI, sparse(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestIdentity_Mul returns ±x and keeps Identity for I*I.
func TestIdentity_Mul(t *testing.T) {
	s := sparse(t, [][]float64{{1, 0}, {0, 2}})

	v, err := algebra.Mul(posI, s)
	require.NoError(t, err)
	require.Equal(t, s, v)

	v, err = algebra.Mul(s, negI)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, 0}, {0, -2}}, sparseRows(t, v))

	v, err = algebra.Mul(negI, vec(1, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -2}, denseData(t, v))

	v, err = algebra.Mul(algebra.Scalar(5), negI)
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(-5), v)

	v, err = algebra.Mul(negI, negI)
	require.NoError(t, err)
	require.Equal(t, posI, v)

	v, err = algebra.Mul(posI, negI)
	require.NoError(t, err)
	require.Equal(t, negI, v)
}

// TestIdentity_Div covers I/x, x/I and the floor variants.
func TestIdentity_Div(t *testing.T) {
	s := sparse(t, [][]float64{{1, 0}, {0, 2}})

	v, err := algebra.Div(negI, algebra.Scalar(4))
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(-0.25), v)

	v, err = algebra.Div(posI, vec(2, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.25}, denseData(t, v))

	v, err = algebra.Div(vec(2, 4), negI)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -4}, denseData(t, v))

	v, err = algebra.Div(negI, negI)
	require.NoError(t, err)
	require.Equal(t, posI, v)

	_, err = algebra.Div(posI, s)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperation)
	_, err = algebra.Div(s, posI)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperation)

	v, err = algebra.FloorDiv(posI, algebra.Scalar(3))
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(0), v)

	v, err = algebra.FloorDiv(negI, algebra.Scalar(3))
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(-1), v)

	v, err = algebra.FloorDiv(algebra.Scalar(7.5), negI)
	require.NoError(t, err)
	require.Equal(t, algebra.Scalar(-8), v)

	v, err = algebra.FloorDiv(posI, negI)
	require.NoError(t, err)
	require.Equal(t, negI, v)
}

// TestIdentity_Unary covers negation and transpose.
func TestIdentity_Unary(t *testing.T) {
	v, err := algebra.Neg(posI)
	require.NoError(t, err)
	require.Equal(t, negI, v)

	v, err = algebra.Transpose(negI)
	require.NoError(t, err)
	require.Equal(t, negI, v)
}

// TestSubIsAddNeg checks a-b == a+(-b) across kinds.
func TestSubIsAddNeg(t *testing.T) {
	pairs := [][2]algebra.Value{
		{vec(1, 2), algebra.Scalar(3)},
		{posI, vec(5, 6)},
		{sparse(t, [][]float64{{1, 2}, {3, 4}}), sparse(t, [][]float64{{0, 1}, {1, 0}})},
		{algebra.Scalar(2), negI},
	}
	for _, p := range pairs {
		sub, err := algebra.Sub(p[0], p[1])
		require.NoError(t, err)
		nb, err := algebra.Neg(p[1])
		require.NoError(t, err)
		add, err := algebra.Add(p[0], nb)
		require.NoError(t, err)
		eq, err := algebra.AllEqual(sub, add)
		require.NoError(t, err)
		require.True(t, eq)
	}
}

// TestConcrete_Sparse covers sparse arithmetic with concrete operands.
func TestConcrete_Sparse(t *testing.T) {
	a := sparse(t, [][]float64{{1, 0}, {0, 2}})
	b := sparse(t, [][]float64{{0, 1}, {1, 0}})

	v, err := algebra.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1}, {1, 2}}, sparseRows(t, v))

	v, err = algebra.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {2, 0}}, sparseRows(t, v))

	v, err = algebra.Mul(2, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, 4}}, sparseRows(t, v))

	v, err = algebra.Div(a, algebra.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 0}, {0, 1}}, sparseRows(t, v))

	v, err = algebra.Add(a, rows(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 1, 1, 3}, denseData(t, v))

	v, err = algebra.Sub(rows(t, [][]float64{{1, 1}, {1, 1}}), a)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1, -1}, denseData(t, v))

	v, err = algebra.Mul(a, vec(3, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{3, 8}, denseData(t, v))

	v, err = algebra.Mul(vec(3, 4), b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3}, denseData(t, v))

	v, err = algebra.Add(a, 0.0)
	require.NoError(t, err)
	require.Equal(t, a, v)

	_, err = algebra.Add(a, 1.0)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperation)
	_, err = algebra.Div(algebra.Scalar(1), a)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperation)
	_, err = algebra.Div(a, b)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperation)
	_, err = algebra.FloorDiv(a, algebra.Scalar(2))
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperation)
}

// TestConcrete_Dense covers elementwise arithmetic with broadcasting.
func TestConcrete_Dense(t *testing.T) {
	m := rows(t, [][]float64{{1, 2}, {3, 4}})

	v, err := algebra.Add(m, vec(10, 20))
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 13, 24}, denseData(t, v))

	v, err = algebra.Mul(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6, 8}, denseData(t, v))

	v, err = algebra.Div(1, m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 0.5, 1.0 / 3, 0.25}, denseData(t, v), 1e-15)

	v, err = algebra.FloorDiv(m, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 1}, denseData(t, v))

	v, err = algebra.Div(algebra.Scalar(1), algebra.Scalar(0))
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(v.(algebra.Scalar)), 1), "scalar 0 is not the Zero sentinel")

	_, err = algebra.Add(m, vec(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	v, err = algebra.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2, 4}, denseData(t, v))
}

// TestErrorContext names the operator and both kinds.
func TestErrorContext(t *testing.T) {
	_, err := algebra.Div(vec(1), algebra.Zero{})
	require.EqualError(t, err, "Div(dense, zero): division by zero")
}
