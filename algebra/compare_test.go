// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opengeophysics/matrixutils/algebra"
	"github.com/opengeophysics/matrixutils/matrix"
)

// TestAllEqual_Sentinels pins how sentinels lower for comparison.
func TestAllEqual_Sentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"zero vs identity", algebra.Zero{}, algebra.Identity{}, false},
		{"zero vs 0", algebra.Zero{}, 0, true},
		{"identity vs 1", algebra.Identity{}, 1, true},
		{"-identity vs -1", negI, -1.0, true},
		{"-identity vs 1", negI, 1.0, false},
		{"zero vs zeros", algebra.Zero{}, vec(0, 0, 0), true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := algebra.AllEqual(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestCompare_Broadcast returns an elementwise mask.
func TestCompare_Broadcast(t *testing.T) {
	m, err := algebra.Compare(vec(-1, 0, 2), algebra.Less, algebra.Zero{})
	require.NoError(t, err)
	require.Equal(t, []int{3}, m.Shape())
	require.Equal(t, []bool{true, false, false}, m.Values())
	require.True(t, m.Any())
	require.False(t, m.All())

	// Zero on the left compares 0 against every element
	m, err = algebra.Compare(algebra.Zero{}, algebra.Less, vec(-1, 0, 2))
	require.NoError(t, err)
	require.Equal(t, []int{3}, m.Shape())
	require.Equal(t, []bool{false, false, true}, m.Values())

	m, err = algebra.Compare(algebra.Zero{}, algebra.GreaterEqual, vec(-1, 0, 2))
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false}, m.Values())

	m, err = algebra.Compare(rows(t, [][]float64{{1, 2}, {3, 4}}), algebra.GreaterEqual, vec(2, 2))
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true, true}, m.Values())

	s := sparse(t, [][]float64{{1, 0}, {0, 1}})
	m, err = algebra.Compare(s, algebra.Equal, rows(t, [][]float64{{1, 0}, {0, 1}}))
	require.NoError(t, err)
	require.True(t, m.All())

	m, err = algebra.Compare(posI, algebra.NotEqual, vec(1, 2))
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, m.Values())

	_, err = algebra.Compare(vec(1, 2), algebra.Greater, vec(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = algebra.Compare(1, algebra.CmpOp(42), 1)
	require.ErrorIs(t, err, matrix.ErrValidation)
}

// TestCmpOp_String renders the symbol.
func TestCmpOp_String(t *testing.T) {
	require.Equal(t, "<=", algebra.LessEqual.String())
	require.Equal(t, "!=", algebra.NotEqual.String())
}
