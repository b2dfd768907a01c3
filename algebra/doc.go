// Package algebra implements arithmetic over heterogeneous operator operands.
//
// Finite-volume operators are assembled from pieces that may be absent
// (Zero), trivial (±Identity), plain numbers, dense arrays or sparse
// matrices. The package models these as a closed variant, Value, and
// defines Add, Sub, Mul, Div, FloorDiv, Neg, Pos and Transpose for every
// pair of kinds:
//
//	v, err := algebra.Add(algebra.Zero{}, x)            // x
//	v, err = algebra.Mul(algebra.NewIdentity(false), x) // −x
//	v, err = algebra.Div(x, algebra.Zero{})             // ErrDivisionByZero
//
// Operands can be passed as Values or as plain Go values (float64, int,
// *matrix.Array, matrix.Operator, mat.Matrix); Of performs the conversion.
//
// The behavior of each operator is a [kind][kind] table in dispatch.go.
// Comparisons (Compare, AllEqual) lower both operands to dense arrays and
// return a Mask.
//
// Errors: ErrDivisionByZero, ErrUnsupportedOperation and the matrix
// validation sentinels; match them with errors.Is.
package algebra
