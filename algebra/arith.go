// SPDX-License-Identifier: MIT
// Package: algebra
//
// arith.go — the public operator functions. Each one converts its operands
// with Of, looks up the kernel for (kind(a), kind(b)) and decorates any error
// with the operator name and both kinds.

package algebra

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/matrix"
)

// apply converts both operands and runs the table entry.
func apply(t *table, op string, x, y any) (Value, error) {
	a, err := Of(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b, err := Of(y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := t[a.Kind()][b.Kind()](a, b)
	if err != nil {
		return nil, algebraErrorf(op, a.Kind(), b.Kind(), err)
	}

	return out, nil
}

// Add returns a + b.
//
//   - Zero is the additive identity on either side: Add(Zero, x) = x.
//   - ±I plus a dense operand adds ±1 elementwise; ±I plus a square sparse
//     matrix adds ±speye(n).
//   - A sparse matrix plus a non-zero Scalar is ErrUnsupportedOperation.
//   - Dense operands broadcast.
//
// Operands may be Values or anything Of accepts.
func Add(a, b any) (Value, error) { return apply(&addTable, opAdd, a, b) }

// Sub returns a − b, defined as Add(a, Neg(b)).
func Sub(a, b any) (Value, error) {
	nb, err := Neg(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSub, err)
	}
	out, err := Add(a, nb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSub, err)
	}

	return out, nil
}

// Mul returns a * b.
//
//   - Zero annihilates: either operand Zero gives Zero.
//   - ±I on either side returns ±(the other operand); I*I keeps Identity.
//   - Scalar × sparse scales; sparse × sparse and mixed sparse/dense
//     operands use the matrix product.
//   - Scalar and dense operands multiply elementwise with broadcasting.
func Mul(a, b any) (Value, error) { return apply(&mulTable, opMul, a, b) }

// Div returns a / b.
//
//   - Zero / x = Zero for every x, including Zero.
//   - x / Zero (x ≠ Zero) is ErrDivisionByZero.
//   - Any sparse divisor, and sparse / Identity, is ErrUnsupportedOperation.
//   - Sparse / Scalar scales by 1/s.
//   - ±I / x divides ±1 elementwise; ±I / ±I multiplies the signs.
func Div(a, b any) (Value, error) { return apply(&divTable, opDiv, a, b) }

// FloorDiv returns ⌊a / b⌋ elementwise, with the same sentinel rules as Div.
// Sparse operands are not supported on either side (except a Zero divisor,
// which reports ErrDivisionByZero).
func FloorDiv(a, b any) (Value, error) { return apply(&floorDivTable, opFloorDiv, a, b) }

// Neg returns −a. Neg(Zero) = Zero and Neg(±I) = ∓I.
func Neg(a any) (Value, error) {
	v, err := Of(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNeg, err)
	}
	out, err := negate(v)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opNeg, v.Kind(), err)
	}

	return out, nil
}

// Pos returns a unchanged (after conversion).
func Pos(a any) (Value, error) { return Of(a) }

// Transpose returns the transpose. Zero and ±I are their own transposes,
// Scalar is unchanged, Dense reverses its axes and Sparse swaps rows and
// columns.
func Transpose(a any) (Value, error) {
	v, err := Of(a)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	switch t := v.(type) {
	case Dense:
		return Dense{A: t.A.Transpose()}, nil
	case Sparse:
		return Sparse{Op: matrix.Transpose(t.Op)}, nil
	default:
		return v, nil
	}
}
