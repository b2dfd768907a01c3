// SPDX-License-Identifier: MIT
// Package: algebra
//
// dispatch.go — one table per binary operator, indexed [kind(a)][kind(b)].
//
// Reading a table row answers "what does <a> <op> <b> do" for every operand
// kind. Entries are small named kernels; none of them re-enters the public
// operator functions, which keeps the tables free of initialization cycles.

package algebra

import (
	"math"

	"github.com/opengeophysics/matrixutils/matrix"
)

// Operator tags used in error context.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opFloorDiv = "FloorDiv"
	opNeg      = "Neg"
	opCompare  = "Compare"
	opMkvc     = "Mkvc"
)

type binaryFunc func(a, b Value) (Value, error)

type table [numKinds][numKinds]binaryFunc

//	a + b        Zero   Identity  Scalar  Dense   Sparse
//	Zero         b      b         b       b       b
//	Identity     a      ±1±1      dense   dense   S±speye
//	Scalar       a      dense     dense   dense   s==0 ? S : unsupported
//	Dense        a      dense     dense   dense   dense+S
//	Sparse       a      S±speye   s==0?   dense+S S+S
var addTable = table{
	KindZero: {right, right, right, right, right},
	KindIdentity: {
		KindZero:     left,
		KindIdentity: lift(matrix.AddArrays),
		KindScalar:   lift(matrix.AddArrays),
		KindDense:    lift(matrix.AddArrays),
		KindSparse:   identityPlusSparse,
	},
	KindScalar: {
		KindZero:     left,
		KindIdentity: lift(matrix.AddArrays),
		KindScalar:   lift(matrix.AddArrays),
		KindDense:    lift(matrix.AddArrays),
		KindSparse:   scalarPlusSparse,
	},
	KindDense: {
		KindZero:     left,
		KindIdentity: lift(matrix.AddArrays),
		KindScalar:   lift(matrix.AddArrays),
		KindDense:    lift(matrix.AddArrays),
		KindSparse:   densePlusSparse,
	},
	KindSparse: {
		KindZero:     left,
		KindIdentity: swap(identityPlusSparse),
		KindScalar:   swap(scalarPlusSparse),
		KindDense:    swap(densePlusSparse),
		KindSparse:   sparsePlusSparse,
	},
}

//	a * b        Zero   Identity  Scalar  Dense   Sparse
//	Zero         Zero   Zero      Zero    Zero    Zero
//	Identity     Zero   ±b        ±b      ±b      ±b
//	Scalar       Zero   ±a        dense   dense   s*S
//	Dense        Zero   ±a        dense   dense   D@S
//	Sparse       Zero   ±a        s*S     S@D     S@S
var mulTable = table{
	KindZero: {zero, zero, zero, zero, zero},
	KindIdentity: {
		KindZero:     zero,
		KindIdentity: identityTimes,
		KindScalar:   identityTimes,
		KindDense:    identityTimes,
		KindSparse:   identityTimes,
	},
	KindScalar: {
		KindZero:     zero,
		KindIdentity: swap(identityTimes),
		KindScalar:   lift(matrix.MulArrays),
		KindDense:    lift(matrix.MulArrays),
		KindSparse:   scalarTimesSparse,
	},
	KindDense: {
		KindZero:     zero,
		KindIdentity: swap(identityTimes),
		KindScalar:   lift(matrix.MulArrays),
		KindDense:    lift(matrix.MulArrays),
		KindSparse:   denseTimesSparse,
	},
	KindSparse: {
		KindZero:     zero,
		KindIdentity: swap(identityTimes),
		KindScalar:   swap(scalarTimesSparse),
		KindDense:    sparseTimesDense,
		KindSparse:   sparseTimesSparse,
	},
}

//	a / b        Zero   Identity  Scalar  Dense   Sparse
//	Zero         Zero   Zero      Zero    Zero    Zero
//	Identity     ÷0     ±I        dense   dense   unsupported
//	Scalar       ÷0     dense     dense   dense   unsupported
//	Dense        ÷0     dense     dense   dense   unsupported
//	Sparse       ÷0     unsup.    S/s     unsup.  unsupported
var divTable = table{
	KindZero: {zero, zero, zero, zero, zero},
	KindIdentity: {
		KindZero:     divByZero,
		KindIdentity: identitySign,
		KindScalar:   lift(matrix.DivArrays),
		KindDense:    lift(matrix.DivArrays),
		KindSparse:   unsupported,
	},
	KindScalar: {
		KindZero:     divByZero,
		KindIdentity: lift(matrix.DivArrays),
		KindScalar:   lift(matrix.DivArrays),
		KindDense:    lift(matrix.DivArrays),
		KindSparse:   unsupported,
	},
	KindDense: {
		KindZero:     divByZero,
		KindIdentity: lift(matrix.DivArrays),
		KindScalar:   lift(matrix.DivArrays),
		KindDense:    lift(matrix.DivArrays),
		KindSparse:   unsupported,
	},
	KindSparse: {
		KindZero:     divByZero,
		KindIdentity: unsupported,
		KindScalar:   sparseOverScalar,
		KindDense:    unsupported,
		KindSparse:   unsupported,
	},
}

//	a // b       Zero   Identity  Scalar  Dense   Sparse
//	Zero         Zero   Zero      Zero    Zero    Zero
//	Identity     ÷0     ±I        floor   floor   unsupported
//	Scalar       ÷0     floor     floor   floor   unsupported
//	Dense        ÷0     floor     floor   floor   unsupported
//	Sparse       ÷0     unsupported for every non-Zero divisor
var floorDivTable = table{
	KindZero: {zero, zero, zero, zero, zero},
	KindIdentity: {
		KindZero:     divByZero,
		KindIdentity: identitySign,
		KindScalar:   lift(matrix.FloorDivArrays),
		KindDense:    lift(matrix.FloorDivArrays),
		KindSparse:   unsupported,
	},
	KindScalar: {
		KindZero:     divByZero,
		KindIdentity: lift(matrix.FloorDivArrays),
		KindScalar:   lift(matrix.FloorDivArrays),
		KindDense:    lift(matrix.FloorDivArrays),
		KindSparse:   unsupported,
	},
	KindDense: {
		KindZero:     divByZero,
		KindIdentity: lift(matrix.FloorDivArrays),
		KindScalar:   lift(matrix.FloorDivArrays),
		KindDense:    lift(matrix.FloorDivArrays),
		KindSparse:   unsupported,
	},
	KindSparse: {divByZero, unsupported, unsupported, unsupported, unsupported},
}

func left(a, _ Value) (Value, error)  { return a, nil }
func right(_, b Value) (Value, error) { return b, nil }
func zero(_, _ Value) (Value, error)  { return Zero{}, nil }

func unsupported(_, _ Value) (Value, error) { return nil, ErrUnsupportedOperation }
func divByZero(_, _ Value) (Value, error)   { return nil, ErrDivisionByZero }

// swap adapts a kernel written for (x, y) to the mirrored (y, x) slot.
// Only used for commutative entries.
func swap(fn binaryFunc) binaryFunc {
	return func(a, b Value) (Value, error) { return fn(b, a) }
}

// lift runs an elementwise broadcasting kernel on the dense lowering of both
// operands; rank-0 results collapse back to Scalar.
func lift(kernel func(x, y *matrix.Array) (*matrix.Array, error)) binaryFunc {
	return func(a, b Value) (Value, error) {
		out, err := kernel(arrayOf(a), arrayOf(b))
		if err != nil {
			return nil, err
		}

		return fromArray(out), nil
	}
}

// identitySign implements ±I ∘ ±I for ∘ ∈ {/, //}: the signs multiply.
func identitySign(a, b Value) (Value, error) {
	x, y := a.(Identity), b.(Identity)

	return Identity{negative: x.negative != y.negative}, nil
}

// identityTimes implements ±I * b = ±b.
func identityTimes(a, b Value) (Value, error) {
	if a.(Identity).Positive() {
		return b, nil
	}

	return negate(b)
}

// identityPlusSparse implements ±I + S = S ± speye(n); S must be square.
func identityPlusSparse(a, b Value) (Value, error) {
	op := b.(Sparse).Op
	if err := matrix.ValidateSquare(op); err != nil {
		return nil, err
	}
	n, _ := op.Dims()
	eye, err := matrix.NewSparseIdentity(n)
	if err != nil {
		return nil, err
	}
	if a.(Identity).Positive() {
		out, err := matrix.Add(op, eye)
		return wrapSparse(out, err)
	}
	out, err := matrix.Sub(op, eye)

	return wrapSparse(out, err)
}

// scalarPlusSparse only accepts the additive identity 0.
func scalarPlusSparse(a, b Value) (Value, error) {
	if a.(Scalar) == 0 {
		return b, nil
	}

	return nil, ErrUnsupportedOperation
}

func densePlusSparse(a, b Value) (Value, error) {
	out, err := matrix.AddDense(a.(Dense).A, b.(Sparse).Op, 1)
	if err != nil {
		return nil, err
	}

	return fromArray(out), nil
}

func sparsePlusSparse(a, b Value) (Value, error) {
	return wrapSparse(matrix.Add(a.(Sparse).Op, b.(Sparse).Op))
}

func scalarTimesSparse(a, b Value) (Value, error) {
	return wrapSparse(matrix.Scale(b.(Sparse).Op, float64(a.(Scalar))))
}

func denseTimesSparse(a, b Value) (Value, error) {
	out, err := matrix.DenseMul(a.(Dense).A, b.(Sparse).Op)
	if err != nil {
		return nil, err
	}

	return fromArray(out), nil
}

func sparseTimesDense(a, b Value) (Value, error) {
	out, err := matrix.MulDense(a.(Sparse).Op, b.(Dense).A)
	if err != nil {
		return nil, err
	}

	return fromArray(out), nil
}

func sparseTimesSparse(a, b Value) (Value, error) {
	return wrapSparse(matrix.Mul(a.(Sparse).Op, b.(Sparse).Op))
}

// sparseOverScalar scales by 1/s; s == 0 yields ±Inf entries like dense division.
func sparseOverScalar(a, b Value) (Value, error) {
	s := float64(b.(Scalar))
	if s == 0 {
		return wrapSparse(matrix.Scale(a.(Sparse).Op, math.Inf(1)))
	}

	return wrapSparse(matrix.Scale(a.(Sparse).Op, 1/s))
}

func wrapSparse(s *matrix.Sparse, err error) (Value, error) {
	if err != nil {
		return nil, err
	}

	return Sparse{Op: s}, nil
}

// negate is the table-free unary minus shared by Neg and identityTimes.
func negate(v Value) (Value, error) {
	switch t := v.(type) {
	case Zero:
		return t, nil
	case Identity:
		return t.Neg(), nil
	case Scalar:
		return -t, nil
	case Dense:
		return Dense{A: t.A.Neg()}, nil
	case Sparse:
		return wrapSparse(matrix.Neg(t.Op))
	default:
		return nil, ErrUnsupportedOperation
	}
}
