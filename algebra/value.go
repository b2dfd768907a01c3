// SPDX-License-Identifier: MIT

// Package: algebra
//
// value.go — the closed operand variant.
//
// A Value is exactly one of
//
//	Zero      additive identity, "no operator"
//	Identity  signed multiplicative identity (±1 / ±I)
//	Scalar    a float64
//	Dense     a *matrix.Array
//	Sparse    a matrix.Operator
//
// The set is sealed (unexported marker method) so the dispatch tables in
// dispatch.go cover every pair.

package algebra

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/opengeophysics/matrixutils/matrix"
)

// Kind tags the variant of a Value; it indexes the dispatch tables.
type Kind uint8

const (
	KindZero Kind = iota
	KindIdentity
	KindScalar
	KindDense
	KindSparse

	numKinds
)

var kindNames = [numKinds]string{
	KindZero:     "zero",
	KindIdentity: "identity",
	KindScalar:   "scalar",
	KindDense:    "dense",
	KindSparse:   "sparse",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is an operand of the generic operator arithmetic.
type Value interface {
	// Kind reports the variant.
	Kind() Kind

	sealed()
}

// Zero is the additive identity. It holds no storage; every Zero is equal.
type Zero struct{}

// Identity is the signed multiplicative identity. The zero value is +I.
type Identity struct {
	negative bool
}

// Scalar is a plain float64 operand.
type Scalar float64

// Dense wraps a dense array operand.
type Dense struct {
	A *matrix.Array
}

// Sparse wraps a sparse operator operand.
type Sparse struct {
	Op matrix.Operator
}

// NewIdentity returns +I when positive is true and −I otherwise.
func NewIdentity(positive bool) Identity { return Identity{negative: !positive} }

// Positive reports the sign flag.
func (id Identity) Positive() bool { return !id.negative }

// Neg returns a new Identity with the opposite sign; id is unchanged.
func (id Identity) Neg() Identity { return Identity{negative: !id.negative} }

// sign returns +1 or −1.
func (id Identity) sign() float64 {
	if id.negative {
		return -1
	}

	return 1
}

func (Zero) Kind() Kind     { return KindZero }
func (Identity) Kind() Kind { return KindIdentity }
func (Scalar) Kind() Kind   { return KindScalar }
func (Dense) Kind() Kind    { return KindDense }
func (Sparse) Kind() Kind   { return KindSparse }

func (Zero) sealed()     {}
func (Identity) sealed() {}
func (Scalar) sealed()   {}
func (Dense) sealed()    {}
func (Sparse) sealed()   {}

// String renders sentinels by name and concrete values through their own String.
func (Zero) String() string { return "Zero" }

func (id Identity) String() string {
	if id.negative {
		return "-Identity"
	}

	return "Identity"
}

// Of is the explicit conversion step from Go values to a Value:
//
//	Value                      → itself
//	float64, float32, (u)ints  → Scalar
//	*matrix.Array              → Dense (rank 0 → Scalar)
//	matrix.Operator            → Sparse
//	mat.Matrix (legacy dense)  → Dense (copied)
//
// Errors: matrix.ErrNilArray for nil inputs, ErrUnknownOperand otherwise.
func Of(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return nil, fmt.Errorf("Of: %w", matrix.ErrNilArray)
	case Dense:
		if v.A == nil {
			return nil, fmt.Errorf("Of: %w", matrix.ErrNilArray)
		}
		return v, nil
	case Sparse:
		if err := matrix.ValidateOperator(v.Op); err != nil {
			return nil, fmt.Errorf("Of: %w", err)
		}
		return v, nil
	case Value:
		return v, nil
	case float64:
		return Scalar(v), nil
	case float32:
		return Scalar(v), nil
	case int:
		return Scalar(v), nil
	case int8:
		return Scalar(v), nil
	case int16:
		return Scalar(v), nil
	case int32:
		return Scalar(v), nil
	case int64:
		return Scalar(v), nil
	case uint:
		return Scalar(v), nil
	case uint8:
		return Scalar(v), nil
	case uint16:
		return Scalar(v), nil
	case uint32:
		return Scalar(v), nil
	case uint64:
		return Scalar(v), nil
	case *matrix.Array:
		if v == nil {
			return nil, fmt.Errorf("Of: %w", matrix.ErrNilArray)
		}
		return fromArray(v), nil
	case matrix.Operator:
		if err := matrix.ValidateOperator(v); err != nil {
			return nil, fmt.Errorf("Of: %w", err)
		}
		return Sparse{Op: v}, nil
	case mat.Matrix:
		return Dense{A: matrix.FromMat(v)}, nil
	default:
		return nil, fmt.Errorf("Of(%T): %w", x, ErrUnknownOperand)
	}
}

// arrayOf lowers any Value to a dense Array: sentinels become rank-0 scalars
// (0 or ±1) and sparse operands are materialized.
func arrayOf(v Value) *matrix.Array {
	switch t := v.(type) {
	case Zero:
		return matrix.NewScalar(0)
	case Identity:
		return matrix.NewScalar(t.sign())
	case Scalar:
		return matrix.NewScalar(float64(t))
	case Dense:
		return t.A
	case Sparse:
		return matrix.ArrayOf(t.Op)
	default:
		return nil
	}
}

// fromArray wraps a kernel result, collapsing rank-0 arrays to Scalar.
func fromArray(a *matrix.Array) Value {
	if a.Rank() == 0 {
		v, _ := a.At()
		return Scalar(v)
	}

	return Dense{A: a}
}
