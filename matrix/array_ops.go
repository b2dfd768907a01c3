// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and broadcast kernels over dense Arrays, shared by the
//     algebra dispatch tables and by builders.
//   - Same-shape operands take a flat fast-path through gonum/floats;
//     otherwise NumPy broadcasting rules apply (right-aligned axes, extent 1
//     stretches).
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over the output.
//   - Exactly one allocation for the output buffer (plus an index counter).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opFloorDiv  = "FloorDiv"
	opBroadcast = "Broadcast"
)

// BroadcastShapes returns the NumPy broadcast of two shapes.
// Errors: ErrDimensionMismatch when an axis pair is neither equal nor 1.
// Complexity: O(max rank).
func BroadcastShapes(a, b []int) ([]int, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make([]int, rank)
	for k := 1; k <= rank; k++ {
		da, db := 1, 1
		if k <= len(a) {
			da = a[len(a)-k]
		}
		if k <= len(b) {
			db = b[len(b)-k]
		}
		switch {
		case da == db:
			out[rank-k] = da
		case da == 1:
			out[rank-k] = db
		case db == 1:
			out[rank-k] = da
		default:
			return nil, fmt.Errorf("shapes %v and %v: %w", a, b, ErrDimensionMismatch)
		}
	}

	return out, nil
}

// BroadcastPairs visits every element of the broadcast of a and b in row-major
// order, calling fn with the flat output offset and the two operand values.
// It returns the broadcast shape.
//
// Implementation:
//   - Stage 1: compute the output shape (BroadcastShapes).
//   - Stage 2: derive per-operand strides with 0 on stretched axes.
//   - Stage 3: walk an odometer over the output, tracking both operand offsets.
//
// Complexity: O(size(out) + rank).
func BroadcastPairs(a, b *Array, fn func(k int, x, y float64)) ([]int, error) {
	if err := ValidateArray(a); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	if err := ValidateArray(b); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	n := shapeSize(shape)
	if n == 0 {
		return shape, nil
	}
	sa := broadcastStrides(a.shape, shape)
	sb := broadcastStrides(b.shape, shape)
	rank := len(shape)
	idx := make([]int, rank)
	offA, offB := 0, 0
	for k := 0; k < n; k++ {
		fn(k, a.data[offA], b.data[offB])
		// advance the last axis fastest (row-major)
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			offA += sa[ax]
			offB += sb[ax]
			if idx[ax] < shape[ax] {
				break
			}
			offA -= sa[ax] * idx[ax]
			offB -= sb[ax] * idx[ax]
			idx[ax] = 0
		}
	}

	return shape, nil
}

// broadcastStrides maps an operand shape onto the output shape; stretched and
// missing leading axes get stride 0.
func broadcastStrides(shape, out []int) []int {
	own := rowMajorStrides(shape)
	strides := make([]int, len(out))
	lead := len(out) - len(shape)
	for ax := range shape {
		if shape[ax] != 1 || out[lead+ax] == 1 {
			strides[lead+ax] = own[ax]
		}
	}

	return strides
}

// Broadcast applies fn element-wise over the broadcast of a and b.
// Complexity: O(size(out)).
func Broadcast(a, b *Array, fn func(x, y float64) float64) (*Array, error) {
	if err := ValidateArray(a); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	if err := ValidateArray(b); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	out := &Array{shape: shape, data: make([]float64, shapeSize(shape))}
	if _, err = BroadcastPairs(a, b, func(k int, x, y float64) { out.data[k] = fn(x, y) }); err != nil {
		return nil, err
	}

	return out, nil
}

// binary runs the flat gonum kernel when shapes match and falls back to
// broadcasting otherwise.
func binary(tag string, a, b *Array, flat func(dst, s, t []float64) []float64, fn func(x, y float64) float64) (*Array, error) {
	if err := ValidateArray(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateArray(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if sameShape(a.shape, b.shape) {
		dst := make([]float64, len(a.data))
		flat(dst, a.data, b.data)

		return &Array{shape: cloneInts(a.shape), data: dst}, nil
	}
	out, err := Broadcast(a, b, fn)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// AddArrays returns a + b (broadcasting).
func AddArrays(a, b *Array) (*Array, error) {
	return binary(opAdd, a, b, floats.AddTo, func(x, y float64) float64 { return x + y })
}

// SubArrays returns a - b (broadcasting).
func SubArrays(a, b *Array) (*Array, error) {
	return binary(opSub, a, b, floats.SubTo, func(x, y float64) float64 { return x - y })
}

// MulArrays returns the element-wise product a ⊙ b (broadcasting).
func MulArrays(a, b *Array) (*Array, error) {
	return binary(opMul, a, b, floats.MulTo, func(x, y float64) float64 { return x * y })
}

// DivArrays returns the element-wise quotient a / b (broadcasting).
// Division by zero follows IEEE-754 (±Inf / NaN), it is not an error.
func DivArrays(a, b *Array) (*Array, error) {
	return binary(opDiv, a, b, floats.DivTo, func(x, y float64) float64 { return x / y })
}

// FloorDivArrays returns floor(a / b) element-wise (broadcasting).
func FloorDivArrays(a, b *Array) (*Array, error) {
	out, err := DivArrays(a, b)
	if err != nil {
		return nil, matrixErrorf(opFloorDiv, err)
	}
	for i, v := range out.data {
		out.data[i] = math.Floor(v)
	}

	return out, nil
}

// Scale returns alpha*a.
// Complexity: O(size).
func (a *Array) Scale(alpha float64) *Array {
	out := a.Clone()
	floats.Scale(alpha, out.data)

	return out
}

// AddScalar returns a + s element-wise.
func (a *Array) AddScalar(s float64) *Array {
	out := a.Clone()
	floats.AddConst(s, out.data)

	return out
}

// Neg returns -a.
func (a *Array) Neg() *Array { return a.Scale(-1) }

// Apply returns fn(a) element-wise.
func (a *Array) Apply(fn func(float64) float64) *Array {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}

	return out
}

// ScalarDiv returns s / a element-wise (e.g. s=1 gives the reciprocal).
func ScalarDiv(s float64, a *Array) *Array {
	return a.Apply(func(v float64) float64 { return s / v })
}
