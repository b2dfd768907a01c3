// SPDX-License-Identifier: MIT

// Package matrix - dense N-d storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit offset formula
//     Σ idx[k]*stride[k], stride[last] = 1.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep values immutable from the caller's point of view: constructors copy
//     inputs, accessors return copies, kernels always allocate fresh results.
//
// Column-major (Fortran) views of the same data are produced by Mkvc and
// ColumnMajor; storage itself stays row-major.
//
// Complexity quicksheet:
//   - NewArray: O(size) zero-init; At/Set: O(rank); Clone: O(size); Reshape: O(size).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxReshape = "Reshape"
)

// arrayErrorf wraps an error with a uniform Array context and call-site indices.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, idx, err)
}

// Array is a dense row-major N-d array of float64 values.
//   - shape holds the extent of every axis (rank == len(shape), rank 0 is a scalar).
//   - data is a flat buffer of length Π shape in row-major order.
type Array struct {
	shape []int
	data  []float64
}

var _ fmt.Stringer = (*Array)(nil)

// NewArray creates a zero-filled array of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate every extent ≥ 0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer of length Π shape.
//
// Inputs:
//   - shape: extents per axis; no extents means a rank-0 scalar.
//
// Errors:
//   - ErrBadShape (negative extent).
//
// Complexity:
//   - Time O(size), Space O(size).
func NewArray(shape ...int) (*Array, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, matrixErrorf("NewArray", err)
	}

	return &Array{shape: cloneInts(shape), data: make([]float64, shapeSize(shape))}, nil
}

// FromSlice builds an array of the given shape from row-major data (copied).
// Errors: ErrBadShape, ErrDimensionMismatch when len(data) != Π shape.
// Complexity: O(len(data)).
func FromSlice(data []float64, shape ...int) (*Array, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, matrixErrorf("FromSlice", err)
	}
	if n := shapeSize(shape); n != len(data) {
		return nil, matrixErrorf("FromSlice", fmt.Errorf("len %d for shape %v: %w", len(data), shape, ErrDimensionMismatch))
	}

	return &Array{shape: cloneInts(shape), data: cloneFloats(data)}, nil
}

// Vector returns a 1-D array holding a copy of vals.
func Vector(vals ...float64) *Array {
	return &Array{shape: []int{len(vals)}, data: cloneFloats(vals)}
}

// NewScalar returns a rank-0 array holding v.
func NewScalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}}
}

// FromRows builds a 2-D array from rectangular rows (copied).
// Errors: ErrDimensionMismatch for ragged rows.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Array, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	out := &Array{shape: []int{r, c}, data: make([]float64, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		out.data = append(out.data, row...)
	}

	return out, nil
}

// Shape returns a copy of the extents. Complexity: O(rank).
func (a *Array) Shape() []int { return cloneInts(a.shape) }

// Rank returns the number of axes. Complexity: O(1).
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total number of elements. Complexity: O(1).
func (a *Array) Size() int { return len(a.data) }

// Dim returns the extent of one axis, or 0 if axis is out of range.
func (a *Array) Dim(axis int) int {
	if axis < 0 || axis >= len(a.shape) {
		return 0
	}

	return a.shape[axis]
}

// Data returns a copy of the row-major buffer.
func (a *Array) Data() []float64 { return cloneFloats(a.data) }

// ColumnMajor returns the elements in Fortran order (first axis fastest).
// Complexity: O(size).
func (a *Array) ColumnMajor() []float64 {
	out := make([]float64, len(a.data))
	if len(a.data) == 0 {
		return out
	}
	rank := len(a.shape)
	strides := rowMajorStrides(a.shape)
	idx := make([]int, rank) // odometer over the column-major ordering
	for k := range out {
		off := 0
		for ax := 0; ax < rank; ax++ {
			off += idx[ax] * strides[ax]
		}
		out[k] = a.data[off]
		// advance the first axis fastest
		for ax := 0; ax < rank; ax++ {
			idx[ax]++
			if idx[ax] < a.shape[ax] {
				break
			}
			idx[ax] = 0
		}
	}

	return out
}

// offsetOf computes the row-major offset of idx or returns ErrOutOfRange.
func (a *Array) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%d indices for rank %d: %w", len(idx), len(a.shape), ErrDimensionMismatch)
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			return 0, ErrOutOfRange
		}
		off = off*a.shape[ax] + i
	}

	return off, nil
}

// At returns the element at idx (one index per axis).
// Errors: ErrOutOfRange, ErrDimensionMismatch (wrong index count).
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return 0, arrayErrorf(ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set stores v at idx. Arrays handed to this package's functions are never
// mutated by them; Set exists for callers assembling their own inputs.
// Complexity: O(rank).
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offsetOf(idx)
	if err != nil {
		return arrayErrorf(ctxSet, idx, err)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(size).
func (a *Array) Clone() *Array {
	return &Array{shape: cloneInts(a.shape), data: cloneFloats(a.data)}
}

// Reshape returns a copy with a new shape holding the same row-major data.
// Errors: ErrBadShape, ErrDimensionMismatch when sizes differ.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, arrayErrorf(ctxReshape, shape, err)
	}
	if shapeSize(shape) != len(a.data) {
		return nil, arrayErrorf(ctxReshape, shape, ErrDimensionMismatch)
	}

	return &Array{shape: cloneInts(shape), data: cloneFloats(a.data)}, nil
}

// Transpose returns a copy with the axis order reversed (NumPy's .T).
// Rank 0 and 1 arrays are returned as copies.
// Complexity: O(size).
func (a *Array) Transpose() *Array {
	rank := len(a.shape)
	if rank < 2 {
		return a.Clone()
	}
	outShape := make([]int, rank)
	for ax := range a.shape {
		outShape[ax] = a.shape[rank-1-ax]
	}
	// Reading a in column-major order yields the reversed-axes array in row-major order.
	return &Array{shape: outShape, data: a.ColumnMajor()}
}

// String renders 1-D and 2-D arrays row by row; higher ranks print shape and data.
func (a *Array) String() string {
	var sb strings.Builder
	switch len(a.shape) {
	case 0:
		fmt.Fprintf(&sb, "%g", a.data[0])
	case 1:
		writeRow(&sb, a.data)
	case 2:
		c := a.shape[1]
		for i := 0; i < a.shape[0]; i++ {
			writeRow(&sb, a.data[i*c:(i+1)*c])
			sb.WriteByte('\n')
		}
	default:
		fmt.Fprintf(&sb, "shape %v ", a.shape)
		writeRow(&sb, a.data)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, vals []float64) {
	sb.WriteByte('[')
	for j, v := range vals {
		if j > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%g", v)
	}
	sb.WriteByte(']')
}

// ---------- small shape helpers ----------

// shapeSize returns Π shape (1 for rank 0).
func shapeSize(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

// rowMajorStrides returns element strides for a row-major layout.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for ax := len(shape) - 1; ax >= 0; ax-- {
		strides[ax] = acc
		acc *= shape[ax]
	}

	return strides
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)

	return out
}

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)

	return out
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
