// SPDX-License-Identifier: MIT
// Package: algebra
//
// compare.go — elementwise comparisons. Both operands are lowered to dense
// arrays (Zero → 0, ±I → ±1, sparse materialized) and compared with
// broadcasting; the result is a boolean Mask.

package algebra

import (
	"fmt"

	"github.com/opengeophysics/matrixutils/matrix"
)

// CmpOp selects the comparison predicate.
type CmpOp uint8

const (
	Less CmpOp = iota
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual
)

var cmpNames = [...]string{"<", "<=", ">", ">=", "==", "!="}

// String returns the operator symbol.
func (op CmpOp) String() string {
	if int(op) < len(cmpNames) {
		return cmpNames[op]
	}

	return fmt.Sprintf("CmpOp(%d)", uint8(op))
}

func (op CmpOp) eval(x, y float64) bool {
	switch op {
	case Less:
		return x < y
	case LessEqual:
		return x <= y
	case Greater:
		return x > y
	case GreaterEqual:
		return x >= y
	case Equal:
		return x == y
	default:
		return x != y
	}
}

// Mask is the row-major boolean result of a comparison.
type Mask struct {
	shape []int
	data  []bool
}

// Shape returns a copy of the broadcast shape.
func (m Mask) Shape() []int { return append([]int(nil), m.shape...) }

// Values returns a copy of the flags in row-major order.
func (m Mask) Values() []bool { return append([]bool(nil), m.data...) }

// All reports whether every flag is set (true for an empty mask).
func (m Mask) All() bool {
	for _, b := range m.data {
		if !b {
			return false
		}
	}

	return true
}

// Any reports whether at least one flag is set.
func (m Mask) Any() bool {
	for _, b := range m.data {
		if b {
			return true
		}
	}

	return false
}

// Compare evaluates a <op> b elementwise.
// Errors: conversion errors from Of, matrix.ErrDimensionMismatch when the
// shapes do not broadcast, ErrValidation for an unknown CmpOp.
func Compare(a any, op CmpOp, b any) (Mask, error) {
	if op > NotEqual {
		return Mask{}, fmt.Errorf("%s: %s: %w", opCompare, op, matrix.ErrValidation)
	}
	x, err := Of(a)
	if err != nil {
		return Mask{}, fmt.Errorf("%s: %w", opCompare, err)
	}
	y, err := Of(b)
	if err != nil {
		return Mask{}, fmt.Errorf("%s: %w", opCompare, err)
	}
	xa, ya := arrayOf(x), arrayOf(y)
	shape, err := matrix.BroadcastShapes(xa.Shape(), ya.Shape())
	if err != nil {
		return Mask{}, algebraErrorf(opCompare, x.Kind(), y.Kind(), err)
	}
	size := 1
	for _, d := range shape {
		size *= d
	}
	out := Mask{shape: shape, data: make([]bool, size)}
	if _, err = matrix.BroadcastPairs(xa, ya, func(k int, u, v float64) {
		out.data[k] = op.eval(u, v)
	}); err != nil {
		return Mask{}, algebraErrorf(opCompare, x.Kind(), y.Kind(), err)
	}

	return out, nil
}

// AllEqual reports whether a == b holds for every broadcast element.
func AllEqual(a, b any) (bool, error) {
	m, err := Compare(a, Equal, b)
	if err != nil {
		return false, err
	}

	return m.All(), nil
}
