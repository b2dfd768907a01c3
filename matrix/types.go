// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse kernels, builders and the
// algebra layer. This file intentionally contains ONLY the capability
// interface; storage types live in array.go and sparse.go.
package matrix

import "gonum.org/v1/gonum/mat"

// Operator is the minimal capability a sparse backend must offer so that the
// kernels in this package (Add, Sub, Scale, Mul, Transpose, HStack, VStack,
// Kron) can consume it without knowing its storage layout.
//
// Contract:
//   - Dims/At/T follow gonum's mat.Matrix semantics (At panics out of range).
//   - DoNonZero visits every stored entry exactly once, row by row with
//     ascending columns; explicit zeros may be visited.
//   - NNZ returns the number of stored entries.
type Operator interface {
	mat.Matrix

	// NNZ returns the number of stored entries.
	// Complexity: O(1) for CSR.
	NNZ() int

	// DoNonZero calls fn for every stored entry.
	// Complexity: O(NNZ).
	DoNonZero(fn func(i, j int, v float64))
}
