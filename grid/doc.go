// Package grid provides point-set and index utilities for tensor-product
// grids of up to three axes.
//
// What:
//
//   - NDGrid / NDGridArrays: the Cartesian product of 1-D axis vectors, either
//     as an N×d gonum matrix of points (first axis fastest) or as one
//     broadcast array per axis.
//   - Ind2Sub / Sub2Ind: linear index ⇄ subscript tuple conversions.
//   - GetSubArray: Cartesian-product indexing of a 2-D or 3-D array.
//
// Ordering:
//
//   - ColumnMajor (default) matches matrix.Mkvc: the first axis varies fastest.
//   - RowMajor is available through WithOrder for the index conversions.
//
// Errors:
//
//   - ErrAxisCount: NDGrid called with zero or more than three axes.
//   - matrix.ErrBadShape, matrix.ErrOutOfRange, matrix.ErrDimensionMismatch,
//     matrix.ErrRank, matrix.ErrNilArray for invalid inputs.
//
// All of them wrap matrix.ErrValidation.
package grid
