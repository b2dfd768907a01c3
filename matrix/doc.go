// Package matrix offers the storage layer for tensor-grid linear operators.
//
// The matrix package provides:
//
//   - Array: a dense, row-major N-d array of float64 values with safe
//     accessors, broadcasting kernels (AddArrays, MulArrays, …) and
//     column-major vectorization (Mkvc).
//   - Sparse: an immutable CSR matrix that satisfies gonum's mat.Matrix and
//     the package's Operator capability interface.
//   - Sparse kernels over Operator: Add, Sub, Scale, Mul, MulVec, Transpose,
//     HStack, VStack and Kron.
//   - Converters to and from gonum (FromMat, ToMat, ToDense) and the
//     point-list coercion AsArrayNxDim.
//
// Every function treats its inputs as read-only and returns new values.
// Errors are package sentinels grouped in three classes (ErrValidation,
// ErrDivisionByZero, ErrUnsupportedOperation); match them with errors.Is.
//
// See the examples in this package and in builder for usage patterns.
package matrix
