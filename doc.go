// Package matrixutils is a small linear-algebra layer for finite-volume
// discretizations on tensor-product meshes.
//
// What is inside?
//
//	matrix/     — dense N-d Array, CSR Sparse operator, Mkvc vectorization,
//	              gonum conversions, sentinel errors and options
//	algebra/    — symbolic Zero and ±Identity operands with closed
//	              arithmetic over scalars, dense arrays and sparse operators
//	builder/    — elementary sparse operators: Diag, SDiag, SDInv, SpEye,
//	              SpZeros, Kron3 and the 1-D stencils DDx, Av, AvExtrap
//	matrix/ops/ — closed-form inverses of stacked 2×2 and 3×3 tensors as
//	              sparse block matrices
//	grid/       — NDGrid point sets, Ind2Sub / Sub2Ind, GetSubArray
//
// Conventions:
//
//   - Every multi-dimensional field is vectorized with the first axis varying
//     fastest (column-major), so 1-D stencils lift to 2-D and 3-D with
//     I ⊗ … ⊗ D products.
//   - Functions are pure: inputs are never mutated and results are freshly
//     allocated.
//   - Errors are sentinels matched with errors.Is. Validation failures wrap
//     matrix.ErrValidation; the other classes are ErrDivisionByZero and
//     ErrUnsupportedOperation.
//
// Quick example (x-gradient on an nx×ny node grid):
//
//	dx, _ := builder.DDx(nx)
//	ey, _ := builder.SpEye(ny + 1)
//	gx, _ := matrix.Kron(ey, dx)
//
// See examples/tensor_mesh for a complete program.
package matrixutils
