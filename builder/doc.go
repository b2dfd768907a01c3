// Package builder constructs the elementary sparse operators of
// finite-volume discretizations on tensor meshes.
//
// The package offers the following key components:
//
//   - Diagonals:
//     – Diag:      diag(h) from a plain slice.
//     – SDiag:     diag(mkvc(v)) for an algebra operand; Zero passes through.
//     – SDInv:     diag(1/diag(M)).
//   - Assembly primitives:
//     – SpEye:     n×n identity.
//     – SpZeros:   n1×n2 with no stored entries.
//     – Kron3:     A ⊗ B ⊗ C, for lifting 1-D stencils to 3-D.
//   - 1-D staggered stencils (n cells, n+1 nodes):
//     – DDx:       node → cell first difference, n×(n+1).
//     – Av:        node → cell average, n×(n+1).
//     – AvExtrap:  cell → node average with constant boundary extrapolation, (n+1)×n.
//   - Shared constants:
//     – MinCells, MinExtent.
//     – MethodDDx, MethodAv, … tokens for builderErrorf context.
//
// Guarantees:
//
//   - Every constructor returns a fresh *matrix.Sparse; inputs are never mutated.
//   - No dense intermediate is ever materialized.
//   - Structured runtime errors (builderErrorf) wrapping ErrBadSize or matrix
//     sentinels; no constructor panics on user input.
//
// Example (2-D cell-centered gradient along x on an nx×ny mesh):
//
//	dx, _ := builder.DDx(nx)
//	ey, _ := builder.SpEye(ny)
//	gx, _ := matrix.Kron(ey, dx) // (nx·ny)×((nx+1)·ny)
package builder
