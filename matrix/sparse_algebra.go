// SPDX-License-Identifier: MIT
// Package matrix provides the sparse kernels used by the operator builders:
// element-wise addition/subtraction, scaling, matrix products, transpose,
// block stacking and the Kronecker product. All kernels accept the Operator
// capability interface and return a freshly allocated *Sparse; operands are
// never mutated.
//
// Notes:
//   - Kernels work on triplets or CSR rows only; no dense intermediate is
//     ever materialized.
//   - All kernels use the central validators and wrap with an op tag.

package matrix

import "fmt"

const (
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMulVec    = "MulVec"
	opMulDense  = "MulDense"
	opDenseMul  = "DenseMul"
	opAddDense  = "AddDense"
	opHStack    = "HStack"
	opVStack    = "VStack"
	opKron      = "Kron"
)

// addSub computes a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameDims(a, b).
//   - Stage 2: collect triplets of both operands (b scaled by sign).
//   - Stage 3: fromTriplets sums coinciding entries and drops cancellations.
//
// Complexity: O((nnz(a)+nnz(b)) log(nnz(a)+nnz(b))).
func addSub(a, b Operator, sign float64, opTag string, opts []Option) (*Sparse, error) {
	if err := ValidateSameDims(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	r, c := a.Dims()
	ts := make([]triplet, 0, a.NNZ()+b.NNZ())
	a.DoNonZero(func(i, j int, v float64) { ts = append(ts, triplet{i: i, j: j, v: v}) })
	b.DoNonZero(func(i, j int, v float64) { ts = append(ts, triplet{i: i, j: j, v: sign * v}) })

	return fromTriplets(r, c, ts, gatherOptions(opts...)), nil
}

// Add computes C = A + B.
// Errors: ErrNilArray, ErrDimensionMismatch.
func Add(a, b Operator, opts ...Option) (*Sparse, error) { return addSub(a, b, 1, opAdd, opts) }

// Sub computes C = A − B.
// Errors: ErrNilArray, ErrDimensionMismatch.
func Sub(a, b Operator, opts ...Option) (*Sparse, error) { return addSub(a, b, -1, opSub, opts) }

// Scale returns alpha*A. Scaling by 0 yields a matrix with no stored entries.
// Complexity: O(nnz).
func Scale(a Operator, alpha float64) (*Sparse, error) {
	if err := ValidateOperator(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	r, c := a.Dims()
	ts := make([]triplet, 0, a.NNZ())
	a.DoNonZero(func(i, j int, v float64) { ts = append(ts, triplet{i: i, j: j, v: alpha * v}) })

	return fromTriplets(r, c, ts, defaultOptions()), nil
}

// Neg returns −A.
func Neg(a Operator) (*Sparse, error) { return Scale(a, -1) }

// Transpose returns Aᵀ as a new CSR matrix.
// A nil operand yields nil.
// Complexity: O(nnz + cols).
func Transpose(a Operator) *Sparse {
	if ValidateOperator(a) != nil {
		return nil
	}
	r, c := a.Dims()
	ts := make([]triplet, 0, a.NNZ())
	a.DoNonZero(func(i, j int, v float64) { ts = append(ts, triplet{i: j, j: i, v: v}) })

	return fromTriplets(c, r, ts, Options{keepZeros: true})
}

// Mul computes the matrix product C = A·B (Gustavson's row-by-row algorithm).
//
// Implementation:
//   - Stage 1: validate a.cols == b.rows.
//   - Stage 2: for each row i of A, scatter A[i,k]·B[k,:] into a dense
//     accumulator indexed by column, tracking touched columns.
//   - Stage 3: emit the touched columns as triplets of row i.
//
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(flops + r·log) time, O(cols(B)) scratch.
func Mul(a, b Operator) (*Sparse, error) {
	if err := ValidateOperator(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateOperator(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch))
	}
	sa, sb := toCSR(a), toCSR(b)

	acc := make([]float64, bc)
	mark := make([]int, bc)
	for j := range mark {
		mark[j] = -1
	}
	var touched []int
	ts := make([]triplet, 0, sa.NNZ()+sb.NNZ())
	for i := 0; i < ar; i++ {
		touched = touched[:0]
		for p := sa.indptr[i]; p < sa.indptr[i+1]; p++ {
			k, av := sa.indices[p], sa.values[p]
			for q := sb.indptr[k]; q < sb.indptr[k+1]; q++ {
				j := sb.indices[q]
				if mark[j] != i {
					mark[j] = i
					acc[j] = 0
					touched = append(touched, j)
				}
				acc[j] += av * sb.values[q]
			}
		}
		for _, j := range touched {
			ts = append(ts, triplet{i: i, j: j, v: acc[j]})
		}
	}

	return fromTriplets(ar, bc, ts, defaultOptions()), nil
}

// MulVec computes y = A·x.
// Errors: ErrNilArray, ErrDimensionMismatch (len(x) != cols).
// Complexity: O(nnz).
func MulVec(a Operator, x []float64) ([]float64, error) {
	if err := ValidateOperator(a); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	r, c := a.Dims()
	if err := ValidateVecLen(x, c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, r)
	a.DoNonZero(func(i, j int, v float64) { y[i] += v * x[j] })

	return y, nil
}

// MulDense computes A·X for a dense X of rank 1 (length cols) or rank 2
// (cols×k). The result has rank 1 (length rows) or rank 2 (rows×k).
// Errors: ErrNilArray, ErrRank, ErrDimensionMismatch.
// Complexity: O(nnz·k).
func MulDense(a Operator, x *Array) (*Array, error) {
	if err := ValidateOperator(a); err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}
	if err := ValidateRank(x, 1, 2); err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}
	r, c := a.Dims()
	if x.shape[0] != c {
		return nil, matrixErrorf(opMulDense, fmt.Errorf("%dx%d · %v: %w", r, c, x.shape, ErrDimensionMismatch))
	}
	if x.Rank() == 1 {
		y, err := MulVec(a, x.data)
		if err != nil {
			return nil, matrixErrorf(opMulDense, err)
		}

		return &Array{shape: []int{r}, data: y}, nil
	}
	k := x.shape[1]
	out := &Array{shape: []int{r, k}, data: make([]float64, r*k)}
	a.DoNonZero(func(i, j int, v float64) {
		row := out.data[i*k : (i+1)*k]
		src := x.data[j*k : (j+1)*k]
		for col := range row {
			row[col] += v * src[col]
		}
	})

	return out, nil
}

// DenseMul computes X·A for a dense X of rank 1 (length rows, treated as a row
// vector) or rank 2 (m×rows).
// Errors: ErrNilArray, ErrRank, ErrDimensionMismatch.
// Complexity: O(nnz·m).
func DenseMul(x *Array, a Operator) (*Array, error) {
	if err := ValidateOperator(a); err != nil {
		return nil, matrixErrorf(opDenseMul, err)
	}
	if err := ValidateRank(x, 1, 2); err != nil {
		return nil, matrixErrorf(opDenseMul, err)
	}
	r, c := a.Dims()
	inner := x.shape[x.Rank()-1]
	if inner != r {
		return nil, matrixErrorf(opDenseMul, fmt.Errorf("%v · %dx%d: %w", x.shape, r, c, ErrDimensionMismatch))
	}
	m := 1
	if x.Rank() == 2 {
		m = x.shape[0]
	}
	out := &Array{shape: []int{m, c}, data: make([]float64, m*c)}
	a.DoNonZero(func(i, j int, v float64) {
		for row := 0; row < m; row++ {
			out.data[row*c+j] += x.data[row*r+i] * v
		}
	})
	if x.Rank() == 1 {
		out.shape = []int{c}
	}

	return out, nil
}

// AddDense returns the dense result X + sign*A for a 2-D X with A's dims.
// Errors: ErrNilArray, ErrRank, ErrDimensionMismatch.
// Complexity: O(r*c + nnz).
func AddDense(x *Array, a Operator, sign float64) (*Array, error) {
	if err := ValidateOperator(a); err != nil {
		return nil, matrixErrorf(opAddDense, err)
	}
	if err := ValidateRank(x, 2); err != nil {
		return nil, matrixErrorf(opAddDense, err)
	}
	r, c := a.Dims()
	if x.shape[0] != r || x.shape[1] != c {
		return nil, matrixErrorf(opAddDense, fmt.Errorf("%v + %dx%d: %w", x.shape, r, c, ErrDimensionMismatch))
	}
	out := x.Clone()
	a.DoNonZero(func(i, j int, v float64) { out.data[i*c+j] += sign * v })

	return out, nil
}

// HStack concatenates blocks left to right: [B0 B1 …].
// All blocks must have the same number of rows.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrBadShape (no blocks).
// Complexity: O(Σ nnz · log).
func HStack(blocks ...Operator) (*Sparse, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opHStack, fmt.Errorf("no blocks: %w", ErrBadShape))
	}
	var (
		rows   = -1
		offset int
		ts     []triplet
	)
	for b, blk := range blocks {
		if err := ValidateOperator(blk); err != nil {
			return nil, matrixErrorf(opHStack, err)
		}
		r, c := blk.Dims()
		if rows >= 0 && r != rows {
			return nil, matrixErrorf(opHStack, fmt.Errorf("block %d has %d rows, want %d: %w", b, r, rows, ErrDimensionMismatch))
		}
		rows = r
		off := offset
		blk.DoNonZero(func(i, j int, v float64) { ts = append(ts, triplet{i: i, j: j + off, v: v}) })
		offset += c
	}

	return fromTriplets(rows, offset, ts, Options{keepZeros: true}), nil
}

// VStack concatenates blocks top to bottom.
// All blocks must have the same number of columns.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrBadShape (no blocks).
func VStack(blocks ...Operator) (*Sparse, error) {
	if len(blocks) == 0 {
		return nil, matrixErrorf(opVStack, fmt.Errorf("no blocks: %w", ErrBadShape))
	}
	var (
		cols   = -1
		offset int
		ts     []triplet
	)
	for b, blk := range blocks {
		if err := ValidateOperator(blk); err != nil {
			return nil, matrixErrorf(opVStack, err)
		}
		r, c := blk.Dims()
		if cols >= 0 && c != cols {
			return nil, matrixErrorf(opVStack, fmt.Errorf("block %d has %d cols, want %d: %w", b, c, cols, ErrDimensionMismatch))
		}
		cols = c
		off := offset
		blk.DoNonZero(func(i, j int, v float64) { ts = append(ts, triplet{i: i + off, j: j, v: v}) })
		offset += r
	}

	return fromTriplets(offset, cols, ts, Options{keepZeros: true}), nil
}

// Kron returns the Kronecker product A ⊗ B of shape (ra·rb)×(ca·cb):
// entry (ia·rb+ib, ja·cb+jb) = A[ia,ja]·B[ib,jb].
// Errors: ErrNilArray.
// Complexity: O(nnz(A)·nnz(B)).
func Kron(a, b Operator) (*Sparse, error) {
	if err := ValidateOperator(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateOperator(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	ts := make([]triplet, 0, a.NNZ()*b.NNZ())
	a.DoNonZero(func(ia, ja int, av float64) {
		b.DoNonZero(func(ib, jb int, bv float64) {
			ts = append(ts, triplet{i: ia*br + ib, j: ja*bc + jb, v: av * bv})
		})
	})

	return fromTriplets(ar*br, ac*bc, ts, defaultOptions()), nil
}
