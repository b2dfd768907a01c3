// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse row storage.
//
// Purpose:
//   - Hold linear operators of grid discretizations with only their stored
//     entries: indptr (rows+1), indices (column of each entry) and values.
//   - Interoperate with gonum: *Sparse satisfies mat.Matrix, so it can be passed
//     to mat.Dense.Mul, mat.Norm, mat.Formatted and friends.
//
// Invariants (enforced by every constructor):
//   - len(indptr) == rows+1, indptr[0] == 0, indptr non-decreasing.
//   - Column indices strictly ascending inside each row (duplicates are summed).
//   - Explicit zeros are dropped unless WithKeepZeros() was given.
//   - A *Sparse is never mutated after construction.
//
// Complexity quicksheet:
//   - NewSparse: O(nnz log nnz); At/Get: O(log row-nnz); DoNonZero: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxGet        = "Sparse.Get"
	opNewSparse   = "NewSparse"
	opToDense     = "Sparse.ToDense"
	opNewZeros    = "NewSparseZeros"
	opNewIdent    = "NewSparseIdentity"
	panicSparseAt = "matrix: Sparse.At index out of range"
)

// Sparse is an immutable CSR matrix of float64 values.
type Sparse struct {
	r, c    int
	indptr  []int
	indices []int
	values  []float64
}

// Compile-time assertions for interface conformance.
var (
	_ Operator     = (*Sparse)(nil)
	_ mat.Matrix   = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// triplet is one COO entry used while assembling CSR.
type triplet struct {
	i, j int
	v    float64
}

// NewSparse builds an r×c CSR matrix from COO triplets (rows[k], cols[k], vals[k]).
// MAIN DESCRIPTION:
//   - Canonical constructor; every other sparse constructor funnels through it.
//
// Implementation:
//   - Stage 1: validate shape (r,c ≥ 0), equal triplet lengths and index bounds.
//   - Stage 2: stable-sort triplets by (row, col); sum duplicates.
//   - Stage 3: drop exact zeros (unless WithKeepZeros) and fill CSR arrays.
//
// Errors:
//   - ErrBadShape (negative dims), ErrDimensionMismatch (triplet lengths),
//     ErrOutOfRange (index outside the shape).
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz + r).
func NewSparse(r, c int, rows, cols []int, vals []float64, opts ...Option) (*Sparse, error) {
	if err := ValidateShape([]int{r, c}); err != nil {
		return nil, matrixErrorf(opNewSparse, err)
	}
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, matrixErrorf(opNewSparse,
			fmt.Errorf("triplet lengths %d/%d/%d: %w", len(rows), len(cols), len(vals), ErrDimensionMismatch))
	}
	ts := make([]triplet, len(vals))
	for k := range vals {
		if rows[k] < 0 || rows[k] >= r || cols[k] < 0 || cols[k] >= c {
			return nil, matrixErrorf(opNewSparse,
				fmt.Errorf("entry (%d,%d) in %dx%d: %w", rows[k], cols[k], r, c, ErrOutOfRange))
		}
		ts[k] = triplet{i: rows[k], j: cols[k], v: vals[k]}
	}

	return fromTriplets(r, c, ts, gatherOptions(opts...)), nil
}

// fromTriplets assembles CSR from already bounds-checked triplets.
// The slice is reordered in place; callers pass freshly built slices only.
func fromTriplets(r, c int, ts []triplet, o Options) *Sparse {
	sort.SliceStable(ts, func(a, b int) bool {
		if ts[a].i != ts[b].i {
			return ts[a].i < ts[b].i
		}
		return ts[a].j < ts[b].j
	})
	s := &Sparse{
		r:       r,
		c:       c,
		indptr:  make([]int, r+1),
		indices: make([]int, 0, len(ts)),
		values:  make([]float64, 0, len(ts)),
	}
	for k := 0; k < len(ts); {
		// sum the run of duplicates at (i,j)
		i, j, v := ts[k].i, ts[k].j, ts[k].v
		k++
		for k < len(ts) && ts[k].i == i && ts[k].j == j {
			v += ts[k].v
			k++
		}
		if v == 0 && !o.keepZeros {
			continue
		}
		s.indices = append(s.indices, j)
		s.values = append(s.values, v)
		s.indptr[i+1]++
	}
	for i := 0; i < r; i++ {
		s.indptr[i+1] += s.indptr[i]
	}

	return s
}

// NewSparseZeros returns an r×c matrix with no stored entries.
// Errors: ErrBadShape for negative extents.
func NewSparseZeros(r, c int) (*Sparse, error) {
	if err := ValidateShape([]int{r, c}); err != nil {
		return nil, matrixErrorf(opNewZeros, err)
	}

	return &Sparse{r: r, c: c, indptr: make([]int, r+1)}, nil
}

// NewSparseIdentity returns the n×n identity.
// Errors: ErrBadShape for n < 0.
// Complexity: O(n).
func NewSparseIdentity(n int) (*Sparse, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewIdent, fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	return NewSparseDiag(ones), nil
}

// NewSparseDiag returns the len(d)×len(d) diagonal matrix diag(d).
// Zero entries of d are not stored. The input slice is copied.
// Complexity: O(n).
func NewSparseDiag(d []float64, opts ...Option) *Sparse {
	o := gatherOptions(opts...)
	n := len(d)
	s := &Sparse{
		r:       n,
		c:       n,
		indptr:  make([]int, n+1),
		indices: make([]int, 0, n),
		values:  make([]float64, 0, n),
	}
	for i, v := range d {
		s.indptr[i+1] = s.indptr[i]
		if v == 0 && !o.keepZeros {
			continue
		}
		s.indices = append(s.indices, i)
		s.values = append(s.values, v)
		s.indptr[i+1]++
	}

	return s
}

// Dims returns (rows, cols). Complexity: O(1).
func (s *Sparse) Dims() (r, c int) { return s.r, s.c }

// NNZ returns the number of stored entries. Complexity: O(1).
func (s *Sparse) NNZ() int { return len(s.values) }

// lookup finds (i,j) in row i by binary search.
func (s *Sparse) lookup(i, j int) float64 {
	lo, hi := s.indptr[i], s.indptr[i+1]
	k := lo + sort.SearchInts(s.indices[lo:hi], j)
	if k < hi && s.indices[k] == j {
		return s.values[k]
	}

	return 0
}

// At returns the element at (i, j) following gonum's contract: it panics
// when the indices are out of range. Use Get for an error-returning accessor.
// Complexity: O(log nnz(row)).
func (s *Sparse) At(i, j int) float64 {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		panic(panicSparseAt)
	}

	return s.lookup(i, j)
}

// Get returns the element at (i, j) or ErrOutOfRange.
func (s *Sparse) Get(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxGet, i, j, ErrOutOfRange)
	}

	return s.lookup(i, j), nil
}

// T returns the transpose as a *Sparse (satisfies mat.Matrix).
func (s *Sparse) T() mat.Matrix { return Transpose(s) }

// DoNonZero calls fn for every stored entry in row order.
func (s *Sparse) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			fn(i, s.indices[k], s.values[k])
		}
	}
}

// Diagonal returns the main diagonal (length min(rows, cols)); missing entries are 0.
// Complexity: O(min(r,c) · log nnz(row)).
func (s *Sparse) Diagonal() []float64 {
	n := s.r
	if s.c < n {
		n = s.c
	}
	d := make([]float64, n)
	for i := range d {
		d[i] = s.lookup(i, i)
	}

	return d
}

// ToDense materializes s as a gonum *mat.Dense.
// Errors: ErrBadShape when either dimension is zero (gonum forbids empty Dense).
// Complexity: O(r*c).
func (s *Sparse) ToDense() (*mat.Dense, error) {
	if s.r == 0 || s.c == 0 {
		return nil, matrixErrorf(opToDense, fmt.Errorf("%dx%d: %w", s.r, s.c, ErrBadShape))
	}
	d := mat.NewDense(s.r, s.c, nil)
	s.DoNonZero(func(i, j int, v float64) { d.Set(i, j, v) })

	return d, nil
}

// ToArray materializes s as a 2-D row-major Array (zero dims allowed).
// Complexity: O(r*c).
func (s *Sparse) ToArray() *Array {
	out := &Array{shape: []int{s.r, s.c}, data: make([]float64, s.r*s.c)}
	s.DoNonZero(func(i, j int, v float64) { out.data[i*s.c+j] += v })

	return out
}

// ArrayOf materializes any Operator as a 2-D Array.
func ArrayOf(op Operator) *Array { return toCSR(op).ToArray() }

// String lists stored entries as "(i, j) v" lines, one per entry.
func (s *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse %dx%d nnz=%d\n", s.r, s.c, s.NNZ())
	s.DoNonZero(func(i, j int, v float64) {
		fmt.Fprintf(&sb, "  (%d, %d) %g\n", i, j, v)
	})

	return sb.String()
}

// AllClose reports whether a and b have equal dims and every entry satisfies
// |a-b| ≤ eps + eps*|b| (eps from WithEpsilon, default DefaultEpsilon).
// NaN never compares equal.
//
// Complexity: O(nnz(a) + nnz(b) + r).
func AllClose(a, b Operator, opts ...Option) (bool, error) {
	if err := ValidateSameDims(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	o := gatherOptions(opts...)
	diff, err := Sub(a, b, WithKeepZeros())
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	ok := true
	diff.DoNonZero(func(i, j int, v float64) {
		if !ok {
			return
		}
		ref := math.Abs(b.At(i, j))
		if math.IsNaN(v) || math.Abs(v) > o.eps+o.eps*ref {
			// allow equal infinities (Inf-Inf yields NaN in the difference)
			if av, bv := a.At(i, j), b.At(i, j); math.IsInf(av, 0) && av == bv {
				return
			}
			ok = false
		}
	})

	return ok, nil
}

// toCSR returns op as *Sparse, converting through DoNonZero when it is
// another backend.
func toCSR(op Operator) *Sparse {
	if s, ok := op.(*Sparse); ok {
		return s
	}
	r, c := op.Dims()
	ts := make([]triplet, 0, op.NNZ())
	op.DoNonZero(func(i, j int, v float64) { ts = append(ts, triplet{i: i, j: j, v: v}) })

	return fromTriplets(r, c, ts, Options{keepZeros: true})
}
