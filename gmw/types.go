// Package gmw - result type and sentinel errors for the modified Cholesky.
package gmw

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyMatrix is returned when Decompose receives a 0×0 matrix.
var ErrEmptyMatrix = errors.New("gmw: empty matrix")

// Result holds the outcome of a modified Cholesky factorization of a
// symmetric n×n matrix A, satisfying
//
//	Pᵗ·A·P = L·Lᵗ − diag(Shift)
//
// where P is the permutation described by Perm.
type Result struct {
	// Perm encodes the pivoting permutation: column j of the permutation
	// matrix P is the unit vector e[Perm[j]]. Equivalently,
	// (Pᵗ·A·P)[i,j] == A[Perm[i], Perm[j]]. Perm is the identity when no
	// pivoting occurred.
	Perm []int

	// L is the lower-triangular factor with strictly positive diagonal.
	L *mat.TriDense

	// Shift is the non-negative diagonal correction e. All-zero
	// (numerically) when the input was positive definite.
	Shift []float64
}

// Shifted reports whether any diagonal correction was applied, i.e.
// whether the input matrix was not (numerically) positive definite.
// The comparison is exact: entries below round-off are reported too, so
// callers wanting a tolerance should inspect Shift directly.
//
// Complexity: O(n).
func (r *Result) Shifted() bool {
	for _, e := range r.Shift {
		if e > 0 {
			return true
		}
	}

	return false
}

// PermMatrix materializes the permutation as a dense n×n matrix P with
// P[Perm[j], j] = 1. Useful for verifying the factorization identity; hot
// paths should index through Perm instead.
//
// Complexity: O(n²) memory.
func (r *Result) PermMatrix() *mat.Dense {
	n := len(r.Perm)
	p := mat.NewDense(n, n, nil)
	for j, i := range r.Perm {
		p.Set(i, j, 1)
	}

	return p
}

// Reconstruct returns L·Lᵗ − diag(Shift), which equals Pᵗ·A·P up to
// round-off. Intended for verification and diagnostics.
//
// Complexity: O(n³).
func (r *Result) Reconstruct() *mat.SymDense {
	n := len(r.Perm)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum float64
			// (L·Lᵗ)[i,j] only needs columns k ≤ min(i,j) = i here.
			for k := 0; k <= i; k++ {
				sum += r.L.At(i, k) * r.L.At(j, k)
			}
			if i == j {
				sum -= r.Shift[i]
			}
			s.SetSym(i, j, sum)
		}
	}

	return s
}
