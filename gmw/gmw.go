package gmw

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// machEps is the double-precision machine epsilon (2⁻⁵²).
const machEps = 0x1p-52

// Decompose computes the Gill–Murray–Wright modified Cholesky
// factorization of the symmetric matrix a, returning (P, L, e) with
// Pᵗ·a·P = L·Lᵗ − diag(e), e ≥ 0. See the package documentation for the
// algorithm; the input is never mutated.
//
// The only error condition is an empty matrix — indefinite and singular
// inputs are handled by construction, not rejected.
//
// Complexity: O(n³) time, O(n²) memory.
func Decompose(a mat.Symmetric) (*Result, error) {
	n := a.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	// gamma: largest diagonal magnitude; xi: largest off-diagonal magnitude.
	var gamma, xi float64
	for i := 0; i < n; i++ {
		gamma = math.Max(math.Abs(a.At(i, i)), gamma)
		for j := i + 1; j < n; j++ {
			xi = math.Max(math.Abs(a.At(i, j)), xi)
		}
	}

	// Scale thresholds. n==1 needs its own beta: the general formula
	// divides by sqrt(n²−1) == 0.
	delta := machEps * math.Max(gamma+xi, 1)
	var beta float64
	if n == 1 {
		beta = math.Sqrt(math.Max(gamma, machEps))
	} else {
		beta = math.Sqrt(math.Max(gamma, math.Max(xi/math.Sqrt(float64(n*n)-1), machEps)))
	}

	// Working copy of a and the (row-stored upper) factor r, both flat n×n.
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w[i*n+j] = a.At(i, j)
		}
	}
	r := make([]float64, n*n)
	e := make([]float64, n)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for j := 0; j < n; j++ {
		// Pivot: index q ≥ j with the largest remaining diagonal magnitude.
		// The >= keeps the reference tie-break (later index wins).
		q := j
		for i := j + 1; i < n; i++ {
			if math.Abs(w[i*n+i]) >= math.Abs(w[q*n+q]) {
				q = i
			}
		}
		if q != j {
			perm[j], perm[q] = perm[q], perm[j]
			// Symmetric swap of rows and columns j,q in the working matrix.
			for k := 0; k < n; k++ {
				w[j*n+k], w[q*n+k] = w[q*n+k], w[j*n+k]
			}
			for k := 0; k < n; k++ {
				w[k*n+j], w[k*n+q] = w[k*n+q], w[k*n+j]
			}
			// The factor rows built so far follow the column swap.
			for k := 0; k < j; k++ {
				r[k*n+j], r[k*n+q] = r[k*n+q], r[k*n+j]
			}
		}

		// theta: largest off-diagonal magnitude in the pivot row.
		var theta float64
		for i := j + 1; i < n; i++ {
			theta = math.Max(theta, math.Abs(w[j*n+i]))
		}

		// The stabilization step: d is bumped whenever the natural pivot is
		// too small or the row signals strong indefiniteness.
		t := theta / beta
		d := math.Max(math.Abs(w[j*n+j]), math.Max(t*t, delta))
		e[j] = d - w[j*n+j]

		r[j*n+j] = math.Sqrt(d)
		for i := j + 1; i < n; i++ {
			r[j*n+i] = w[j*n+i] / r[j*n+j]
			// Trailing update; both (i,k) and (k,i) written to keep the
			// working matrix exactly symmetric under round-off.
			for k := j + 1; k <= i; k++ {
				v := w[k*n+i] - r[j*n+i]*r[j*n+k]
				w[i*n+k] = v
				w[k*n+i] = v
			}
		}
	}

	// L = rᵗ.
	l := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			l.SetTri(i, j, r[j*n+i])
		}
	}

	return &Result{Perm: perm, L: l, Shift: e}, nil
}
