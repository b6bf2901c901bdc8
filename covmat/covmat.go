package covmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CorrelationToCovariance builds the covariance matrix implied by a
// correlation matrix and the per-variable standard deviations:
//
//	C[i,i] = std[i]²
//	C[i,j] = corr[i,j]·std[i]·std[j]   (i ≠ j)
//
// Preconditions (documented, not enforced): std entries finite and
// non-negative; corr symmetric with unit diagonal and off-diagonal entries
// in [-1, 1]. Garbage in, garbage out — by design, validation is the
// caller's layer.
//
// Returns ErrDimensionMismatch when len(std) != corr.Symmetric(), and
// ErrEmptyMatrix for zero variables. The input is never mutated.
//
// Complexity: O(n²).
func CorrelationToCovariance(std []float64, corr mat.Symmetric) (*mat.SymDense, error) {
	n := len(std)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if c := corr.SymmetricDim(); c != n {
		return nil, fmt.Errorf("%w: len(std)=%d, corr is %d×%d", ErrDimensionMismatch, n, c, c)
	}

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		cov.SetSym(i, i, std[i]*std[i])
		// Upper triangle only; SymDense mirrors the lower half for us,
		// so the result is exactly symmetric.
		for j := i + 1; j < n; j++ {
			cov.SetSym(i, j, corr.At(i, j)*std[i]*std[j])
		}
	}

	return cov, nil
}

// CovarianceToCorrelation normalizes a covariance matrix into a correlation
// matrix:
//
//	R[i,i] = 1
//	R[i,j] = C[i,j] / √|C[i,i]·C[j,j]|   (i ≠ j)
//
// The absolute value under the square root tolerates small negative
// variances from numerically noisy upstream data instead of producing NaN;
// see the package documentation for why this deliberate laxness is kept.
//
// Returns ErrEmptyMatrix for a 0×0 input. The input is never mutated.
//
// Complexity: O(n²).
func CovarianceToCorrelation(cov mat.Symmetric) (*mat.SymDense, error) {
	n := cov.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	corr := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		corr.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			corr.SetSym(i, j, cov.At(i, j)/math.Sqrt(math.Abs(cov.At(i, i)*cov.At(j, j))))
		}
	}

	return corr, nil
}

// StdDevs extracts the per-variable standard deviations from a covariance
// matrix as √|C[i,i]|, under the same tolerance for negative-variance noise
// as CovarianceToCorrelation. Handy for splitting a covariance problem into
// the (means, stds, correlation) form the stratified composer consumes.
//
// Complexity: O(n).
func StdDevs(cov mat.Symmetric) []float64 {
	n := cov.SymmetricDim()
	std := make([]float64, n)
	for i := 0; i < n; i++ {
		std[i] = math.Sqrt(math.Abs(cov.At(i, i)))
	}

	return std
}
