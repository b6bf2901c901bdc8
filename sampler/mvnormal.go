package sampler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MultivariateNormal draws numSamples iid rows from N(means, cov), the
// exact multivariate normal distribution: row = means + F·z with z iid
// standard normal and F a square root of cov.
//
// F is the ordinary Cholesky factor when cov is positive definite. A
// non-PD covariance returns ErrNotPositiveDefinite unless
// WithAllowSingular is set, in which case a spectral square root with
// negative eigenvalues clamped to zero is used and the draw follows the
// generalized (degenerate) distribution.
//
// The draw is exact in distribution but NOT stratified; see
// StratifiedCorrelated for coverage-uniform sampling.
//
// Complexity: O(n³) for the factorization plus O(numSamples·n²) for the draws.
func MultivariateNormal(means []float64, cov mat.Symmetric, numSamples int, opts ...Option) (*mat.Dense, error) {
	n := len(means)
	if n == 0 || numSamples < 1 {
		return nil, fmt.Errorf("%w: numVars=%d, numSamples=%d", ErrBadDimension, n, numSamples)
	}
	if c := cov.SymmetricDim(); c != n {
		return nil, fmt.Errorf("%w: len(means)=%d, cov is %d×%d", ErrDimensionMismatch, n, c, c)
	}
	o := gatherOptions(opts...)

	factor, err := covFactor(cov, o.allowSingular)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(numSamples, n, nil)
	z := make([]float64, n)
	for i := 0; i < numSamples; i++ {
		for k := range z {
			z[k] = o.rng.NormFloat64()
		}
		for r := 0; r < n; r++ {
			x := means[r]
			for k := 0; k < n; k++ {
				x += factor.At(r, k) * z[k]
			}
			out.Set(i, r, x)
		}
	}

	return out, nil
}

// covFactor returns a matrix F with F·Fᵗ = cov: the Cholesky factor for PD
// input, or — only when allowSingular — the spectral square root V·√Λ₊
// with negative eigenvalues clamped to zero.
func covFactor(cov mat.Symmetric, allowSingular bool) (mat.Matrix, error) {
	n := cov.SymmetricDim()

	var chol mat.Cholesky
	if chol.Factorize(cov) {
		l := mat.NewTriDense(n, mat.Lower, nil)
		chol.LTo(l)

		return l, nil
	}
	if !allowSingular {
		return nil, fmt.Errorf("%w: covariance failed Cholesky factorization (use WithAllowSingular for degenerate draws)", ErrNotPositiveDefinite)
	}

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		// Symmetric eigendecomposition essentially cannot fail to converge
		// on finite input; treat it as the same caller-facing condition.
		return nil, fmt.Errorf("%w: eigendecomposition failed", ErrNotPositiveDefinite)
	}
	vals := eig.Values(nil)
	vecs := mat.NewDense(n, n, nil)
	eig.VectorsTo(vecs)

	// Scale eigenvector columns by √max(λ,0); negative round-off modes
	// contribute nothing rather than NaN.
	f := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		s := math.Sqrt(math.Max(vals[j], 0))
		for i := 0; i < n; i++ {
			f.Set(i, j, vecs.At(i, j)*s)
		}
	}

	return f, nil
}
