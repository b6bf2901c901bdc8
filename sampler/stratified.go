package sampler

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/AI-Pranto/asapy-go/gmw"
	"github.com/AI-Pranto/asapy-go/lhs"
)

// numTries is the number of rank-matching passes. The reference behavior
// is a single pass scored against an unbounded sentinel; raising this
// without revisiting the fail-fast contract below would turn an invariant
// check into a retry loop with different semantics.
const numTries = 1

// StratifiedCorrelated draws a numSamples×len(means) sample matrix whose
// column j is a perfectly stratified draw from Normal(means[j],
// stdDevs[j]) and whose columns jointly approximate targetCorr.
//
// The pipeline: independent stratified standard-normal columns → measure
// their incidental correlation T → GMW-factor T (always possible, even
// when T drifts indefinite) → Cholesky-factor the target → linear map
// M = P·Q⁻¹ onto the target structure → per-column rank-matching that
// reorders the original stratified values by the mapped ranks, so the
// realized value set of every marginal is preserved exactly (up to the
// affine mean/std map).
//
// targetCorr must be positive definite — a documented precondition, not an
// automatic repair; pre-condition indefinite targets through gmw first.
// Non-PD targets return ErrNotPositiveDefinite.
//
// A pass scoring strictly worse than a previous best returns
// ErrRankOrdering; with the standard single pass this marks an algorithmic
// inconsistency, never an expected data condition.
//
// Complexity: O(n³) factorizations + O(numSamples·n²) mapping +
// O(numSamples·log(numSamples)·n) ranking.
func StratifiedCorrelated(means, stdDevs []float64, targetCorr mat.Symmetric, numSamples int, opts ...Option) (*mat.Dense, error) {
	numVars := len(means)
	if numVars == 0 || numSamples < 1 {
		return nil, fmt.Errorf("%w: numVars=%d, numSamples=%d", ErrBadDimension, numVars, numSamples)
	}
	if len(stdDevs) != numVars {
		return nil, fmt.Errorf("%w: len(means)=%d, len(stdDevs)=%d", ErrDimensionMismatch, numVars, len(stdDevs))
	}
	if c := targetCorr.SymmetricDim(); c != numVars {
		return nil, fmt.Errorf("%w: len(means)=%d, targetCorr is %d×%d", ErrDimensionMismatch, numVars, c, c)
	}
	o := gatherOptions(opts...)

	// Independent stratified N(0,1) columns.
	zero := make([]float64, numVars)
	unit := make([]float64, numVars)
	for i := range unit {
		unit[i] = 1
	}
	samples, err := lhs.NormalSample(numSamples, zero, unit, o.rng)
	if err != nil {
		return nil, err
	}

	// Incidental correlation of the independent draw; not the identity at
	// finite sample size.
	incidental := mat.NewSymDense(numVars, nil)
	stat.CorrelationMatrix(incidental, samples, nil)

	// GMW factor of the incidental correlation. The permutation is unused
	// at this call site, matching the reference pipeline.
	res, err := gmw.Decompose(incidental)
	if err != nil {
		return nil, err
	}

	// Ordinary Cholesky of the target; PD by contract.
	var chol mat.Cholesky
	if !chol.Factorize(targetCorr) {
		return nil, fmt.Errorf("%w: target correlation failed Cholesky factorization", ErrNotPositiveDefinite)
	}
	target := mat.NewTriDense(numVars, mat.Lower, nil)
	chol.LTo(target)

	// dependent = samples·Mᵗ with M = P·Q⁻¹, via the triangular system
	// Qᵗ·Mᵗ = Pᵗ — no explicit inverse.
	var mt mat.Dense
	if err := mt.Solve(res.L.T(), target.T()); err != nil {
		return nil, fmt.Errorf("sampler: mapping solve failed: %w", err)
	}
	var dependent mat.Dense
	dependent.Mul(samples, &mt)

	// Rank-matching pass(es): reorder each original stratified column by
	// the rank order of the mapped column, then scale/shift onto the
	// requested marginal.
	best := mat.NewDense(numSamples, numVars, nil)
	bestScore := math.Inf(1)
	z := mat.NewDense(numSamples, numVars, nil)
	depCol := make([]float64, numSamples)
	sorted := make([]float64, numSamples)
	order := make([]int, numSamples)
	rank := make([]int, numSamples)
	for try := 0; try < numTries; try++ {
		for j := 0; j < numVars; j++ {
			mat.Col(depCol, j, &dependent)
			ranks(depCol, order, rank)

			mat.Col(sorted, j, samples)
			sort.Float64s(sorted)

			for i := 0; i < numSamples; i++ {
				z.Set(i, j, sorted[rank[i]]*stdDevs[j]+means[j])
			}
		}

		score := corrDistance(z, targetCorr)
		if score < bestScore {
			best.Copy(z)
			bestScore = score
		} else {
			return nil, fmt.Errorf("%w: score=%g did not improve on %g", ErrRankOrdering, score, bestScore)
		}
	}

	return best, nil
}
