package lhs

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformSample draws a numSamples×numVars Latin-hypercube sample on
// [0,1): for each variable, one uniform draw inside each of numSamples
// equal-probability strata, then an independent random permutation of the
// column. Rows are draws, columns are variables.
//
// The per-column permutations make the columns mutually independent (up to
// the finite-sample noise a downstream composer measures and corrects),
// while each column remains exactly stratified.
//
// rng == nil selects the deterministic default stream (see NewRand).
// Returns ErrBadDimension for numVars < 1 or numSamples < 1.
//
// Complexity: O(numVars·numSamples).
func UniformSample(numVars, numSamples int, rng *rand.Rand) (*mat.Dense, error) {
	if numVars < 1 || numSamples < 1 {
		return nil, fmt.Errorf("%w: numVars=%d, numSamples=%d", ErrBadDimension, numVars, numSamples)
	}
	r := orDefault(rng)

	out := mat.NewDense(numSamples, numVars, nil)
	col := make([]float64, numSamples)
	width := 1 / float64(numSamples)
	for j := 0; j < numVars; j++ {
		for i := 0; i < numSamples; i++ {
			// One point inside stratum [i/numSamples, (i+1)/numSamples).
			col[i] = (float64(i) + r.Float64()) * width
		}
		shuffleFloatsInPlace(col, r)
		out.SetCol(j, col)
	}

	return out, nil
}

// NormalSample draws a numSamples×len(means) matrix of independent
// stratified normal columns: column j is a Latin-hypercube uniform column
// pushed through the quantile (inverse CDF) of Normal(means[j], stdDevs[j]).
//
// rng == nil selects the deterministic default stream.
// Returns ErrDimensionMismatch when len(means) != len(stdDevs) and
// ErrBadDimension for an empty means vector or numSamples < 1.
//
// Complexity: O(len(means)·numSamples).
func NormalSample(numSamples int, means, stdDevs []float64, rng *rand.Rand) (*mat.Dense, error) {
	if len(means) != len(stdDevs) {
		return nil, fmt.Errorf("%w: len(means)=%d, len(stdDevs)=%d", ErrDimensionMismatch, len(means), len(stdDevs))
	}

	out, err := UniformSample(len(means), numSamples, rng)
	if err != nil {
		return nil, err
	}

	col := make([]float64, numSamples)
	for j := range means {
		dist := distuv.Normal{Mu: means[j], Sigma: stdDevs[j]}
		mat.Col(col, j, out)
		for i := range col {
			col[i] = dist.Quantile(col[i])
		}
		out.SetCol(j, col)
	}

	return out, nil
}
