package sampler

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ranks fills rank such that rank[i] is the position row i of col would
// occupy after an ascending sort: rank[argsort(col)[k]] = k.
//
// Complexity: O(M·log M).
func ranks(col []float64, order, rank []int) {
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return col[order[a]] < col[order[b]] })
	for k, i := range order {
		rank[i] = k
	}
}

// corrDistance scores how far the empirical correlation of samples sits
// from target: the sum of absolute elementwise differences over the full
// matrix (both triangles and the diagonal, as in the reference scoring).
//
// Complexity: O(M·n²).
func corrDistance(samples *mat.Dense, target mat.Symmetric) float64 {
	n := target.SymmetricDim()
	got := mat.NewSymDense(n, nil)
	stat.CorrelationMatrix(got, samples, nil)

	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := got.At(i, j) - target.At(i, j)
			if d < 0 {
				d = -d
			}
			sum += d
		}
	}

	return sum
}
