package gmw_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/AI-Pranto/asapy-go/gmw"
)

// permuted returns Pᵗ·A·P for the permutation in res.
func permuted(a mat.Symmetric, res *gmw.Result) *mat.SymDense {
	n := a.SymmetricDim()
	p := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			p.SetSym(i, j, a.At(res.Perm[i], res.Perm[j]))
		}
	}

	return p
}

// assertIdentity checks Pᵗ·A·P ≈ L·Lᵗ − diag(e) to tol, plus e ≥ 0 and a
// strictly positive diagonal on L.
func assertIdentity(t *testing.T, a mat.Symmetric, res *gmw.Result, tol float64) {
	t.Helper()

	assert.True(t, mat.EqualApprox(permuted(a, res), res.Reconstruct(), tol),
		"PᵗAP != LLᵗ−diag(e):\nPᵗAP=\n%v\nLLᵗ−diag(e)=\n%v",
		mat.Formatted(permuted(a, res)), mat.Formatted(res.Reconstruct()))

	for j, e := range res.Shift {
		assert.GreaterOrEqual(t, e, 0.0, "Shift[%d] must be non-negative", j)
		assert.Greater(t, res.L.At(j, j), 0.0, "L[%d,%d] must be positive", j, j)
	}
}

// TestDecompose_IndefiniteExample runs the canonical indefinite matrix from
// the GMW literature: A = [[4,2,1],[2,6,3],[1,3,-0.004]]. A is not positive
// definite, so at least one shift entry must be strictly positive, and the
// factorization identity must hold within 1e-6.
func TestDecompose_IndefiniteExample(t *testing.T) {
	a := mat.NewSymDense(3, []float64{
		4, 2, 1,
		2, 6, 3,
		1, 3, -0.004,
	})

	res, err := gmw.Decompose(a)
	require.NoError(t, err)

	assertIdentity(t, a, res, 1e-6)
	assert.True(t, res.Shifted(), "indefinite input must be shifted")
}

// TestDecompose_PositiveDefinitePassThrough: for a strictly PD matrix the
// shift is numerically zero and L matches the ordinary Cholesky factor of
// the permuted matrix.
func TestDecompose_PositiveDefinitePassThrough(t *testing.T) {
	a := mat.NewSymDense(3, []float64{
		4, 1, 0.5,
		1, 3, -0.25,
		0.5, -0.25, 2,
	})

	res, err := gmw.Decompose(a)
	require.NoError(t, err)
	assertIdentity(t, a, res, 1e-10)

	for j, e := range res.Shift {
		assert.InDelta(t, 0, e, 1e-12, "Shift[%d] should vanish for PD input", j)
	}

	var chol mat.Cholesky
	require.True(t, chol.Factorize(permuted(a, res)), "permuted PD matrix must factor")
	ordinary := mat.NewTriDense(3, mat.Lower, nil)
	chol.LTo(ordinary)
	assert.True(t, mat.EqualApprox(res.L, ordinary, 1e-10),
		"L should match the ordinary Cholesky factor of PᵗAP")
}

// TestDecompose_Identity: the identity matrix factors to L == I with no
// shift. Note the pivot tie-break (>=, later index wins, as in the
// reference algorithm) still permutes equal diagonals; the permutation is
// checked only for validity.
func TestDecompose_Identity(t *testing.T) {
	n := 5
	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		a.SetSym(i, i, 1)
	}

	res, err := gmw.Decompose(a)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, res.Perm)
	assert.False(t, res.Shifted())
	eye := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		eye.SetTri(i, i, 1)
	}
	assert.True(t, mat.EqualApprox(res.L, eye, 1e-14))
}

// TestDecompose_SingleVariable exercises the explicit n==1 beta branch,
// for both a positive and a non-positive entry.
func TestDecompose_SingleVariable(t *testing.T) {
	res, err := gmw.Decompose(mat.NewSymDense(1, []float64{9}))
	require.NoError(t, err)
	assert.InDelta(t, 3, res.L.At(0, 0), 1e-12)
	assert.False(t, res.Shifted())

	res, err = gmw.Decompose(mat.NewSymDense(1, []float64{-2}))
	require.NoError(t, err)
	assertIdentity(t, mat.NewSymDense(1, []float64{-2}), res, 1e-8)
	assert.True(t, res.Shifted(), "negative scalar must be shifted")
}

// TestDecompose_Singular: a rank-deficient matrix must still factor, with
// the identity holding to tolerance.
func TestDecompose_Singular(t *testing.T) {
	// Rank 1: outer product of [1,2,3] with itself.
	a := mat.NewSymDense(3, []float64{
		1, 2, 3,
		2, 4, 6,
		3, 6, 9,
	})

	res, err := gmw.Decompose(a)
	require.NoError(t, err)
	assertIdentity(t, a, res, 1e-8)
}

// TestDecompose_RandomSymmetric stresses the identity on random symmetric
// matrices, indefinite with probability ~1, across several sizes.
func TestDecompose_RandomSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 3, 5, 8, 13} {
		a := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				a.SetSym(i, j, rng.NormFloat64()*3)
			}
		}

		res, err := gmw.Decompose(a)
		require.NoError(t, err, "n=%d", n)
		assertIdentity(t, a, res, 1e-8)
	}
}

// TestDecompose_DoesNotMutateInput verifies the no-aliasing contract.
func TestDecompose_DoesNotMutateInput(t *testing.T) {
	a := mat.NewSymDense(2, []float64{
		1, 5,
		5, 2,
	})
	orig := mat.NewSymDense(2, nil)
	orig.CopySym(a)

	_, err := gmw.Decompose(a)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, orig), "input matrix was mutated")
}

// TestDecompose_Empty rejects a 0×0 matrix.
func TestDecompose_Empty(t *testing.T) {
	_, err := gmw.Decompose(&mat.SymDense{})
	assert.ErrorIs(t, err, gmw.ErrEmptyMatrix)
}
