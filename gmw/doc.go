// Package gmw implements the Gill–Murray–Wright (GMW) modified Cholesky
// factorization: a pivoted, diagonally shifted Cholesky-like decomposition
// that succeeds on ANY real symmetric matrix — indefinite, singular, or
// merely noisy — where an ordinary Cholesky would fail.
//
// 🚀 What does it compute?
//
//	For symmetric A, Decompose returns (P, L, e) such that
//
//	    Pᵗ·A·P = L·Lᵗ − diag(e)
//
//	with L lower-triangular with strictly positive diagonal and e ≥ 0
//	componentwise. If A is already positive definite, e is (numerically)
//	zero and L is the ordinary Cholesky factor of the pivoted A.
//
// The shift e is the smallest diagonal perturbation, in the GMW sense, that
// restores positive definiteness — which is exactly what a downstream
// linear transform needs: a factor that always exists and is never wildly
// ill-conditioned, even when an empirical correlation matrix drifts
// slightly indefinite through finite sampling or round-off.
//
// 📐 Algorithm:
//
//	Algorithm 6.5, p.148 of Nocedal & Wright, "Numerical Optimization",
//	2nd ed. Per column j:
//	  1. pivot on the largest remaining diagonal magnitude (symmetric
//	     row+column swap, accumulated into P);
//	  2. dⱼ = max(|aⱼⱼ|, (θⱼ/β)², δ) where θⱼ is the largest off-diagonal
//	     magnitude in the pivot row, β and δ are scale thresholds derived
//	     from A and machine epsilon;
//	  3. e[j] = dⱼ − aⱼⱼ, row j of the factor is formed from dⱼ, and the
//	     trailing submatrix is updated with symmetry re-enforced at every
//	     write to control round-off accumulation.
//
//	The n==1 case takes an explicit β = √max(γ, ε) branch: the general
//	ξ/√(n²−1) formula would divide by zero there.
//
// ⚙️ Usage:
//
//	import "github.com/AI-Pranto/asapy-go/gmw"
//
//	res, err := gmw.Decompose(a)   // err only for an empty matrix
//	if res.Shifted() {
//	    // a was not positive definite; res.Shift records the correction
//	}
//
// There are no failure modes on indefinite input — never failing is the
// entire point of the algorithm.
//
// Complexity: O(n³) time, O(n²) memory.
package gmw
