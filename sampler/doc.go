// Package sampler composes correlated sample sets: random draws whose
// columns follow prescribed normal marginals AND a prescribed correlation
// matrix between variables.
//
// 🚀 Two strategies:
//
//	MultivariateNormal — the direct draw. Exact in distribution (rows are
//	iid from N(means, cov)) but not stratified: nothing guarantees even
//	coverage of probability space. Use when correlation fidelity matters
//	more than coverage uniformity.
//
//	StratifiedCorrelated — the rank-matching composition:
//	  1. draw independent stratified standard-normal columns (lhs);
//	  2. measure their incidental empirical correlation T — never exactly
//	     the identity at finite sample size;
//	  3. factor T with the GMW modified Cholesky (T may be slightly
//	     indefinite; the factor must always exist) → Q;
//	  4. factor the target correlation with an ordinary Cholesky → P;
//	  5. map the samples through M = P·Q⁻¹, inducing approximately the
//	     target correlation;
//	  6. per variable, reorder the ORIGINAL stratified values by the ranks
//	     of the mapped column, then scale and shift onto the requested
//	     marginal. The realized value set per column is untouched — every
//	     marginal stays perfectly stratified — while the rank order carries
//	     the target correlation.
//
// The target correlation passed to StratifiedCorrelated must be positive
// definite; that is a documented precondition, not an automatic repair.
// Callers holding an indefinite target pre-condition it through gmw
// themselves.
//
// ⚖️ Scoring and the single pass:
//
//	The achieved correlation is scored as Σ|corr(result) − target|. The
//	composition takes a single pass against an unbounded sentinel; a
//	repeated attempt scoring strictly worse than a previous one is an
//	algorithmic inconsistency and fails hard (ErrRankOrdering) rather than
//	silently keeping the better result. This deliberately mirrors the
//	reference behavior and is not a retry loop to be "fixed".
//
// ⚙️ Usage:
//
//	import "github.com/AI-Pranto/asapy-go/sampler"
//
//	z, err := sampler.StratifiedCorrelated(means, stds, corr, 500,
//	    sampler.WithRand(lhs.NewRand(1234)))
//
//	x, err := sampler.MultivariateNormal(means, cov, 500,
//	    sampler.WithAllowSingular())
//
// Complexity: O(n³) for the factorizations plus O(M·n²) for the linear map
// and O(M·log M·n) for ranking, for M samples of n variables.
package sampler
