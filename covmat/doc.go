// Package covmat converts between the two standard representations of
// joint uncertainty: correlation matrices (unit diagonal, entries in
// [-1, 1]) and covariance matrices (variances on the diagonal).
//
// 🚀 What is covmat?
//
//	Given R (correlation) and the per-variable standard deviations σ:
//
//	    C[i,j] = R[i,j]·σ[i]·σ[j]        (CorrelationToCovariance)
//	    R[i,j] = C[i,j] / √|C[i,i]·C[j,j]| (CovarianceToCorrelation)
//
//	Both directions allocate fresh *mat.SymDense results; inputs are never
//	mutated. Because results are stored symmetrically, the output is exactly
//	symmetric — there is no "upper triangle drifted from lower" failure mode.
//
// ⚠️ Robustness over rigor:
//
//	CovarianceToCorrelation takes the absolute value of C[i,i]·C[j,j] under
//	the square root. Evaluated covariance data occasionally carries small
//	negative variances (round-off, inconsistent upstream processing); the
//	absolute value lets such matrices through instead of producing NaN.
//	This is a deliberate robustness hack, not mathematics — validity
//	checking belongs to the caller.
//
// ⚙️ Usage:
//
//	import "github.com/AI-Pranto/asapy-go/covmat"
//
//	cov, err := covmat.CorrelationToCovariance(std, corr)
//	corr2, err := covmat.CovarianceToCorrelation(cov)
//
// Complexity: O(n²) time and memory for all operations.
package covmat
