// Package lhs draws Latin-hypercube (stratified) samples: each variable's
// probability range is split into equal-probability strata with exactly one
// draw per stratum, guaranteeing even marginal coverage that plain Monte
// Carlo only reaches asymptotically.
//
// 🚀 How it works:
//
//	UniformSample, per variable:
//	  1. partition [0,1) into numSamples equal strata;
//	  2. draw one uniform point inside each stratum;
//	  3. shuffle the column with an independent Fisher–Yates permutation.
//	The shuffle decorrelates variables from each other while leaving every
//	marginal perfectly stratified.
//
//	NormalSample pushes the uniform draw through the inverse CDF
//	(quantile) of Normal(meanᵢ, stdᵢ) per column, yielding independent
//	stratified normal columns.
//
// 🎲 Randomness policy:
//
//	Every entry point takes a *rand.Rand. nil selects a fixed default seed —
//	never wall-clock time — so zero-configuration calls are reproducible.
//	Parallel callers derive independent streams via Derive. There is no
//	package-level random state.
//
// ⚙️ Usage:
//
//	import "github.com/AI-Pranto/asapy-go/lhs"
//
//	rng := lhs.NewRand(1234)
//	u, err := lhs.UniformSample(3, 500, rng)             // 500×3 in [0,1)
//	z, err := lhs.NormalSample(500, means, stds, rng)    // 500×len(means)
//
// Complexity: O(numVars·numSamples) time and memory per draw.
package lhs
