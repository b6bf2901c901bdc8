// Package lhs - RNG utilities shared by the samplers.
//
// This file centralizes deterministic random generation for every
// stochastic entry point in the module (the sampler package reuses it).
//
// Goals:
//   - Determinism: same seed ⇒ identical sample sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for parallel sampling workers.
package lhs

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0 or a
// nil generator. The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Parallel uncertainty propagation wants independent substreams derived
//     from one base seed (one per worker or per batch of sample rows).
//   - A SplitMix64-style avalanche mix eliminates correlations between streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants and rationale.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil, defaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once to decorrelate consecutive
// derivations, then mixed with the stream id via deriveSeed.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-worker RNGs.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		// Int63() advances base state; intentional, so reusing the same
		// stream id by mistake still yields distinct children.
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// orDefault resolves the nil-RNG policy at entry points.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(0)
	}

	return rng
}

// shuffleFloatsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleFloatsInPlace(a []float64, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
