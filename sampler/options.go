// Package sampler - functional configuration for the sampling strategies.
//
// Design goals, matching the module-wide conventions:
//   - Deterministic behavior: no global state, no implicit randomness;
//     the nil-RNG policy resolves to a fixed default seed (lhs.NewRand).
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package sampler

import (
	"math/rand"

	"github.com/AI-Pranto/asapy-go/lhs"
)

// DefaultAllowSingular rejects degenerate (singular-covariance) direct
// draws unless explicitly enabled.
const DefaultAllowSingular = false

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	rng           *rand.Rand // nil until resolved; see gatherOptions
	allowSingular bool       // DefaultAllowSingular
}

// WithRand injects the random source used for all draws. Passing nil keeps
// the default deterministic stream (fixed seed, never wall-clock time).
//
// Complexity: O(1).
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithAllowSingular permits MultivariateNormal to fall back to a spectral
// (eigenvalue) square root when the covariance is not positive definite,
// drawing from the generalized, possibly degenerate distribution instead
// of failing with ErrNotPositiveDefinite.
//
// StratifiedCorrelated ignores this option: its positive-definite target
// is a documented precondition.
//
// Complexity: O(1).
func WithAllowSingular() Option {
	return func(o *options) { o.allowSingular = true }
}

// gatherOptions applies setters over the documented defaults and resolves
// the nil-RNG policy in exactly one place.
func gatherOptions(opts ...Option) options {
	o := options{
		allowSingular: DefaultAllowSingular,
	}
	for _, set := range opts {
		set(&o)
	}
	if o.rng == nil {
		o.rng = lhs.NewRand(0)
	}

	return o
}
