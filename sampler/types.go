// Package sampler - sentinel errors shared by both sampling strategies.
package sampler

import "errors"

// ErrDimensionMismatch is returned when means, standard deviations and the
// target matrix disagree on the number of variables. The wrapping error
// names the disagreeing dimensions.
var ErrDimensionMismatch = errors.New("sampler: dimension mismatch")

// ErrBadDimension is returned for a non-positive sample count or an empty
// variable set.
var ErrBadDimension = errors.New("sampler: number of variables and samples must be positive")

// ErrNotPositiveDefinite is returned when a covariance or target
// correlation matrix fails its ordinary Cholesky factorization and
// degenerate sampling was not explicitly allowed (see WithAllowSingular).
var ErrNotPositiveDefinite = errors.New("sampler: matrix is not positive definite")

// ErrRankOrdering is returned when a rank-matching pass scores strictly
// worse than a preceding one. This signals an algorithmic inconsistency,
// not an expected data condition; it cannot fire on the standard single
// pass.
var ErrRankOrdering = errors.New("sampler: could not order samples")
