// Package lhs - sentinel errors for the stratified samplers.
package lhs

import "errors"

// ErrBadDimension is returned when a requested sample set has fewer than
// one variable or fewer than one sample.
var ErrBadDimension = errors.New("lhs: number of variables and samples must be positive")

// ErrDimensionMismatch is returned when the means and standard-deviation
// vectors disagree in length. The wrapping error names both lengths.
var ErrDimensionMismatch = errors.New("lhs: dimension mismatch")
