// Package covmat - sentinel errors shared by the conversion routines.
package covmat

import "errors"

// ErrDimensionMismatch is returned when the standard-deviation vector and
// the correlation matrix disagree on the number of variables. The wrapping
// error names both dimensions.
var ErrDimensionMismatch = errors.New("covmat: dimension mismatch")

// ErrEmptyMatrix is returned when a conversion receives a 0×0 matrix or an
// empty standard-deviation vector.
var ErrEmptyMatrix = errors.New("covmat: empty matrix")
