package indicators

import "errors"

// ErrDimensionMismatch indicates two Fronts (or a Front and a reference
// point) being compared do not share a dimension.
var ErrDimensionMismatch = errors.New("indicators: dimension mismatch")

// ErrEmptyContainer indicates an indicator that requires a non-empty Front
// was evaluated against an empty one.
var ErrEmptyContainer = errors.New("indicators: container is empty")
