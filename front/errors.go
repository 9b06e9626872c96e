package front

import "errors"

// Sentinel errors for Front operations.
var (
	// ErrDimensionMismatch indicates a point's dimension does not match the
	// Front's fixed dimension.
	ErrDimensionMismatch = errors.New("front: dimension mismatch")

	// ErrEmptyContainer indicates a reference-point or extremum query was
	// issued against an empty Front.
	ErrEmptyContainer = errors.New("front: container is empty")
)
