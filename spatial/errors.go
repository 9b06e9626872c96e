package spatial

import "errors"

// Sentinel errors for SpatialIndex operations.
var (
	// ErrDimensionMismatch indicates a point's dimension does not match the
	// Index's fixed dimension.
	ErrDimensionMismatch = errors.New("spatial: dimension mismatch")

	// ErrNotFound indicates Lookup was called with a point that is not
	// present in the Index.
	ErrNotFound = errors.New("spatial: point not found")

	// ErrEmptyContainer indicates a reference-point or extremum query was
	// issued against an empty Index.
	ErrEmptyContainer = errors.New("spatial: container is empty")

	// ErrBadArgument indicates an invalid argument, such as k < 1 passed to
	// FindNearest/GetNearest.
	ErrBadArgument = errors.New("spatial: bad argument")
)
