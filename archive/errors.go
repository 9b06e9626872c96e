package archive

import "errors"

// Sentinel errors for Archive operations.
var (
	// ErrDimensionMismatch indicates a point's dimension does not match the
	// Archive's fixed dimension.
	ErrDimensionMismatch = errors.New("archive: dimension mismatch")

	// ErrEmptyContainer indicates a reference-point query was issued against
	// an empty Archive.
	ErrEmptyContainer = errors.New("archive: container is empty")

	// ErrInvalidCapacity indicates a non-positive capacity was supplied
	// where a positive one is required.
	ErrInvalidCapacity = errors.New("archive: capacity must be positive")
)
