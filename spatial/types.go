package spatial

import (
	"sync"

	"github.com/katalvlaran/pareto/point"
)

// Entry is a (point, value) pair as stored in an Index.
type Entry struct {
	Point point.Point
	Value interface{}
}

// node is one k-d tree node. axis is the splitting dimension at this depth
// (depth % dim for a freshly inserted node; preserved verbatim across a
// rebuild since rebuild recomputes axis from depth too).
type node struct {
	entry     Entry
	insertSeq uint64
	axis      int
	left      *node
	right     *node
}

// Option configures an Index at construction time.
type Option func(*Index)

// WithDimension fixes the Index's dimension at construction instead of
// inferring it from the first Insert. Useful when constructing an empty
// Index that must still answer Dimensions()/reject wrong-dimension points
// before anything has been inserted.
func WithDimension(d int) Option {
	if d <= 0 {
		panic("spatial: WithDimension requires d > 0")
	}

	return func(idx *Index) {
		idx.dim = d
		idx.dimSet = true
	}
}

// rebuildSkewFactor bounds how much deeper than a balanced tree's ideal
// height the live tree may grow before the next mutation triggers a full
// rebuild. A balanced binary tree over n nodes has height ~log2(n); we
// tolerate up to rebuildSkewFactor times that before paying for a rebuild.
const rebuildSkewFactor = 2.0

// rebuildSkewConst is an additive slack so small trees (where log2(n) is
// tiny or negative) are not rebuilt on every insert.
const rebuildSkewConst = 4

// Index is a dynamic k-d tree mapping fixed-dimension points to opaque
// values. The zero value is not usable; construct with New.
type Index struct {
	mu sync.RWMutex

	dim    int
	dimSet bool

	root      *node
	size      int
	nextSeq   uint64
	maxHeight int // running height bound observed since last rebuild

	bboxDirty bool
	min       []float64
	max       []float64
}

// New constructs an empty Index. If WithDimension is not supplied, the
// Index's dimension is inferred from the first Insert.
//
// Complexity: O(1).
func New(opts ...Option) *Index {
	idx := &Index{}
	for _, opt := range opts {
		opt(idx)
	}

	return idx
}

// Dimensions returns the Index's fixed dimension, or 0 if it has not yet
// been fixed (no WithDimension and no Insert yet).
//
// Complexity: O(1).
func (idx *Index) Dimensions() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.dim
}

// Size returns the number of distinct points stored in the Index.
//
// Complexity: O(1).
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.size
}

// Empty reports whether the Index holds no entries.
//
// Complexity: O(1).
func (idx *Index) Empty() bool {
	return idx.Size() == 0
}

func (idx *Index) checkDimension(p point.Point) error {
	if idx.dimSet && p.Dimensions() != idx.dim {
		return ErrDimensionMismatch
	}

	return nil
}
