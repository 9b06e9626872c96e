package archive

import (
	"github.com/katalvlaran/pareto/front"
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/spatial"
)

// Archive is a layered Pareto archive: F0 is the Pareto-optimal layer, F1 is
// Pareto-optimal among what remains once F0 is set aside, and so on.
type Archive struct {
	layers   []*front.Front
	dir      point.DirectionVector
	capacity int // 0 means unbounded
}

// New constructs an empty Archive oriented by dir. A capacity of 0 means
// unbounded; a negative capacity is rejected.
//
// Complexity: O(1).
// Errors: ErrInvalidCapacity if capacity < 0.
func New(dir point.DirectionVector, capacity int) (*Archive, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	return &Archive{dir: dir, capacity: capacity}, nil
}

// Copy returns a deep, structurally independent copy of other.
//
// Complexity: O(n).
func Copy(other *Archive) *Archive {
	layers := make([]*front.Front, len(other.layers))
	for i, f := range other.layers {
		layers[i] = front.Copy(f)
	}

	return &Archive{layers: layers, dir: other.dir, capacity: other.capacity}
}

// Directions returns the Archive's DirectionVector.
func (a *Archive) Directions() point.DirectionVector { return a.dir }

// Capacity returns the Archive's configured capacity, or 0 if unbounded.
func (a *Archive) Capacity() int { return a.capacity }

// Len returns the total number of entries stored across every layer.
//
// Complexity: O(k) in the number of layers.
func (a *Archive) Len() int {
	total := 0
	for _, f := range a.layers {
		total += f.Size()
	}

	return total
}

// Empty reports whether the Archive holds no entries.
func (a *Archive) Empty() bool { return a.Len() == 0 }

// Fronts returns the layered Fronts in dominance order, F0 first.
func (a *Archive) Fronts() []*front.Front {
	out := make([]*front.Front, len(a.layers))
	copy(out, a.layers)

	return out
}

// Iterate returns every stored (point, value) pair, flattening F0 then F1
// and so on; within a layer, entries are in that layer's insertion order.
//
// Complexity: O(n).
func (a *Archive) Iterate() []spatial.Entry {
	var out []spatial.Entry
	for _, f := range a.layers {
		out = append(out, f.Iterate()...)
	}

	return out
}

// Contains reports whether p is stored in any layer.
func (a *Archive) Contains(p point.Point) bool {
	for _, f := range a.layers {
		if f.Contains(p) {
			return true
		}
	}

	return false
}
