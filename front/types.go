package front

import (
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/spatial"
)

// Front is a Pareto-preserving container: it stores (point, value) pairs
// such that no stored point is dominated by another, per its
// DirectionVector.
type Front struct {
	idx *spatial.Index
	dir point.DirectionVector
}

// New constructs an empty Front oriented by dir.
//
// Complexity: O(1).
func New(dir point.DirectionVector) *Front {
	var opts []spatial.Option
	if d := dir.Dimensions(); d > 0 {
		opts = append(opts, spatial.WithDimension(d))
	}

	return &Front{
		idx: spatial.New(opts...),
		dir: dir,
	}
}

// NewFrom constructs a Front oriented by dir, inserting every supplied
// entry through the Pareto-preserving Insert algorithm (so a dominated
// entry in the input is silently dropped, and a later entry may evict an
// earlier one).
//
// Complexity: O(m^2) for m input entries (one O(n) Insert per entry).
// Errors: ErrDimensionMismatch if any entry's point does not match dir's
// dimension.
func NewFrom(dir point.DirectionVector, entries []spatial.Entry) (*Front, error) {
	f := New(dir)
	for _, e := range entries {
		if _, err := f.Insert(e.Point, e.Value); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Copy returns a deep, structurally independent copy of other.
//
// Complexity: O(n).
func Copy(other *Front) *Front {
	return &Front{
		idx: other.idx.Clone(),
		dir: other.dir,
	}
}

// Directions returns the Front's DirectionVector.
func (f *Front) Directions() point.DirectionVector { return f.dir }

// Dimensions returns the Front's fixed dimension.
func (f *Front) Dimensions() int { return f.idx.Dimensions() }

// Size returns the number of stored points.
func (f *Front) Size() int { return f.idx.Size() }

// Empty reports whether the Front holds no entries.
func (f *Front) Empty() bool { return f.idx.Empty() }

// Contains reports whether p is stored in the Front.
func (f *Front) Contains(p point.Point) bool { return f.idx.Contains(p) }

// Lookup returns the value stored at p.
//
// Errors: spatial.ErrNotFound if p is absent.
func (f *Front) Lookup(p point.Point) (interface{}, error) { return f.idx.Lookup(p) }

// Iterate returns every stored (point, value) pair in insertion order.
func (f *Front) Iterate() []spatial.Entry { return f.idx.Iterate() }

// ReverseIterate returns every stored (point, value) pair in the reverse of
// insertion order.
func (f *Front) ReverseIterate() []spatial.Entry { return f.idx.ReverseIterate() }

// Clear removes every entry from the Front.
func (f *Front) Clear() { f.idx.Clear() }
