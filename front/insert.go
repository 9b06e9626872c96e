package front

import (
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/spatial"
)

// Insert attempts to add (p, v), preserving the Front's mutual
// non-dominance invariant in three steps: reject p if any stored point
// dominates it; otherwise evict every stored point p dominates; then store
// (p, v), replacing the value at an exact coordinate match if present.
//
// Complexity: O(n) (the reject/evict scan visits every stored point; the
// underlying spatial.Index does not currently expose a dominance-cone query
// faster than a linear scan).
// Errors: ErrDimensionMismatch if p's dimension does not match the Front's.
func (f *Front) Insert(p point.Point, v interface{}) (bool, error) {
	if f.dir.Dimensions() != 0 && p.Dimensions() != f.dir.Dimensions() {
		return false, ErrDimensionMismatch
	}

	for _, e := range f.idx.Iterate() {
		if e.Point.Dominates(p, f.dir) {
			return false, nil
		}
	}

	for _, e := range f.idx.Iterate() {
		if p.Dominates(e.Point, f.dir) {
			f.idx.Erase(e.Point)
		}
	}

	added, err := f.idx.Insert(p, v)
	if err != nil {
		return false, err
	}

	return added, nil
}

// InsertEvicting is a supplemental entry point beyond the three-step insertion
// semantics: it performs the same Pareto-preserving insert but also returns
// the points evicted in step 2, so callers such as Archive can re-insert
// them into the next layer down.
//
// Complexity: O(n).
// Errors: ErrDimensionMismatch if p's dimension does not match the Front's.
func (f *Front) InsertEvicting(p point.Point, v interface{}) (inserted bool, evicted []spatial.Entry, err error) {
	if f.dir.Dimensions() != 0 && p.Dimensions() != f.dir.Dimensions() {
		return false, nil, ErrDimensionMismatch
	}

	for _, e := range f.idx.Iterate() {
		if e.Point.Dominates(p, f.dir) {
			return false, nil, nil
		}
	}

	for _, e := range f.idx.Iterate() {
		if p.Dominates(e.Point, f.dir) {
			evicted = append(evicted, e)
			f.idx.Erase(e.Point)
		}
	}

	added, err := f.idx.Insert(p, v)
	if err != nil {
		return false, nil, err
	}

	return added, evicted, nil
}

// Erase removes p, if present, returning the number removed (0 or 1).
func (f *Front) Erase(p point.Point) int { return f.idx.Erase(p) }
