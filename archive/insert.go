package archive

import (
	"github.com/katalvlaran/pareto/front"
	"github.com/katalvlaran/pareto/point"
)

// Insert adds (p, v) to the Archive. It descends layers starting at F0,
// inserting p into the first layer that does not reject it as dominated;
// points evicted from a layer by p's arrival re-enter recursively at the
// next layer down, since they remain non-dominated among what's left there.
// If every existing layer rejects p, a new deepest layer holding only
// (p, v) is appended. If a capacity is set and the total size now exceeds
// it, the deepest layer is pruned by repeatedly discarding its
// largest-crowding-distance point (the spec's prescribed diversity-
// preserving rule) until the Archive is back at capacity; an emptied
// deepest layer is then dropped.
//
// Complexity: O(L * n) where L is the number of layers and n is a layer's
// average size, plus O(n log n) for any capacity pruning.
// Errors: ErrDimensionMismatch if p's dimension does not match the
// Archive's.
func (a *Archive) Insert(p point.Point, v interface{}) (bool, error) {
	if a.dir.Dimensions() != 0 && p.Dimensions() != a.dir.Dimensions() {
		return false, ErrDimensionMismatch
	}

	inserted, err := a.insertAt(0, p, v)
	if err != nil {
		return false, err
	}
	if inserted && a.capacity > 0 {
		a.enforceCapacity()
	}

	return inserted, nil
}

func (a *Archive) insertAt(layerIdx int, p point.Point, v interface{}) (bool, error) {
	if layerIdx == len(a.layers) {
		a.layers = append(a.layers, front.New(a.dir))
	}

	f := a.layers[layerIdx]
	existed := f.Contains(p)
	added, evicted, err := f.InsertEvicting(p, v)
	if err != nil {
		return false, err
	}
	if existed {
		return false, nil
	}
	if !added {
		return a.insertAt(layerIdx+1, p, v)
	}

	for _, e := range evicted {
		if _, err := a.insertAt(layerIdx+1, e.Point, e.Value); err != nil {
			return false, err
		}
	}

	return true, nil
}

// Erase removes p from whichever layer holds it, returning the number
// removed (0 or 1). It does not re-home points into shallower layers; the
// layering only rearranges on Insert.
func (a *Archive) Erase(p point.Point) int {
	for _, f := range a.layers {
		if n := f.Erase(p); n > 0 {
			return n
		}
	}

	return 0
}
