package spatial

import "github.com/katalvlaran/pareto/point"

// widenBBox folds p into the cached per-dimension bounding box. Called only
// on Insert of a genuinely new point, where the box can only grow, so it
// never needs the dirty/rebuild path that Erase requires.
func (idx *Index) widenBBox(p point.Point) {
	if idx.min == nil {
		idx.min = p.Coordinates()
		idx.max = p.Coordinates()
		idx.bboxDirty = false

		return
	}
	for i := 0; i < idx.dim; i++ {
		v := p.At(i)
		if v < idx.min[i] {
			idx.min[i] = v
		}
		if v > idx.max[i] {
			idx.max[i] = v
		}
	}
}

// rebuildBBox recomputes the cached bounding box from scratch by scanning
// every stored entry. Invoked lazily, once, the next time MinValue/MaxValue
// is called after an Erase may have removed an extremal point.
func (idx *Index) rebuildBBox() {
	if idx.size == 0 {
		idx.min = nil
		idx.max = nil
		idx.bboxDirty = false

		return
	}

	min := make([]float64, idx.dim)
	max := make([]float64, idx.dim)
	first := true
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		if first {
			copy(min, n.entry.Point.Coordinates())
			copy(max, n.entry.Point.Coordinates())
			first = false
		} else {
			for i := 0; i < idx.dim; i++ {
				v := n.entry.Point.At(i)
				if v < min[i] {
					min[i] = v
				}
				if v > max[i] {
					max[i] = v
				}
			}
		}
		walk(n.right)
	}
	walk(idx.root)

	idx.min = min
	idx.max = max
	idx.bboxDirty = false
}

// MinValue returns the minimum stored coordinate in dimension i.
//
// Complexity: O(1) amortized; O(n) on the first call after an Erase that may
// have removed the previous extremum.
// Errors: ErrEmptyContainer if the Index is empty.
func (idx *Index) MinValue(i int) (float64, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.size == 0 {
		return 0, ErrEmptyContainer
	}
	if idx.bboxDirty {
		idx.rebuildBBox()
	}

	return idx.min[i], nil
}

// MaxValue returns the maximum stored coordinate in dimension i.
//
// Complexity: O(1) amortized; O(n) on the first call after an Erase that may
// have removed the previous extremum.
// Errors: ErrEmptyContainer if the Index is empty.
func (idx *Index) MaxValue(i int) (float64, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.size == 0 {
		return 0, ErrEmptyContainer
	}
	if idx.bboxDirty {
		idx.rebuildBBox()
	}

	return idx.max[i], nil
}
