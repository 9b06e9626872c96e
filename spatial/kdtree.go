package spatial

import (
	"math"
	"sort"

	"github.com/katalvlaran/pareto/point"
)

// Insert adds or replaces the value stored at p. If p is new, a node is
// added and the running count increases; if p already exists (by exact
// coordinate equality), its value is replaced in place. Insert widens the
// cached bounding box eagerly, so MinValue/MaxValue never need a rebuild on
// the insert path.
//
// Complexity: O(log n) amortized; an occasional O(n log^2 n) rebuild is triggered
// when the tree has grown too skewed relative to its size.
func (idx *Index) Insert(p point.Point, v interface{}) (bool, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !idx.dimSet {
		idx.dim = p.Dimensions()
		idx.dimSet = true
	} else if err := idx.checkDimension(p); err != nil {
		return false, err
	}

	var added bool
	var height int
	idx.root, added, height = idx.insertNode(idx.root, p, v, 0)
	if !added {
		return false, nil
	}

	idx.size++
	idx.widenBBox(p)
	if height > idx.maxHeight {
		idx.maxHeight = height
	}
	if idx.shouldRebuild() {
		idx.rebuild()
	}

	return true, nil
}

func (idx *Index) insertNode(n *node, p point.Point, v interface{}, depth int) (*node, bool, int) {
	if n == nil {
		newNode := &node{
			entry:     Entry{Point: p, Value: v},
			insertSeq: idx.nextSeq,
			axis:      depth % idx.dim,
		}
		idx.nextSeq++

		return newNode, true, 1
	}
	if n.entry.Point.Equal(p) {
		n.entry.Value = v

		return n, false, 0
	}

	axis := n.axis
	var added bool
	var height int
	if p.At(axis) < n.entry.Point.At(axis) {
		n.left, added, height = idx.insertNode(n.left, p, v, depth+1)
	} else {
		n.right, added, height = idx.insertNode(n.right, p, v, depth+1)
	}

	return n, added, height + 1
}

// find locates the node storing p, following the same axis-routing rule
// used by insertNode, or returns nil if p is not present.
func (idx *Index) find(p point.Point) *node {
	n := idx.root
	for n != nil {
		if n.entry.Point.Equal(p) {
			return n
		}
		if p.At(n.axis) < n.entry.Point.At(n.axis) {
			n = n.left
		} else {
			n = n.right
		}
	}

	return nil
}

// Contains reports whether p is present in the Index.
//
// Complexity: O(log n) amortized.
func (idx *Index) Contains(p point.Point) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.find(p) != nil
}

// Lookup returns the value stored at p.
//
// Complexity: O(log n) amortized. Errors: ErrNotFound if p is absent.
func (idx *Index) Lookup(p point.Point) (interface{}, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := idx.find(p)
	if n == nil {
		return nil, ErrNotFound
	}

	return n.entry.Value, nil
}

// Erase removes the entry at p, if present, returning the number removed
// (0 or 1, since points are unique keys).
//
// Complexity: O(log n) amortized.
func (idx *Index) Erase(p point.Point) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var removed bool
	idx.root, removed = idx.eraseNode(idx.root, p)
	if !removed {
		return 0
	}

	idx.size--
	idx.bboxDirty = true

	return 1
}

// eraseNode implements Bentley's k-d tree deletion: when the target node has
// a right subtree, it is replaced by the minimum (along its own splitting
// axis) of that subtree, and the minimum is then recursively removed from
// the right subtree; symmetric handling promotes the left subtree to the
// right when no right subtree exists, since the tree's invariant requires a
// node's axis-minimum replacement to come from its right side.
func (idx *Index) eraseNode(n *node, p point.Point) (*node, bool) {
	if n == nil {
		return nil, false
	}
	if n.entry.Point.Equal(p) {
		switch {
		case n.right != nil:
			successor := findMin(n.right, n.axis)
			n.entry = successor.entry
			n.insertSeq = successor.insertSeq
			n.right, _ = idx.eraseNode(n.right, successor.entry.Point)
		case n.left != nil:
			successor := findMin(n.left, n.axis)
			n.entry = successor.entry
			n.insertSeq = successor.insertSeq
			n.right, _ = idx.eraseNode(n.left, successor.entry.Point)
			n.left = nil
		default:
			return nil, true
		}

		return n, true
	}

	axis := n.axis
	var removed bool
	if p.At(axis) < n.entry.Point.At(axis) {
		n.left, removed = idx.eraseNode(n.left, p)
	} else {
		n.right, removed = idx.eraseNode(n.right, p)
	}

	return n, removed
}

// findMin returns the node with the smallest coordinate along axis within
// the subtree rooted at n.
func findMin(n *node, axis int) *node {
	if n == nil {
		return nil
	}
	if n.axis == axis {
		if n.left == nil {
			return n
		}

		return findMin(n.left, axis)
	}

	best := n
	if left := findMin(n.left, axis); left != nil && left.entry.Point.At(axis) < best.entry.Point.At(axis) {
		best = left
	}
	if right := findMin(n.right, axis); right != nil && right.entry.Point.At(axis) < best.entry.Point.At(axis) {
		best = right
	}

	return best
}

// shouldRebuild reports whether the live tree has grown deeper than
// rebuildSkewFactor times the height of a balanced tree over its size, plus
// rebuildSkewConst slack for small trees.
func (idx *Index) shouldRebuild() bool {
	if idx.size < 2 {
		return false
	}
	allowed := rebuildSkewFactor*math.Log2(float64(idx.size+1)) + rebuildSkewConst

	return float64(idx.maxHeight) > allowed
}

// rebuild flattens the tree and reconstructs it as a perfectly balanced k-d
// tree via recursive median-of-axis partitioning, preserving each entry's
// original insertion sequence number (so Iterate/ReverseIterate order and
// nearest-neighbor tie-breaking are unaffected by rebuilding).
//
// Complexity: O(n log^2 n).
func (idx *Index) rebuild() {
	leaves := idx.collect()
	idx.root = buildBalanced(leaves, 0, idx.dim)
	idx.maxHeight = balancedHeight(len(leaves))
}

func (idx *Index) collect() []*node {
	out := make([]*node, 0, idx.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n)
		walk(n.right)
	}
	walk(idx.root)

	return out
}

func buildBalanced(leaves []*node, depth, dim int) *node {
	if len(leaves) == 0 {
		return nil
	}
	axis := depth % dim
	sort.Slice(leaves, func(i, j int) bool {
		a, b := leaves[i].entry.Point, leaves[j].entry.Point
		if a.At(axis) != b.At(axis) {
			return a.At(axis) < b.At(axis)
		}

		return a.Less(b)
	})
	mid := len(leaves) / 2
	n := leaves[mid]
	n.axis = axis
	n.left = buildBalanced(leaves[:mid], depth+1, dim)
	n.right = buildBalanced(leaves[mid+1:], depth+1, dim)

	return n
}

func balancedHeight(n int) int {
	if n <= 0 {
		return 0
	}

	return int(math.Ceil(math.Log2(float64(n+1)))) + 1
}
