package spatial

import (
	"sort"

	"github.com/katalvlaran/pareto/point"
)

// FindIntersection returns every stored entry whose point lies within the
// closed box [lo, hi] (inclusive on both ends, per axis).
//
// Complexity: O(sqrt(n) + m) average for balanced trees, O(n) worst case,
// where m is the number of matches.
// Errors: ErrDimensionMismatch if lo or hi does not match the Index's
// dimension.
func (idx *Index) FindIntersection(lo, hi point.Point) ([]Entry, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := idx.checkDimension(lo); err != nil {
		return nil, err
	}
	if err := idx.checkDimension(hi); err != nil {
		return nil, err
	}

	var matches []*node
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.left != nil && lo.At(n.axis) <= n.entry.Point.At(n.axis) {
			walk(n.left)
		}
		if withinClosed(n.entry.Point, lo, hi) {
			matches = append(matches, n)
		}
		if n.right != nil && hi.At(n.axis) >= n.entry.Point.At(n.axis) {
			walk(n.right)
		}
	}
	walk(idx.root)

	return sortedBySeq(matches), nil
}

// FindWithin returns every stored entry whose point lies strictly inside the
// open box (lo, hi) (exclusive on both ends, per axis).
//
// Complexity: O(sqrt(n) + m) average, O(n) worst case.
// Errors: ErrDimensionMismatch if lo or hi does not match the Index's
// dimension.
func (idx *Index) FindWithin(lo, hi point.Point) ([]Entry, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := idx.checkDimension(lo); err != nil {
		return nil, err
	}
	if err := idx.checkDimension(hi); err != nil {
		return nil, err
	}

	var matches []*node
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.left != nil && lo.At(n.axis) < n.entry.Point.At(n.axis) {
			walk(n.left)
		}
		if withinOpen(n.entry.Point, lo, hi) {
			matches = append(matches, n)
		}
		if n.right != nil && hi.At(n.axis) > n.entry.Point.At(n.axis) {
			walk(n.right)
		}
	}
	walk(idx.root)

	return sortedBySeq(matches), nil
}

// FindDisjoint returns every stored entry whose point lies outside the
// closed box [lo, hi], i.e. the complement of FindIntersection.
//
// Complexity: O(n) (a disjoint region cannot be pruned the way an
// intersecting one can, since it may span both sides of every splitting
// plane).
// Errors: ErrDimensionMismatch if lo or hi does not match the Index's
// dimension.
func (idx *Index) FindDisjoint(lo, hi point.Point) ([]Entry, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := idx.checkDimension(lo); err != nil {
		return nil, err
	}
	if err := idx.checkDimension(hi); err != nil {
		return nil, err
	}

	var matches []*node
	for _, n := range idx.collect() {
		if !withinClosed(n.entry.Point, lo, hi) {
			matches = append(matches, n)
		}
	}

	return sortedBySeq(matches), nil
}

func withinClosed(p, lo, hi point.Point) bool {
	for i := 0; i < p.Dimensions(); i++ {
		if p.At(i) < lo.At(i) || p.At(i) > hi.At(i) {
			return false
		}
	}

	return true
}

func withinOpen(p, lo, hi point.Point) bool {
	for i := 0; i < p.Dimensions(); i++ {
		if p.At(i) <= lo.At(i) || p.At(i) >= hi.At(i) {
			return false
		}
	}

	return true
}

// sortedBySeq orders matched nodes by insertion sequence so range queries
// return results in the same deterministic, insertion-order fashion as
// Iterate, rather than in tree-traversal order.
func sortedBySeq(matches []*node) []Entry {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].insertSeq < matches[j].insertSeq
	})
	out := make([]Entry, len(matches))
	for i, n := range matches {
		out[i] = n.entry
	}

	return out
}
