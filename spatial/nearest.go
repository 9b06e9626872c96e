package spatial

import (
	"container/heap"

	"github.com/katalvlaran/pareto/point"
)

// candidate is one entry in the bounded best-first search heap, ordered so
// that the current FARTHEST candidate sits at the root (a max-heap on
// distance), letting FindNearest evict it the instant a closer point, or an
// equally close one that sorts earlier, is found.
type candidate struct {
	entry  Entry
	seq    uint64
	distSq float64
}

type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].distSq != h[j].distSq {
		return h[i].distSq > h[j].distSq // max-heap on distance
	}
	// Tie-break the opposite way so that, among equidistant points, the one
	// with the LARGER (coordinates, insertion index) ordering is evicted
	// first, leaving the smallest ordering as the final result on ties.
	if !h[i].entry.Point.Equal(h[j].entry.Point) {
		return h[j].entry.Point.Less(h[i].entry.Point)
	}

	return h[j].seq < h[i].seq
}
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(candidate))
}
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// FindNearest returns the k entries nearest to q in Euclidean distance,
// ordered from nearest to farthest. Ties in distance are broken by
// (coordinates, insertion index), ascending. If fewer than k entries are
// stored, all of them are returned.
//
// Complexity: O(k log k + log n) average for balanced trees, O(n) worst
// case.
// Errors: ErrDimensionMismatch if q does not match the Index's dimension.
// ErrBadArgument if k < 1.
func (idx *Index) FindNearest(q point.Point, k int) ([]Entry, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if k < 1 {
		return nil, ErrBadArgument
	}
	if err := idx.checkDimension(q); err != nil {
		return nil, err
	}
	if idx.size == 0 {
		return nil, nil
	}

	h := &candidateHeap{}
	heap.Init(h)

	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}

		d := squaredDist(q, n.entry.Point)
		c := candidate{entry: n.entry, seq: n.insertSeq, distSq: d}
		if h.Len() < k {
			heap.Push(h, c)
		} else if candidateLess(c, (*h)[0]) {
			heap.Pop(h)
			heap.Push(h, c)
		}

		diff := q.At(n.axis) - n.entry.Point.At(n.axis)
		near, far := n.left, n.right
		if diff >= 0 {
			near, far = n.right, n.left
		}
		walk(near)

		// Only descend into the far side if it could still hold a point at
		// least as close as the current worst kept candidate.
		if h.Len() < k || diff*diff <= (*h)[0].distSq {
			walk(far)
		}
	}
	walk(idx.root)

	out := make([]candidate, h.Len())
	copy(out, *h)
	sortCandidates(out)

	entries := make([]Entry, len(out))
	for i, c := range out {
		entries[i] = c.entry
	}

	return entries, nil
}

// GetNearest returns the single entry nearest to q.
//
// Complexity: O(log n) average, O(n) worst case.
// Errors: ErrDimensionMismatch if q does not match the Index's dimension.
// ErrEmptyContainer if the Index is empty.
func (idx *Index) GetNearest(q point.Point) (Entry, error) {
	idx.mu.RLock()
	size := idx.size
	idx.mu.RUnlock()

	if size == 0 {
		return Entry{}, ErrEmptyContainer
	}

	results, err := idx.FindNearest(q, 1)
	if err != nil {
		return Entry{}, err
	}

	return results[0], nil
}

func squaredDist(a, b point.Point) float64 {
	var sum float64
	for i := 0; i < a.Dimensions(); i++ {
		d := a.At(i) - b.At(i)
		sum += d * d
	}

	return sum
}

func sortCandidates(c []candidate) {
	for i := 1; i < len(c); i++ {
		j := i
		for j > 0 && candidateLess(c[j], c[j-1]) {
			c[j], c[j-1] = c[j-1], c[j]
			j--
		}
	}
}

func candidateLess(a, b candidate) bool {
	if a.distSq != b.distSq {
		return a.distSq < b.distSq
	}
	if !a.entry.Point.Equal(b.entry.Point) {
		return a.entry.Point.Less(b.entry.Point)
	}

	return a.seq < b.seq
}
