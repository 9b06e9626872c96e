package spatial

import "sort"

// Iterate returns every stored (point, value) pair in insertion order. The
// result is materialized up front: it remains valid and finite even as the
// Index is later mutated, per this package's documented resource policy.
//
// Complexity: O(n log n) (dominated by the deterministic ordering sort).
func (idx *Index) Iterate() []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.orderedEntries(false)
}

// ReverseIterate returns every stored (point, value) pair in the reverse of
// insertion order.
//
// Complexity: O(n log n).
func (idx *Index) ReverseIterate() []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.orderedEntries(true)
}

func (idx *Index) orderedEntries(reverse bool) []Entry {
	nodes := idx.collect()
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].insertSeq < nodes[j].insertSeq
	})

	out := make([]Entry, len(nodes))
	for i, n := range nodes {
		if reverse {
			out[len(nodes)-1-i] = n.entry
		} else {
			out[i] = n.entry
		}
	}

	return out
}

// Clear removes every entry from the Index. Its fixed dimension (if any) is
// preserved.
//
// Complexity: O(1).
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.root = nil
	idx.size = 0
	idx.maxHeight = 0
	idx.min = nil
	idx.max = nil
	idx.bboxDirty = false
}

// Clone returns a deep copy of idx: a structurally independent tree holding
// the same entries, insertion sequence numbers, and cached bounding box.
//
// Complexity: O(n).
func (idx *Index) Clone() *Index {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := &Index{
		dim:       idx.dim,
		dimSet:    idx.dimSet,
		size:      idx.size,
		nextSeq:   idx.nextSeq,
		maxHeight: idx.maxHeight,
		bboxDirty: idx.bboxDirty,
	}
	if idx.min != nil {
		out.min = append([]float64(nil), idx.min...)
		out.max = append([]float64(nil), idx.max...)
	}
	out.root = cloneSubtree(idx.root)

	return out
}

func cloneSubtree(n *node) *node {
	if n == nil {
		return nil
	}

	return &node{
		entry:     n.entry,
		insertSeq: n.insertSeq,
		axis:      n.axis,
		left:      cloneSubtree(n.left),
		right:     cloneSubtree(n.right),
	}
}
