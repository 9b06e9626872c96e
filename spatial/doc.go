// Package spatial implements SpatialIndex, a dynamic k-d tree keyed by
// fixed-dimension points, supporting insert, erase, lookup, range queries
// (intersection / within / disjoint), and best-first k-nearest-neighbor
// search.
//
// SpatialIndex is the engine underneath front.Front and archive.Archive: both
// layer dominance semantics on top of the query primitives exposed here.
//
// Concurrency:
//
//	Each Index carries one sync.RWMutex. It makes single-container operations
//	safe to call from multiple goroutines, but per the package's resource
//	policy an external caller must not mutate an Index while iterating a
//	query result it expects to remain consistent with the mutation: every
//	query here materializes its result slice up front (spec §5), so a result
//	already returned is never invalidated by a later mutation — only queries
//	issued concurrently with a mutation race on which state they observe.
//
// Balance:
//
//	Insertion uses classic cycling-axis BST insertion. When an Insert pushes
//	the tree's depth past a skew threshold relative to its size, that Insert
//	triggers an O(n log^2 n) rebuild into a perfectly balanced tree (median-of-axis
//	partitioning), keeping query bounds close to the balanced-tree ideal
//	without maintaining per-node balance metadata.
//
// Determinism:
//
//	Iteration follows insertion order. Nearest-neighbor results break ties on
//	(coordinates, insertion index), so repeated queries against an identically
//	built Index always produce the same sequence.
//
// Errors:
//
//	ErrDimensionMismatch - operand dimension does not match the Index's.
//	ErrNotFound          - Lookup of an absent point.
//	ErrEmptyContainer    - extremum/reference query on an empty Index.
//	ErrBadArgument       - k < 1 passed to FindNearest.
package spatial
