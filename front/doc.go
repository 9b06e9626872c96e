// Package front implements a Pareto front: a container that, on every
// insert, rejects points dominated by what it already holds and evicts
// points the new arrival dominates, so the stored set is always mutually
// non-dominating.
//
// A Front composes a spatial.Index for its storage and query acceleration
// with a point.DirectionVector describing which axes are minimized versus
// maximized.
package front
