// Package point provides the fixed-dimension Point vector and the
// DirectionVector orientation used to evaluate Pareto dominance across this
// module. Everything here is O(d): dimension-generic, no per-dimension type
// hierarchy.
package point
