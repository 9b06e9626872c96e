// Package pareto is your in-memory toolkit for multi-objective optimization
// in Go: Pareto fronts, dominance archives, and the spatial index that makes
// both of them fast.
//
// 🚀 What is pareto?
//
//	A modern, low-dependency library (spatial.Index locks its own state;
//	Front and Archive add no locking) that brings together:
//
//	  • A spatial map: a point-in-ℝᵈ-keyed container with range, nearest and
//	    disjoint queries backed by a k-d tree.
//	  • A Pareto front: a spatial map that enforces mutual non-dominance.
//	  • An archive: a capacity-bounded stack of dominance layers.
//	  • A library of quality indicators: hypervolume, GD/IGD/IGD+, spread,
//	    crowding distance, and conflict metrics.
//
// ✨ Why choose pareto?
//
//   - Beginner-friendly — minimal API, direction vectors instead of custom
//     comparators
//   - Deterministic     — identical insertion order always yields identical
//     iteration and nearest-neighbor order
//   - Dimension-generic — one Front type, not one per dimensionality
//   - Pure Go           — no cgo, no service dependencies
//
// Under the hood, everything is organized under focused subpackages:
//
//	point/      — fixed-dimension Point and DirectionVector, dominance algebra
//	spatial/    — the k-d tree SpatialIndex: insert/erase/range/nearest
//	front/      — SpatialIndex + non-dominance invariant
//	archive/    — layered Fronts under a total-size cap
//	indicators/ — hypervolume, generational distance family, spread, conflict
//
// Quick example:
//
//	dir, _ := point.Directions("min", "max")
//	f := front.New(dir)
//	f.Insert(point.New(0.68322, 0.545438), 17)
//	f.Insert(point.New(-2.01773, -1.25209), 27)
//	ideal, _ := f.Ideal()
//
// Worked scenarios are in front/front_test.go and
// indicators/indicators_test.go.
//
//	go get github.com/katalvlaran/pareto
package pareto
