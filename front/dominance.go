package front

import (
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/spatial"
)

// Dominates reports whether some point stored in f dominates p.
//
// Complexity: O(n).
func (f *Front) Dominates(p point.Point) bool {
	for _, e := range f.idx.Iterate() {
		if e.Point.Dominates(p, f.dir) {
			return true
		}
	}

	return false
}

// StronglyDominates reports whether some point stored in f strongly
// dominates p.
//
// Complexity: O(n).
func (f *Front) StronglyDominates(p point.Point) bool {
	for _, e := range f.idx.Iterate() {
		if e.Point.StronglyDominates(p, f.dir) {
			return true
		}
	}

	return false
}

// NonDominates reports whether f and p are mutually non-dominating: no
// stored point dominates p, and p dominates no stored point.
//
// Complexity: O(n).
func (f *Front) NonDominates(p point.Point) bool {
	for _, e := range f.idx.Iterate() {
		if e.Point.Dominates(p, f.dir) || p.Dominates(e.Point, f.dir) {
			return false
		}
	}

	return true
}

// FindDominated returns every stored entry that p dominates.
//
// Complexity: O(n).
func (f *Front) FindDominated(p point.Point) []spatial.Entry {
	var out []spatial.Entry
	for _, e := range f.idx.Iterate() {
		if p.Dominates(e.Point, f.dir) {
			out = append(out, e)
		}
	}

	return out
}

// IsPartiallyDominatedBy reports whether some point in others dominates
// some point stored in f.
//
// Complexity: O(n*m).
func (f *Front) IsPartiallyDominatedBy(others []point.Point) bool {
	for _, e := range f.idx.Iterate() {
		for _, t := range others {
			if t.Dominates(e.Point, f.dir) {
				return true
			}
		}
	}

	return false
}

// IsCompletelyDominatedBy reports whether every point stored in f is
// dominated by some point in others.
//
// Complexity: O(n*m). An empty Front vacuously returns true.
func (f *Front) IsCompletelyDominatedBy(others []point.Point) bool {
	for _, e := range f.idx.Iterate() {
		dominated := false
		for _, t := range others {
			if t.Dominates(e.Point, f.dir) {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}

	return true
}
