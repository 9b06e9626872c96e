package archive

import "github.com/katalvlaran/pareto/point"

// Dominates reports whether F0 (the Archive's Pareto-optimal layer)
// dominates p. An Archive with no layers returns false.
func (a *Archive) Dominates(p point.Point) bool {
	if len(a.layers) == 0 {
		return false
	}

	return a.layers[0].Dominates(p)
}

// StronglyDominates reports whether F0 strongly dominates p.
func (a *Archive) StronglyDominates(p point.Point) bool {
	if len(a.layers) == 0 {
		return false
	}

	return a.layers[0].StronglyDominates(p)
}

// NonDominates reports whether F0 and p are mutually non-dominating.
func (a *Archive) NonDominates(p point.Point) bool {
	if len(a.layers) == 0 {
		return true
	}

	return a.layers[0].NonDominates(p)
}

// IsPartiallyDominatedBy reports whether some point in others dominates
// some point in F0.
func (a *Archive) IsPartiallyDominatedBy(others []point.Point) bool {
	if len(a.layers) == 0 {
		return false
	}

	return a.layers[0].IsPartiallyDominatedBy(others)
}

// IsCompletelyDominatedBy reports whether every point in F0 is dominated by
// some point in others. An empty F0 vacuously returns true.
func (a *Archive) IsCompletelyDominatedBy(others []point.Point) bool {
	if len(a.layers) == 0 {
		return true
	}

	return a.layers[0].IsCompletelyDominatedBy(others)
}
