package point

// Dominance is evaluated by orienting both points into minimize orientation
// (negating maximized axes per dir) and comparing the normalized vectors
// axis by axis; see spec §3. All four predicates below share the same
// normalization step, oriented once per call.

// WeaklyDominates reports whether p weakly dominates other under dir: every
// oriented coordinate of p is no worse than the corresponding coordinate of
// other. A nil-like zero-value DirectionVector defaults to all-minimize.
//
// Complexity: O(d). Mismatched dimensions return false (use Dimensions to
// validate beforehand if a hard error is required).
func (p Point) WeaklyDominates(other Point, dir DirectionVector) bool {
	if len(p.coord) != len(other.coord) {
		return false
	}
	a, b := orient(p, dir), orient(other, dir)
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}

	return true
}

// Dominates reports whether p dominates other under dir: p weakly dominates
// other and is strictly better on at least one axis.
//
// Complexity: O(d).
func (p Point) Dominates(other Point, dir DirectionVector) bool {
	if len(p.coord) != len(other.coord) {
		return false
	}
	a, b := orient(p, dir), orient(other, dir)
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}

	return strictlyBetter
}

// StronglyDominates reports whether p strongly dominates other under dir:
// every oriented coordinate of p is strictly better than other's.
//
// Complexity: O(d).
func (p Point) StronglyDominates(other Point, dir DirectionVector) bool {
	if len(p.coord) != len(other.coord) {
		return false
	}
	a, b := orient(p, dir), orient(other, dir)
	for i := range a {
		if a[i] >= b[i] {
			return false
		}
	}

	return true
}

// NonDominates reports whether neither p nor other dominates the other under
// dir (mutual non-dominance).
//
// Complexity: O(d).
func (p Point) NonDominates(other Point, dir DirectionVector) bool {
	return !p.Dominates(other, dir) && !other.Dominates(p, dir)
}
