package indicators

import (
	"math"

	"github.com/katalvlaran/pareto/front"
)

// Coverage computes C(a,b) = |{p in b : some point of a weakly dominates
// p}| / |b|. Weak dominance (rather than strict) is used so that C(a,a) = 1
// for any non-empty a: every point trivially weakly dominates itself. Not
// symmetric. An empty b yields 0 by convention.
//
// Errors: ErrDimensionMismatch if a and b do not share a dimension.
func Coverage(a, b *front.Front) (float64, error) {
	if a.Dimensions() != 0 && b.Dimensions() != 0 && a.Dimensions() != b.Dimensions() {
		return 0, ErrDimensionMismatch
	}

	aEntries := a.Iterate()
	bEntries := b.Iterate()
	if len(bEntries) == 0 {
		return 0, nil
	}

	dir := a.Directions()
	var covered int
	for _, be := range bEntries {
		for _, ae := range aEntries {
			if ae.Point.WeaklyDominates(be.Point, dir) {
				covered++
				break
			}
		}
	}

	return float64(covered) / float64(len(bEntries)), nil
}

// CoverageRatio computes C(a,b) / C(b,a), with the conventions 0/0 -> 0 and
// x/0 -> +Inf for x > 0.
//
// Errors: ErrDimensionMismatch if a and b do not share a dimension.
func CoverageRatio(a, b *front.Front) (float64, error) {
	cab, err := Coverage(a, b)
	if err != nil {
		return 0, err
	}
	cba, err := Coverage(b, a)
	if err != nil {
		return 0, err
	}

	switch {
	case cab == 0 && cba == 0:
		return 0, nil
	case cba == 0:
		return math.Inf(1), nil
	default:
		return cab / cba, nil
	}
}
