package indicators

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/pareto/front"
	"github.com/katalvlaran/pareto/point"
)

// GD computes the generational distance from s to reference set sStar:
// for every point of s, the Euclidean distance to its nearest neighbor in
// sStar is found; GD is the square root of the sum of those distances
// squared, divided by |s|.
//
// Errors: ErrEmptyContainer if either Front is empty. ErrDimensionMismatch
// if the Fronts do not share a dimension.
func GD(s, sStar *front.Front) (float64, error) {
	dists, err := nearestDistances(s, sStar, euclidean)
	if err != nil {
		return 0, err
	}

	return aggregate(dists), nil
}

// IGD computes the inverted generational distance: GD with the roles of s
// and sStar swapped.
//
// Errors: ErrEmptyContainer if either Front is empty. ErrDimensionMismatch
// if the Fronts do not share a dimension.
func IGD(s, sStar *front.Front) (float64, error) {
	return GD(sStar, s)
}

// IGDPlus computes IGD using the dominance-aware distance from a reference
// point s* to a candidate point s: the 2-norm of max(0, orient(s)-orient(s*))
// rather than plain Euclidean distance, so a candidate point that already
// weakly dominates s* contributes zero.
//
// Errors: ErrEmptyContainer if either Front is empty. ErrDimensionMismatch
// if the Fronts do not share a dimension.
func IGDPlus(s, sStar *front.Front) (float64, error) {
	dists, err := nearestDistancesDirected(sStar, s)
	if err != nil {
		return 0, err
	}

	return aggregate(dists), nil
}

// STDGD returns the sample standard deviation of the per-point nearest-
// neighbor distances that feed GD's mean.
func STDGD(s, sStar *front.Front) (float64, error) {
	dists, err := nearestDistances(s, sStar, euclidean)
	if err != nil {
		return 0, err
	}

	return stddev(dists), nil
}

// STDIGD returns the sample standard deviation of the per-point distances
// that feed IGD's mean.
func STDIGD(s, sStar *front.Front) (float64, error) {
	return STDGD(sStar, s)
}

// STDIGDPlus returns the sample standard deviation of the per-point
// dominance-aware distances that feed IGD+'s mean.
func STDIGDPlus(s, sStar *front.Front) (float64, error) {
	dists, err := nearestDistancesDirected(sStar, s)
	if err != nil {
		return 0, err
	}

	return stddev(dists), nil
}

// Hausdorff returns max(GD(s,sStar), IGD(s,sStar)).
func Hausdorff(s, sStar *front.Front) (float64, error) {
	gd, err := GD(s, sStar)
	if err != nil {
		return 0, err
	}
	igd, err := IGD(s, sStar)
	if err != nil {
		return 0, err
	}

	return math.Max(gd, igd), nil
}

func euclidean(a, b point.Point) float64 {
	d, _ := a.Distance(b)

	return d
}

func nearestDistances(s, sStar *front.Front, metric func(a, b point.Point) float64) ([]float64, error) {
	if s.Dimensions() != 0 && sStar.Dimensions() != 0 && s.Dimensions() != sStar.Dimensions() {
		return nil, ErrDimensionMismatch
	}
	sEntries, sStarEntries := s.Iterate(), sStar.Iterate()
	if len(sEntries) == 0 || len(sStarEntries) == 0 {
		return nil, ErrEmptyContainer
	}

	out := make([]float64, len(sEntries))
	for i, e := range sEntries {
		min := math.Inf(1)
		for _, r := range sStarEntries {
			if d := metric(e.Point, r.Point); d < min {
				min = d
			}
		}
		out[i] = min
	}

	return out, nil
}

// nearestDistancesDirected computes, for every point of target, the minimum
// dominance-aware distance FROM some point of source, oriented by target's
// DirectionVector (the two Fronts are assumed to share directions).
func nearestDistancesDirected(target, source *front.Front) ([]float64, error) {
	if target.Dimensions() != 0 && source.Dimensions() != 0 && target.Dimensions() != source.Dimensions() {
		return nil, ErrDimensionMismatch
	}
	targetEntries, sourceEntries := target.Iterate(), source.Iterate()
	if len(targetEntries) == 0 || len(sourceEntries) == 0 {
		return nil, ErrEmptyContainer
	}

	dir := target.Directions()
	out := make([]float64, len(targetEntries))
	for i, tgt := range targetEntries {
		orientedTarget := orient(dir, tgt.Point)
		min := math.Inf(1)
		for _, src := range sourceEntries {
			orientedSource := orient(dir, src.Point)
			diff := make([]float64, len(orientedSource))
			for k := range diff {
				v := orientedSource[k] - orientedTarget[k]
				if v > 0 {
					diff[k] = v
				}
			}
			d := euclideanNorm(diff)
			if d < min {
				min = d
			}
		}
		out[i] = min
	}

	return out, nil
}

func aggregate(dists []float64) float64 {
	var sumSq float64
	for _, d := range dists {
		sumSq += d * d
	}

	return math.Sqrt(sumSq) / float64(len(dists))
}

func stddev(dists []float64) float64 {
	if len(dists) < 2 {
		return 0
	}

	sd, err := stats.StandardDeviationSample(stats.Float64Data(dists))
	if err != nil {
		return 0
	}

	return sd
}
