package indicators

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/pareto/front"
)

// Uniformity returns the minimum pairwise Euclidean distance among f's
// stored points: the spec's chosen variant of this spread measure.
//
// Errors: ErrEmptyContainer if f has fewer than two points.
func Uniformity(f *front.Front) (float64, error) {
	entries := f.Iterate()
	if len(entries) < 2 {
		return 0, ErrEmptyContainer
	}

	min := math.Inf(1)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			d, _ := entries[i].Point.Distance(entries[j].Point)
			if d < min {
				min = d
			}
		}
	}

	return min, nil
}

// AverageDistance returns the mean Euclidean distance over every pair of
// f's stored points.
//
// Errors: ErrEmptyContainer if f has fewer than two points.
func AverageDistance(f *front.Front) (float64, error) {
	entries := f.Iterate()
	if len(entries) < 2 {
		return 0, ErrEmptyContainer
	}

	pairwise := make([]float64, 0, len(entries)*(len(entries)-1)/2)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			d, _ := entries[i].Point.Distance(entries[j].Point)
			pairwise = append(pairwise, d)
		}
	}

	mean, err := stats.Mean(stats.Float64Data(pairwise))
	if err != nil {
		return 0, ErrEmptyContainer
	}

	return mean, nil
}

// AverageNearestNeighborDistance returns, for each stored point, the mean
// distance to its k nearest neighbors (excluding itself), averaged across
// every point.
//
// Errors: ErrEmptyContainer if f is empty. An out-of-range k is not an
// error: it is clamped to [1, |f|-1]. A single-point Front yields 0.
func AverageNearestNeighborDistance(f *front.Front, k int) (float64, error) {
	entries := f.Iterate()
	n := len(entries)
	if n == 0 {
		return 0, ErrEmptyContainer
	}
	if n == 1 {
		return 0, nil
	}
	if k > n-1 {
		k = n - 1
	}
	if k < 1 {
		k = 1
	}

	var total float64
	for i, e := range entries {
		dists := make([]float64, 0, n-1)
		for j, other := range entries {
			if i == j {
				continue
			}
			d, _ := e.Point.Distance(other.Point)
			dists = append(dists, d)
		}
		sort.Float64s(dists)

		mean, err := stats.Mean(stats.Float64Data(dists[:k]))
		if err != nil {
			return 0, ErrEmptyContainer
		}
		total += mean
	}

	return total / float64(n), nil
}
