package front

import (
	"math"
	"sort"

	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/spatial"
)

// CrowdingDistance computes the NSGA-II crowding distance of p within f: for
// each axis, points are ranked by coordinate and the two extremes receive
// +Inf; an interior point accumulates (next−prev)/(max−min) per axis. A
// larger value means p sits in a more sparsely populated region of the
// Front.
//
// This lives in the front package, rather than indicators, because
// Archive's capacity-eviction policy needs it directly and must not import
// the indicators package sitting above Archive in the dependency order;
// indicators.CrowdingDistance delegates back here.
//
// Complexity: O(n log n).
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) CrowdingDistance(p point.Point) (float64, error) {
	entries := f.idx.Iterate()
	if len(entries) == 0 {
		return 0, ErrEmptyContainer
	}

	for i, e := range entries {
		if e.Point.Equal(p) {
			return CrowdingDistances(entries, f.dir)[i], nil
		}
	}

	// p is not a stored member: evaluate it as if temporarily added, without
	// mutating the Front.
	withP := append(append([]spatial.Entry(nil), entries...), spatial.Entry{Point: p})
	dist := CrowdingDistances(withP, f.dir)

	return dist[len(dist)-1], nil
}

// AverageCrowdingDistance returns the mean of the Front's finite crowding
// distances (boundary points, whose distance is +Inf, are excluded).
//
// Complexity: O(n log n).
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) AverageCrowdingDistance() (float64, error) {
	entries := f.idx.Iterate()
	if len(entries) == 0 {
		return 0, ErrEmptyContainer
	}

	dist := CrowdingDistances(entries, f.dir)
	var sum float64
	var count int
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			sum += d
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}

	return sum / float64(count), nil
}

// CrowdingDistances computes the NSGA-II crowding distance of every entry in
// entries, in the same order, under dir. Exported so the indicators package
// (and Archive's capacity eviction) can compute whole-layer distances in one
// O(n log n) pass rather than calling CrowdingDistance once per point.
func CrowdingDistances(entries []spatial.Entry, dir point.DirectionVector) []float64 {
	n := len(entries)
	dist := make([]float64, n)
	if n == 0 {
		return dist
	}
	d := dir.Dimensions()

	for axis := 0; axis < d; axis++ {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			a, b := entries[order[i]].Point, entries[order[j]].Point
			if a.At(axis) != b.At(axis) {
				return a.At(axis) < b.At(axis)
			}

			return a.Less(b)
		})

		if n == 1 {
			dist[order[0]] = math.Inf(1)
			continue
		}

		minV := entries[order[0]].Point.At(axis)
		maxV := entries[order[n-1]].Point.At(axis)
		dist[order[0]] = math.Inf(1)
		dist[order[n-1]] = math.Inf(1)
		if maxV == minV {
			continue
		}
		for k := 1; k < n-1; k++ {
			prev := entries[order[k-1]].Point.At(axis)
			next := entries[order[k+1]].Point.At(axis)
			dist[order[k]] += (next - prev) / (maxV - minV)
		}
	}

	return dist
}
