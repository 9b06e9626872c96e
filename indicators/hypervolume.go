package indicators

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/pareto/front"
	"github.com/katalvlaran/pareto/point"
)

// Hypervolume computes the exact Lebesgue measure of the union of boxes
// from each point of f to the reference point ref, under f's own
// DirectionVector (oriented so every axis is a minimization before the
// geometry is computed). It dispatches to the HSO (Hypervolume by Slicing
// Objectives) recursion, which specializes into a single sorted sweep when
// the dimension reaches 2 — the same code path handles both cases, since
// the 2D sweep is exactly the d=1 base case of the general recursion.
//
// Complexity: O(n^(d-1)) in the worst case (HSO's known bound), O(n log n)
// for d=2.
// Errors: ErrDimensionMismatch if ref does not match f's dimension.
func Hypervolume(f *front.Front, ref point.Point) (float64, error) {
	if f.Dimensions() != 0 && ref.Dimensions() != f.Dimensions() {
		return 0, ErrDimensionMismatch
	}
	entries := f.Iterate()
	if len(entries) == 0 {
		return 0, nil
	}

	dir := f.Directions()
	orientedRef := orient(dir, ref)
	pts := make([][]float64, len(entries))
	for i, e := range entries {
		op := orient(dir, e.Point)
		for k := range op {
			if op[k] > orientedRef[k] {
				op[k] = orientedRef[k]
			}
		}
		pts[i] = op
	}

	return hso(pts, orientedRef), nil
}

// hso is the Hypervolume-by-Slicing-Objectives recursion: it sorts the
// points by their last coordinate and, for each slab between consecutive
// last-axis values (the top slab ending at ref), recurses on the
// (d-1)-dimensional projection of the points lying at or below that slab.
func hso(points [][]float64, ref []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	d := len(ref)
	if d == 1 {
		min := points[0][0]
		for _, p := range points[1:] {
			if p[0] < min {
				min = p[0]
			}
		}
		if ref[0] > min {
			return ref[0] - min
		}

		return 0
	}

	sorted := append([][]float64(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i][d-1] < sorted[j][d-1]
	})

	var vol float64
	var active [][]float64
	for k, s := range sorted {
		sProj := s[:d-1]
		kept := active[:0:0]
		for _, a := range active {
			if !weaklyDominatesRaw(sProj, a[:d-1]) {
				kept = append(kept, a)
			}
		}
		active = append(kept, s)

		top := ref[d-1]
		if k+1 < len(sorted) {
			top = sorted[k+1][d-1]
		}
		if height := top - s[d-1]; height > 0 {
			proj := make([][]float64, len(active))
			for i, a := range active {
				proj[i] = a[:d-1]
			}
			vol += hso(proj, ref[:d-1]) * height
		}
	}

	return vol
}

func weaklyDominatesRaw(a, b []float64) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}

	return true
}

// HypervolumeMonteCarlo approximates the hypervolume of f against ref by
// sampling n points uniformly from the bounding box [ideal, ref] and
// scaling the fraction found to be weakly dominated by some point of f by
// the box's volume.
//
// Complexity: O(n) samples, each an O(|f|) scan.
// Errors: ErrEmptyContainer if f is empty. ErrDimensionMismatch if ref does
// not match f's dimension.
func HypervolumeMonteCarlo(f *front.Front, ref point.Point, n int, rng *rand.Rand) (float64, error) {
	if f.Dimensions() != 0 && ref.Dimensions() != f.Dimensions() {
		return 0, ErrDimensionMismatch
	}
	ideal, err := f.Ideal()
	if err != nil {
		return 0, ErrEmptyContainer
	}

	d := f.Dimensions()
	boxVolume := 1.0
	lo := make([]float64, d)
	hi := make([]float64, d)
	for i := 0; i < d; i++ {
		a, b := ideal[i], ref.At(i)
		if a > b {
			a, b = b, a
		}
		lo[i], hi[i] = a, b
		boxVolume *= b - a
	}
	if boxVolume == 0 || n <= 0 {
		return 0, nil
	}

	entries := f.Iterate()
	dir := f.Directions()
	var hits int
	for s := 0; s < n; s++ {
		sample := make([]float64, d)
		for i := 0; i < d; i++ {
			sample[i] = lo[i] + rng.Float64()*(hi[i]-lo[i])
		}
		sp := point.New(sample...)
		for _, e := range entries {
			if e.Point.WeaklyDominates(sp, dir) {
				hits++
				break
			}
		}
	}

	return (float64(hits) / float64(n)) * boxVolume, nil
}
