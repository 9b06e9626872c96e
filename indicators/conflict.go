package indicators

import (
	"math"
	"sort"

	"github.com/katalvlaran/pareto/front"
)

// DirectConflict returns |Σ_k (x_k,i − x_k,j)| over every point stored in
// f, the Purshouse–Fleming direct-conflict measure between axes i and j.
//
// Errors: ErrEmptyContainer if f is empty.
func DirectConflict(f *front.Front, i, j int) (float64, error) {
	valsI, valsJ, err := axisPair(f, i, j)
	if err != nil {
		return 0, err
	}

	var sum float64
	for k := range valsI {
		sum += valsI[k] - valsJ[k]
	}

	return math.Abs(sum), nil
}

// MaxminConflict returns (max_k x_k,i − min_k x_k,i) − (max_k x_k,j −
// min_k x_k,j): the difference in spread between axes i and j.
//
// Errors: ErrEmptyContainer if f is empty.
func MaxminConflict(f *front.Front, i, j int) (float64, error) {
	valsI, valsJ, err := axisPair(f, i, j)
	if err != nil {
		return 0, err
	}

	return spread(valsI) - spread(valsJ), nil
}

// NonParametricConflict returns the Spearman footrule Σ_k |rank_i(k) −
// rank_j(k)| between axes i and j, where rank_i(k) is point k's rank when
// every stored point is ordered by coordinate i.
//
// Errors: ErrEmptyContainer if f is empty.
func NonParametricConflict(f *front.Front, i, j int) (float64, error) {
	valsI, valsJ, err := axisPair(f, i, j)
	if err != nil {
		return 0, err
	}

	ranksI, ranksJ := ranks(valsI), ranks(valsJ)
	var sum int
	for k := range ranksI {
		diff := ranksI[k] - ranksJ[k]
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}

	return float64(sum), nil
}

// NormalizedDirectConflict computes DirectConflict after jointly rescaling
// axes i and j to a shared [0,1] range (so the two axes are comparable
// regardless of their native units), then divides by n, the maximum value
// the measure can attain for n points confined to [0,1].
//
// Errors: ErrEmptyContainer if f is empty.
func NormalizedDirectConflict(f *front.Front, i, j int) (float64, error) {
	valsI, valsJ, err := axisPair(f, i, j)
	if err != nil {
		return 0, err
	}
	ri, rj := jointRescale(valsI, valsJ)

	var sum float64
	for k := range ri {
		sum += ri[k] - rj[k]
	}

	return math.Abs(sum) / float64(len(ri)), nil
}

// NormalizedMaxminConflict computes MaxminConflict after jointly rescaling
// axes i and j to a shared [0,1] range, which bounds the result to [-1,1].
//
// Errors: ErrEmptyContainer if f is empty.
func NormalizedMaxminConflict(f *front.Front, i, j int) (float64, error) {
	valsI, valsJ, err := axisPair(f, i, j)
	if err != nil {
		return 0, err
	}
	ri, rj := jointRescale(valsI, valsJ)

	return spread(ri) - spread(rj), nil
}

// NormalizedConflict divides NonParametricConflict by ⌊n²/2⌋, the maximum
// Spearman footrule attainable between two rankings of n items.
//
// Errors: ErrEmptyContainer if f is empty.
func NormalizedConflict(f *front.Front, i, j int) (float64, error) {
	raw, err := NonParametricConflict(f, i, j)
	if err != nil {
		return 0, err
	}

	n := f.Size()
	maxFootrule := (n * n) / 2
	if maxFootrule == 0 {
		return 0, nil
	}

	return raw / float64(maxFootrule), nil
}

func axisPair(f *front.Front, i, j int) ([]float64, []float64, error) {
	entries := f.Iterate()
	if len(entries) == 0 {
		return nil, nil, ErrEmptyContainer
	}

	valsI := make([]float64, len(entries))
	valsJ := make([]float64, len(entries))
	for k, e := range entries {
		valsI[k] = e.Point.At(i)
		valsJ[k] = e.Point.At(j)
	}

	return valsI, valsJ, nil
}

func spread(vals []float64) float64 {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return max - min
}

// ranks assigns each value its 1-based rank under ascending order, breaking
// ties by original index so equal values keep a stable, deterministic
// ordering.
func ranks(vals []float64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if vals[idx[a]] != vals[idx[b]] {
			return vals[idx[a]] < vals[idx[b]]
		}

		return idx[a] < idx[b]
	})

	out := make([]int, len(vals))
	for rank, i := range idx {
		out[i] = rank + 1
	}

	return out
}

// jointRescale rescales both vectors onto a shared [0,1] range derived from
// the combined min/max across both, so direct/maxmin conflict can compare
// axes of different native units. If the combined range is degenerate
// (every value equal), both outputs are all zero.
func jointRescale(a, b []float64) ([]float64, []float64) {
	min, max := a[0], a[0]
	for _, v := range append(append([]float64(nil), a...), b...) {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	ra := make([]float64, len(a))
	rb := make([]float64, len(b))
	if max == min {
		return ra, rb
	}
	for i, v := range a {
		ra[i] = (v - min) / (max - min)
	}
	for i, v := range b {
		rb[i] = (v - min) / (max - min)
	}

	return ra, rb
}
