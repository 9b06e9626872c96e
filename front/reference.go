package front

import "github.com/katalvlaran/pareto/spatial"

// Ideal returns the per-dimension best coordinate across the stored Pareto
// set: the minimum coordinate on a minimized axis, the maximum on a
// maximized axis.
//
// Complexity: O(d) amortized (backed by the spatial Index's cached bounds).
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) Ideal() ([]float64, error) {
	return f.extremes(true)
}

// Nadir returns the per-dimension worst coordinate among the stored
// Pareto-optimal points: the maximum coordinate on a minimized axis, the
// minimum on a maximized axis.
//
// Complexity: O(d) amortized.
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) Nadir() ([]float64, error) {
	return f.extremes(false)
}

// Worst returns the per-dimension worst coordinate across the full
// coordinate box of stored points. For a Front (which, unlike an Archive
// layer, stores no dominated points of its own) this coincides with Nadir.
//
// Complexity: O(d) amortized.
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) Worst() ([]float64, error) {
	return f.extremes(false)
}

func (f *Front) extremes(ideal bool) ([]float64, error) {
	if f.idx.Empty() {
		return nil, ErrEmptyContainer
	}

	d := f.dir.Dimensions()
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		wantMin := f.dir.IsMinimization(i) == ideal
		var v float64
		var err error
		if wantMin {
			v, err = f.idx.MinValue(i)
		} else {
			v, err = f.idx.MaxValue(i)
		}
		if err != nil {
			return nil, ErrEmptyContainer
		}
		out[i] = v
	}

	return out, nil
}

// IdealElement returns the stored entry attaining the ideal value on axis
// i, breaking ties on the lexicographically smallest point.
//
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) IdealElement(i int) (spatial.Entry, error) {
	return f.extremeElement(i, true)
}

// NadirElement returns the stored entry attaining the nadir value on axis
// i, breaking ties on the lexicographically smallest point.
//
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) NadirElement(i int) (spatial.Entry, error) {
	return f.extremeElement(i, false)
}

// WorstElement returns the stored entry attaining the worst value on axis
// i. Coincides with NadirElement for a Front.
//
// Errors: ErrEmptyContainer if the Front is empty.
func (f *Front) WorstElement(i int) (spatial.Entry, error) {
	return f.extremeElement(i, false)
}

func (f *Front) extremeElement(axis int, ideal bool) (spatial.Entry, error) {
	entries := f.idx.Iterate()
	if len(entries) == 0 {
		return spatial.Entry{}, ErrEmptyContainer
	}

	wantMin := f.dir.IsMinimization(axis) == ideal
	best := entries[0]
	for _, e := range entries[1:] {
		switch {
		case wantMin && e.Point.At(axis) < best.Point.At(axis):
			best = e
		case !wantMin && e.Point.At(axis) > best.Point.At(axis):
			best = e
		case e.Point.At(axis) == best.Point.At(axis) && e.Point.Less(best.Point):
			best = e
		}
	}

	return best, nil
}
