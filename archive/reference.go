package archive

// Ideal returns the per-dimension best coordinate across F0, the Archive's
// Pareto-optimal layer.
//
// Errors: ErrEmptyContainer if the Archive is empty.
func (a *Archive) Ideal() ([]float64, error) {
	if len(a.layers) == 0 {
		return nil, ErrEmptyContainer
	}
	v, err := a.layers[0].Ideal()
	if err != nil {
		return nil, ErrEmptyContainer
	}

	return v, nil
}

// Nadir returns the per-dimension worst coordinate among F0's Pareto-optimal
// points.
//
// Errors: ErrEmptyContainer if the Archive is empty.
func (a *Archive) Nadir() ([]float64, error) {
	if len(a.layers) == 0 {
		return nil, ErrEmptyContainer
	}
	v, err := a.layers[0].Nadir()
	if err != nil {
		return nil, ErrEmptyContainer
	}

	return v, nil
}

// Worst returns the per-dimension worst coordinate across every stored
// point in every layer, including the dominated ones held in deeper layers
// — unlike Nadir, which looks at F0 alone.
//
// Errors: ErrEmptyContainer if the Archive is empty.
func (a *Archive) Worst() ([]float64, error) {
	entries := a.Iterate()
	if len(entries) == 0 {
		return nil, ErrEmptyContainer
	}

	d := a.dir.Dimensions()
	out := make([]float64, d)
	for axis := 0; axis < d; axis++ {
		wantMax := a.dir.IsMinimization(axis)
		best := entries[0].Point.At(axis)
		for _, e := range entries[1:] {
			v := e.Point.At(axis)
			if wantMax && v > best {
				best = v
			} else if !wantMax && v < best {
				best = v
			}
		}
		out[axis] = best
	}

	return out, nil
}
