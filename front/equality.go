package front

// Equal reports whether f and other store the same (point, value) multiset
// under equal DirectionVectors. Value equality is compared with ==, so
// non-comparable value types will panic, mirroring Go's native behavior for
// comparing interface{} values.
func (f *Front) Equal(other *Front) bool {
	if f.dir.Dimensions() != other.dir.Dimensions() {
		return false
	}
	for i := 0; i < f.dir.Dimensions(); i++ {
		if f.dir.IsMinimization(i) != other.dir.IsMinimization(i) {
			return false
		}
	}
	if f.Size() != other.Size() {
		return false
	}

	for _, e := range f.idx.Iterate() {
		v, err := other.idx.Lookup(e.Point)
		if err != nil || v != e.Value {
			return false
		}
	}

	return true
}

// Less reports whether f dominates other at the set level: every point of
// other is dominated by some point of f, and f != other.
func (f *Front) Less(other *Front) bool {
	if f.Equal(other) {
		return false
	}

	for _, e := range other.idx.Iterate() {
		if !f.Dominates(e.Point) {
			return false
		}
	}

	return true
}
