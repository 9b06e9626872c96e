package pareto

import (
	"github.com/katalvlaran/pareto/archive"
	"github.com/katalvlaran/pareto/front"
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/spatial"
)

// Type aliases letting callers work entirely through the root package
// without importing its subpackages directly.
type (
	Point           = point.Point
	DirectionVector = point.DirectionVector
	SpatialMap      = spatial.Index
	Front           = front.Front
	Archive         = archive.Archive
)

// NewPoint constructs a Point from its coordinates.
func NewPoint(coord ...float64) Point {
	return point.New(coord...)
}

// NewSpatialMap constructs an empty SpatialMap. Its dimension is inferred
// from the first Insert unless WithDimension is supplied.
func NewSpatialMap(opts ...spatial.Option) *SpatialMap {
	return spatial.New(opts...)
}

// NewSpatialMapFrom returns a deep copy of other.
func NewSpatialMapFrom(other *SpatialMap) *SpatialMap {
	return other.Clone()
}

// NewFront constructs an empty Front oriented by dir.
func NewFront(dir DirectionVector) *Front {
	return front.New(dir)
}

// NewFrontFrom constructs a Front oriented by dir, inserting every supplied
// entry through the Pareto-preserving insertion algorithm.
func NewFrontFrom(dir DirectionVector, entries []spatial.Entry) (*Front, error) {
	return front.NewFrom(dir, entries)
}

// NewFrontFromCopy returns a deep copy of other.
func NewFrontFromCopy(other *Front) *Front {
	return front.Copy(other)
}

// NewArchive constructs an Archive oriented by a DirectionVector, with an
// optional capacity (0/omitted means unbounded). The DirectionVector and
// the capacity may be passed in either order — NewArchive(dir, capacity) or
// NewArchive(capacity, dir) — matching the source library's acceptance of
// both construction orders; each argument's kind, not its position, decides
// its role.
func NewArchive(args ...interface{}) (*Archive, error) {
	var dir DirectionVector
	var capacity int
	for _, a := range args {
		switch v := a.(type) {
		case DirectionVector:
			dir = v
		case int:
			capacity = v
		}
	}

	return archive.New(dir, capacity)
}

// NewArchiveFromCopy returns a deep copy of other.
func NewArchiveFromCopy(other *Archive) *Archive {
	return archive.Copy(other)
}
