package indicators

import (
	"github.com/katalvlaran/pareto/front"
	"github.com/katalvlaran/pareto/point"
)

// CrowdingDistance delegates to front.Front.CrowdingDistance. It is
// re-exported here, rather than implemented here, because Archive's
// capacity-eviction policy needs crowding distance directly and must not
// depend on this package, which sits above Archive in the dependency
// order.
//
// Errors: front.ErrEmptyContainer if f is empty.
func CrowdingDistance(f *front.Front, p point.Point) (float64, error) {
	return f.CrowdingDistance(p)
}

// AverageCrowdingDistance delegates to front.Front.AverageCrowdingDistance.
//
// Errors: front.ErrEmptyContainer if f is empty.
func AverageCrowdingDistance(f *front.Front) (float64, error) {
	return f.AverageCrowdingDistance()
}
