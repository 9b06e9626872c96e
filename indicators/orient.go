package indicators

import (
	"math"

	"github.com/katalvlaran/pareto/point"
)

// orient rewrites p's coordinates into minimize orientation: axes the
// DirectionVector marks as maximized are negated, so "smaller is always
// better" holds for every axis of the result. Mirrors point's own internal
// orientation step, which indicators cannot reach directly since it is
// unexported.
func orient(dir point.DirectionVector, p point.Point) []float64 {
	d := p.Dimensions()
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		if dir.IsMaximization(i) {
			out[i] = -p.At(i)
		} else {
			out[i] = p.At(i)
		}
	}

	return out
}

func euclideanNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}
