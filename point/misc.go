package point

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Distance returns the Euclidean distance between p and other.
//
// Complexity: O(d). Errors: ErrDimensionMismatch if dimensions differ.
func (p Point) Distance(other Point) (float64, error) {
	sq, err := p.SquaredDistance(other)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// SquaredDistance returns the squared Euclidean distance between p and
// other, avoiding the sqrt when only relative ordering matters (e.g. nearest-
// neighbor comparisons).
//
// Complexity: O(d). Errors: ErrDimensionMismatch if dimensions differ.
func (p Point) SquaredDistance(other Point) (float64, error) {
	if len(p.coord) != len(other.coord) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i, v := range p.coord {
		diff := v - other.coord[i]
		sum += diff * diff
	}

	return sum, nil
}

// String renders p the way the original Python bindings print a point list:
// "[x0, x1, ..., xn]".
func (p Point) String() string {
	parts := make([]string, len(p.coord))
	for i, v := range p.coord {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
