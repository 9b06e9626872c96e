package point

// Add returns the componentwise sum of p and other.
//
// Complexity: O(d). Errors: ErrDimensionMismatch if dimensions differ.
func (p Point) Add(other Point) (Point, error) {
	return p.zipWith(other, func(a, b float64) float64 { return a + b })
}

// Sub returns the componentwise difference p - other.
//
// Complexity: O(d). Errors: ErrDimensionMismatch if dimensions differ.
func (p Point) Sub(other Point) (Point, error) {
	return p.zipWith(other, func(a, b float64) float64 { return a - b })
}

// Mul returns the componentwise product of p and other.
//
// Complexity: O(d). Errors: ErrDimensionMismatch if dimensions differ.
func (p Point) Mul(other Point) (Point, error) {
	return p.zipWith(other, func(a, b float64) float64 { return a * b })
}

// Div returns the componentwise quotient p / other.
//
// Complexity: O(d). Errors: ErrDimensionMismatch if dimensions differ.
func (p Point) Div(other Point) (Point, error) {
	return p.zipWith(other, func(a, b float64) float64 { return a / b })
}

// AddScalar returns p with s added to every coordinate.
//
// Complexity: O(d).
func (p Point) AddScalar(s float64) Point {
	return p.mapScalar(func(a float64) float64 { return a + s })
}

// SubScalar returns p with s subtracted from every coordinate.
//
// Complexity: O(d).
func (p Point) SubScalar(s float64) Point {
	return p.mapScalar(func(a float64) float64 { return a - s })
}

// MulScalar returns p with every coordinate scaled by s.
//
// Complexity: O(d).
func (p Point) MulScalar(s float64) Point {
	return p.mapScalar(func(a float64) float64 { return a * s })
}

// DivScalar returns p with every coordinate divided by s.
//
// Complexity: O(d).
func (p Point) DivScalar(s float64) Point {
	return p.mapScalar(func(a float64) float64 { return a / s })
}

// zipWith applies f componentwise to p and other, failing fast on mismatched
// dimension so the caller never silently operates on a truncated vector.
func (p Point) zipWith(other Point, f func(a, b float64) float64) (Point, error) {
	if len(p.coord) != len(other.coord) {
		return Point{}, ErrDimensionMismatch
	}
	out := make([]float64, len(p.coord))
	for i, v := range p.coord {
		out[i] = f(v, other.coord[i])
	}

	return Point{coord: out}, nil
}

func (p Point) mapScalar(f func(a float64) float64) Point {
	out := make([]float64, len(p.coord))
	for i, v := range p.coord {
		out[i] = f(v)
	}

	return Point{coord: out}
}
