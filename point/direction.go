package point

import "strings"

// DirectionVector fixes, per dimension, whether smaller (minimize) or larger
// (maximize) coordinates are preferable. It is the orientation every
// dominance comparison in this module is evaluated against.
//
// The dominance predicates (Dominates et al.) treat a zero-value
// DirectionVector, or any axis beyond its length, as minimized.
type DirectionVector struct {
	minimize []bool
}

// Minimize constructs a DirectionVector from explicit minimize flags, one per
// dimension: true means that axis is minimized, false means maximized.
//
// Complexity: O(d).
func Minimize(minimize ...bool) DirectionVector {
	flags := make([]bool, len(minimize))
	copy(flags, minimize)

	return DirectionVector{minimize: flags}
}

// AllMinimize constructs a DirectionVector of dimension d with every axis
// minimized. This is the default orientation used whenever a direction is
// omitted.
//
// Complexity: O(d).
func AllMinimize(d int) DirectionVector {
	flags := make([]bool, d)
	for i := range flags {
		flags[i] = true
	}

	return DirectionVector{minimize: flags}
}

// Directions constructs a DirectionVector from the textual aliases
// {"min","minimization"} -> minimize and {"max","maximization"} -> maximize,
// one string per dimension. Comparison is case-insensitive.
//
// Complexity: O(d). Errors: ErrBadDirection on any unrecognized token.
func Directions(tokens ...string) (DirectionVector, error) {
	flags := make([]bool, len(tokens))
	for i, tok := range tokens {
		minimize, err := parseDirection(tok)
		if err != nil {
			return DirectionVector{}, err
		}
		flags[i] = minimize
	}

	return DirectionVector{minimize: flags}, nil
}

func parseDirection(tok string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "min", "minimization":
		return true, nil
	case "max", "maximization":
		return false, nil
	default:
		return false, ErrBadDirection
	}
}

// Dimensions returns the dimension d this DirectionVector was built for.
//
// Complexity: O(1).
func (d DirectionVector) Dimensions() int {
	return len(d.minimize)
}

// IsMinimization reports whether axis i is minimized.
//
// Complexity: O(1).
func (d DirectionVector) IsMinimization(i int) bool {
	return d.minimize[i]
}

// IsMaximization reports whether axis i is maximized.
//
// Complexity: O(1).
func (d DirectionVector) IsMaximization(i int) bool {
	return !d.minimize[i]
}

// AllMinimization reports whether every axis is minimized.
//
// Complexity: O(d).
func (d DirectionVector) AllMinimization() bool {
	for _, m := range d.minimize {
		if !m {
			return false
		}
	}

	return true
}

// orient returns p's coordinate vector rewritten into minimize orientation:
// maximized axes are negated so that "smaller is always better" holds for
// every axis of the result. A nil/zero-dimension DirectionVector is treated
// as all-minimize and returns p unchanged.
func orient(p Point, dir DirectionVector) []float64 {
	out := make([]float64, len(p.coord))
	for i, v := range p.coord {
		if i < len(dir.minimize) && !dir.minimize[i] {
			out[i] = -v
		} else {
			out[i] = v
		}
	}

	return out
}
