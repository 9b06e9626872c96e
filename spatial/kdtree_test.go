package spatial_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/spatial"
)

func p(coord ...float64) point.Point { return point.New(coord...) }

func TestIndex_InsertLookupContains(t *testing.T) {
	idx := spatial.New()

	added, err := idx.Insert(p(1, 2), "a")
	require.NoError(t, err)
	require.True(t, added)

	added, err = idx.Insert(p(1, 2), "b")
	require.NoError(t, err)
	require.False(t, added, "re-inserting an existing point replaces value, not adds")

	v, err := idx.Lookup(p(1, 2))
	require.NoError(t, err)
	require.Equal(t, "b", v)

	require.True(t, idx.Contains(p(1, 2)))
	require.False(t, idx.Contains(p(9, 9)))

	require.Equal(t, 1, idx.Size())
}

func TestIndex_DimensionMismatch(t *testing.T) {
	idx := spatial.New()
	_, err := idx.Insert(p(1, 2), nil)
	require.NoError(t, err)

	_, err = idx.Insert(p(1, 2, 3), nil)
	require.ErrorIs(t, err, spatial.ErrDimensionMismatch)

	_, err = idx.FindIntersection(p(0, 0, 0), p(1, 1, 1))
	require.ErrorIs(t, err, spatial.ErrDimensionMismatch)
}

func TestIndex_LookupNotFound(t *testing.T) {
	idx := spatial.New(spatial.WithDimension(2))
	_, err := idx.Lookup(p(1, 1))
	require.ErrorIs(t, err, spatial.ErrNotFound)
}

func TestIndex_EraseAndEmpty(t *testing.T) {
	idx := spatial.New()
	pts := []point.Point{p(1, 1), p(2, 2), p(3, 3), p(0, 5), p(5, 0)}
	for _, pt := range pts {
		_, err := idx.Insert(pt, nil)
		require.NoError(t, err)
	}

	require.Equal(t, 1, idx.Erase(p(2, 2)))
	require.False(t, idx.Contains(p(2, 2)))
	require.Equal(t, len(pts)-1, idx.Size())

	require.Equal(t, 0, idx.Erase(p(2, 2)), "erasing an absent point is a no-op")

	for _, pt := range pts {
		if pt.Equal(p(2, 2)) {
			continue
		}
		idx.Erase(pt)
	}
	require.True(t, idx.Empty())
}

func TestIndex_EraseRootRepeatedly(t *testing.T) {
	// Repeatedly erasing the root exercises both branches of Bentley's
	// deletion (successor from the right subtree, and promote-left when
	// there is no right subtree).
	idx := spatial.New()
	for i := 0; i < 50; i++ {
		_, err := idx.Insert(p(float64(i%7), float64(i%5)), i)
		require.NoError(t, err)
	}

	for idx.Size() > 0 {
		entries := idx.Iterate()
		require.NotEmpty(t, entries)
		removed := idx.Erase(entries[0].Point)
		require.Equal(t, 1, removed)
	}
}

func TestIndex_MinMaxValue(t *testing.T) {
	idx := spatial.New()
	_, err := idx.MinValue(0)
	require.ErrorIs(t, err, spatial.ErrEmptyContainer)

	pts := []point.Point{p(3, -1), p(-2, 4), p(0, 0)}
	for _, pt := range pts {
		_, err := idx.Insert(pt, nil)
		require.NoError(t, err)
	}

	min0, err := idx.MinValue(0)
	require.NoError(t, err)
	require.Equal(t, -2.0, min0)

	max1, err := idx.MaxValue(1)
	require.NoError(t, err)
	require.Equal(t, 4.0, max1)

	// Erase the point that owns the current minimum on axis 0; MinValue must
	// lazily rebuild rather than return a stale cached value.
	idx.Erase(p(-2, 4))
	min0, err = idx.MinValue(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, min0)
}

func TestIndex_IterateDeterministicOrder(t *testing.T) {
	idx := spatial.New()
	pts := []point.Point{p(5, 5), p(1, 1), p(3, 3), p(2, 2)}
	for _, pt := range pts {
		_, err := idx.Insert(pt, nil)
		require.NoError(t, err)
	}

	forward := idx.Iterate()
	require.Len(t, forward, len(pts))
	for i, e := range forward {
		require.True(t, e.Point.Equal(pts[i]), "Iterate must preserve insertion order")
	}

	backward := idx.ReverseIterate()
	require.Len(t, backward, len(pts))
	for i, e := range backward {
		require.True(t, e.Point.Equal(pts[len(pts)-1-i]))
	}
}

func TestIndex_ClearAndClone(t *testing.T) {
	idx := spatial.New()
	for i := 0; i < 10; i++ {
		_, err := idx.Insert(p(float64(i), float64(-i)), i)
		require.NoError(t, err)
	}

	clone := idx.Clone()
	idx.Erase(p(0, 0))
	require.False(t, idx.Contains(p(0, 0)))
	require.True(t, clone.Contains(p(0, 0)), "Clone must be structurally independent")

	idx.Clear()
	require.True(t, idx.Empty())
	require.Equal(t, 10, clone.Size())
}

func TestIndex_FindIntersectionAndWithin(t *testing.T) {
	idx := spatial.New()
	pts := []point.Point{p(0, 0), p(1, 1), p(2, 2), p(3, 3), p(1, 3)}
	for _, pt := range pts {
		_, err := idx.Insert(pt, nil)
		require.NoError(t, err)
	}

	closed, err := idx.FindIntersection(p(1, 1), p(2, 2))
	require.NoError(t, err)
	require.Len(t, closed, 2) // (1,1) and (2,2), both on the boundary

	open, err := idx.FindWithin(p(0, 0), p(3, 3))
	require.NoError(t, err)
	// excludes (0,0), (3,3) and (1,3), which all lie on the box boundary
	requireContainsOnly(t, open, p(1, 1), p(2, 2))
}

func TestIndex_FindDisjoint(t *testing.T) {
	idx := spatial.New()
	pts := []point.Point{p(0, 0), p(5, 5), p(10, 10)}
	for _, pt := range pts {
		_, err := idx.Insert(pt, nil)
		require.NoError(t, err)
	}

	disjoint, err := idx.FindDisjoint(p(1, 1), p(9, 9))
	require.NoError(t, err)
	requireContainsOnly(t, disjoint, p(0, 0), p(10, 10))
}

func TestIndex_FindNearestBruteForce(t *testing.T) {
	idx := spatial.New()
	var pts []point.Point
	seed := []point.Point{
		p(0, 0), p(1, 0), p(0, 1), p(5, 5), p(-3, 2), p(2, -2),
		p(4, 4), p(4.1, 4.1), p(-1, -1), p(100, 100),
	}
	for _, pt := range seed {
		_, err := idx.Insert(pt, nil)
		require.NoError(t, err)
		pts = append(pts, pt)
	}

	q := p(0.5, 0.5)
	for _, k := range []int{1, 3, 5, len(pts)} {
		got, err := idx.FindNearest(q, k)
		require.NoError(t, err)

		want := bruteForceNearest(q, pts, k)
		require.Len(t, got, len(want))
		for i := range want {
			require.True(t, got[i].Point.Equal(want[i]), "mismatch at rank %d: got %v want %v", i, got[i].Point, want[i])
		}
	}
}

func TestIndex_FindNearestBadArgument(t *testing.T) {
	idx := spatial.New(spatial.WithDimension(2))
	_, err := idx.Insert(p(0, 0), nil)
	require.NoError(t, err)

	_, err = idx.FindNearest(p(0, 0), 0)
	require.ErrorIs(t, err, spatial.ErrBadArgument)
}

func TestIndex_GetNearestEmpty(t *testing.T) {
	idx := spatial.New(spatial.WithDimension(2))
	_, err := idx.GetNearest(p(0, 0))
	require.ErrorIs(t, err, spatial.ErrEmptyContainer)
}

func TestIndex_GetNearestMatchesFindNearest(t *testing.T) {
	idx := spatial.New()
	for _, pt := range []point.Point{p(3, 3), p(1, 1), p(2, 2)} {
		_, err := idx.Insert(pt, nil)
		require.NoError(t, err)
	}

	one, err := idx.GetNearest(p(0, 0))
	require.NoError(t, err)

	many, err := idx.FindNearest(p(0, 0), 1)
	require.NoError(t, err)
	require.True(t, one.Point.Equal(many[0].Point))
}

// --- helpers ---

func requireContainsOnly(t *testing.T, got []spatial.Entry, want ...point.Point) {
	t.Helper()
	require.Len(t, got, len(want))
	for _, w := range want {
		found := false
		for _, g := range got {
			if g.Point.Equal(w) {
				found = true
				break
			}
		}
		require.True(t, found, "expected %v in result set", w)
	}
}

func bruteForceNearest(q point.Point, pts []point.Point, k int) []point.Point {
	cp := append([]point.Point(nil), pts...)
	sort.Slice(cp, func(i, j int) bool {
		di, dj := squaredDistance(q, cp[i]), squaredDistance(q, cp[j])
		if di != dj {
			return di < dj
		}

		return cp[i].Less(cp[j])
	})
	if k > len(cp) {
		k = len(cp)
	}

	return cp[:k]
}

func squaredDistance(a, b point.Point) float64 {
	var sum float64
	for i := 0; i < a.Dimensions(); i++ {
		d := a.At(i) - b.At(i)
		sum += d * d
	}

	return sum
}
