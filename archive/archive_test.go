package archive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/archive"
	"github.com/katalvlaran/pareto/point"
)

func p(coord ...float64) point.Point { return point.New(coord...) }

func TestArchive_LayeringCascades(t *testing.T) {
	dir := point.AllMinimize(2)
	a, err := archive.New(dir, 0)
	require.NoError(t, err)

	// (1,1) dominates (2,2), which dominates (3,3): each point must cascade
	// into its own layer, since every layer is mutually non-dominating.
	for _, pt := range []point.Point{p(2, 2), p(3, 3), p(1, 1)} {
		_, err := a.Insert(pt, nil)
		require.NoError(t, err)
	}

	fronts := a.Fronts()
	require.Len(t, fronts, 3)
	require.Equal(t, 1, fronts[0].Size())
	require.True(t, fronts[0].Contains(p(1, 1)))
	require.Equal(t, 1, fronts[1].Size())
	require.True(t, fronts[1].Contains(p(2, 2)))
	require.True(t, fronts[2].Contains(p(3, 3)))

	require.Equal(t, 3, a.Len())
}

func TestArchive_LayerInvariant(t *testing.T) {
	dir := point.AllMinimize(2)
	a, err := archive.New(dir, 0)
	require.NoError(t, err)

	pts := []point.Point{
		p(1, 5), p(5, 1), p(2, 4), p(4, 2), p(3, 3),
		p(1, 6), p(6, 1), p(2, 5), p(5, 2),
	}
	for _, pt := range pts {
		_, err := a.Insert(pt, nil)
		require.NoError(t, err)
	}

	fronts := a.Fronts()
	for j := 1; j < len(fronts); j++ {
		for _, s := range fronts[j].Iterate() {
			require.True(t, fronts[j-1].Dominates(s.Point),
				"every point in F%d must be dominated by something in F%d", j, j-1)
		}
		// Each layer itself must be mutually non-dominating.
		entries := fronts[j].Iterate()
		for i := range entries {
			for k := range entries {
				if i == k {
					continue
				}
				require.False(t, entries[i].Point.Dominates(entries[k].Point, dir))
			}
		}
	}
}

func TestArchive_CapacityEviction(t *testing.T) {
	dir := point.AllMinimize(2)
	a, err := archive.New(dir, 3)
	require.NoError(t, err)

	// Five mutually non-dominated points.
	pts := []point.Point{p(1, 5), p(2, 4), p(3, 3), p(4, 2), p(5, 1)}
	for _, pt := range pts {
		_, err := a.Insert(pt, nil)
		require.NoError(t, err)
	}

	require.Equal(t, 3, a.Len())
	require.Len(t, a.Fronts(), 1, "all five are mutually non-dominated, so F0 absorbs them all before pruning")
}

func TestArchive_InvalidCapacity(t *testing.T) {
	_, err := archive.New(point.AllMinimize(2), -1)
	require.ErrorIs(t, err, archive.ErrInvalidCapacity)
}

func TestArchive_DimensionMismatch(t *testing.T) {
	a, err := archive.New(point.AllMinimize(2), 0)
	require.NoError(t, err)

	_, err = a.Insert(p(1, 2, 3), nil)
	require.ErrorIs(t, err, archive.ErrDimensionMismatch)
}

func TestArchive_Copy(t *testing.T) {
	dir := point.AllMinimize(2)
	a, err := archive.New(dir, 0)
	require.NoError(t, err)
	_, err = a.Insert(p(1, 1), "a")
	require.NoError(t, err)

	clone := archive.Copy(a)
	a.Insert(p(0, 0), "b")
	require.False(t, clone.Contains(p(0, 0)))
	require.True(t, clone.Contains(p(1, 1)))
}

func TestArchive_EmptyContainerErrors(t *testing.T) {
	a, err := archive.New(point.AllMinimize(2), 0)
	require.NoError(t, err)

	_, err = a.Ideal()
	require.ErrorIs(t, err, archive.ErrEmptyContainer)

	_, err = a.Worst()
	require.ErrorIs(t, err, archive.ErrEmptyContainer)
}
