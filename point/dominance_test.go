package point_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/point"
)

func TestDominance_AllMinimize(t *testing.T) {
	dir := point.AllMinimize(2)
	p1 := point.New(0, 0)
	p2 := point.New(1, 1)

	require.True(t, p1.Dominates(p2, dir))
	require.True(t, p1.StronglyDominates(p2, dir))
	require.False(t, p1.NonDominates(p2, dir))
	require.False(t, p2.Dominates(p1, dir))
}

func TestDominance_MixedDirections(t *testing.T) {
	// dimension 0 minimized, dimension 1 maximized.
	dir, err := point.Directions("min", "max")
	require.NoError(t, err)

	a := point.New(0, 1) // better on both oriented axes
	b := point.New(1, 0)
	require.True(t, a.Dominates(b, dir))
	require.False(t, b.Dominates(a, dir))

	c := point.New(1, 2) // worse than a on axis 0, better on the maximized axis 1
	require.True(t, a.NonDominates(c, dir))
}

func TestDominance_NonDominatingPair(t *testing.T) {
	dir := point.AllMinimize(2)
	a := point.New(0, 1)
	b := point.New(1, 0)
	require.False(t, a.Dominates(b, dir))
	require.False(t, b.Dominates(a, dir))
	require.True(t, a.NonDominates(b, dir))
}

func TestDominance_WeakVsStrict(t *testing.T) {
	dir := point.AllMinimize(2)
	a := point.New(0, 1)
	b := point.New(0, 1)
	require.True(t, a.WeaklyDominates(b, dir))
	require.False(t, a.Dominates(b, dir), "equal points do not strictly dominate")
	require.False(t, a.StronglyDominates(b, dir))
}

func TestDirections_BadToken(t *testing.T) {
	_, err := point.Directions("min", "sideways")
	require.ErrorIs(t, err, point.ErrBadDirection)
}

func TestDirections_CaseInsensitive(t *testing.T) {
	dir, err := point.Directions("MIN", "Maximization")
	require.NoError(t, err)
	require.True(t, dir.IsMinimization(0))
	require.True(t, dir.IsMaximization(1))
}
