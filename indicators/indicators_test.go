package indicators_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/front"
	"github.com/katalvlaran/pareto/indicators"
	"github.com/katalvlaran/pareto/point"
)

func p(coord ...float64) point.Point { return point.New(coord...) }

func TestHypervolume_Scenario2D(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	for _, pt := range []point.Point{p(1, 3), p(2, 2), p(3, 1)} {
		_, err := f.Insert(pt, nil)
		require.NoError(t, err)
	}

	hv, err := indicators.Hypervolume(f, p(4, 4))
	require.NoError(t, err)
	require.InDelta(t, 6.0, hv, 1e-9)
}

func TestHypervolume_Monotone(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	_, err := f.Insert(p(3, 1), nil)
	require.NoError(t, err)

	before, err := indicators.Hypervolume(f, p(4, 4))
	require.NoError(t, err)

	_, err = f.Insert(p(1, 3), nil)
	require.NoError(t, err)
	after, err := indicators.Hypervolume(f, p(4, 4))
	require.NoError(t, err)

	require.GreaterOrEqual(t, after, before, "adding a non-dominated point must never decrease hypervolume")
}

func TestHypervolume_MonteCarloApproximatesExact(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	for _, pt := range []point.Point{p(1, 3), p(2, 2), p(3, 1)} {
		_, err := f.Insert(pt, nil)
		require.NoError(t, err)
	}

	exact, err := indicators.Hypervolume(f, p(4, 4))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	approx, err := indicators.HypervolumeMonteCarlo(f, p(4, 4), 20000, rng)
	require.NoError(t, err)
	require.InDelta(t, exact, approx, 0.5)
}

func TestCoverage_SelfCoverageIsOne(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	for _, pt := range []point.Point{p(1, 3), p(2, 2), p(3, 1)} {
		_, err := f.Insert(pt, nil)
		require.NoError(t, err)
	}

	c, err := indicators.Coverage(f, f)
	require.NoError(t, err)
	require.Equal(t, 1.0, c, "a non-dominated point always weakly dominates (==) itself under C(A,A)")
}

func TestGD_IGD_IdenticalFrontsAreZero(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	for _, pt := range []point.Point{p(1, 3), p(2, 2), p(3, 1)} {
		_, err := f.Insert(pt, nil)
		require.NoError(t, err)
	}

	gd, err := indicators.GD(f, f)
	require.NoError(t, err)
	require.InDelta(t, 0, gd, 1e-12)

	igd, err := indicators.IGD(f, f)
	require.NoError(t, err)
	require.InDelta(t, 0, igd, 1e-12)

	h, err := indicators.Hausdorff(f, f)
	require.NoError(t, err)
	require.InDelta(t, 0, h, 1e-12)
}

func TestCrowdingDistance_DelegatesToFront(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	for _, pt := range []point.Point{p(1, 3), p(2, 2), p(3, 1)} {
		_, err := f.Insert(pt, nil)
		require.NoError(t, err)
	}

	want, err := f.CrowdingDistance(p(2, 2))
	require.NoError(t, err)
	got, err := indicators.CrowdingDistance(f, p(2, 2))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestConflict_DirectAndMaxmin(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	for _, pt := range []point.Point{p(1, 5), p(2, 4), p(3, 3), p(4, 2), p(5, 1)} {
		_, err := f.Insert(pt, nil)
		require.NoError(t, err)
	}

	dc, err := indicators.DirectConflict(f, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, dc, 1e-9, "axis 0 and axis 1 are mirror images, so their sum of differences cancels")

	mm, err := indicators.MaxminConflict(f, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, mm, 1e-9, "both axes span the same range")

	np, err := indicators.NonParametricConflict(f, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 12.0, np, "axis 1 ranks are the exact reverse of axis 0's, maximizing the footrule")
}

func TestUniformityAndAverageDistance(t *testing.T) {
	dir := point.AllMinimize(2)
	f := front.New(dir)
	for _, pt := range []point.Point{p(0, 0), p(0.6, -0.8), p(1.8, -2.4)} {
		_, err := f.Insert(pt, nil)
		require.NoError(t, err)
	}

	u, err := indicators.Uniformity(f)
	require.NoError(t, err)
	require.InDelta(t, 1.0, u, 1e-9)

	avg, err := indicators.AverageDistance(f)
	require.NoError(t, err)
	require.InDelta(t, (1.0+3.0+2.0)/3.0, avg, 1e-9)
}

func TestEmptyFrontErrors(t *testing.T) {
	f := front.New(point.AllMinimize(2))

	_, err := indicators.Uniformity(f)
	require.ErrorIs(t, err, indicators.ErrEmptyContainer)

	_, err = indicators.DirectConflict(f, 0, 1)
	require.ErrorIs(t, err, indicators.ErrEmptyContainer)

	_, err = indicators.GD(f, f)
	require.ErrorIs(t, err, indicators.ErrEmptyContainer)
}
