package pareto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto"
	"github.com/katalvlaran/pareto/point"
)

func TestNewArchive_AcceptsEitherArgumentOrder(t *testing.T) {
	dir := point.AllMinimize(2)

	a, err := pareto.NewArchive(dir, 3)
	require.NoError(t, err)
	require.Equal(t, 3, a.Capacity())

	b, err := pareto.NewArchive(3, dir)
	require.NoError(t, err)
	require.Equal(t, 3, b.Capacity())
}

func TestNewFront_RoundTrip(t *testing.T) {
	dir := point.AllMinimize(2)
	f := pareto.NewFront(dir)
	_, err := f.Insert(pareto.NewPoint(1, 1), "x")
	require.NoError(t, err)

	entries := f.Iterate()
	rebuilt, err := pareto.NewFrontFrom(dir, entries)
	require.NoError(t, err)
	require.True(t, f.Equal(rebuilt), "Front(list(F)) must equal F")
}

func TestNewSpatialMap_Basic(t *testing.T) {
	m := pareto.NewSpatialMap()
	added, err := m.Insert(pareto.NewPoint(1, 2), "v")
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 1, m.Size())
}
