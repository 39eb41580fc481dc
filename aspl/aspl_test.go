package aspl_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odp-anneal/odpsolve/aspl"
	"github.com/odp-anneal/odpsolve/bfsrun"
	"github.com/odp-anneal/odpsolve/graph"
)

func TestPartialASPL_PartitionInvariance(t *testing.T) {
	// 4-cycle: every vertex has two neighbors at distance 1 and one at
	// distance 2, so total (ordered, self excluded) distance sum is
	// 4*(1+1+2) = 16, diameter is 2, and the partial ASPL contribution
	// (divided by N-1=3) is 16/3.
	g, err := graph.NewGraph([]graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 0, V: 3},
	})
	require.NoError(t, err)
	pool := bfsrun.NewPool(2)

	wholeSum, wholeDiam, err := aspl.PartialASPL(context.Background(), g, 0, 4, pool)
	require.NoError(t, err)
	require.InDelta(t, 16.0/3.0, wholeSum, 1e-9)
	require.Equal(t, 2.0, wholeDiam)

	// Splitting the range across two partial calls and summing must give
	// the same total sum, and the max of the two partial diameters must
	// equal the whole-range diameter.
	sum1, diam1, err := aspl.PartialASPL(context.Background(), g, 0, 2, pool)
	require.NoError(t, err)
	sum2, diam2, err := aspl.PartialASPL(context.Background(), g, 2, 4, pool)
	require.NoError(t, err)

	require.InDelta(t, wholeSum, sum1+sum2, 1e-9)
	require.Equal(t, wholeDiam, math.Max(diam1, diam2))
}

func TestPartialASPL_DisconnectedYieldsInfSumNotError(t *testing.T) {
	g, err := graph.NewGraph([]graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)
	pool := bfsrun.NewPool(1)

	sum, diam, err := aspl.PartialASPL(context.Background(), g, 0, 4, pool)
	require.NoError(t, err)
	require.True(t, math.IsInf(sum, 1))
	require.Equal(t, 0.0, diam)
}
