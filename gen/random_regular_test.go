package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odp-anneal/odpsolve/gen"
	"github.com/odp-anneal/odpsolve/graph"
	"github.com/odp-anneal/odpsolve/rng"
)

func TestRandomRegular_ProducesExactDegreeSequence(t *testing.T) {
	cases := []struct{ n, d int }{
		{6, 3}, {8, 4}, {10, 2}, {12, 5},
	}
	for _, c := range cases {
		edges, err := gen.RandomRegular(c.n, c.d, rng.NewSeeded(int64(c.n*100+c.d)))
		require.NoError(t, err)

		g, err := graph.NewGraph(edges)
		require.NoError(t, err)
		for v := 0; v < c.n; v++ {
			deg, err := g.Degree(graph.Vertex(v))
			require.NoError(t, err)
			require.Equal(t, c.d, deg, "vertex %d degree mismatch for n=%d d=%d", v, c.n, c.d)
		}
	}
}

func TestRandomRegular_NoSelfLoopsOrDuplicates(t *testing.T) {
	edges, err := gen.RandomRegular(20, 4, rng.NewSeeded(5))
	require.NoError(t, err)

	seen := make(map[graph.Edge]struct{})
	for _, e := range edges {
		require.NotEqual(t, e.U, e.V)
		_, dup := seen[e]
		require.False(t, dup)
		seen[e] = struct{}{}
	}
}

func TestRandomRegular_RejectsOddStubCount(t *testing.T) {
	_, err := gen.RandomRegular(5, 3, rng.NewSeeded(1))
	require.ErrorIs(t, err, gen.ErrInvalidDegree)
}

func TestRandomRegular_RejectsDegreeTooLarge(t *testing.T) {
	_, err := gen.RandomRegular(4, 4, rng.NewSeeded(1))
	require.ErrorIs(t, err, gen.ErrInvalidDegree)
}
