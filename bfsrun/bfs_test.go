package bfsrun_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odp-anneal/odpsolve/bfsrun"
	"github.com/odp-anneal/odpsolve/graph"
)

// serialBFS is a single-goroutine reference used to check the pooled
// implementation's distances agree with it regardless of worker count.
func serialBFS(g *graph.Graph, source graph.Vertex) []int32 {
	n := g.N()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0
	queue := []graph.Vertex{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		neighbors, _ := g.Neighbors(v)
		for _, u := range neighbors {
			if dist[u] == -1 {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}

func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, graph.Edge{U: graph.Vertex(i), V: graph.Vertex(i + 1)})
	}
	g, err := graph.NewGraph(edges)
	require.NoError(t, err)
	return g
}

func TestPool_Run_MatchesSerialBFS(t *testing.T) {
	g := pathGraph(t, 9)
	want := serialBFS(g, 0)

	for _, workers := range []int{1, 2, 4, 8} {
		pool := bfsrun.NewPool(workers)
		got, err := pool.Run(context.Background(), g, 0)
		require.NoError(t, err)
		require.Equal(t, want, got, "worker count %d should not change BFS distances", workers)
	}
}

func TestPool_Run_DeterministicAcrossRepeats(t *testing.T) {
	g := pathGraph(t, 15)
	pool := bfsrun.NewPool(4)

	first, err := pool.Run(context.Background(), g, 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := pool.Run(context.Background(), g, 3)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestPool_Run_DisconnectedVertexStaysUnreached(t *testing.T) {
	g, err := graph.NewGraph([]graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	pool := bfsrun.NewPool(2)
	dist, err := pool.Run(context.Background(), g, 0)
	require.NoError(t, err)
	require.Equal(t, int32(0), dist[0])
	require.Equal(t, int32(1), dist[1])
	require.Equal(t, int32(-1), dist[2])
	require.Equal(t, int32(-1), dist[3])
}

func TestNewPool_DefaultsWorkersWhenNonPositive(t *testing.T) {
	pool := bfsrun.NewPool(0)
	g := pathGraph(t, 4)
	dist, err := pool.Run(context.Background(), g, 0)
	require.NoError(t, err)
	require.Len(t, dist, 4)
}
