// File: aspl.go
// Role: sums BFS rows over a vertex range into a partial ASPL/diameter
// contribution, the quantity each SPMD rank reduces via
// transport.Communicator.AllReduceSum.

package aspl

import (
	"context"
	"math"

	"github.com/odp-anneal/odpsolve/bfsrun"
	"github.com/odp-anneal/odpsolve/graph"
)

// PartialASPL sums shortest-path distances from every vertex in [lo, hi)
// to every other vertex, divides by N-1, and tracks the largest distance
// seen (the local contribution to the graph's diameter). The instant a
// BFS row contains an unreached vertex, it returns (+Inf, 0, nil):
// disconnection is a normal, expected outcome of a bad 2-opt proposal,
// not an error condition — callers should compare the resulting energy,
// not branch on err, to detect and reject a disconnecting trial.
//
// The N-1 division here and the caller's further division by N together
// give the mean distance over all N*(N-1) ordered vertex pairs once every
// rank's partial contribution is reduced.
func PartialASPL(ctx context.Context, g *graph.Graph, lo, hi int, pool *bfsrun.Pool) (partialASPL float64, diameter float64, err error) {
	n := g.N()
	var sumDist float64
	for v := lo; v < hi; v++ {
		dist, err := pool.Run(ctx, g, graph.Vertex(v))
		if err != nil {
			return 0, 0, err
		}
		for u, d := range dist {
			if u == v {
				continue
			}
			if d < 0 {
				return math.Inf(1), 0, nil
			}
			fd := float64(d)
			sumDist += fd
			if fd > diameter {
				diameter = fd
			}
		}
	}
	return sumDist / float64(n-1), diameter, nil
}
