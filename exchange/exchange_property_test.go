package exchange_test

import (
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/odp-anneal/odpsolve/exchange"
	"github.com/odp-anneal/odpsolve/gen"
	"github.com/odp-anneal/odpsolve/graph"
	"github.com/odp-anneal/odpsolve/rng"
)

// FuzzPropose_InvariantsSurviveAnyRewireSequence carves an (n, d, seed,
// step-count) instance out of raw fuzz bytes, builds a random regular
// graph, and replays that many Propose calls against it, checking after
// every single one that every vertex keeps its degree (P3) and that no
// self-loop or duplicate edge has appeared (P2).
func FuzzPropose_InvariantsSurviveAnyRewireSequence(f *testing.F) {
	f.Add([]byte{8, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	f.Add([]byte{12, 4, 99, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	f.Add([]byte{6, 2, 42, 1, 1, 1, 1, 1})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		nRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		dRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		seedRaw, err := tp.GetUint64()
		if err != nil {
			t.Skip(err)
		}
		stepsRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}

		n := int(nRaw%20) + 4 // n in [4, 23]
		d := int(dRaw % 6)    // candidate degree, validated below
		if d < 2 {
			d = 2
		}
		if d >= n {
			t.Skip("degree must stay below n")
		}
		if (n*d)%2 != 0 {
			t.Skip("n*d must be even to realize a simple regular graph")
		}

		r := rng.NewSeeded(int64(seedRaw))
		edges, err := gen.RandomRegular(n, d, r)
		if err != nil {
			t.Skip(err)
		}
		g, err := graph.NewGraph(edges)
		if err != nil {
			t.Skip(err)
		}

		wantDegree := make([]int, n)
		for v := 0; v < n; v++ {
			deg, err := g.Degree(graph.Vertex(v))
			if err != nil {
				t.Fatalf("unexpected error reading initial degree: %v", err)
			}
			wantDegree[v] = deg
		}

		steps := int(stepsRaw%30) + 1
		for i := 0; i < steps; i++ {
			if _, err := exchange.Propose(g, r, 50); err != nil {
				// ErrNoValidProposal is a legitimate outcome on a small or
				// densely-connected graph; stop replaying, not a failure.
				break
			}

			// P3: degree preservation.
			seen := make(map[graph.Edge]struct{}, g.M())
			for v := 0; v < n; v++ {
				deg, err := g.Degree(graph.Vertex(v))
				if err != nil {
					t.Fatalf("degree lookup failed after step %d: %v", i, err)
				}
				if deg != wantDegree[v] {
					t.Fatalf("step %d: vertex %d degree changed from %d to %d", i, v, wantDegree[v], deg)
				}
			}
			// P2: no self-loop, no duplicate edge.
			for _, e := range g.Edges() {
				if e.U == e.V {
					t.Fatalf("step %d: proposer introduced a self-loop at vertex %d", i, e.U)
				}
				if _, dup := seen[e]; dup {
					t.Fatalf("step %d: proposer introduced a duplicate edge %v", i, e)
				}
				seen[e] = struct{}{}
			}
		}
	})
}
