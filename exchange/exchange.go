// File: exchange.go
// Role: Rejection-sampling 2-opt proposer and its deterministic reapply.

package exchange

import (
	"errors"
	"fmt"

	"github.com/odp-anneal/odpsolve/graph"
	"github.com/odp-anneal/odpsolve/rng"
)

// ErrNoValidProposal is returned when an attempt cap is set and exceeded
// without finding a valid (non-multigraph) rewiring. Unset (cap <= 0) by
// default: the rejection loop terminates with probability 1 for any
// connected simple graph with M >= 2, N >= 4 and at least one
// non-adjacent edge pair.
var ErrNoValidProposal = errors.New("exchange: no valid proposal found within attempt cap")

// Descriptor is the three-integer broadcast payload a proposal reduces
// to: which two edge indices were rewired and which of the two 2-opt
// variants was applied. SwapType is an int32 (0 or 1) rather than a bare
// bool so it travels unchanged in the []int32 payload of
// transport.Communicator.BroadcastInts.
type Descriptor struct {
	A        int
	B        int
	SwapType int32
}

// swap computes the two 2-opt variants from edges A and B:
//
//	swapType == 0: A' = (a1,b1), B' = (a2,b2)
//	swapType == 1: A' = (a1,b2), B' = (a2,b1)
//
// then canonicalizes both. A and B must already be known disjoint
// (share no endpoint) and each individually canonical (U <= V).
func swap(a, b graph.Edge, swapType int32) (graph.Edge, graph.Edge) {
	var newA, newB graph.Edge
	if swapType == 0 {
		newA = graph.Edge{U: a.U, V: b.U}
		newB = graph.Edge{U: a.V, V: b.V}
	} else {
		newA = graph.Edge{U: a.U, V: b.V}
		newB = graph.Edge{U: a.V, V: b.U}
	}
	return canon(newA), canon(newB)
}

func canon(e graph.Edge) graph.Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}
	return e
}

func shareVertex(a, b graph.Edge) bool {
	return a.U == b.U || a.U == b.V || a.V == b.U || a.V == b.V
}

func isMultigraph(edges []graph.Edge, candidates ...graph.Edge) bool {
	for _, e := range edges {
		for _, c := range candidates {
			if e.Equal(c) {
				return true
			}
		}
	}
	return false
}

// Propose draws two disjoint, non-adjacent edges from g, picks a swap
// variant, and applies it in place once a non-multigraph outcome is
// found. It must only be called on the root rank, because it is the only
// function in this package that consumes randomness. attemptCap <= 0
// means unbounded (the default); attemptCap > 0 returns
// ErrNoValidProposal once exceeded.
//
// Complexity: expected O(1) rejection-sampling iterations (amortized
// over the graph, dominated in the worst case by the M-scan multigraph
// check per attempt, i.e. O(M) per attempt).
func Propose(g *graph.Graph, r *rng.Stream, attemptCap int) (Descriptor, error) {
	m := g.M()
	if m < 2 {
		return Descriptor{}, fmt.Errorf("%w: graph has fewer than 2 edges", ErrNoValidProposal)
	}

	attempts := 0
	for {
		if attemptCap > 0 && attempts >= attemptCap {
			return Descriptor{}, ErrNoValidProposal
		}
		attempts++

		a := int(uint32(r.NextInt()) % uint32(m))
		b := int(uint32(r.NextInt()) % uint32(m))
		if a == b {
			continue
		}

		edgeA, err := g.EdgeAt(a)
		if err != nil {
			return Descriptor{}, err
		}
		edgeB, err := g.EdgeAt(b)
		if err != nil {
			return Descriptor{}, err
		}
		if shareVertex(edgeA, edgeB) {
			continue
		}

		var swapType int32
		if r.NextBool() {
			swapType = 1
		}

		newA, newB := swap(edgeA, edgeB, swapType)
		existing := g.Edges()
		if isMultigraph(existing, newA, newB) {
			continue
		}

		if err := g.ApplyRewire(a, b, edgeA, edgeB, newA, newB); err != nil {
			return Descriptor{}, err
		}
		return Descriptor{A: a, B: b, SwapType: swapType}, nil
	}
}

// Reapply performs the mechanical half of a 2-opt rewiring named by d,
// with no randomness — a pure function of (g, d), which is what keeps
// every rank's graph deterministic across the cluster. Non-root ranks
// call this after receiving d over transport.Communicator.BroadcastInts.
//
// Complexity: O(1) plus four O(deg(v)) adjacency updates.
func Reapply(g *graph.Graph, d Descriptor) error {
	edgeA, err := g.EdgeAt(d.A)
	if err != nil {
		return err
	}
	edgeB, err := g.EdgeAt(d.B)
	if err != nil {
		return err
	}
	newA, newB := swap(edgeA, edgeB, d.SwapType)
	return g.ApplyRewire(d.A, d.B, edgeA, edgeB, newA, newB)
}

