package graph

// ApplyRewire overwrites the edges at indices a and b with newA and newB
// and updates the adjacency lists of the four endpoints involved so that
// Adj stays consistent with E. It does not validate that the rewiring
// preserves simplicity or the degree sequence — that is exchange.Propose's
// job; ApplyRewire is the mechanical half of a 2-opt swap, used by both
// the proposer's forward application and exchange.Reapply's replay of an
// already-chosen Descriptor on a non-root rank.
//
// oldA/oldB are the edges previously stored at a/b (the caller already
// has them, from EdgeAt, before overwriting); for each of the four
// original endpoints, the loop below replaces its old partner in Adj with
// its partner under the new pairing.
//
// Complexity: O(deg(v)) per touched endpoint, O(1) otherwise.
func (g *Graph) ApplyRewire(a, b int, oldA, oldB, newA, newB Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if a < 0 || a >= len(g.e) || b < 0 || b >= len(g.e) {
		return ErrVertexRange
	}

	for _, x := range []Vertex{oldA.U, oldA.V, oldB.U, oldB.V} {
		var newPartner Vertex
		var oldPartner Vertex
		switch {
		case newA.hasVertex(x):
			newPartner = newA.other(x)
		case newB.hasVertex(x):
			newPartner = newB.other(x)
		default:
			return ErrNoSuchNeighbor
		}
		switch {
		case oldA.hasVertex(x):
			oldPartner = oldA.other(x)
		case oldB.hasVertex(x):
			oldPartner = oldB.other(x)
		}
		nbrs := g.adj[x]
		replaced := false
		for i, n := range nbrs {
			if n == oldPartner {
				nbrs[i] = newPartner
				replaced = true
				break
			}
		}
		if !replaced {
			return ErrNoSuchNeighbor
		}
	}

	g.e[a] = newA
	g.e[b] = newB
	return nil
}
