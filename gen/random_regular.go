// File: random_regular.go
// Role: stub-matching construction of an initial d-regular simple graph.

package gen

import (
	"fmt"

	"github.com/odp-anneal/odpsolve/graph"
	"github.com/odp-anneal/odpsolve/rng"
)

const maxStubMatchingAttempts = 10000

// RandomRegular builds a simple, loop-free, multi-edge-free n-vertex
// d-regular graph by repeated stub shuffling, retrying the shuffle (not
// the whole build) up to maxStubMatchingAttempts times on an invalid
// pairing.
//
// Complexity: O(n*d) per attempt, constant-bounded attempts.
func RandomRegular(n, d int, r *rng.Stream) ([]graph.Edge, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d < 1", ErrInvalidDegree, n)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("%w: degree must be in [0,%d), got %d", ErrInvalidDegree, n, d)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("%w: n*d must be even (n=%d, d=%d)", ErrInvalidDegree, n, d)
	}

	stubCount := n * d
	if stubCount == 0 {
		return nil, fmt.Errorf("%w: d=0 yields no edges, not a valid ODP instance", ErrInvalidDegree)
	}

	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		r.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		edges := make([]graph.Edge, 0, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u > v {
				u, v = v, u
			}
			edges = append(edges, graph.Edge{U: graph.Vertex(u), V: graph.Vertex(v)})
		}
		return edges, nil
	}

	return nil, fmt.Errorf("%w: after %d attempts (n=%d, d=%d)", ErrConstructFailed, maxStubMatchingAttempts, n, d)
}
