// File: bfs.go
// Role: level-synchronous top-down parallel BFS over a graph.Graph.

package bfsrun

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/odp-anneal/odpsolve/graph"
)

// chunkSize bounds how many frontier vertices a pool worker claims at
// once, a small dynamic chunk rather than a static per-goroutine slice,
// so uneven per-vertex degree doesn't stall the pool behind one slow
// goroutine.
const chunkSize = 2

// unreached marks a distance slot not yet claimed by any BFS level.
const unreached int32 = -1

// Pool bounds the number of goroutines concurrently processing one BFS
// level's frontier chunks. Pools are safe for concurrent use by multiple
// BFS calls, since Run allocates its own per-call state; the bound then
// applies to each call separately, not to their total.
type Pool struct {
	workers int
}

// NewPool returns a Pool with the given worker cap. workers <= 0 selects
// runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Run computes unweighted shortest-path distances from source over g,
// returning a dense []int32 indexed by vertex, unreached vertices holding
// -1. Distances are claimed with atomic.CompareAndSwapInt32; the frontier
// advances level by level, and the call returns once the frontier is
// empty or ctx is cancelled.
func (p *Pool) Run(ctx context.Context, g *graph.Graph, source graph.Vertex) ([]int32, error) {
	n := g.N()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = unreached
	}
	dist[source] = 0

	frontier := []graph.Vertex{source}
	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next, err := p.step(ctx, g, frontier, dist)
		if err != nil {
			return nil, err
		}
		frontier = next
	}
	return dist, nil
}

// step processes one BFS level: every chunk of chunkSize frontier
// vertices is handed to a pool worker, which accumulates a thread-local
// next-frontier slice and merges it into the shared next slice under mu
// once done.
func (p *Pool) step(ctx context.Context, g *graph.Graph, frontier []graph.Vertex, dist []int32) ([]graph.Vertex, error) {
	var mu sync.Mutex
	var next []graph.Vertex

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(p.workers)

	for lo := 0; lo < len(frontier); lo += chunkSize {
		hi := lo + chunkSize
		if hi > len(frontier) {
			hi = len(frontier)
		}
		chunk := frontier[lo:hi]

		grp.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			localNext := make([]graph.Vertex, 0, len(chunk))
			for _, v := range chunk {
				neighbors, err := g.Neighbors(v)
				if err != nil {
					return err
				}
				for _, n := range neighbors {
					want := dist[v] + 1
					if atomic.CompareAndSwapInt32(&dist[n], unreached, want) {
						localNext = append(localNext, n)
					}
				}
			}

			mu.Lock()
			next = append(next, localNext...)
			mu.Unlock()
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}
