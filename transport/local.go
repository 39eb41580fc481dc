// File: local.go
// Role: in-process SPMD simulator — every rank is a goroutine,
// collectives are barrier-synchronized over shared, mutex-guarded state.

package transport

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// hub holds the state one round of a Local collective needs, guarded by
// mu and sequenced by barriers: before gates "nobody reads until
// everybody has had a chance to write", after gates "nobody starts the
// next round's write until everybody has finished this round's read".
// AllReduceSum adds a third, reduceReset, so rank 0's reset of the sum
// completes before any rank contributes to the next round.
type hub struct {
	size int

	mu           sync.RWMutex
	broadcastBuf []int32
	reduceSum    float64

	bcastBefore, bcastAfter   *barrier
	reduceBefore, reduceAfter *barrier
	reduceReset               *barrier
}

func newHub(size int) *hub {
	return &hub{
		size:         size,
		bcastBefore:  newBarrier(size),
		bcastAfter:   newBarrier(size),
		reduceBefore: newBarrier(size),
		reduceAfter:  newBarrier(size),
		reduceReset:  newBarrier(size),
	}
}

// Local is the Communicator handed to one simulated rank's goroutine.
type Local struct {
	rank int
	size int
	h    *hub
}

func (l *Local) Rank() int { return l.rank }
func (l *Local) Size() int { return l.size }

func (l *Local) BroadcastInts(root int, v []int32) {
	if l.rank == root {
		l.h.mu.Lock()
		l.h.broadcastBuf = append([]int32(nil), v...)
		l.h.mu.Unlock()
	}
	l.h.bcastBefore.wait()

	l.h.mu.RLock()
	buf := l.h.broadcastBuf
	l.h.mu.RUnlock()
	if l.rank != root {
		copy(v, buf)
	}

	l.h.bcastAfter.wait()
}

func (l *Local) AllReduceSum(v float64) float64 {
	l.h.mu.Lock()
	l.h.reduceSum += v
	l.h.mu.Unlock()
	l.h.reduceBefore.wait()

	l.h.mu.RLock()
	total := l.h.reduceSum
	l.h.mu.RUnlock()
	l.h.reduceAfter.wait()

	if l.rank == 0 {
		l.h.mu.Lock()
		l.h.reduceSum = 0
		l.h.mu.Unlock()
	}
	l.h.reduceReset.wait()

	return total
}

// Run launches size rank goroutines, each given its own *Local bound to
// a shared hub, and runs fn in every one of them. It blocks until every
// rank's fn returns, returning the first non-nil error (and cancelling
// the context passed to the remaining ranks), matching the
// fail-together semantics a real SPMD job has when one rank aborts.
func Run(ctx context.Context, size int, fn func(ctx context.Context, comm Communicator) error) error {
	if size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrTransport, size)
	}
	h := newHub(size)
	grp, gctx := errgroup.WithContext(ctx)
	for r := 0; r < size; r++ {
		rank := r
		grp.Go(func() error {
			comm := &Local{rank: rank, size: size, h: h}
			return fn(gctx, comm)
		})
	}
	return grp.Wait()
}
