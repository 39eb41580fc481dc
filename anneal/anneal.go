// File: anneal.go
// Role: the simulated-annealing main loop — propose, evaluate, decide,
// cool, repeat until the temperature floor or iteration cap is hit.

package anneal

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/odp-anneal/odpsolve/aspl"
	"github.com/odp-anneal/odpsolve/bfsrun"
	"github.com/odp-anneal/odpsolve/exchange"
	"github.com/odp-anneal/odpsolve/graph"
	"github.com/odp-anneal/odpsolve/rng"
	"github.com/odp-anneal/odpsolve/transport"
)

// logEvery is the iteration cadence for progress logging.
const logEvery = 100

// acceptProbability is the Metropolis acceptance probability for a move
// with energy delta deltaE at temperature T: always-accept on an
// improving or neutral move, otherwise exp(-deltaE/T).
func acceptProbability(deltaE, T float64) float64 {
	if deltaE < 0 {
		return 1.0
	}
	return math.Exp(-deltaE / T)
}

// Run drives the distributed SA search over initial, simulating size
// ranks locally via transport.Run. Only rank 0's randomness (r) is ever
// consumed; r must be non-nil, since rank 0 passes it to Propose and
// draws the Metropolis threshold from it on every iteration.
//
// Returns the final accepted graph (rank 0's "current"), a Result
// summarizing the run, or an error if the proposer's attempt cap was
// exhausted (exchange.ErrNoValidProposal) or a rank failed outright.
func Run(ctx context.Context, initial *graph.Graph, size int, cfg Config, r *rng.Stream) (*graph.Graph, *Result, error) {
	n := initial.N()
	if n == 0 {
		return nil, nil, ErrEmptyGraph
	}

	result := newResult()
	var final *graph.Graph

	err := transport.Run(ctx, size, func(ctx context.Context, comm transport.Communicator) error {
		rank := comm.Rank()
		ranks := comm.Size()
		lo, hi := partitionRange(n, ranks, rank)
		pool := bfsrun.NewPool(cfg.BFSWorkers)

		current := initial.Clone()
		trial := initial.Clone()
		k := float64(n) * float64(n-1)
		alpha := cfg.alpha()
		T := cfg.T0

		energy := func(g *graph.Graph) (float64, error) {
			sum, _, err := aspl.PartialASPL(ctx, g, lo, hi, pool)
			if err != nil {
				return 0, err
			}
			return comm.AllReduceSum(sum) / float64(n), nil
		}

		eCurr, err := energy(current)
		if err != nil {
			return fmt.Errorf("anneal: initial energy: %w", err)
		}

		state := Init
		iters := 0
		for {
			state = Proposing
			trial.CopyFrom(current)

			payload := make([]int32, 4) // [ok, a, b, swapType]
			if rank == 0 {
				d, perr := exchange.Propose(trial, r, cfg.ProposalAttemptCap)
				if perr != nil {
					payload[0] = 0
				} else {
					payload[0] = 1
					payload[1] = int32(d.A)
					payload[2] = int32(d.B)
					payload[3] = d.SwapType
				}
			}
			comm.BroadcastInts(0, payload)
			if payload[0] == 0 {
				return exchange.ErrNoValidProposal
			}
			if rank != 0 {
				d := exchange.Descriptor{A: int(payload[1]), B: int(payload[2]), SwapType: payload[3]}
				if err := exchange.Reapply(trial, d); err != nil {
					return fmt.Errorf("anneal: reapply on rank %d: %w", rank, err)
				}
			}

			state = Evaluating
			eTrial, err := energy(trial)
			if err != nil {
				return fmt.Errorf("anneal: trial energy: %w", err)
			}
			deltaE := k * (eTrial - eCurr)

			state = Deciding
			acceptPayload := make([]int32, 1)
			if rank == 0 {
				if acceptProbability(deltaE, T) >= r.NextProb() {
					acceptPayload[0] = 1
				}
			}
			comm.BroadcastInts(0, acceptPayload)
			accepted := acceptPayload[0] == 1

			if accepted {
				current.CopyFrom(trial)
				eCurr = eTrial
			}

			state = Cooling
			if iters%cfg.CoolingInterval == 0 {
				T *= alpha
			}
			iters++

			if rank == 0 {
				result.Iterations = iters
				result.FinalTemperature = T
				result.FinalEnergy = eCurr
				result.deltaEs = append(result.deltaEs, deltaE)
				if accepted {
					result.Accepted++
				} else {
					result.Rejected++
				}
				if cfg.Recorder != nil {
					cfg.Recorder.Observe(accepted, T, eCurr)
				}
				if iters%logEvery == 0 {
					slog.Default().Info("anneal progress",
						"run", result.RunID, "state", state.String(), "iter", iters,
						"temperature", T, "energy", eCurr,
						"acceptance_rate", result.AcceptanceRate())
				}
			}

			if T <= cfg.TEnd || iters == cfg.MaxIterations {
				state = Terminated
				if rank == 0 {
					final = current
				}
				return nil
			}
		}
	})
	if err != nil {
		return nil, nil, err
	}
	return final, result, nil
}
