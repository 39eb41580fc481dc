package anneal

import (
	"math"

	"github.com/odp-anneal/odpsolve/metrics"
)

// Config holds the SA controller's tunable parameters. It is trimmed to
// the parameters this domain actually uses — no perturbation size, no
// refinement threshold, since this controller has no continuous
// coordinate space to perturb or refine, only discrete edge rewirings.
type Config struct {
	// T0 is the initial temperature.
	T0 float64
	// TEnd is the temperature at which the loop terminates.
	TEnd float64
	// CoolingInterval (I) is how many iterations elapse between cooling
	// steps; 1 cools every iteration.
	CoolingInterval int
	// MaxIterations (N_max) upper-bounds the loop regardless of
	// temperature.
	MaxIterations int
	// ProposalAttemptCap bounds exchange.Propose's rejection-sampling
	// loop; <= 0 means unbounded, the default.
	ProposalAttemptCap int
	// BFSWorkers sizes the bfsrun.Pool each rank's ASPL evaluation uses;
	// <= 0 selects runtime.GOMAXPROCS(0).
	BFSWorkers int
	// Recorder, if non-nil, receives one Observe call per iteration from
	// rank 0. Left nil by DefaultConfig; callers that want metrics
	// exported opt in explicitly.
	Recorder *metrics.Recorder
}

// DefaultConfig returns a reasonable starting schedule: T0=100,
// TEnd=0.22, CoolingInterval=1, MaxIterations=1000.
func DefaultConfig() Config {
	return Config{
		T0:                 100,
		TEnd:               0.22,
		CoolingInterval:    1,
		MaxIterations:      1000,
		ProposalAttemptCap: 0,
		BFSWorkers:         0,
	}
}

// alpha returns the geometric cooling factor:
// α = (T_end / T0)^(I / N_max).
func (c Config) alpha() float64 {
	return math.Pow(c.TEnd/c.T0, float64(c.CoolingInterval)/float64(c.MaxIterations))
}
