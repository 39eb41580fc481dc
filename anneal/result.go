package anneal

import (
	"gonum.org/v1/gonum/stat"

	"github.com/google/uuid"
)

// Result reports the SA run's outcome and terminal statistics: acceptance
// counts and rate, the final temperature and energy reached, and
// per-iteration ΔE diagnostics.
type Result struct {
	// RunID tags this run for log/metrics correlation, since a single
	// process may drive several SA runs over its lifetime (e.g. the
	// test suite).
	RunID uuid.UUID

	Accepted         int
	Rejected         int
	Iterations       int
	FinalTemperature float64
	FinalEnergy      float64

	// deltaEs accumulates every iteration's ΔE so DeltaEStats can be
	// computed once at the end rather than maintained as a running
	// statistic the hot loop would have to touch every iteration.
	deltaEs []float64
}

// AcceptanceRate returns Accepted / (Accepted + Rejected), or 0 if no
// trials were evaluated.
func (r *Result) AcceptanceRate() float64 {
	total := r.Accepted + r.Rejected
	if total == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(total)
}

// DeltaEStats returns the mean and standard deviation of every
// iteration's ΔE, diagnostics useful for judging whether the cooling
// schedule was too aggressive for the instance size.
func (r *Result) DeltaEStats() (mean, stddev float64) {
	if len(r.deltaEs) == 0 {
		return 0, 0
	}
	mean, stddev = stat.MeanStdDev(r.deltaEs, nil)
	return mean, stddev
}

func newResult() *Result {
	return &Result{RunID: uuid.New()}
}
