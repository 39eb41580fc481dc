package anneal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAcceptProbability_AlwaysAcceptsImprovingMove locks in the
// always-accept branch: any non-positive energy delta accepts with
// probability 1 regardless of temperature.
func TestAcceptProbability_AlwaysAcceptsImprovingMove(t *testing.T) {
	for _, T := range []float64{0.01, 1, 100} {
		require.Equal(t, 1.0, acceptProbability(0, T))
		require.Equal(t, 1.0, acceptProbability(-5, T))
	}
}

// TestAcceptProbability_MonotonicInDeltaE checks that at a fixed
// temperature, acceptance probability is non-increasing as the proposed
// move gets worse (larger positive deltaE).
func TestAcceptProbability_MonotonicInDeltaE(t *testing.T) {
	const T = 10.0
	deltas := []float64{0.1, 1, 2, 5, 10, 50}

	prev := acceptProbability(0, T)
	for _, d := range deltas {
		p := acceptProbability(d, T)
		require.LessOrEqual(t, p, prev)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		prev = p
	}
}

// TestAcceptProbability_MonotonicInTemperature checks that at a fixed
// positive deltaE, acceptance probability is non-decreasing as
// temperature rises (cooler runs reject worsening moves more readily).
func TestAcceptProbability_MonotonicInTemperature(t *testing.T) {
	const deltaE = 4.0
	temps := []float64{0.5, 1, 5, 20, 100}

	prev := acceptProbability(deltaE, temps[0])
	for _, T := range temps[1:] {
		p := acceptProbability(deltaE, T)
		require.GreaterOrEqual(t, p, prev)
		prev = p
	}
}
