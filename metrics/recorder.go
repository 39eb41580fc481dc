// File: recorder.go
// Role: per-run Prometheus metrics, scoped to a private registry.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "odp_anneal"

// Recorder tracks one SA run's counters and gauges against its own
// registry, so two concurrent runs (e.g. in tests) never share state.
type Recorder struct {
	registry *prometheus.Registry

	iterations prometheus.Counter
	accepted   prometheus.Counter
	rejected   prometheus.Counter
	temperature prometheus.Gauge
	energy      prometheus.Gauge
}

// NewRecorder builds a Recorder bound to a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		iterations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Total SA iterations executed.",
		}),
		accepted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accepted_total",
			Help:      "Total trials accepted by the Metropolis criterion.",
		}),
		rejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Total trials rejected by the Metropolis criterion.",
		}),
		temperature: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "temperature",
			Help:      "Current SA temperature.",
		}),
		energy: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "energy",
			Help:      "Current accepted graph's ASPL energy.",
		}),
	}
}

// Observe records one completed iteration's outcome.
func (r *Recorder) Observe(accepted bool, temperature, energy float64) {
	r.iterations.Inc()
	if accepted {
		r.accepted.Inc()
	} else {
		r.rejected.Inc()
	}
	r.temperature.Set(temperature)
	r.energy.Set(energy)
}

// Handler returns an http.Handler serving this Recorder's registry in
// the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
