// Package metrics exposes the SA controller's iteration counters and
// temperature/energy gauges as Prometheus metrics, bound to a private
// registry rather than the global default one so multiple Recorders
// (e.g. one per test) never collide on metric names.
package metrics
