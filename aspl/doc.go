// Package aspl computes partial average-shortest-path-length and
// diameter contributions over a vertex range, the per-rank energy term
// the anneal controller reduces across ranks.
package aspl
