// Package odpio reads and writes a plain-text edge-list format: one
// whitespace-separated "u v" pair per line. File I/O and output-path
// derivation sit outside the solver's core evaluation/rewiring/control
// trio, but a runnable command needs one concrete implementation of them.
package odpio
