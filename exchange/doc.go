// Package exchange implements the degree-preserving 2-opt edge rewiring
// used to propose SA trial moves.
//
// Propose runs the full rejection-sampling loop — draw two disjoint edges,
// pick a swap variant, reject multigraph outcomes — and should only be
// called on the root rank. Reapply performs the mechanical half of the
// same rewiring (no randomness) so every other rank can replay an
// already-chosen Descriptor deterministically, which is what keeps every
// rank's graph byte-identical without a shared RNG stream.
package exchange
