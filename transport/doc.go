// Package transport provides the SPMD collective-communication
// abstraction the anneal controller uses to replicate proposals and
// reduce partial energy across ranks.
//
// Communicator mirrors the handful of MPI-style collectives this solver
// actually needs (rank/size/broadcast/all-reduce-sum) rather than any
// full MPI binding. Local, the one multi-rank implementation shipped,
// simulates ranks as goroutines synchronized over channel-based barriers
// rather than wrapping a real multi-process transport; Single is a
// trivial rank-0/size-1 stand-in.
package transport
