// Package bfsrun provides the level-synchronous, worker-pooled
// breadth-first search used to evaluate shortest-path distances during
// ASPL/diameter computation.
//
// A frontier is split into small dynamic chunks, each chunk is processed
// by a pool worker that claims distances in a shared []int32 with
// atomic.CompareAndSwapInt32 (first writer wins), and each worker's
// locally discovered next-frontier vertices are merged into the shared
// next frontier under one mutex.
package bfsrun
