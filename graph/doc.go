// Package graph provides the in-memory undirected simple graph used by the
// Order/Degree Problem solver: a fixed vertex count, a stable-indexed edge
// list, and adjacency multisets derived from it.
//
// Unlike a general-purpose graph library, this Graph never adds or removes
// vertices and never changes the edge count after construction — the
// annealing search only permutes which vertices an edge's two endpoints
// point at (see exchange.Propose / exchange.Reapply). The edge index in the
// slice returned by Edges is therefore a stable identity used as the wire
// payload for a rewiring proposal, not an incidental detail.
//
// Concurrency: a single sync.RWMutex guards edges and adjacency. Reads
// (Edges, EdgeAt, Neighbors, Degree, Connected) take the read lock; the
// mutations (ReplaceNeighbor, ApplyRewire, CopyFrom) take the write lock.
// There is no separate vertex lock
// because the vertex set is immutable after NewGraph.
package graph
