package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrInvalidEdge is returned when an edge list contains a self-loop.
	ErrInvalidEdge = errors.New("graph: invalid edge")

	// ErrVertexRange is returned when a vertex index is outside [0, N).
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrNoSuchNeighbor is returned by ReplaceNeighbor when old is not
	// present in the target vertex's adjacency list.
	ErrNoSuchNeighbor = errors.New("graph: neighbor not found")

	// ErrEmptyEdgeList is returned when NewGraph is given zero edges.
	ErrEmptyEdgeList = errors.New("graph: edge list is empty")
)
