// Package edgegraph defines construction options and sentinel errors for
// the dense graph store.
package edgegraph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrVertexCount indicates a negative vertex count was requested.
	ErrVertexCount = errors.New("edgegraph: vertex count must be non-negative")

	// ErrVertexRange indicates an edge endpoint outside [0, VertexCount).
	ErrVertexRange = errors.New("edgegraph: vertex id out of range")

	// ErrLoopNotAllowed indicates a self-loop when loops are disabled.
	ErrLoopNotAllowed = errors.New("edgegraph: self-loop not allowed")
)

// Option configures a Graph before any edges are added.
type Option func(*Graph)

// WithDirected stores each added edge as a single arc instead of a
// reciprocal pair.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loop edges (from a vertex to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}
