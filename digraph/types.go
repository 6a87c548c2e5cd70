// Package digraph defines the Digraph type and its sentinel errors.
package digraph

import "errors"

// Sentinel errors for digraph operations.
var (
	// ErrGraphNil is returned when a nil *Digraph is passed in.
	ErrGraphNil = errors.New("digraph: graph is nil")

	// ErrNegativeVertexCount is returned by New for V < 0.
	ErrNegativeVertexCount = errors.New("digraph: number of vertices must be non-negative")

	// ErrVertexOutOfRange is returned when a vertex id is not in [0, V).
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrCycleDetected is returned by TopologicalOrder when the graph is not acyclic.
	ErrCycleDetected = errors.New("digraph: cycle detected")
)

// Vertex colours for depth-first traversals.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // fully explored
)

// Digraph is a directed graph over vertices 0..V-1.
//
// adj[v] holds the out-neighbours of v in insertion order; parallel edges and
// self-loops are kept as given. indegree[v] is maintained by AddEdge.
type Digraph struct {
	adj      [][]int
	indegree []int
	e        int
}
