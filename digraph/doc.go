// Package digraph provides a compact directed graph over integer vertices
// 0..V-1, stored as ordered adjacency lists.
//
// What
//
//   - New(V) allocates V isolated vertices; AddEdge(v, w) appends w to adj[v].
//   - Adj(v) returns out-neighbours in insertion order, which keeps every
//     traversal built on top of it (BFS, DFS, SAP) deterministic.
//   - OutDegree / InDegree are O(1) (in-degrees are counted on insertion).
//   - Clone returns a deep copy; Reverse returns the transposed graph.
//   - Roots lists the vertices with no outgoing edges, in ascending order.
//   - TopologicalOrder runs a three-colour DFS and fails with
//     ErrCycleDetected on the first back edge; FindCycle returns that cycle.
//
// Why
//
//	Hierarchies such as hypernym trees are naturally numbered 0..V-1 and are
//	queried far more often than they change. A slice-of-slices layout gives
//	bounds-checked indexed access and good cache locality, and it is cheap
//	to copy defensively.
//
// Concurrency
//
//	A Digraph is not synchronised. Build it from one goroutine, then share it
//	read-only; readers never need a lock.
//
// Complexity (V = vertices, E = edges)
//
//   - AddEdge:          O(1) amortised
//   - Clone, Reverse:   O(V + E)
//   - Roots:            O(V)
//   - TopologicalOrder: O(V + E) time, O(V) memory
//
// Errors
//
//   - ErrNegativeVertexCount if New is called with V < 0.
//   - ErrVertexOutOfRange    if a vertex argument lies outside [0, V).
//   - ErrGraphNil            if a nil *Digraph is passed to a package function.
//   - ErrCycleDetected       if TopologicalOrder meets a back edge.
package digraph
