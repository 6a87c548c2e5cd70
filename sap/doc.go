// Package sap computes shortest ancestral paths (SAP) in a directed graph.
//
// An ancestral path between v and w is a pair of directed paths v→a and w→a
// that end at a common ancestor a. The shortest ancestral path minimises the
// sum of the two path lengths. With sets of sources the minimum is taken over
// every v in vs and every w in ws.
//
// What
//
//   - Length(v, w) / LengthSets(vs, ws):     edge count of the SAP, or NoPath.
//   - Ancestor(v, w) / AncestorSets(vs, ws): a common ancestor realising it, or NoPath.
//   - Query(vs, ws):                          both answers from a single search.
//
// How
//
//	The engine runs two breadth-first searches in lockstep, one from each
//	side. Every outer iteration dequeues one vertex from side A and one from
//	side B. A vertex marked by both sides is a candidate whose total is
//	distA+distB; the best candidate is kept. A newly discovered vertex is only
//	enqueued while its distance is still below the best total, so both
//	frontiers stop growing as soon as they can no longer improve the answer.
//
// Determinism
//
//	Sources are seeded in the order given and neighbours are expanded in
//	adjacency order, so for a fixed graph and fixed inputs the reported
//	ancestor is always the same. When several ancestors tie, the first one
//	discovered wins; no id-based tie-break is applied.
//
// Reuse
//
//	Scratch state (marks, distances, queues) is allocated once in New and
//	restored to its clean baseline before every query returns. Only touched
//	vertices are reset, so a query costs time proportional to the explored
//	part of the graph. A mutex serialises queries, which makes one *SAP safe
//	to share between goroutines.
//
// Complexity (V = vertices, E = edges)
//
//   - New:   O(V + E) (defensive copy of the graph)
//   - Query: O(V + E) worst case, no allocations once the queues have grown
//
// Errors
//
// Every error wraps ErrInvalidArgument:
//
//   - ErrGraphNil          nil graph passed to New.
//   - ErrVertexOutOfRange  vertex id outside [0, V).
//   - ErrNilSet            nil vertex set.
//   - ErrEmptySet          empty vertex set.
//
// The absence of a common ancestor is not an error: it is reported as NoPath.
package sap
