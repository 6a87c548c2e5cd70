// Package digraph implements topological ordering and cycle extraction.
//
// TopologicalOrder computes a linear ordering of vertices such that for every
// edge v→w, v appears before w. If the graph contains a cycle,
// ErrCycleDetected is returned and FindCycle reports the offending cycle.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack, colour and parent slices)
package digraph

import "fmt"

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph  *Digraph
	state  []int // White, Gray or Black per vertex
	parent []int // DFS tree parent, -1 for tree roots
	order  []int // post-order
	cycle  []int // first cycle found, start vertex repeated at the end
}

func newTopoSorter(g *Digraph) *topoSorter {
	parent := make([]int, g.V())
	for i := range parent {
		parent[i] = -1
	}

	return &topoSorter{
		graph:  g,
		state:  make([]int, g.V()), // all White
		parent: parent,
		order:  make([]int, 0, g.V()),
	}
}

// TopologicalOrder returns the vertices of g in topological order
// (every edge points forward in the returned slice).
// Returns ErrGraphNil for a nil graph and ErrCycleDetected if g has a cycle.
func TopologicalOrder(g *Digraph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	sorter := newTopoSorter(g)
	if err := sorter.run(); err != nil {
		return nil, err
	}
	// reverse post-order
	order := sorter.order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// IsDAG reports whether g is a directed acyclic graph.
// A nil graph is not a DAG.
func IsDAG(g *Digraph) bool {
	_, err := TopologicalOrder(g)

	return err == nil
}

// FindCycle returns one directed cycle of g as a vertex sequence whose first
// and last elements coincide, or nil if g is acyclic (or nil).
func FindCycle(g *Digraph) []int {
	if g == nil {
		return nil
	}
	sorter := newTopoSorter(g)
	if err := sorter.run(); err != nil {
		return sorter.cycle
	}

	return nil
}

// run drives the DFS from every unvisited vertex in ascending order.
func (t *topoSorter) run() error {
	for v := 0; v < t.graph.V(); v++ {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit explores v; a Gray successor closes a cycle.
func (t *topoSorter) visit(v int) error {
	t.state[v] = Gray
	for _, w := range t.graph.adj[v] {
		switch t.state[w] {
		case White:
			t.parent[w] = v
			if err := t.visit(w); err != nil {
				return err
			}
		case Gray:
			t.cycle = t.traceCycle(v, w)

			return fmt.Errorf("%w: edge %d->%d closes %v", ErrCycleDetected, v, w, t.cycle)
		}
	}
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}

// traceCycle walks parent links from v back to w and returns w ... v w.
func (t *topoSorter) traceCycle(v, w int) []int {
	var rev []int
	for x := v; x != w; x = t.parent[x] {
		rev = append(rev, x)
	}
	cycle := make([]int, 0, len(rev)+2)
	cycle = append(cycle, w)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return append(cycle, w)
}
