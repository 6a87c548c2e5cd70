package digraph

import (
	"fmt"
	"strings"
)

// New returns a Digraph with v isolated vertices.
// Returns ErrNegativeVertexCount if v < 0.
func New(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, v)
	}

	return &Digraph{
		adj:      make([][]int, v),
		indegree: make([]int, v),
	}, nil
}

// V returns the number of vertices.
func (g *Digraph) V() int { return len(g.adj) }

// E returns the number of edges.
func (g *Digraph) E() int { return g.e }

// Validate returns ErrVertexOutOfRange unless 0 <= v < V.
func (g *Digraph) Validate(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(g.adj))
	}

	return nil
}

// AddEdge adds the directed edge v→w.
// Complexity: O(1) amortised.
func (g *Digraph) AddEdge(v, w int) error {
	if err := g.Validate(v); err != nil {
		return err
	}
	if err := g.Validate(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.indegree[w]++
	g.e++

	return nil
}

// Adj returns the out-neighbours of v in insertion order.
// v must lie in [0, V). The returned slice is owned by the graph and must
// not be modified.
func (g *Digraph) Adj(v int) []int { return g.adj[v] }

// OutDegree returns the number of edges leaving v.
func (g *Digraph) OutDegree(v int) (int, error) {
	if err := g.Validate(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// InDegree returns the number of edges entering v.
func (g *Digraph) InDegree(v int) (int, error) {
	if err := g.Validate(v); err != nil {
		return 0, err
	}

	return g.indegree[v], nil
}

// Roots returns, in ascending order, every vertex with out-degree zero.
// In a hypernym hierarchy edges point from child to parent, so these are
// the tops of the hierarchy.
func (g *Digraph) Roots() []int {
	var roots []int
	for v, nbrs := range g.adj {
		if len(nbrs) == 0 {
			roots = append(roots, v)
		}
	}

	return roots
}

// Clone returns a deep copy of g; later changes to either graph are not
// visible in the other.
// Complexity: O(V + E).
func (g *Digraph) Clone() *Digraph {
	c := &Digraph{
		adj:      make([][]int, len(g.adj)),
		indegree: make([]int, len(g.indegree)),
		e:        g.e,
	}
	for v, nbrs := range g.adj {
		if len(nbrs) > 0 {
			c.adj[v] = append(make([]int, 0, len(nbrs)), nbrs...)
		}
	}
	copy(c.indegree, g.indegree)

	return c
}

// Reverse returns the graph with every edge v→w replaced by w→v.
// Adjacency order follows ascending source vertex.
func (g *Digraph) Reverse() *Digraph {
	r := &Digraph{
		adj:      make([][]int, len(g.adj)),
		indegree: make([]int, len(g.adj)),
		e:        g.e,
	}
	for v, nbrs := range g.adj {
		for _, w := range nbrs {
			r.adj[w] = append(r.adj[w], v)
			r.indegree[v]++
		}
	}

	return r
}

// String renders the graph as "V vertices, E edges" followed by one
// "v: w1 w2 ..." line per vertex.
func (g *Digraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", g.V(), g.E())
	for v, nbrs := range g.adj {
		fmt.Fprintf(&sb, "%d:", v)
		for _, w := range nbrs {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
