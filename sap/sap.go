package sap

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/wordnet/digraph"
)

// SAP answers shortest-ancestral-path queries against an immutable copy of
// a directed graph. The zero value is not usable; construct with New.
type SAP struct {
	mu    sync.Mutex // serialises queries; guards a and b
	graph *digraph.Digraph
	a, b  frontier
}

// New returns an engine over a private copy of g, so later changes to g do
// not affect it. Returns ErrGraphNil if g is nil.
// Complexity: O(V + E).
func New(g *digraph.Digraph) (*SAP, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := g.Clone()

	return &SAP{
		graph: c,
		a:     newFrontier(c.V()),
		b:     newFrontier(c.V()),
	}, nil
}

// V returns the number of vertices of the underlying graph.
func (s *SAP) V() int { return s.graph.V() }

// Length returns the length of a shortest ancestral path between v and w,
// or NoPath if they have no common ancestor. Length(v, v) is 0.
func (s *SAP) Length(v, w int) (int, error) {
	r, err := s.pair(v, w)
	if err != nil {
		return NoPath, err
	}

	return r.Length, nil
}

// Ancestor returns a common ancestor of v and w on a shortest ancestral
// path, or NoPath if there is none. Ancestor(v, v) is v.
func (s *SAP) Ancestor(v, w int) (int, error) {
	r, err := s.pair(v, w)
	if err != nil {
		return NoPath, err
	}

	return r.Ancestor, nil
}

// LengthSets returns the length of a shortest ancestral path between any
// vertex of vs and any vertex of ws, or NoPath.
func (s *SAP) LengthSets(vs, ws []int) (int, error) {
	r, err := s.Query(vs, ws)
	if err != nil {
		return NoPath, err
	}

	return r.Length, nil
}

// AncestorSets returns a common ancestor on a shortest ancestral path
// between any vertex of vs and any vertex of ws, or NoPath.
func (s *SAP) AncestorSets(vs, ws []int) (int, error) {
	r, err := s.Query(vs, ws)
	if err != nil {
		return NoPath, err
	}

	return r.Ancestor, nil
}

// Query runs one search between the vertex sets vs and ws and returns both
// the length and the ancestor. Sets may overlap and may hold duplicates.
// All inputs are validated before any scratch state is touched.
func (s *SAP) Query(vs, ws []int) (Result, error) {
	if err := s.validateSet(vs); err != nil {
		return noResult, err
	}
	if err := s.validateSet(ws); err != nil {
		return noResult, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.search(vs, ws), nil
}

// pair handles the single-vertex overloads, short-circuiting v == w.
func (s *SAP) pair(v, w int) (Result, error) {
	if err := s.validate(v); err != nil {
		return noResult, err
	}
	if err := s.validate(w); err != nil {
		return noResult, err
	}
	if v == w {
		return Result{Length: 0, Ancestor: v}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.search([]int{v}, []int{w}), nil
}

func (s *SAP) validate(v int) error {
	if v < 0 || v >= s.graph.V() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, s.graph.V())
	}

	return nil
}

func (s *SAP) validateSet(vs []int) error {
	if vs == nil {
		return ErrNilSet
	}
	if len(vs) == 0 {
		return ErrEmptySet
	}
	for _, v := range vs {
		if err := s.validate(v); err != nil {
			return err
		}
	}

	return nil
}

// best tracks the shortest candidate seen so far.
type best struct {
	dist     int
	ancestor int
}

// offer records v as the ancestor if d beats the current best.
func (b *best) offer(v, d int) bool {
	if d < b.dist {
		b.dist, b.ancestor = d, v
		return true
	}

	return false
}

// search runs the lockstep bidirectional BFS. Callers hold s.mu and have
// validated vs and ws. Scratch state is reset before returning.
func (s *SAP) search(vs, ws []int) Result {
	defer s.a.reset()
	defer s.b.reset()

	s.a.seed(vs)
	s.b.seed(ws)

	m := best{dist: math.MaxInt, ancestor: NoPath}
	for !s.a.empty() || !s.b.empty() {
		if !s.a.empty() {
			s.step(&s.a, &s.b, &m)
		}
		if !s.b.empty() {
			s.step(&s.b, &s.a, &m)
		}
	}

	if m.ancestor == NoPath {
		return noResult
	}

	return Result{Length: m.dist, Ancestor: m.ancestor}
}

// step dequeues one vertex from near and expands it.
//
// A vertex already marked by far is a candidate with total
// near.dist+far.dist. A newly discovered neighbour is enqueued when it
// improved the best total or when its distance is still below that total;
// anything else cannot lead to a shorter ancestral path.
func (s *SAP) step(near, far *frontier, m *best) {
	v := near.pop()
	if far.marked[v] {
		m.offer(v, near.dist[v]+far.dist[v])
	}

	next := near.dist[v] + 1
	for _, adj := range s.graph.Adj(v) {
		if near.marked[adj] {
			continue
		}
		near.mark(adj, next)
		if far.marked[adj] && m.offer(adj, next+far.dist[adj]) {
			near.push(adj)
			continue
		}
		if next >= m.dist {
			continue
		}
		near.push(adj)
	}
}
