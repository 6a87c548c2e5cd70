package digraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordnet/digraph"
)

// mustGraph builds a graph with v vertices and the given edges.
func mustGraph(t *testing.T, v int, edges ...[2]int) *digraph.Digraph {
	t.Helper()
	g, err := digraph.New(v)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestNew_Errors verifies vertex-count validation.
func TestNew_Errors(t *testing.T) {
	_, err := digraph.New(-1)
	assert.ErrorIs(t, err, digraph.ErrNegativeVertexCount)

	g, err := digraph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.V())
	assert.Equal(t, 0, g.E())
	assert.Empty(t, g.Roots())
}

// TestAddEdge_Validation checks that both endpoints are range-checked.
func TestAddEdge_Validation(t *testing.T) {
	g := mustGraph(t, 3)
	assert.ErrorIs(t, g.AddEdge(-1, 0), digraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 3), digraph.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.E())

	_, err := g.OutDegree(5)
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
	_, err = g.InDegree(-2)
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}

// TestAdjacencyAndDegrees checks insertion order, parallel edges and degrees.
func TestAdjacencyAndDegrees(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 2}, [2]int{0, 1}, [2]int{0, 2}, [2]int{3, 3})

	assert.Equal(t, []int{2, 1, 2}, g.Adj(0))
	assert.Empty(t, g.Adj(1))
	assert.Equal(t, 4, g.E())

	out, err := g.OutDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, out)

	in, err := g.InDegree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	in, err = g.InDegree(3)
	require.NoError(t, err)
	assert.Equal(t, 1, in)

	assert.Equal(t, []int{1, 2}, g.Roots())
}

// TestClone_Independent ensures a clone does not share adjacency storage.
func TestClone_Independent(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 0}, [2]int{2, 0})
	c := g.Clone()

	require.NoError(t, g.AddEdge(2, 1))
	assert.Equal(t, []int{0, 1}, g.Adj(2))
	assert.Equal(t, []int{0}, c.Adj(2))
	assert.Equal(t, 2, c.E())
	assert.Equal(t, 3, g.E())

	in, _ := c.InDegree(1)
	assert.Equal(t, 0, in)
}

// TestReverse transposes every edge.
func TestReverse(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1})
	r := g.Reverse()

	assert.Equal(t, []int{1, 2}, r.Adj(0))
	assert.Equal(t, []int{2}, r.Adj(1))
	assert.Empty(t, r.Adj(2))
	assert.Equal(t, g.E(), r.E())
	assert.Equal(t, []int{2}, r.Roots())
}

// TestString renders the adjacency listing.
func TestString(t *testing.T) {
	g := mustGraph(t, 2, [2]int{1, 0})
	assert.Equal(t, "2 vertices, 1 edges\n0:\n1: 0\n", g.String())
}

// TestRead parses the edge-list format and rejects malformed input.
func TestRead(t *testing.T) {
	g, err := digraph.Read(strings.NewReader("3\n2\n1 0\n 2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.V())
	assert.Equal(t, 2, g.E())
	assert.Equal(t, []int{0}, g.Adj(2))

	cases := map[string]string{
		"empty":          "",
		"no edge count":  "3",
		"bad number":     "3 x",
		"negative edges": "3 -1",
		"short edge":     "3 1 1",
	}
	for name, in := range cases {
		_, err := digraph.Read(strings.NewReader(in))
		assert.ErrorIs(t, err, digraph.ErrMalformedInput, name)
	}

	_, err = digraph.Read(strings.NewReader("2 1 0 5"))
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)

	_, err = digraph.Read(strings.NewReader("-4 0"))
	assert.ErrorIs(t, err, digraph.ErrNegativeVertexCount)
}
