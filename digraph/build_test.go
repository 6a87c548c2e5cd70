package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordnet/digraph"
)

func TestBuild_Hierarchy(t *testing.T) {
	g, err := digraph.Build(7, digraph.Hierarchy(2))
	require.NoError(t, err)

	assert.Equal(t, 6, g.E())
	assert.Equal(t, []int{0}, g.Roots())
	assert.True(t, digraph.IsDAG(g))
	assert.Equal(t, []int{2}, g.Adj(5))
	in, err := g.InDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	g, err = digraph.Build(4, digraph.Hierarchy(1))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, g.Adj(3), "k=1 is a path")
}

func TestBuild_RandomHierarchy(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := digraph.Build(50, digraph.RandomHierarchy(3), digraph.WithSeed(seed))
		require.NoError(t, err)

		assert.Equal(t, []int{0}, g.Roots(), "seed %d", seed)
		assert.True(t, digraph.IsDAG(g), "seed %d", seed)
		for v := 1; v < g.V(); v++ {
			out, err := g.OutDegree(v)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, out, 1)
			assert.LessOrEqual(t, out, 3)
		}
	}

	a, err := digraph.Build(30, digraph.RandomHierarchy(2), digraph.WithSeed(42))
	require.NoError(t, err)
	b, err := digraph.Build(30, digraph.RandomHierarchy(2), digraph.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed, same graph")
}

func TestBuild_RandomSparse(t *testing.T) {
	g, err := digraph.Build(5, digraph.RandomSparse(0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.E())

	g, err = digraph.Build(5, digraph.RandomSparse(1))
	require.NoError(t, err)
	assert.Equal(t, 20, g.E())
	assert.False(t, digraph.IsDAG(g))

	g, err = digraph.Build(20, digraph.RandomSparse(0.1), digraph.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 20, g.V())
}

func TestBuild_Errors(t *testing.T) {
	_, err := digraph.Build(3, nil)
	assert.ErrorIs(t, err, digraph.ErrNilConstructor)

	_, err = digraph.Build(-1, digraph.Hierarchy(2))
	assert.ErrorIs(t, err, digraph.ErrNegativeVertexCount)

	_, err = digraph.Build(3, digraph.Hierarchy(0))
	assert.ErrorIs(t, err, digraph.ErrInvalidArity)

	_, err = digraph.Build(3, digraph.RandomHierarchy(0), digraph.WithSeed(1))
	assert.ErrorIs(t, err, digraph.ErrInvalidArity)

	_, err = digraph.Build(3, digraph.RandomHierarchy(2))
	assert.ErrorIs(t, err, digraph.ErrNeedRandSource)

	_, err = digraph.Build(3, digraph.RandomSparse(1.5))
	assert.ErrorIs(t, err, digraph.ErrInvalidProbability)

	_, err = digraph.Build(3, digraph.RandomSparse(0.5))
	assert.ErrorIs(t, err, digraph.ErrNeedRandSource)
}
