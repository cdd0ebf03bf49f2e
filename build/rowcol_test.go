package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipstruct/dwgraph/build"
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/weights"
)

func TestRows_FromMatrix(t *testing.T) {
	r := build.NewRows(core.NewWeightedGraph(), weights.New())
	require.NoError(t, r.FromMatrix(chainMatrix(t)))

	g := r.Graph()
	assert.Equal(t, 2, g.NNodes(), "one node per constraint")
	assert.Equal(t, 1, g.NEdges(), "c0 and c1 share x1")

	// The projection is symmetric and free of self-neighbors.
	for i := 0; i < g.NNodes(); i++ {
		nbrs, err := g.Neighbors(i)
		require.NoError(t, err)
		assert.NotContains(t, nbrs, i)
		for _, j := range nbrs {
			ok, herr := g.HasEdge(j, i)
			require.NoError(t, herr)
			assert.True(t, ok)
		}
	}

	// One shared variable, weight 1.
	w, err := g.Backend().EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	assert.ErrorIs(t, r.FromMatrix(chainMatrix(t)), build.ErrBuilt)
}

func TestRows_SharedCountWeights(t *testing.T) {
	m := build.NewDenseMatrix()
	x0 := m.AddVariable("x0", weights.Binary)
	x1 := m.AddVariable("x1", weights.Binary)
	for _, name := range []string{"c0", "c1"} {
		_, err := m.AddConstraint(name, x0, x1)
		require.NoError(t, err)
	}

	r := build.NewRows(core.NewWeightedGraph(), weights.New())
	require.NoError(t, r.FromMatrix(m))

	w, err := r.Graph().Backend().EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w, "both variables are shared")
	assert.Equal(t, 1, r.Graph().NEdges(), "multiplicity folds into the weight")
}

func TestRows_PlainBackend(t *testing.T) {
	// Unweighted backends get unit edges through the same path.
	r := build.NewRows(core.NewCliqueGraph(2), weights.New())
	require.NoError(t, r.FromMatrix(chainMatrix(t)))

	ok, err := r.Graph().HasEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRows_DecompSingletonBlocks(t *testing.T) {
	r := build.NewRows(core.NewWeightedGraph(), weights.New())
	require.NoError(t, r.FromMatrix(chainMatrix(t)))
	require.NoError(t, r.Graph().SetPartitionSlice([]int{0, 1}))

	d, err := r.DecompFromPartition()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 2, d.NBlocks)
	assert.Equal(t, map[int]int{0: 1, 1: 2}, d.ConsToBlock)
	// x1 sits in constraints of both blocks.
	assert.Equal(t, map[int]int{0: 1, 1: 3, 2: 2}, d.VarToBlock)
	assert.Zero(t, d.NLinkingConss())
}

func TestRows_DecompSingleBlock(t *testing.T) {
	r := build.NewRows(core.NewWeightedGraph(), weights.New())
	require.NoError(t, r.FromMatrix(chainMatrix(t)))
	require.NoError(t, r.Graph().SetPartitionSlice([]int{0, 0}))

	d, err := r.DecompFromPartition()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.NBlocks)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, d.VarToBlock)
}

func TestRows_DecompErrors(t *testing.T) {
	r := build.NewRows(core.NewWeightedGraph(), weights.New())
	_, err := r.DecompFromPartition()
	assert.ErrorIs(t, err, build.ErrNotBuilt)

	require.NoError(t, r.FromMatrix(chainMatrix(t)))
	_, err = r.DecompFromPartition()
	assert.ErrorIs(t, err, build.ErrIncompletePartition)
}

func TestCols_FromMatrix(t *testing.T) {
	c := build.NewCols(core.NewWeightedGraph(), weights.New())
	require.NoError(t, c.FromMatrix(chainMatrix(t)))

	g := c.Graph()
	assert.Equal(t, 3, g.NNodes(), "one node per variable")
	assert.Equal(t, 2, g.NEdges())

	ok, err := g.HasEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, ok, "x0 and x1 co-occur in c0")
	ok, err = g.HasEdge(0, 2)
	require.NoError(t, err)
	assert.False(t, ok, "x0 and x2 never co-occur")

	assert.ErrorIs(t, c.FromMatrix(chainMatrix(t)), build.ErrBuilt)
}

func TestCols_DecompSingleBlock(t *testing.T) {
	c := build.NewCols(core.NewWeightedGraph(), weights.New())
	require.NoError(t, c.FromMatrix(chainMatrix(t)))
	require.NoError(t, c.Graph().SetPartitionSlice([]int{0, 0, 0}))

	d, err := c.DecompFromPartition()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.NBlocks)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, d.ConsToBlock)
	assert.Zero(t, d.NLinkingConss())
}

func TestCols_DecompSeparableBlocks(t *testing.T) {
	c := build.NewCols(core.NewWeightedGraph(), weights.New())
	require.NoError(t, c.FromMatrix(blockMatrix(t)))
	require.NoError(t, c.Graph().SetPartitionSlice([]int{0, 0, 1, 1}))

	d, err := c.DecompFromPartition()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 2, d.NBlocks)
	assert.Equal(t, map[int]int{0: 1, 1: 2}, d.ConsToBlock)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 2, 3: 2}, d.VarToBlock)
	assert.Zero(t, d.NLinkingConss())
}

func TestCols_DecompBridgingVariableVoids(t *testing.T) {
	c := build.NewCols(core.NewWeightedGraph(), weights.New())
	require.NoError(t, c.FromMatrix(chainMatrix(t)))
	// Splitting the chain at x1 turns c0 into a linking constraint and
	// leaves block 0 without constraints.
	require.NoError(t, c.Graph().SetPartitionSlice([]int{0, 1, 1}))

	d, err := c.DecompFromPartition()
	require.NoError(t, err)
	assert.Nil(t, d)
}
