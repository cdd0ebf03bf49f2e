package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipstruct/dwgraph/build"
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/weights"
)

// chain capacity: 4 nonzeros plus 2 row and 3 column star nodes.
const chainHrcCapacity = 9

func TestHyperrowcols_FromMatrix(t *testing.T) {
	hrc := build.NewHyperrowcols(core.NewCliqueGraph(chainHrcCapacity), weights.New())
	require.NoError(t, hrc.FromMatrix(chainMatrix(t)))

	h := hrc.Hypergraph()
	assert.Equal(t, 4, h.NNodes(), "one node per nonzero entry")
	assert.Equal(t, 5, h.NHyperedges(), "2 row plus 3 column hyperedges")
	assert.Equal(t, chainHrcCapacity, h.Backend().NNodes())

	// Row-major enumeration: c0 owns nonzeros 0, 1; c1 owns 2, 3.
	nodes, err := hrc.ConsNodes(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, nodes)
	nodes, err = hrc.ConsNodes(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, nodes)

	// x1's nonzeros sit in both rows.
	nodes, err = hrc.VarNodes(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nodes)

	// Row hyperedges come first, column hyperedges after.
	members, err := h.HyperedgeNodes(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, members)
	members, err = h.HyperedgeNodes(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, members, "column hyperedge of x1")

	assert.ErrorIs(t, hrc.FromMatrix(chainMatrix(t)), build.ErrBuilt)
}

func TestHyperrowcols_AccessorValidation(t *testing.T) {
	hrc := build.NewHyperrowcols(core.NewCliqueGraph(chainHrcCapacity), weights.New())
	_, err := hrc.ConsNodes(0)
	assert.ErrorIs(t, err, build.ErrNotBuilt)

	require.NoError(t, hrc.FromMatrix(chainMatrix(t)))
	_, err = hrc.ConsNodes(2)
	assert.ErrorIs(t, err, build.ErrConsIndex)
	_, err = hrc.VarNodes(-1)
	assert.ErrorIs(t, err, build.ErrVarIndex)
}

func TestHyperrowcols_DecompSingleBlock(t *testing.T) {
	hrc := build.NewHyperrowcols(core.NewCliqueGraph(chainHrcCapacity), weights.New())
	require.NoError(t, hrc.FromMatrix(chainMatrix(t)))
	require.NoError(t, hrc.Hypergraph().SetPartitionSlice([]int{0, 0, 0, 0}))

	d, err := hrc.DecompFromPartition()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.NBlocks)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, d.ConsToBlock)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, d.VarToBlock)
}

func TestHyperrowcols_DecompLinkingVariable(t *testing.T) {
	hrc := build.NewHyperrowcols(core.NewCliqueGraph(chainHrcCapacity), weights.New())
	require.NoError(t, hrc.FromMatrix(chainMatrix(t)))
	// Split along the rows: c0's nonzeros to block 0, c1's to block 1.
	// x1's two nonzeros land on both sides, making it linking.
	require.NoError(t, hrc.Hypergraph().SetPartitionSlice([]int{0, 0, 1, 1}))

	d, err := hrc.DecompFromPartition()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 2, d.NBlocks)
	assert.Equal(t, map[int]int{0: 1, 1: 2}, d.ConsToBlock)
	assert.Equal(t, map[int]int{0: 1, 1: 3, 2: 2}, d.VarToBlock)
	assert.Zero(t, d.NLinkingConss())
}

func TestHyperrowcols_DecompEmptyBlockVoids(t *testing.T) {
	hrc := build.NewHyperrowcols(core.NewCliqueGraph(chainHrcCapacity), weights.New())
	require.NoError(t, hrc.FromMatrix(chainMatrix(t)))
	require.NoError(t, hrc.Hypergraph().SetPartitionSlice([]int{0, 0, 2, 2}))

	d, err := hrc.DecompFromPartition()
	require.NoError(t, err)
	assert.Nil(t, d)
}
