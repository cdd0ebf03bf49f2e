package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
)

// newTriangle wraps a flushed clique backend holding the 3-node path
// 0-1, 1-2 with weights 5, 6, 7.
func newTriangle(t *testing.T) *graph.Graph[*core.CliqueGraph] {
	t.Helper()
	g := graph.New(core.NewCliqueGraph(3))
	require.NoError(t, g.AddNodes(3, []int{5, 6, 7}))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.Flush())

	return g
}

func TestGraph_Delegation(t *testing.T) {
	g := newTriangle(t)

	assert.Equal(t, 3, g.NNodes())
	assert.Equal(t, 2, g.NEdges())

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nbrs)

	deg, err := g.NNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	w, err := g.NodeWeight(2)
	require.NoError(t, err)
	assert.Equal(t, 7, w)

	// The clique backend never deletes; the facade forwards the refusal.
	assert.ErrorIs(t, g.DeleteNode(0), core.ErrNotSupported)
	assert.ErrorIs(t, g.DeleteEdge(0, 1), core.ErrNotSupported)

	// Typed backend access.
	assert.Equal(t, 3, g.Backend().NNodes())
}

func TestGraph_HasEdge(t *testing.T) {
	g := newTriangle(t)

	ok, err := g.HasEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.HasEdge(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.HasEdge(5, 0)
	assert.ErrorIs(t, err, core.ErrNodeIndex)
}

func TestGraph_Partition(t *testing.T) {
	g := newTriangle(t)

	// Unset partition reads as unassigned everywhere.
	b, err := g.PartitionOf(0)
	require.NoError(t, err)
	assert.Equal(t, graph.UnassignedBlock, b)
	assert.Equal(t, 0, g.NBlocks())

	require.NoError(t, g.SetPartition(0, 1))
	b, err = g.PartitionOf(0)
	require.NoError(t, err)
	assert.Equal(t, 1, b)
	b, err = g.PartitionOf(1)
	require.NoError(t, err)
	assert.Equal(t, graph.UnassignedBlock, b, "untouched entries stay unassigned")
	assert.Equal(t, 2, g.NBlocks())

	assert.ErrorIs(t, g.SetPartition(3, 0), graph.ErrNodeIndex)
	_, err = g.PartitionOf(-1)
	assert.ErrorIs(t, err, graph.ErrNodeIndex)
}

func TestGraph_PartitionSlice(t *testing.T) {
	g := newTriangle(t)

	assert.ErrorIs(t, g.SetPartitionSlice([]int{0, 1}), graph.ErrNodeIndex, "length must match")

	p := []int{0, 0, 1}
	require.NoError(t, g.SetPartitionSlice(p))
	p[0] = 9 // caller's slice is not retained
	got := g.Partition()
	assert.Equal(t, []int{0, 0, 1}, got)
	assert.Equal(t, 2, g.NBlocks())

	got[1] = 9 // returned slice is a copy
	b, err := g.PartitionOf(1)
	require.NoError(t, err)
	assert.Equal(t, 0, b)
}

func TestGraph_DummyNodes(t *testing.T) {
	g := newTriangle(t)

	g.AddNDummyNodes(2)
	g.AddNDummyNodes(-1) // ignored
	assert.Equal(t, 2, g.NDummyNodes())
	assert.Equal(t, 3, g.NNodes(), "padding never shows up in the node count")
}

func TestGraph_WriteTo(t *testing.T) {
	g := newTriangle(t)
	g.AddNDummyNodes(1)

	var plain strings.Builder
	require.NoError(t, g.WriteTo(&plain, graph.WriteOptions{}))
	assert.Equal(t, "4 2\n2\n1 3\n2\n\n", plain.String())

	var weighted strings.Builder
	require.NoError(t, g.WriteTo(&weighted, graph.WriteOptions{Weights: true}))
	assert.Equal(t, "4 2\n5 2\n6 1 3\n7 2\n\n", weighted.String())
}

func TestGraph_ReadPartition(t *testing.T) {
	g := newTriangle(t)

	require.NoError(t, g.ReadPartition(strings.NewReader("0\n0\n1\n")))
	assert.Equal(t, []int{0, 0, 1}, g.Partition())

	// Trailing entries for padding nodes are ignored.
	require.NoError(t, g.ReadPartition(strings.NewReader("1\n1\n0\n0\n0\n")))
	assert.Equal(t, []int{1, 1, 0}, g.Partition())
}

func TestGraph_ReadPartitionErrors(t *testing.T) {
	g := newTriangle(t)

	err := g.ReadPartition(strings.NewReader("0\n1\n"))
	assert.ErrorIs(t, err, graph.ErrPartitionFormat, "short file")

	err = g.ReadPartition(strings.NewReader("0\nx\n1\n"))
	assert.ErrorIs(t, err, graph.ErrPartitionFormat, "non-numeric line")

	err = g.ReadPartition(strings.NewReader("0\n\n1\n"))
	assert.ErrorIs(t, err, graph.ErrPartitionFormat, "blank line")
}

func TestGraph_ReadPartitionFileMissing(t *testing.T) {
	g := newTriangle(t)
	err := g.ReadPartitionFile("does-not-exist.part")
	assert.ErrorIs(t, err, graph.ErrFileRead)
}

func TestGraph_WriteReadRoundTrip(t *testing.T) {
	g := newTriangle(t)
	dir := t.TempDir()

	gpath := dir + "/graph.txt"
	require.NoError(t, g.WriteFile(gpath, graph.WriteOptions{Weights: true}))

	ppath := dir + "/graph.part"
	require.NoError(t, writeFile(t, ppath, "0\n1\n1\n"))
	require.NoError(t, g.ReadPartitionFile(ppath))
	assert.Equal(t, []int{0, 1, 1}, g.Partition())
}
