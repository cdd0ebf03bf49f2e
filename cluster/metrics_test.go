package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipstruct/dwgraph/cluster"
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
)

// newScoredHypergraph builds a flushed 4-node hypergraph with
// hyperedge 0 = {0,1} weight 2 and hyperedge 1 = {1,2,3} weight 3.
func newScoredHypergraph(t *testing.T) *graph.Hypergraph[*core.CliqueGraph] {
	t.Helper()
	h := graph.NewHypergraph(core.NewCliqueGraph(6))
	require.NoError(t, h.AddNodes(4, nil))
	require.NoError(t, h.AddHyperedge([]int{0, 1}, 2))
	require.NoError(t, h.AddHyperedge([]int{1, 2, 3}, 3))
	require.NoError(t, h.Flush())

	return h
}

func TestMetrics_SingleBlock(t *testing.T) {
	h := newScoredHypergraph(t)
	require.NoError(t, h.SetPartitionSlice([]int{0, 0, 0, 0}))

	for name, metric := range map[string]func(*graph.Hypergraph[*core.CliqueGraph]) (int, error){
		"soed":   cluster.Soed[*core.CliqueGraph],
		"mincut": cluster.Mincut[*core.CliqueGraph],
		"k-1":    cluster.KMetric[*core.CliqueGraph],
	} {
		got, err := metric(h)
		require.NoError(t, err)
		assert.Zero(t, got, "%s must vanish when nothing is cut", name)
	}
}

func TestMetrics_TwoBlocks(t *testing.T) {
	h := newScoredHypergraph(t)
	// Hyperedge 0 stays inside block 0; hyperedge 1 spans blocks 0 and 1.
	require.NoError(t, h.SetPartitionSlice([]int{0, 0, 1, 1}))

	soed, err := cluster.Soed(h)
	require.NoError(t, err)
	assert.Equal(t, 6, soed, "k=2 times weight 3")

	mincut, err := cluster.Mincut(h)
	require.NoError(t, err)
	assert.Equal(t, 3, mincut, "weight 3 once")

	kmetric, err := cluster.KMetric(h)
	require.NoError(t, err)
	assert.Equal(t, 3, kmetric, "(k-1)=1 times weight 3")
}

// TestMetrics_SequentialUniquePass pins the block-counting semantics:
// only adjacent duplicates collapse, so a block recurring after a
// different one counts again. With members {1,2,3} partitioned 0,1,0
// the pass sees three runs, not two distinct blocks.
func TestMetrics_SequentialUniquePass(t *testing.T) {
	h := newScoredHypergraph(t)
	require.NoError(t, h.SetPartitionSlice([]int{0, 0, 1, 0}))

	soed, err := cluster.Soed(h)
	require.NoError(t, err)
	assert.Equal(t, 9, soed, "k=3 runs times weight 3")

	kmetric, err := cluster.KMetric(h)
	require.NoError(t, err)
	assert.Equal(t, 6, kmetric, "(k-1)=2 times weight 3")

	mincut, err := cluster.Mincut(h)
	require.NoError(t, err)
	assert.Equal(t, 3, mincut, "mincut only cares that k exceeds 1")
}

func TestMetrics_EmptyHypergraph(t *testing.T) {
	h := graph.NewHypergraph(core.NewCliqueGraph(0))
	require.NoError(t, h.Flush())

	soed, err := cluster.Soed(h)
	require.NoError(t, err)
	assert.Zero(t, soed)
}
