package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipstruct/dwgraph/cluster"
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
)

// newComponentsGraph builds a flushed 4-node graph with two
// disconnected pairs {0,1} and {2,3}.
func newComponentsGraph(t *testing.T, opts ...core.WeightedOption) *graph.Graph[*core.WeightedGraph] {
	t.Helper()
	g := graph.New(core.NewWeightedGraph(opts...))
	require.NoError(t, g.AddNodes(4, nil))
	require.NoError(t, g.Backend().AddWeightedEdge(0, 1, 1))
	require.NoError(t, g.Backend().AddWeightedEdge(2, 3, 1))
	require.NoError(t, g.Flush())

	return g
}

func TestMCL_RequiresCapability(t *testing.T) {
	g := newComponentsGraph(t)

	_, _, err := cluster.MCL(g, cluster.DefaultMCLOptions())
	assert.ErrorIs(t, err, cluster.ErrNoClusterSupport)
}

func TestMCL_SeparatesComponents(t *testing.T) {
	g := newComponentsGraph(t, core.WithClustering())

	labels, k, err := cluster.MCL(g, cluster.DefaultMCLOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []int{0, 0, 1, 1}, labels)
}

func TestMCL_ZeroOptionsGetDefaults(t *testing.T) {
	g := newComponentsGraph(t, core.WithClustering())

	// The zero value is below every lower bound; MCL must substitute
	// the documented defaults rather than loop zero times.
	labels, k, err := cluster.MCL(g, cluster.MCLOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []int{0, 0, 1, 1}, labels)
}

func TestMCL_SingleComponent(t *testing.T) {
	g := graph.New(core.NewWeightedGraph(core.WithClustering()))
	require.NoError(t, g.AddNodes(3, nil))
	require.NoError(t, g.Backend().AddWeightedEdge(0, 1, 1))
	require.NoError(t, g.Backend().AddWeightedEdge(1, 2, 1))
	require.NoError(t, g.Flush())

	labels, k, err := cluster.MCL(g, cluster.DefaultMCLOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, []int{0, 0, 0}, labels)
}
