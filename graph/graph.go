package graph

import "github.com/mipstruct/dwgraph/core"

// Graph is the backend-agnostic facade: one-to-one delegation to the
// wrapped backend plus partition storage and dummy-node padding.
//
// The type parameter pins the concrete backend at construction time, so
// callers needing weighted or clustering capabilities keep typed access
// through Backend() without runtime assertions.
type Graph[B core.Bridge] struct {
	backend   B
	partition []int // node -> block id, UnassignedBlock if not set
	nDummy    int   // declared padding nodes, only visible to WriteTo
}

// New wraps the given backend. The facade owns the backend for its
// lifetime; callers must not share one backend between facades.
func New[B core.Bridge](b B) *Graph[B] {
	return &Graph[B]{backend: b}
}

// Backend exposes the wrapped backend with its concrete type.
func (g *Graph[B]) Backend() B { return g.backend }

// AddNode appends a node; id must equal NNodes().
func (g *Graph[B]) AddNode(id, weight int) error { return g.backend.AddNode(id, weight) }

// AddNodes appends n nodes in one batch; weights may be nil.
func (g *Graph[B]) AddNodes(n int, weights []int) error { return g.backend.AddNodes(n, weights) }

// NNodes returns the number of real nodes (padding excluded).
func (g *Graph[B]) NNodes() int { return g.backend.NNodes() }

// AddEdge inserts the unit edge (i, j).
func (g *Graph[B]) AddEdge(i, j int) error { return g.backend.AddEdge(i, j) }

// NEdges returns the number of edges.
func (g *Graph[B]) NEdges() int { return g.backend.NEdges() }

// Neighbors enumerates the adjacency list of i. Valid after Flush.
func (g *Graph[B]) Neighbors(i int) ([]int, error) { return g.backend.Neighbors(i) }

// NNeighbors returns the degree of i. Valid after Flush.
func (g *Graph[B]) NNeighbors(i int) (int, error) { return g.backend.NNeighbors(i) }

// NodeWeight returns the weight of node i.
func (g *Graph[B]) NodeWeight(i int) (int, error) { return g.backend.NodeWeight(i) }

// DeleteNode forwards to the backend; not every backend supports it.
func (g *Graph[B]) DeleteNode(i int) error { return g.backend.DeleteNode(i) }

// DeleteEdge forwards to the backend; not every backend supports it.
func (g *Graph[B]) DeleteEdge(i, j int) error { return g.backend.DeleteEdge(i, j) }

// Flush finalizes the backend; required before queries.
func (g *Graph[B]) Flush() error { return g.backend.Flush() }

// HasEdge reports whether j appears in i's neighbor list.
// Deliberately a linear scan over the adjacency slice, O(degree): no
// caller is on a path where the scan dominates, and the scan works
// uniformly for every backend.
func (g *Graph[B]) HasEdge(i, j int) (bool, error) {
	nbrs, err := g.backend.Neighbors(i)
	if err != nil {
		return false, err
	}
	for _, k := range nbrs {
		if k == j {
			return true, nil
		}
	}

	return false, nil
}

// AddNDummyNodes declares n padding nodes. Padding inflates the node
// count written by WriteTo (external partitioners often expect round or
// power-of-two sizes) but is invisible to every other query.
func (g *Graph[B]) AddNDummyNodes(n int) {
	if n > 0 {
		g.nDummy += n
	}
}

// NDummyNodes returns the declared padding count.
func (g *Graph[B]) NDummyNodes() int { return g.nDummy }

// SetPartition assigns node i to the given block. The partition vector
// is allocated lazily to NNodes entries, unseen entries defaulting to
// UnassignedBlock.
func (g *Graph[B]) SetPartition(i, block int) error {
	if i < 0 || i >= g.backend.NNodes() {
		return ErrNodeIndex
	}
	g.ensurePartition()
	g.partition[i] = block

	return nil
}

// SetPartitionSlice replaces the whole partition vector. The slice must
// have exactly NNodes entries; it is copied, not retained.
func (g *Graph[B]) SetPartitionSlice(p []int) error {
	if len(p) != g.backend.NNodes() {
		return ErrNodeIndex
	}
	g.partition = make([]int, len(p))
	copy(g.partition, p)

	return nil
}

// PartitionOf returns the block of node i, UnassignedBlock if unset.
func (g *Graph[B]) PartitionOf(i int) (int, error) {
	if i < 0 || i >= g.backend.NNodes() {
		return UnassignedBlock, ErrNodeIndex
	}
	if g.partition == nil {
		return UnassignedBlock, nil
	}

	return g.partition[i], nil
}

// Partition returns a copy of the partition vector, sized NNodes even
// when no assignment happened yet.
func (g *Graph[B]) Partition() []int {
	g.ensurePartition()
	out := make([]int, len(g.partition))
	copy(out, g.partition)

	return out
}

// NBlocks returns one past the largest assigned block id, 0 when the
// partition is empty or fully unassigned.
func (g *Graph[B]) NBlocks() int { return nBlocks(g.partition) }

func (g *Graph[B]) ensurePartition() {
	if g.partition != nil {
		return
	}
	g.partition = make([]int, g.backend.NNodes())
	for i := range g.partition {
		g.partition[i] = UnassignedBlock
	}
}

// nBlocks is shared with the hypergraph facade.
func nBlocks(partition []int) int {
	maxBlock := UnassignedBlock
	for _, b := range partition {
		if b > maxBlock {
			maxBlock = b
		}
	}

	return maxBlock + 1
}
