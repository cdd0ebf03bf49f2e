package graph

import "github.com/mipstruct/dwgraph/core"

// Hypergraph is the facade for representations whose edges span more
// than two nodes. Hyperedge h is encoded as the synthetic backend node
// NNodes()+h wired to every member, so the backend only ever sees plain
// edges while hyperedges keep their own disjoint, offset index space.
//
// All real nodes must be inserted before the first hyperedge; the star
// encoding cannot interleave them.
type Hypergraph[B core.Bridge] struct {
	backend   B
	nNodes    int   // real nodes; synthetic ones start here
	hWeights  []int // hyperedge h -> weight
	partition []int // real node -> block id
	nDummy    int   // declared padding nodes, only visible to WriteTo
}

// NewHypergraph wraps the given backend.
func NewHypergraph[B core.Bridge](b B) *Hypergraph[B] {
	return &Hypergraph[B]{backend: b}
}

// Backend exposes the wrapped backend with its concrete type. The
// backend also holds the synthetic hyperedge nodes; prefer the facade
// accessors unless the raw star encoding is wanted.
func (h *Hypergraph[B]) Backend() B { return h.backend }

// AddNode appends a real node; id must equal NNodes(). Rejected once
// the first hyperedge exists.
func (h *Hypergraph[B]) AddNode(id, weight int) error {
	if len(h.hWeights) > 0 {
		return ErrNodesSealed
	}
	if err := h.backend.AddNode(id, weight); err != nil {
		return err
	}
	h.nNodes++

	return nil
}

// AddNodes appends n real nodes in one batch; weights may be nil.
func (h *Hypergraph[B]) AddNodes(n int, weights []int) error {
	if len(h.hWeights) > 0 {
		return ErrNodesSealed
	}
	if err := h.backend.AddNodes(n, weights); err != nil {
		return err
	}
	h.nNodes += n

	return nil
}

// NNodes returns the number of real nodes (synthetic and padding
// nodes excluded).
func (h *Hypergraph[B]) NNodes() int { return h.nNodes }

// AddHyperedge inserts a hyperedge over the given member nodes with the
// given weight. Members must be real nodes; at least one is required.
func (h *Hypergraph[B]) AddHyperedge(members []int, weight int) error {
	if len(members) == 0 {
		return ErrEmptyHyperedge
	}
	for _, m := range members {
		if m < 0 || m >= h.nNodes {
			return ErrNodeIndex
		}
	}
	star := h.nNodes + len(h.hWeights)
	if err := h.backend.AddNode(star, weight); err != nil {
		return err
	}
	for _, m := range members {
		if err := h.backend.AddEdge(star, m); err != nil {
			return err
		}
	}
	h.hWeights = append(h.hWeights, weight)

	return nil
}

// NHyperedges returns the number of hyperedges.
func (h *Hypergraph[B]) NHyperedges() int { return len(h.hWeights) }

// HyperedgeWeight returns the weight of hyperedge e.
func (h *Hypergraph[B]) HyperedgeWeight(e int) (int, error) {
	if e < 0 || e >= len(h.hWeights) {
		return 0, ErrHyperedgeIndex
	}

	return h.hWeights[e], nil
}

// HyperedgeNodes returns the member nodes of hyperedge e: the neighbor
// set of its synthetic node. Valid after Flush; O(size).
func (h *Hypergraph[B]) HyperedgeNodes(e int) ([]int, error) {
	if e < 0 || e >= len(h.hWeights) {
		return nil, ErrHyperedgeIndex
	}

	return h.backend.Neighbors(h.nNodes + e)
}

// NodeHyperedges returns the hyperedges touching real node i, derived
// from its synthetic neighbors. Valid after Flush.
func (h *Hypergraph[B]) NodeHyperedges(i int) ([]int, error) {
	if i < 0 || i >= h.nNodes {
		return nil, ErrNodeIndex
	}
	nbrs, err := h.backend.Neighbors(i)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(nbrs))
	for _, n := range nbrs {
		if n >= h.nNodes {
			out = append(out, n-h.nNodes)
		}
	}

	return out, nil
}

// Flush finalizes the backend; required before queries.
func (h *Hypergraph[B]) Flush() error { return h.backend.Flush() }

// AddNDummyNodes declares n padding nodes for WriteTo; invisible to
// every other query.
func (h *Hypergraph[B]) AddNDummyNodes(n int) {
	if n > 0 {
		h.nDummy += n
	}
}

// NDummyNodes returns the declared padding count.
func (h *Hypergraph[B]) NDummyNodes() int { return h.nDummy }

// SetPartition assigns real node i to the given block.
func (h *Hypergraph[B]) SetPartition(i, block int) error {
	if i < 0 || i >= h.nNodes {
		return ErrNodeIndex
	}
	h.ensurePartition()
	h.partition[i] = block

	return nil
}

// SetPartitionSlice replaces the whole partition vector; exactly NNodes
// entries, copied.
func (h *Hypergraph[B]) SetPartitionSlice(p []int) error {
	if len(p) != h.nNodes {
		return ErrNodeIndex
	}
	h.partition = make([]int, len(p))
	copy(h.partition, p)

	return nil
}

// PartitionOf returns the block of real node i, UnassignedBlock if unset.
func (h *Hypergraph[B]) PartitionOf(i int) (int, error) {
	if i < 0 || i >= h.nNodes {
		return UnassignedBlock, ErrNodeIndex
	}
	if h.partition == nil {
		return UnassignedBlock, nil
	}

	return h.partition[i], nil
}

// Partition returns a copy of the partition vector over real nodes.
func (h *Hypergraph[B]) Partition() []int {
	h.ensurePartition()
	out := make([]int, len(h.partition))
	copy(out, h.partition)

	return out
}

// NBlocks returns one past the largest assigned block id.
func (h *Hypergraph[B]) NBlocks() int { return nBlocks(h.partition) }

func (h *Hypergraph[B]) ensurePartition() {
	if h.partition != nil {
		return
	}
	h.partition = make([]int, h.nNodes)
	for i := range h.partition {
		h.partition[i] = UnassignedBlock
	}
}
