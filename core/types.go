package core

import "errors"

// Sentinel errors for backend operations.
var (
	// ErrNodeOrder indicates AddNode was called with an id other than the
	// current node count. Node ids are dense and strictly append-only.
	ErrNodeOrder = errors.New("core: node id must equal the current node count")
	// ErrNodeIndex indicates a node index outside [0, NNodes).
	ErrNodeIndex = errors.New("core: node index out of range")
	// ErrCapacity indicates the clique table's fixed capacity is exhausted.
	ErrCapacity = errors.New("core: clique table capacity exhausted")
	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loops not allowed")
	// ErrNotSupported indicates an operation the backend never supports,
	// such as deletion on the clique table.
	ErrNotSupported = errors.New("core: operation not supported by this backend")
	// ErrNotFlushed indicates a query before Flush.
	ErrNotFlushed = errors.New("core: graph must be flushed before queries")
	// ErrLocked indicates structural mutation after Flush, or a second Flush.
	ErrLocked = errors.New("core: graph is locked after flush")
	// ErrNoEdges indicates a derived quantity was requested on an edgeless graph.
	ErrNoEdges = errors.New("core: graph has no edges")
	// ErrBadQuantile indicates a percentile outside [0, 100].
	ErrBadQuantile = errors.New("core: quantile must lie in [0, 100]")
)

// Bridge is the minimal capability set shared by every backend: dense,
// append-only node insertion, unit edges, neighbor queries and node
// weights. The facade in package graph delegates to it one-to-one.
//
// Backends that cannot delete (the clique table) return ErrNotSupported
// from DeleteNode/DeleteEdge; callers must not rely on deletion.
type Bridge interface {
	// AddNode appends a node. id must equal NNodes() or ErrNodeOrder is
	// returned; this keeps ids dense in [0, NNodes).
	AddNode(id, weight int) error
	// AddNodes appends n nodes in one batch. weights may be nil (all
	// zero) or must have length n. Considerably faster than n calls to
	// AddNode; implementations must grow storage once, not per node.
	AddNodes(n int, nodeWeights []int) error
	// NNodes returns the number of nodes inserted so far.
	NNodes() int

	// AddEdge inserts the unit edge (i, j). Both endpoints must exist.
	AddEdge(i, j int) error
	// NEdges returns the number of edges inserted so far.
	NEdges() int
	// HasEdge reports whether (i, j) was inserted. Valid after Flush.
	HasEdge(i, j int) (bool, error)
	// Neighbors enumerates the adjacency list of i. Valid after Flush;
	// O(degree). The returned slice must not be mutated by the caller.
	Neighbors(i int) ([]int, error)
	// NNeighbors returns the degree of i in O(1). Valid after Flush.
	NNeighbors(i int) (int, error)

	// DeleteNode removes node i where supported.
	DeleteNode(i int) error
	// DeleteEdge removes edge (i, j) where supported.
	DeleteEdge(i, j int) error

	// NodeWeight returns the stored weight of node i.
	NodeWeight(i int) (int, error)

	// Flush finalizes adjacency storage. Must be called exactly once,
	// after all insertions and before any neighbor query.
	Flush() error
}

// WeightedBridge extends Bridge with float edge weights and the derived
// quantities the clustering algorithms need.
type WeightedBridge interface {
	Bridge

	// AddWeightedEdge inserts edge (i, j) carrying weight w.
	AddWeightedEdge(i, j int, w float64) error
	// SetEdgeWeight upserts the weight of (i, j): existing edges are
	// re-weighted, absent ones inserted.
	SetEdgeWeight(i, j int, w float64) error
	// EdgeWeight returns the weight of (i, j), or 0 if the edge is absent.
	EdgeWeight(i, j int) (float64, error)
	// EdgeWeightPercentile returns the edge weight at the q-th percentile,
	// q in [0, 100]. Used to derive clustering thresholds from the data.
	EdgeWeightPercentile(q float64) (float64, error)
	// Normalize rescales all edge weights so the maximum becomes 1.
	Normalize() error
}

// ClusterBridge extends WeightedBridge with the Markov-clustering matrix
// primitives. Availability is an explicit capability: when CanCluster
// reports false, every primitive is a no-op returning trivial or empty
// results, and MCL-based partitioning must be skipped by the caller.
type ClusterBridge interface {
	WeightedBridge

	// CanCluster reports whether the matrix kernel was enabled.
	CanCluster() bool
	// Expand raises the cluster matrix to the given power, propagating
	// multi-hop connectivity.
	Expand(factor int) error
	// Inflate raises entries element-wise to the given power and then
	// renormalizes columns, sharpening strong paths against weak ones.
	Inflate(factor float64) error
	// ColL1Norm renormalizes every column to unit L1 norm.
	ColL1Norm() error
	// Prune drops near-zero entries to keep the matrix sparse.
	Prune() error
	// MCLStep runs one expand-inflate-prune round and returns the largest
	// absolute entry change, the convergence measure of the MCL loop.
	MCLStep(expandFactor int, inflateFactor float64) (float64, error)
	// MCLClusters reads connected components off the converged matrix.
	MCLClusters() [][]int
}
