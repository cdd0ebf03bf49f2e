package core

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DefaultEdgeWeight is the weight assigned by the unit AddEdge path.
const DefaultEdgeWeight = 1.0

// WeightedGraph is the generalized backend: node and edge weights,
// directed or undirected, with sparse or dense adjacency storage and an
// optional clustering capability backed by a gonum matrix kernel.
//
// Construction is append-only and the graph locks on Flush, after which
// only weight rescaling (Normalize, SetEdgeWeight on existing edges) and
// queries remain legal. Edges are buffered in per-node hash rows during
// the build phase; Flush materializes sorted neighbor lists and, in
// dense mode, dense float rows for O(1) weight lookup.
type WeightedGraph struct {
	directed bool // directed edges; default undirected
	dense    bool // materialize dense rows on Flush
	cluster  bool // enable the Markov-clustering matrix kernel

	nodeWeights []int             // node id -> weight
	rows        []map[int]float64 // node id -> {neighbor: weight}
	nbrs        [][]int           // sorted neighbor lists, built by Flush
	denseRows   [][]float64       // dense weight rows, built by Flush in dense mode
	nEdges      int
	locked      bool

	mcl *mclKernel // nil unless cluster capability enabled
}

// interface conformance
var (
	_ Bridge         = (*WeightedGraph)(nil)
	_ WeightedBridge = (*WeightedGraph)(nil)
	_ ClusterBridge  = (*WeightedGraph)(nil)
)

// WeightedOption configures a WeightedGraph at construction time.
type WeightedOption func(*WeightedGraph)

// WithDirected makes edges one-way: AddEdge(i, j) leaves j's adjacency
// untouched.
func WithDirected() WeightedOption {
	return func(g *WeightedGraph) { g.directed = true }
}

// WithDense materializes dense weight rows on Flush, trading O(n) memory
// per node for O(1) weight lookup.
func WithDense() WeightedOption {
	return func(g *WeightedGraph) { g.dense = true }
}

// WithClustering enables the Markov-clustering matrix kernel. Without it
// the ClusterBridge primitives are no-ops returning empty results and
// CanCluster reports false.
func WithClustering() WeightedOption {
	return func(g *WeightedGraph) { g.cluster = true }
}

// NewWeightedGraph allocates an empty generalized backend.
// Defaults: undirected, sparse storage, no clustering kernel.
func NewWeightedGraph(opts ...WeightedOption) *WeightedGraph {
	g := &WeightedGraph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode appends node id with the given weight.
// id must equal the current node count (strict append order).
func (g *WeightedGraph) AddNode(id, weight int) error {
	if g.locked {
		return ErrLocked
	}
	if id != len(g.nodeWeights) {
		return ErrNodeOrder
	}
	g.nodeWeights = append(g.nodeWeights, weight)
	g.rows = append(g.rows, nil)

	return nil
}

// AddNodes appends n nodes in one batch; nodeWeights may be nil (all
// zero) or must have length n. Both slices grow exactly once, which is
// why this is much faster than n calls to AddNode.
func (g *WeightedGraph) AddNodes(n int, nodeWeights []int) error {
	if g.locked {
		return ErrLocked
	}
	if nodeWeights != nil && len(nodeWeights) != n {
		return ErrNodeIndex
	}
	if nodeWeights == nil {
		g.nodeWeights = append(g.nodeWeights, make([]int, n)...)
	} else {
		g.nodeWeights = append(g.nodeWeights, nodeWeights...)
	}
	g.rows = append(g.rows, make([]map[int]float64, n)...)

	return nil
}

// NNodes returns the number of nodes inserted so far.
func (g *WeightedGraph) NNodes() int { return len(g.nodeWeights) }

// AddEdge inserts (i, j) with the default unit weight.
func (g *WeightedGraph) AddEdge(i, j int) error {
	return g.AddWeightedEdge(i, j, DefaultEdgeWeight)
}

// AddWeightedEdge inserts edge (i, j) carrying weight w.
// Undirected graphs mirror the entry into j's row.
func (g *WeightedGraph) AddWeightedEdge(i, j int, w float64) error {
	if g.locked {
		return ErrLocked
	}

	return g.put(i, j, w, true)
}

// SetEdgeWeight upserts the weight of (i, j). Existing edges may be
// re-weighted even after Flush; inserting a new edge after Flush fails
// with ErrLocked.
func (g *WeightedGraph) SetEdgeWeight(i, j int, w float64) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if g.rows[i] != nil {
		if _, ok := g.rows[i][j]; ok {
			g.rows[i][j] = w
			if !g.directed {
				g.rows[j][i] = w
			}
			if g.denseRows != nil {
				g.denseRows[i][j] = w
				if !g.directed {
					g.denseRows[j][i] = w
				}
			}

			return nil
		}
	}
	if g.locked {
		return ErrLocked
	}

	return g.put(i, j, w, true)
}

// put writes the adjacency entry, mirroring for undirected graphs.
func (g *WeightedGraph) put(i, j int, w float64, count bool) error {
	if err := g.checkPair(i, j); err != nil {
		return err
	}
	if g.rows[i] == nil {
		g.rows[i] = make(map[int]float64)
	}
	_, existed := g.rows[i][j]
	g.rows[i][j] = w
	if !g.directed {
		if g.rows[j] == nil {
			g.rows[j] = make(map[int]float64)
		}
		g.rows[j][i] = w
	}
	if count && !existed {
		g.nEdges++
	}

	return nil
}

func (g *WeightedGraph) checkPair(i, j int) error {
	if i < 0 || i >= len(g.nodeWeights) || j < 0 || j >= len(g.nodeWeights) {
		return ErrNodeIndex
	}
	if i == j {
		return ErrSelfLoop
	}

	return nil
}

// NEdges returns the number of distinct edges inserted so far.
func (g *WeightedGraph) NEdges() int { return g.nEdges }

// HasEdge reports whether (i, j) exists. Valid after Flush; O(1).
func (g *WeightedGraph) HasEdge(i, j int) (bool, error) {
	if !g.locked {
		return false, ErrNotFlushed
	}
	if err := g.checkPair(i, j); err != nil {
		return false, err
	}
	if g.rows[i] == nil {
		return false, nil
	}
	_, ok := g.rows[i][j]

	return ok, nil
}

// EdgeWeight returns the weight of (i, j), or 0 if the edge is absent.
// Valid after Flush; O(1).
func (g *WeightedGraph) EdgeWeight(i, j int) (float64, error) {
	if !g.locked {
		return 0, ErrNotFlushed
	}
	if err := g.checkPair(i, j); err != nil {
		return 0, err
	}
	if g.denseRows != nil {
		return g.denseRows[i][j], nil
	}
	if g.rows[i] == nil {
		return 0, nil
	}

	return g.rows[i][j], nil
}

// Neighbors returns the sorted neighbor list of node i.
// Valid after Flush; O(degree). The slice is shared, not copied.
func (g *WeightedGraph) Neighbors(i int) ([]int, error) {
	if !g.locked {
		return nil, ErrNotFlushed
	}
	if i < 0 || i >= len(g.nodeWeights) {
		return nil, ErrNodeIndex
	}

	return g.nbrs[i], nil
}

// NNeighbors returns the degree of node i in O(1). Valid after Flush.
func (g *WeightedGraph) NNeighbors(i int) (int, error) {
	if !g.locked {
		return 0, ErrNotFlushed
	}
	if i < 0 || i >= len(g.nodeWeights) {
		return 0, ErrNodeIndex
	}

	return len(g.nbrs[i]), nil
}

// DeleteNode is rejected: the build phase is append-only and the graph
// locks on Flush.
func (g *WeightedGraph) DeleteNode(int) error { return ErrNotSupported }

// DeleteEdge is rejected for the same reason as DeleteNode.
func (g *WeightedGraph) DeleteEdge(int, int) error { return ErrNotSupported }

// NodeWeight returns the stored weight of node i.
func (g *WeightedGraph) NodeWeight(i int) (int, error) {
	if i < 0 || i >= len(g.nodeWeights) {
		return 0, ErrNodeIndex
	}

	return g.nodeWeights[i], nil
}

// EdgeWeightPercentile returns the edge weight at the q-th percentile of
// all stored edge weights, q in [0, 100]. Each undirected edge counts
// once. Valid after Flush; O(E log E).
func (g *WeightedGraph) EdgeWeightPercentile(q float64) (float64, error) {
	if !g.locked {
		return 0, ErrNotFlushed
	}
	if q < 0 || q > 100 {
		return 0, ErrBadQuantile
	}
	ws := g.edgeWeights()
	if len(ws) == 0 {
		return 0, ErrNoEdges
	}
	sort.Float64s(ws)

	return stat.Quantile(q/100, stat.Empirical, ws, nil), nil
}

// edgeWeights collects every stored edge weight, once per edge.
func (g *WeightedGraph) edgeWeights() []float64 {
	ws := make([]float64, 0, g.nEdges)
	for i, row := range g.rows {
		for j, w := range row {
			if g.directed || i < j {
				ws = append(ws, w)
			}
		}
	}

	return ws
}

// Normalize rescales all edge weights so the maximum becomes 1.
// A no-op on edgeless graphs or when the maximum is not positive.
// Weight rescaling is legal after Flush; the clustering kernel, if
// built, is rescaled along with the adjacency.
func (g *WeightedGraph) Normalize() error {
	var maxW float64
	for _, row := range g.rows {
		for _, w := range row {
			if w > maxW {
				maxW = w
			}
		}
	}
	if maxW <= 0 {
		return nil
	}
	for i, row := range g.rows {
		for j, w := range row {
			row[j] = w / maxW
			if g.denseRows != nil {
				g.denseRows[i][j] = w / maxW
			}
		}
	}
	if g.mcl != nil {
		g.mcl.scale(1 / maxW)
	}

	return nil
}

// Flush materializes sorted neighbor lists (and dense rows in dense
// mode), builds the clustering kernel when enabled, and locks the graph.
// Must be called exactly once; a second call returns ErrLocked.
func (g *WeightedGraph) Flush() error {
	if g.locked {
		return ErrLocked
	}
	n := len(g.nodeWeights)
	g.nbrs = make([][]int, n)
	for i, row := range g.rows {
		lst := make([]int, 0, len(row))
		for j := range row {
			lst = append(lst, j)
		}
		sort.Ints(lst)
		g.nbrs[i] = lst
	}
	if g.dense {
		g.denseRows = make([][]float64, n)
		for i := range g.denseRows {
			g.denseRows[i] = make([]float64, n)
			for j, w := range g.rows[i] {
				g.denseRows[i][j] = w
			}
		}
	}
	if g.cluster {
		g.mcl = newMCLKernel(n, g.rows)
	}
	g.locked = true

	return nil
}
