package core

import "sort"

// CliqueGraph is the clique-table backend: a fixed-capacity,
// append-only adjacency-list graph with unit edge weights.
//
// It mirrors the reference clique-enumeration structure it wraps:
// nodes are appended with dense ids, edges are symmetric, deletion is
// never supported, and Flush sorts every adjacency list exactly once
// so that neighbor queries and binary-search edge lookups are valid.
type CliqueGraph struct {
	capacity int     // maximum node count, fixed at construction
	weights  []int   // node id -> weight
	adj      [][]int // node id -> neighbor ids, sorted after Flush
	nEdges   int     // number of undirected edges
	flushed  bool    // set by Flush; locks the structure
}

// interface conformance
var _ Bridge = (*CliqueGraph)(nil)

// NewCliqueGraph allocates a clique-table backend holding at most
// capacity nodes. The capacity is fixed; exceeding it yields ErrCapacity.
func NewCliqueGraph(capacity int) *CliqueGraph {
	if capacity < 0 {
		capacity = 0
	}

	return &CliqueGraph{
		capacity: capacity,
		weights:  make([]int, 0, capacity),
		adj:      make([][]int, 0, capacity),
	}
}

// AddNode appends node id with the given weight.
// id must equal the current node count (strict append order).
func (g *CliqueGraph) AddNode(id, weight int) error {
	if g.flushed {
		return ErrLocked
	}
	if id != len(g.weights) {
		return ErrNodeOrder
	}
	if len(g.weights) == g.capacity {
		return ErrCapacity
	}
	g.weights = append(g.weights, weight)
	g.adj = append(g.adj, nil)

	return nil
}

// AddNodes appends n nodes in one batch. nodeWeights may be nil (all
// zero) or must have length n. Storage grows once, not per node.
func (g *CliqueGraph) AddNodes(n int, nodeWeights []int) error {
	if g.flushed {
		return ErrLocked
	}
	if nodeWeights != nil && len(nodeWeights) != n {
		return ErrNodeIndex
	}
	if len(g.weights)+n > g.capacity {
		return ErrCapacity
	}
	// Single grow for both slices.
	if nodeWeights == nil {
		g.weights = append(g.weights, make([]int, n)...)
	} else {
		g.weights = append(g.weights, nodeWeights...)
	}
	g.adj = append(g.adj, make([][]int, n)...)

	return nil
}

// NNodes returns the number of nodes inserted so far.
func (g *CliqueGraph) NNodes() int { return len(g.weights) }

// AddEdge inserts the undirected unit edge (i, j).
// Both endpoints must already be present; self-loops are rejected.
func (g *CliqueGraph) AddEdge(i, j int) error {
	if g.flushed {
		return ErrLocked
	}
	if i < 0 || i >= len(g.weights) || j < 0 || j >= len(g.weights) {
		return ErrNodeIndex
	}
	if i == j {
		return ErrSelfLoop
	}
	g.adj[i] = append(g.adj[i], j)
	g.adj[j] = append(g.adj[j], i)
	g.nEdges++

	return nil
}

// NEdges returns the number of undirected edges inserted so far.
func (g *CliqueGraph) NEdges() int { return g.nEdges }

// HasEdge reports whether edge (i, j) exists.
// Valid after Flush; O(log degree) via binary search over the sorted list.
func (g *CliqueGraph) HasEdge(i, j int) (bool, error) {
	if !g.flushed {
		return false, ErrNotFlushed
	}
	if i < 0 || i >= len(g.weights) || j < 0 || j >= len(g.weights) {
		return false, ErrNodeIndex
	}
	row := g.adj[i]
	k := sort.SearchInts(row, j)

	return k < len(row) && row[k] == j, nil
}

// Neighbors returns the sorted adjacency list of node i.
// Valid after Flush; O(degree). The slice is shared, not copied.
func (g *CliqueGraph) Neighbors(i int) ([]int, error) {
	if !g.flushed {
		return nil, ErrNotFlushed
	}
	if i < 0 || i >= len(g.weights) {
		return nil, ErrNodeIndex
	}

	return g.adj[i], nil
}

// NNeighbors returns the degree of node i in O(1). Valid after Flush.
func (g *CliqueGraph) NNeighbors(i int) (int, error) {
	if !g.flushed {
		return 0, ErrNotFlushed
	}
	if i < 0 || i >= len(g.weights) {
		return 0, ErrNodeIndex
	}

	return len(g.adj[i]), nil
}

// DeleteNode is never supported by the clique table.
func (g *CliqueGraph) DeleteNode(int) error { return ErrNotSupported }

// DeleteEdge is never supported by the clique table.
func (g *CliqueGraph) DeleteEdge(int, int) error { return ErrNotSupported }

// NodeWeight returns the stored weight of node i.
func (g *CliqueGraph) NodeWeight(i int) (int, error) {
	if i < 0 || i >= len(g.weights) {
		return 0, ErrNodeIndex
	}

	return g.weights[i], nil
}

// Flush sorts every adjacency list and locks the structure.
// Must be called exactly once; a second call returns ErrLocked.
func (g *CliqueGraph) Flush() error {
	if g.flushed {
		return ErrLocked
	}
	for i := range g.adj {
		sort.Ints(g.adj[i])
	}
	g.flushed = true

	return nil
}
