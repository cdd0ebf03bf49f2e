package cluster

import (
	"sort"

	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
)

// mstEdge is one candidate forest edge, endpoints i < j.
type mstEdge struct {
	i, j int
	w    float64
}

// MST clusters by spanning forest: Kruskal over the edges whose weight
// (read as a distance) stays within cutoff, using a disjoint-set with
// path compression and union by rank. The connected components of the
// resulting forest are the clusters; components smaller than minPts
// are demoted to Noise.
//
// Returns per-node labels (Noise or 0..k-1, clusters numbered by their
// smallest member) and the cluster count k. Requires a flushed graph.
// Complexity: O(E log E + α(V)·E).
func MST[B core.WeightedBridge](g *graph.Graph[B], cutoff float64, minPts int) ([]int, int, error) {
	// 1. Validate parameters.
	if minPts < 1 {
		return nil, 0, ErrBadMinPts
	}
	n := g.NNodes()

	// 2. Collect each undirected edge once, dropping those past cutoff.
	edges := make([]mstEdge, 0, g.NEdges())
	for i := 0; i < n; i++ {
		nbrs, err := g.Neighbors(i)
		if err != nil {
			return nil, 0, err
		}
		for _, j := range nbrs {
			if j <= i {
				continue
			}
			w, err := g.Backend().EdgeWeight(i, j)
			if err != nil {
				return nil, 0, err
			}
			if w <= cutoff {
				edges = append(edges, mstEdge{i: i, j: j, w: w})
			}
		}
	}

	// 3. Sort ascending by weight; the collection order above breaks
	//    ties deterministically under the stable sort.
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].w < edges[b].w })

	// 4. Kruskal over the surviving edges: union endpoints in distinct
	//    components. Cycle edges are skipped; the forest is what remains.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	for _, e := range edges {
		ri, rj := find(e.i), find(e.j)
		if ri == rj {
			continue
		}
		if rank[ri] < rank[rj] {
			parent[ri] = rj
		} else {
			parent[rj] = ri
			if rank[ri] == rank[rj] {
				rank[ri]++
			}
		}
	}

	// 5. Read components off the forest; small ones become Noise,
	//    the rest are numbered by first appearance in node order.
	sizes := make(map[int]int, n)
	for v := 0; v < n; v++ {
		sizes[find(v)]++
	}
	labels := make([]int, n)
	clusterOf := make(map[int]int)
	nClusters := 0
	for v := 0; v < n; v++ {
		r := find(v)
		if sizes[r] < minPts {
			labels[v] = Noise

			continue
		}
		id, seen := clusterOf[r]
		if !seen {
			id = nClusters
			clusterOf[r] = id
			nClusters++
		}
		labels[v] = id
	}

	return labels, nClusters, nil
}
