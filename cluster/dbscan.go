package cluster

import (
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
)

// DBSCAN runs density-based clustering over the graph's edge weights
// read as distances: j is in i's eps-neighborhood iff the edge (i, j)
// exists with weight at most eps.
//
// A node with at least minPts neighbors in its eps-neighborhood is a
// core point; clusters grow by chaining through core points'
// neighborhoods. Non-core points reachable from a core point join its
// cluster as border points; everything else stays Noise.
//
// Returns per-node labels (Noise or 0..k-1) and the cluster count k.
// Requires a flushed graph. Complexity: O(V + E) neighborhood scans.
func DBSCAN[B core.WeightedBridge](g *graph.Graph[B], eps float64, minPts int) ([]int, int, error) {
	// 1. Validate parameters.
	if eps < 0 {
		return nil, 0, ErrBadEps
	}
	if minPts < 1 {
		return nil, 0, ErrBadMinPts
	}

	n := g.NNodes()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Noise
	}

	// 2. Seed a cluster at every yet-unlabeled core point, in node order
	//    for determinism.
	nClusters := 0
	for i := 0; i < n; i++ {
		if labels[i] != Noise {
			continue
		}
		seed, err := epsNeighborhood(g, i, eps)
		if err != nil {
			return nil, 0, err
		}
		if len(seed) < minPts {
			// Not a core point; it may still be claimed later as a
			// border point of some neighbor's cluster.
			continue
		}

		// 3. Grow the cluster by breadth-first chaining: border points
		//    get labeled, core points additionally extend the frontier.
		id := nClusters
		nClusters++
		labels[i] = id
		queue := append([]int(nil), seed...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]
			if labels[j] != Noise {
				continue
			}
			labels[j] = id
			reach, err := epsNeighborhood(g, j, eps)
			if err != nil {
				return nil, 0, err
			}
			if len(reach) >= minPts {
				queue = append(queue, reach...)
			}
		}
	}

	return labels, nClusters, nil
}

// epsNeighborhood lists i's neighbors within distance eps, excluding i.
func epsNeighborhood[B core.WeightedBridge](g *graph.Graph[B], i int, eps float64) ([]int, error) {
	nbrs, err := g.Neighbors(i)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(nbrs))
	for _, j := range nbrs {
		w, err := g.Backend().EdgeWeight(i, j)
		if err != nil {
			return nil, err
		}
		if w <= eps {
			out = append(out, j)
		}
	}

	return out, nil
}
