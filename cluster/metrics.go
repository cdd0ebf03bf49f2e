package cluster

import (
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
)

// Soed computes the sum of external degrees: every hyperedge spanning
// k > 1 blocks contributes k times its weight. Hyperedges inside one
// block contribute nothing.
//
// Requires a flushed hypergraph with a partition in place.
func Soed[B core.Bridge](h *graph.Hypergraph[B]) (int, error) {
	return foldHyperedges(h, func(k, w int) int {
		if k > 1 {
			return k * w
		}

		return 0
	})
}

// Mincut computes the total weight of cut hyperedges: every hyperedge
// spanning more than one block contributes its weight once.
func Mincut[B core.Bridge](h *graph.Hypergraph[B]) (int, error) {
	return foldHyperedges(h, func(k, w int) int {
		if k > 1 {
			return w
		}

		return 0
	})
}

// KMetric computes the k-1 metric: every hyperedge spanning k blocks
// contributes (k-1) times its weight.
func KMetric[B core.Bridge](h *graph.Hypergraph[B]) (int, error) {
	return foldHyperedges(h, func(k, w int) int {
		return (k - 1) * w
	})
}

// foldHyperedges accumulates contrib(k, weight) over all hyperedges,
// where k is the member block count after the sequential unique pass.
func foldHyperedges[B core.Bridge](h *graph.Hypergraph[B], contrib func(k, w int) int) (int, error) {
	p := h.Partition()
	total := 0
	for e := 0; e < h.NHyperedges(); e++ {
		members, err := h.HyperedgeNodes(e)
		if err != nil {
			return 0, err
		}
		w, err := h.HyperedgeWeight(e)
		if err != nil {
			return 0, err
		}
		total += contrib(blockRuns(members, p), w)
	}

	return total, nil
}

// blockRuns counts the member blocks surviving a sequential unique
// pass. Only adjacent duplicates collapse: the count is defined over
// the as-iterated member order, not a canonicalized multiset.
func blockRuns(members, partition []int) int {
	runs := 0
	prev := 0
	for i, m := range members {
		b := partition[m]
		if i == 0 || b != prev {
			runs++
			prev = b
		}
	}

	return runs
}
