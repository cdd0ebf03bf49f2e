package cluster

import (
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
)

// MCL runs Markov clustering on a backend exposing the clustering
// capability: after an initial column normalization, it alternates
// expansion (matrix power, propagating multi-hop connectivity) and
// inflation (element-wise power plus column renormalization, sharpening
// strong paths) with pruning, until the largest entry change drops
// below o.Tol or o.MaxIters rounds have run. Clusters are the connected
// components of the converged matrix.
//
// Returns per-node labels (Noise or 0..k-1) and the cluster count k.
// ErrNoClusterSupport is returned when the backend was built without
// the capability; callers must probe CanCluster before relying on MCL.
func MCL[B core.ClusterBridge](g *graph.Graph[B], o MCLOptions) ([]int, int, error) {
	b := g.Backend()
	if !b.CanCluster() {
		return nil, 0, ErrNoClusterSupport
	}
	if o.ExpandFactor < 2 {
		o.ExpandFactor = DefaultMCLExpand
	}
	if o.InflateFactor <= 1 {
		o.InflateFactor = DefaultMCLInflate
	}
	if o.MaxIters < 1 {
		o.MaxIters = DefaultMCLMaxIters
	}
	if o.Tol <= 0 {
		o.Tol = DefaultMCLTol
	}

	// 1. Start from a column-stochastic matrix.
	if err := b.ColL1Norm(); err != nil {
		return nil, 0, err
	}

	// 2. Iterate expand/inflate/prune to convergence.
	for iter := 0; iter < o.MaxIters; iter++ {
		delta, err := b.MCLStep(o.ExpandFactor, o.InflateFactor)
		if err != nil {
			return nil, 0, err
		}
		if delta < o.Tol {
			break
		}
	}

	// 3. Read clusters off the converged matrix. Every node belongs to
	//    exactly one component, so no Noise arises here; the label array
	//    covers all real nodes.
	comps := b.MCLClusters()
	labels := make([]int, g.NNodes())
	for i := range labels {
		labels[i] = Noise
	}
	for id, comp := range comps {
		for _, v := range comp {
			if v < len(labels) {
				labels[v] = id
			}
		}
	}

	return labels, len(comps), nil
}
