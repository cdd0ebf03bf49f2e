package core

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// mclPruneThreshold is the magnitude below which Prune zeroes entries.
	mclPruneThreshold = 1e-4
	// mclSupportEps is the magnitude above which an entry counts as
	// structural support when reading clusters off the converged matrix.
	mclSupportEps = 1e-8
)

// mclKernel holds the dense column-stochastic matrix the Markov
// clustering primitives iterate on. It is built once, at Flush, from
// the adjacency rows plus a unit diagonal (self-loops stabilize the
// expand/inflate iteration).
type mclKernel struct {
	n int
	m *mat.Dense
}

// newMCLKernel mirrors the adjacency into a dense matrix.
// Returns a trivial kernel for the empty graph.
func newMCLKernel(n int, rows []map[int]float64) *mclKernel {
	if n == 0 {
		return &mclKernel{}
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
		for j, w := range rows[i] {
			m.Set(i, j, w)
		}
	}

	return &mclKernel{n: n, m: m}
}

func (k *mclKernel) scale(s float64) {
	if k.m == nil {
		return
	}
	k.m.Scale(s, k.m)
}

// expand raises the matrix to the given power via repeated
// multiplication, propagating multi-hop connectivity.
func (k *mclKernel) expand(factor int) {
	if k.m == nil || factor < 2 {
		return
	}
	res := mat.DenseCopyOf(k.m)
	for p := 1; p < factor; p++ {
		var t mat.Dense
		t.Mul(res, k.m)
		res = &t
	}
	k.m = res
}

// inflate raises every entry to the given power and renormalizes the
// columns, sharpening strong paths relative to weak ones.
func (k *mclKernel) inflate(factor float64) {
	if k.m == nil {
		return
	}
	for i := 0; i < k.n; i++ {
		for j := 0; j < k.n; j++ {
			k.m.Set(i, j, math.Pow(k.m.At(i, j), factor))
		}
	}
	k.colL1Norm()
}

// colL1Norm renormalizes every column to unit L1 norm.
func (k *mclKernel) colL1Norm() {
	if k.m == nil {
		return
	}
	for j := 0; j < k.n; j++ {
		var sum float64
		for i := 0; i < k.n; i++ {
			sum += math.Abs(k.m.At(i, j))
		}
		if sum == 0 {
			continue
		}
		for i := 0; i < k.n; i++ {
			k.m.Set(i, j, k.m.At(i, j)/sum)
		}
	}
}

// prune zeroes near-zero entries to keep subsequent multiplications cheap.
func (k *mclKernel) prune() {
	if k.m == nil {
		return
	}
	for i := 0; i < k.n; i++ {
		for j := 0; j < k.n; j++ {
			if math.Abs(k.m.At(i, j)) < mclPruneThreshold {
				k.m.Set(i, j, 0)
			}
		}
	}
}

// step runs one expand-inflate-prune round and reports the largest
// absolute entry change, the convergence measure of the MCL loop.
func (k *mclKernel) step(expandFactor int, inflateFactor float64) float64 {
	if k.m == nil {
		return 0
	}
	prev := mat.DenseCopyOf(k.m)
	k.expand(expandFactor)
	k.inflate(inflateFactor)
	k.prune()
	var delta float64
	for i := 0; i < k.n; i++ {
		for j := 0; j < k.n; j++ {
			if d := math.Abs(k.m.At(i, j) - prev.At(i, j)); d > delta {
				delta = d
			}
		}
	}

	return delta
}

// clusters reads the connected components of the converged matrix
// support off a union-find structure. Components are reported sorted by
// their smallest member, members ascending.
func (k *mclKernel) clusters() [][]int {
	if k.m == nil {
		return nil
	}
	parent := make([]int, k.n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	for i := 0; i < k.n; i++ {
		for j := 0; j < k.n; j++ {
			if i == j || k.m.At(i, j) <= mclSupportEps {
				continue
			}
			ri, rj := find(i), find(j)
			if ri != rj {
				parent[rj] = ri
			}
		}
	}
	byRoot := make(map[int][]int, k.n)
	order := make([]int, 0, k.n)
	for i := 0; i < k.n; i++ {
		r := find(i)
		if _, seen := byRoot[r]; !seen {
			order = append(order, r)
		}
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(order))
	for _, r := range order {
		out = append(out, byRoot[r])
	}

	return out
}

// ---- ClusterBridge delegation on WeightedGraph ----

// CanCluster reports whether the clustering kernel is available, i.e.
// the graph was built WithClustering and has been flushed.
func (g *WeightedGraph) CanCluster() bool { return g.mcl != nil && g.mcl.m != nil }

// Expand raises the cluster matrix to the given power.
// A no-op without the clustering capability.
func (g *WeightedGraph) Expand(factor int) error {
	if g.mcl != nil {
		g.mcl.expand(factor)
	}

	return nil
}

// Inflate raises entries element-wise and renormalizes columns.
// A no-op without the clustering capability.
func (g *WeightedGraph) Inflate(factor float64) error {
	if g.mcl != nil {
		g.mcl.inflate(factor)
	}

	return nil
}

// ColL1Norm renormalizes every kernel column to unit L1 norm.
// A no-op without the clustering capability.
func (g *WeightedGraph) ColL1Norm() error {
	if g.mcl != nil {
		g.mcl.colL1Norm()
	}

	return nil
}

// Prune drops near-zero kernel entries.
// A no-op without the clustering capability.
func (g *WeightedGraph) Prune() error {
	if g.mcl != nil {
		g.mcl.prune()
	}

	return nil
}

// MCLStep runs one expand-inflate-prune round and returns the largest
// absolute entry change. Returns 0 without the clustering capability.
func (g *WeightedGraph) MCLStep(expandFactor int, inflateFactor float64) (float64, error) {
	if g.mcl == nil {
		return 0, nil
	}

	return g.mcl.step(expandFactor, inflateFactor), nil
}

// MCLClusters reads connected components off the converged matrix.
// Returns nil without the clustering capability.
func (g *WeightedGraph) MCLClusters() [][]int {
	if g.mcl == nil {
		return nil
	}

	return g.mcl.clusters()
}
