package build

import (
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
	"github.com/mipstruct/dwgraph/weights"
)

// Bipartite builds the variable-constraint incidence graph: variable v
// becomes node v, constraint c becomes node NVars+c, and an edge joins
// them iff v appears in c. Coefficient values are never inspected.
//
// The same index-offset convention (variables first, constraints after)
// is shared by every representation derived from the bipartite view.
type Bipartite[B core.Bridge] struct {
	g *graph.Graph[B]
	w weights.Config
	m Matrix

	// Dense remapping for partial builds; for a full build these are
	// identity permutations over the matrix index spaces.
	varIdx  []int // builder variable position -> matrix variable index
	consIdx []int // builder constraint position -> matrix constraint index
}

// NewBipartite wraps a fresh backend in a bipartite builder with the
// given weight table. The builder owns the facade and the backend.
func NewBipartite[B core.Bridge](b B, w weights.Config) *Bipartite[B] {
	return &Bipartite[B]{g: graph.New(b), w: w}
}

// Graph exposes the owned facade, e.g. for partitioning or file I/O.
func (bp *Bipartite[B]) Graph() *graph.Graph[B] { return bp.g }

// NVars returns the number of variable nodes in the built graph.
func (bp *Bipartite[B]) NVars() int { return len(bp.varIdx) }

// NConss returns the number of constraint nodes in the built graph.
func (bp *Bipartite[B]) NConss() int { return len(bp.consIdx) }

// VarNodeID returns the graph node of builder variable position p.
func (bp *Bipartite[B]) VarNodeID(p int) int { return p }

// ConsNodeID returns the graph node of builder constraint position p.
func (bp *Bipartite[B]) ConsNodeID(p int) int { return len(bp.varIdx) + p }

// FromMatrix populates the graph from the whole matrix and flushes it.
func (bp *Bipartite[B]) FromMatrix(m Matrix) error {
	return bp.FromPartialMatrix(m, identity(m.NConss()), identity(m.NVars()))
}

// FromPartialMatrix populates the graph from the still-open rows and
// columns of an in-progress decomposition, remapping the surviving
// matrix indices onto a dense builder index space. openConss and
// openVars list matrix indices; incidences touching closed variables
// are skipped.
func (bp *Bipartite[B]) FromPartialMatrix(m Matrix, openConss, openVars []int) error {
	if bp.m != nil {
		return ErrBuilt
	}
	for _, c := range openConss {
		if c < 0 || c >= m.NConss() {
			return ErrConsIndex
		}
	}
	varPos := make(map[int]int, len(openVars)) // matrix var -> builder position
	varWs := make([]int, len(openVars))
	for p, v := range openVars {
		if v < 0 || v >= m.NVars() {
			return ErrVarIndex
		}
		varPos[v] = p
		varWs[p] = bp.w.Variable(m.VarKind(v))
	}
	if err := bp.g.AddNodes(len(openVars), varWs); err != nil {
		return err
	}
	consWs := make([]int, len(openConss))
	for p := range openConss {
		consWs[p] = bp.w.Constraint()
	}
	if err := bp.g.AddNodes(len(openConss), consWs); err != nil {
		return err
	}
	nVars := len(openVars)
	for p, c := range openConss {
		for _, v := range m.ConsVars(c) {
			vp, open := varPos[v]
			if !open {
				continue
			}
			if err := bp.g.AddEdge(vp, nVars+p); err != nil {
				return err
			}
		}
	}
	if err := bp.g.Flush(); err != nil {
		return err
	}
	bp.m = m
	bp.varIdx = append([]int(nil), openVars...)
	bp.consIdx = append([]int(nil), openConss...)

	return nil
}

// DecompFromPartition reads the node partition back into a block
// structure over the original matrix indices. Constraints take the
// block of their node; a variable incident to a constraint of another
// block becomes linking. A partition leaving any block without
// constraints yields (nil, nil).
func (bp *Bipartite[B]) DecompFromPartition() (*Decomposition, error) {
	if bp.m == nil {
		return nil, ErrNotBuilt
	}
	p := bp.g.Partition()
	if anyUnassigned(p) {
		return nil, ErrIncompletePartition
	}
	nVars := len(bp.varIdx)

	consBlock := make(map[int]int, len(bp.consIdx))
	for pos, c := range bp.consIdx {
		consBlock[c] = p[nVars+pos]
	}
	varBlock := make(map[int]int, len(bp.varIdx))
	for pos, v := range bp.varIdx {
		varBlock[v] = p[pos]
	}
	// A variable whose own block differs from any incident constraint's
	// block cannot be private to either; it links them.
	for pos, c := range bp.consIdx {
		cb := p[nVars+pos]
		for _, v := range bp.m.ConsVars(c) {
			if vb, open := varBlock[v]; open && vb != cb {
				varBlock[v] = linkingMark
			}
		}
	}

	return assembleDecomp(nBlocksOf(p), consBlock, varBlock), nil
}

// identity returns the permutation 0..n-1.
func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// nBlocksOf returns one past the largest block id in the partition.
func nBlocksOf(partition []int) int {
	maxBlock := -1
	for _, b := range partition {
		if b > maxBlock {
			maxBlock = b
		}
	}

	return maxBlock + 1
}
