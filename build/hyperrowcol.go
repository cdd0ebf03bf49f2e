package build

import (
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
	"github.com/mipstruct/dwgraph/weights"
)

// nonzeroNodeWeight is the unit weight of a nonzero-entry node; block
// balance over nonzeros is what external partitioners should see.
const nonzeroNodeWeight = 1

// Hyperrowcols builds the full incidence hypergraph: one node per
// nonzero matrix entry, one hyperedge per row spanning the row's
// nonzeros and one per column spanning the column's nonzeros. Nothing
// collapses: the bipartite incidence survives in full.
//
// Nonzero nodes are enumerated row-major, so node ids follow the
// matrix traversal order of FromMatrix.
type Hyperrowcols[B core.Bridge] struct {
	h *graph.Hypergraph[B]
	w weights.Config
	m Matrix

	consNodes [][]int // constraint -> its nonzero-entry nodes
	varNodes  [][]int // variable -> its nonzero-entry nodes
}

// NewHyperrowcols wraps a fresh backend in a row-column-hypergraph
// builder.
func NewHyperrowcols[B core.Bridge](b B, w weights.Config) *Hyperrowcols[B] {
	return &Hyperrowcols[B]{h: graph.NewHypergraph(b), w: w}
}

// Hypergraph exposes the owned facade.
func (hrc *Hyperrowcols[B]) Hypergraph() *graph.Hypergraph[B] { return hrc.h }

// ConsNodes returns the nonzero-entry nodes of constraint c.
func (hrc *Hyperrowcols[B]) ConsNodes(c int) ([]int, error) {
	if hrc.m == nil {
		return nil, ErrNotBuilt
	}
	if c < 0 || c >= len(hrc.consNodes) {
		return nil, ErrConsIndex
	}

	return hrc.consNodes[c], nil
}

// VarNodes returns the nonzero-entry nodes of variable v.
func (hrc *Hyperrowcols[B]) VarNodes(v int) ([]int, error) {
	if hrc.m == nil {
		return nil, ErrNotBuilt
	}
	if v < 0 || v >= len(hrc.varNodes) {
		return nil, ErrVarIndex
	}

	return hrc.varNodes[v], nil
}

// FromMatrix populates the hypergraph and flushes it. Row hyperedges
// carry the constraint weight, column hyperedges the per-kind variable
// weight; nonzero nodes carry unit weight.
func (hrc *Hyperrowcols[B]) FromMatrix(m Matrix) error {
	if hrc.m != nil {
		return ErrBuilt
	}
	hrc.consNodes = make([][]int, m.NConss())
	hrc.varNodes = make([][]int, m.NVars())
	nnz := 0
	for c := 0; c < m.NConss(); c++ {
		for _, v := range m.ConsVars(c) {
			hrc.consNodes[c] = append(hrc.consNodes[c], nnz)
			hrc.varNodes[v] = append(hrc.varNodes[v], nnz)
			nnz++
		}
	}
	ws := make([]int, nnz)
	for i := range ws {
		ws[i] = nonzeroNodeWeight
	}
	if err := hrc.h.AddNodes(nnz, ws); err != nil {
		return err
	}
	for _, nodes := range hrc.consNodes {
		if len(nodes) == 0 {
			continue
		}
		if err := hrc.h.AddHyperedge(nodes, hrc.w.Constraint()); err != nil {
			return err
		}
	}
	for v, nodes := range hrc.varNodes {
		if len(nodes) == 0 {
			continue
		}
		if err := hrc.h.AddHyperedge(nodes, hrc.w.Variable(m.VarKind(v))); err != nil {
			return err
		}
	}
	if err := hrc.h.Flush(); err != nil {
		return err
	}
	hrc.m = m

	return nil
}

// DecompFromPartition derives block membership from the nonzero-entry
// partition: a constraint whose nonzeros all share one block joins it,
// one spanning several blocks becomes linking; variables likewise.
// Empty blocks void the decomposition.
func (hrc *Hyperrowcols[B]) DecompFromPartition() (*Decomposition, error) {
	if hrc.m == nil {
		return nil, ErrNotBuilt
	}
	p := hrc.h.Partition()
	if anyUnassigned(p) {
		return nil, ErrIncompletePartition
	}
	consBlock := make(map[int]int, len(hrc.consNodes))
	for c, nodes := range hrc.consNodes {
		if len(nodes) == 0 {
			continue
		}
		b := p[nodes[0]]
		for _, n := range nodes[1:] {
			b = blockSpan(b, p[n])
		}
		consBlock[c] = b
	}
	varBlock := make(map[int]int, len(hrc.varNodes))
	for v, nodes := range hrc.varNodes {
		if len(nodes) == 0 {
			continue
		}
		b := p[nodes[0]]
		for _, n := range nodes[1:] {
			b = blockSpan(b, p[n])
		}
		varBlock[v] = b
	}

	return assembleDecomp(nBlocksOf(p), consBlock, varBlock), nil
}
