package build

import (
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
	"github.com/mipstruct/dwgraph/weights"
)

// Hypercols builds the column hypergraph: one node per constraint, one
// hyperedge per variable spanning all constraints containing it.
// Variables appearing in no constraint produce no hyperedge.
type Hypercols[B core.Bridge] struct {
	h        *graph.Hypergraph[B]
	w        weights.Config
	m        Matrix
	varConss [][]int // variable -> constraints containing it
}

// NewHypercols wraps a fresh backend in a column-hypergraph builder.
func NewHypercols[B core.Bridge](b B, w weights.Config) *Hypercols[B] {
	return &Hypercols[B]{h: graph.NewHypergraph(b), w: w}
}

// Hypergraph exposes the owned facade.
func (hc *Hypercols[B]) Hypergraph() *graph.Hypergraph[B] { return hc.h }

// FromMatrix populates the hypergraph and flushes it.
func (hc *Hypercols[B]) FromMatrix(m Matrix) error {
	if hc.m != nil {
		return ErrBuilt
	}
	nConss := m.NConss()
	ws := make([]int, nConss)
	for c := range ws {
		ws[c] = hc.w.Constraint()
	}
	if err := hc.h.AddNodes(nConss, ws); err != nil {
		return err
	}
	hc.varConss = transposeIncidence(m)
	for v, conss := range hc.varConss {
		if len(conss) == 0 {
			continue
		}
		if err := hc.h.AddHyperedge(conss, hc.w.Variable(m.VarKind(v))); err != nil {
			return err
		}
	}
	if err := hc.h.Flush(); err != nil {
		return err
	}
	hc.m = m

	return nil
}

// DecompFromPartition assigns every constraint the block of its node
// and derives variable blocks from their hyperedges: agreement joins
// the block, spanning several blocks means linking. Empty blocks void
// the decomposition.
func (hc *Hypercols[B]) DecompFromPartition() (*Decomposition, error) {
	if hc.m == nil {
		return nil, ErrNotBuilt
	}
	p := hc.h.Partition()
	if anyUnassigned(p) {
		return nil, ErrIncompletePartition
	}
	consBlock := make(map[int]int, len(p))
	for c, b := range p {
		consBlock[c] = b
	}
	varBlock := make(map[int]int, hc.m.NVars())
	for v, conss := range hc.varConss {
		if len(conss) == 0 {
			continue
		}
		b := p[conss[0]]
		for _, c := range conss[1:] {
			b = blockSpan(b, p[c])
		}
		varBlock[v] = b
	}

	return assembleDecomp(nBlocksOf(p), consBlock, varBlock), nil
}
