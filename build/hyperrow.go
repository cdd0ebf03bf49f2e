package build

import (
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
	"github.com/mipstruct/dwgraph/weights"
)

// Hyperrows builds the row hypergraph: one node per variable, one
// hyperedge per constraint spanning all variables the constraint
// touches. Constraints without variables produce no hyperedge.
type Hyperrows[B core.Bridge] struct {
	h *graph.Hypergraph[B]
	w weights.Config
	m Matrix
}

// NewHyperrows wraps a fresh backend in a row-hypergraph builder.
func NewHyperrows[B core.Bridge](b B, w weights.Config) *Hyperrows[B] {
	return &Hyperrows[B]{h: graph.NewHypergraph(b), w: w}
}

// Hypergraph exposes the owned facade.
func (hr *Hyperrows[B]) Hypergraph() *graph.Hypergraph[B] { return hr.h }

// FromMatrix populates the hypergraph and flushes it.
func (hr *Hyperrows[B]) FromMatrix(m Matrix) error {
	if hr.m != nil {
		return ErrBuilt
	}
	nVars := m.NVars()
	ws := make([]int, nVars)
	for v := range ws {
		ws[v] = hr.w.Variable(m.VarKind(v))
	}
	if err := hr.h.AddNodes(nVars, ws); err != nil {
		return err
	}
	for c := 0; c < m.NConss(); c++ {
		vars := m.ConsVars(c)
		if len(vars) == 0 {
			continue
		}
		if err := hr.h.AddHyperedge(vars, hr.w.Constraint()); err != nil {
			return err
		}
	}
	if err := hr.h.Flush(); err != nil {
		return err
	}
	hr.m = m

	return nil
}

// DecompFromPartition derives block membership from the variable
// partition: a constraint whose variables all share one block joins it,
// one spanning several blocks becomes linking. Empty blocks void the
// decomposition.
func (hr *Hyperrows[B]) DecompFromPartition() (*Decomposition, error) {
	if hr.m == nil {
		return nil, ErrNotBuilt
	}
	p := hr.h.Partition()
	if anyUnassigned(p) {
		return nil, ErrIncompletePartition
	}
	consBlock := make(map[int]int, hr.m.NConss())
	for c := 0; c < hr.m.NConss(); c++ {
		vars := hr.m.ConsVars(c)
		if len(vars) == 0 {
			continue
		}
		b := p[vars[0]]
		for _, v := range vars[1:] {
			b = blockSpan(b, p[v])
		}
		consBlock[c] = b
	}
	varBlock := make(map[int]int, len(p))
	for v, b := range p {
		varBlock[v] = b
	}

	return assembleDecomp(nBlocksOf(p), consBlock, varBlock), nil
}
