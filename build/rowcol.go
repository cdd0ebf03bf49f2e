package build

import (
	"sort"

	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
	"github.com/mipstruct/dwgraph/weights"
)

// Rows builds the constraint projection graph: one node per constraint,
// an edge between two constraints iff some variable appears in both.
// Adjacency is computed by expanding every variable's constraint list
// into pairs and de-duplicating; self-pairs never arise. On weighted
// backends the edge carries the number of shared variables, a
// similarity the clustering algorithms can threshold on.
type Rows[B core.Bridge] struct {
	g        *graph.Graph[B]
	w        weights.Config
	m        Matrix
	varConss [][]int // variable -> constraints containing it
}

// NewRows wraps a fresh backend in a row-projection builder.
func NewRows[B core.Bridge](b B, w weights.Config) *Rows[B] {
	return &Rows[B]{g: graph.New(b), w: w}
}

// Graph exposes the owned facade.
func (r *Rows[B]) Graph() *graph.Graph[B] { return r.g }

// FromMatrix populates the projection graph and flushes it.
func (r *Rows[B]) FromMatrix(m Matrix) error {
	if r.m != nil {
		return ErrBuilt
	}
	nConss := m.NConss()
	ws := make([]int, nConss)
	for c := range ws {
		ws[c] = r.w.Constraint()
	}
	if err := r.g.AddNodes(nConss, ws); err != nil {
		return err
	}
	r.varConss = transposeIncidence(m)
	shared := countPairs(r.varConss)
	if err := addCoocEdges(r.g, shared); err != nil {
		return err
	}
	if err := r.g.Flush(); err != nil {
		return err
	}
	r.m = m

	return nil
}

// DecompFromPartition assigns every constraint the block of its node
// and derives variable blocks: a variable whose constraints agree on a
// block joins it, one spanning several blocks becomes linking. Empty
// blocks void the decomposition.
func (r *Rows[B]) DecompFromPartition() (*Decomposition, error) {
	if r.m == nil {
		return nil, ErrNotBuilt
	}
	p := r.g.Partition()
	if anyUnassigned(p) {
		return nil, ErrIncompletePartition
	}
	consBlock := make(map[int]int, len(p))
	for c, b := range p {
		consBlock[c] = b
	}
	varBlock := make(map[int]int, r.m.NVars())
	for v, conss := range r.varConss {
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

// Cols builds the variable projection graph: one node per variable, an
// edge between two variables iff they co-occur in some constraint. The
// dual of Rows in every respect, including shared-count edge weights on
// weighted backends.
type Cols[B core.Bridge] struct {
	g *graph.Graph[B]
	w weights.Config
	m Matrix
}

// NewCols wraps a fresh backend in a column-projection builder.
func NewCols[B core.Bridge](b B, w weights.Config) *Cols[B] {
	return &Cols[B]{g: graph.New(b), w: w}
}

// Graph exposes the owned facade.
func (c *Cols[B]) Graph() *graph.Graph[B] { return c.g }

// FromMatrix populates the projection graph and flushes it.
func (c *Cols[B]) FromMatrix(m Matrix) error {
	if c.m != nil {
		return ErrBuilt
	}
	nVars := m.NVars()
	ws := make([]int, nVars)
	for v := range ws {
		ws[v] = c.w.Variable(m.VarKind(v))
	}
	if err := c.g.AddNodes(nVars, ws); err != nil {
		return err
	}
	rows := make([][]int, m.NConss())
	for i := range rows {
		rows[i] = m.ConsVars(i)
	}
	shared := countPairs(rows)
	if err := addCoocEdges(c.g, shared); err != nil {
		return err
	}
	if err := c.g.Flush(); err != nil {
		return err
	}
	c.m = m

	return nil
}

// DecompFromPartition assigns every variable the block of its node and
// derives constraint blocks: a constraint whose variables agree joins
// their block, one spanning several blocks becomes linking. Empty
// blocks void the decomposition.
func (c *Cols[B]) DecompFromPartition() (*Decomposition, error) {
	if c.m == nil {
		return nil, ErrNotBuilt
	}
	p := c.g.Partition()
	if anyUnassigned(p) {
		return nil, ErrIncompletePartition
	}
	varBlock := make(map[int]int, len(p))
	for v, b := range p {
		varBlock[v] = b
	}
	consBlock := make(map[int]int, c.m.NConss())
	for cons := 0; cons < c.m.NConss(); cons++ {
		vars := c.m.ConsVars(cons)
		if len(vars) == 0 {
			continue
		}
		b := p[vars[0]]
		for _, v := range vars[1:] {
			b = blockSpan(b, p[v])
		}
		consBlock[cons] = b
	}

	return assembleDecomp(nBlocksOf(p), consBlock, varBlock), nil
}

// transposeIncidence inverts the constraint->variables lists into
// variable->constraints lists.
func transposeIncidence(m Matrix) [][]int {
	varConss := make([][]int, m.NVars())
	for c := 0; c < m.NConss(); c++ {
		for _, v := range m.ConsVars(c) {
			varConss[v] = append(varConss[v], c)
		}
	}

	return varConss
}

// nodePair is an unordered co-occurrence key, a < b.
type nodePair struct{ a, b int }

// countPairs expands every group into its unordered pairs and counts
// multiplicities: the two-hop expansion with de-duplication and
// self-removal done in one pass.
func countPairs(groups [][]int) map[nodePair]int {
	shared := make(map[nodePair]int)
	for _, grp := range groups {
		for x := 0; x < len(grp); x++ {
			for y := x + 1; y < len(grp); y++ {
				a, b := grp[x], grp[y]
				if a == b {
					continue
				}
				if a > b {
					a, b = b, a
				}
				shared[nodePair{a, b}]++
			}
		}
	}

	return shared
}

// addCoocEdges inserts one edge per co-occurring pair, in deterministic
// order, carrying the multiplicity as weight on weighted backends.
func addCoocEdges[B core.Bridge](g *graph.Graph[B], shared map[nodePair]int) error {
	pairs := make([]nodePair, 0, len(shared))
	for pr := range shared {
		pairs = append(pairs, pr)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}

		return pairs[i].b < pairs[j].b
	})
	wb, weighted := any(g.Backend()).(core.WeightedBridge)
	for _, pr := range pairs {
		if weighted {
			if err := wb.AddWeightedEdge(pr.a, pr.b, float64(shared[pr])); err != nil {
				return err
			}

			continue
		}
		if err := g.AddEdge(pr.a, pr.b); err != nil {
			return err
		}
	}

	return nil
}
