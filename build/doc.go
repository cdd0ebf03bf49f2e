// Package build turns a constraint-variable incidence matrix into the
// graph and hypergraph representations used for structure detection,
// and translates computed partitions back into candidate block
// decompositions.
//
// Six builders cover the representation family:
//
//	Bipartite    — one node per variable and per constraint, an edge for
//	               every incidence; also builds from partial matrices
//	               (only the still-open rows/columns, densely remapped)
//	Rows / Cols  — projection graphs: two constraints (variables) are
//	               adjacent iff they share a variable (constraint)
//	Hyperrows    — one node per variable, one hyperedge per constraint
//	Hypercols    — one node per constraint, one hyperedge per variable
//	Hyperrowcols — one node per nonzero entry, one hyperedge per row and
//	               per column (full incidence, nothing collapsed)
//
// Incidence is presence-only: the numeric coefficient value is never
// inspected, every variable listed for a constraint counts. Downstream
// scoring relies on this, so it is a contract, not a shortcut to fix.
//
// Each builder owns its facade graph for its lifetime. After the
// partition is in place, DecompFromPartition derives the block of every
// constraint; a constraint whose representation spans several blocks
// becomes a linking constraint (sentinel block NBlocks+1), and a
// partition leaving any block without constraints yields a nil
// decomposition - a valid "nothing found" outcome, not an error.
package build
