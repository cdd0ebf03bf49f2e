package build

// linkingMark is the internal 0-based marker for a constraint or
// variable spanning several blocks. It becomes the 1-based sentinel
// NBlocks+1 in the assembled Decomposition.
const linkingMark = -2

// Decomposition is the block structure a partition implies: a mapping
// from constraint index to 1-based block id, the sentinel NBlocks+1
// standing for linking/master constraints, plus the derived variable
// assignment where one exists.
type Decomposition struct {
	// NBlocks is the number of proper blocks; valid block ids are
	// 1..NBlocks, and NBlocks+1 marks linking.
	NBlocks int
	// ConsToBlock maps every constraint to its block or the linking
	// sentinel.
	ConsToBlock map[int]int
	// VarToBlock maps variables to blocks where derivable; variables
	// appearing in no constraint are absent.
	VarToBlock map[int]int
}

// LinkingBlock returns the sentinel id for linking constraints.
func (d *Decomposition) LinkingBlock() int { return d.NBlocks + 1 }

// IsLinkingCons reports whether constraint c is a linking constraint.
func (d *Decomposition) IsLinkingCons(c int) bool {
	b, ok := d.ConsToBlock[c]

	return ok && b == d.LinkingBlock()
}

// NLinkingConss counts the linking constraints.
func (d *Decomposition) NLinkingConss() int {
	n := 0
	for _, b := range d.ConsToBlock {
		if b == d.NBlocks+1 {
			n++
		}
	}

	return n
}

// assembleDecomp turns 0-based per-constraint block values (block id or
// linkingMark) into a Decomposition. nBlocks is one past the largest
// block id the partition produced, over all nodes.
//
// The all-blocks-nonempty policy is enforced here, identically for
// every builder: a block no constraint was privately assigned to voids
// the whole decomposition, so (nil, nil)-style rejection is centralized
// in this single place.
func assembleDecomp(nBlocks int, consBlock, varBlock map[int]int) *Decomposition {
	if nBlocks <= 0 {
		return nil
	}
	counts := make([]int, nBlocks)
	for _, b := range consBlock {
		if b >= 0 {
			counts[b]++
		}
	}
	for _, cnt := range counts {
		if cnt == 0 {
			return nil
		}
	}
	d := &Decomposition{
		NBlocks:     nBlocks,
		ConsToBlock: make(map[int]int, len(consBlock)),
		VarToBlock:  make(map[int]int, len(varBlock)),
	}
	for c, b := range consBlock {
		d.ConsToBlock[c] = toExternalBlock(b, nBlocks)
	}
	for v, b := range varBlock {
		d.VarToBlock[v] = toExternalBlock(b, nBlocks)
	}

	return d
}

// toExternalBlock shifts 0-based internal blocks to the 1-based output
// convention, mapping linkingMark onto the sentinel.
func toExternalBlock(b, nBlocks int) int {
	if b == linkingMark {
		return nBlocks + 1
	}

	return b + 1
}

// anyUnassigned reports whether some node misses a block assignment.
func anyUnassigned(partition []int) bool {
	for _, b := range partition {
		if b < 0 {
			return true
		}
	}

	return false
}

// blockSpan folds a sequence of block values into either the common
// block or linkingMark once two distinct blocks are seen. start must be
// the first member's block.
func blockSpan(current, next int) int {
	if current == linkingMark || current == next {
		return current
	}

	return linkingMark
}
