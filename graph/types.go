package graph

import "errors"

// UnassignedBlock is the partition value of a node no block has claimed.
const UnassignedBlock = -1

// Sentinel errors for facade operations.
var (
	// ErrNodeIndex indicates a node index outside the real node range.
	ErrNodeIndex = errors.New("graph: node index out of range")
	// ErrHyperedgeIndex indicates a hyperedge index outside [0, NHyperedges).
	ErrHyperedgeIndex = errors.New("graph: hyperedge index out of range")
	// ErrEmptyHyperedge indicates a hyperedge with no members.
	ErrEmptyHyperedge = errors.New("graph: hyperedge needs at least one member")
	// ErrNodesSealed indicates AddNode after the first AddHyperedge; the
	// star encoding requires all real nodes before any synthetic one.
	ErrNodesSealed = errors.New("graph: nodes must be added before hyperedges")
	// ErrFileCreate indicates the adjacency file could not be created.
	ErrFileCreate = errors.New("graph: cannot create output file")
	// ErrFileRead indicates the partition file could not be opened.
	ErrFileRead = errors.New("graph: cannot read input file")
	// ErrPartitionFormat indicates a short or malformed partition file.
	ErrPartitionFormat = errors.New("graph: malformed or short partition file")
)

// WriteOptions controls the adjacency-file writer.
type WriteOptions struct {
	// Weights emits each node's weight as a leading column.
	Weights bool
}
