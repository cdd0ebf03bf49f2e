// Package graph provides the backend-agnostic Graph and Hypergraph
// facades used by the matrix-to-graph builders.
//
// A facade wraps exactly one core backend (selected at construction
// time through the type parameter, preserving static dispatch) and adds
// what every representation needs regardless of backend:
//
//   - partition storage: a node-to-block vector, -1 for unassigned,
//     populated by clustering algorithms or read back from an external
//     partitioner;
//   - dummy-node padding: declared extra nodes that balance input sizes
//     for external partitioners expecting round node counts;
//   - adjacency-file I/O: the whitespace-delimited text format consumed
//     and produced by external partitioning tools, plus the one-integer-
//     per-line partition file reader.
//
// Hypergraph encodes hyperedges as star subgraphs: each hyperedge
// allocates one synthetic node right after the real node id space and
// wires it to every member, so hyperedges reduce to plain edges in the
// backend while keeping a disjoint, offset hyperedge index space.
package graph
