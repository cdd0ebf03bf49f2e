// Package dwgraph detects block structure in mixed-integer programs:
// it turns a constraint matrix into graph and hypergraph representations,
// partitions them, and translates partitions back into candidate
// Dantzig-Wolfe decompositions for a branch-cut-and-price solver.
//
// The module is organized into small, per-concern packages:
//
//	weights/ — row/column weight tables (constraint and per-kind variable weights)
//	core/    — the two low-level graph backends (append-only clique table,
//	           generalized weighted graph with optional clustering numerics)
//	graph/   — backend-agnostic Graph and Hypergraph facades: partition
//	           storage, dummy-node padding, adjacency-file I/O
//	build/   — matrix-to-graph builders (bipartite, row, column and the
//	           three hypergraph duals) plus partition-to-decomposition
//	           extraction
//	cluster/ — partition-quality metrics (SOED, min hyperedge cut, k-1)
//	           and clustering algorithms (DBSCAN, MST forest, Markov)
//	logger/  — leveled logging for the command-line driver
//
// A detector constructs a builder with a weight configuration, feeds it a
// matrix, partitions the resulting graph (directly or through an external
// partitioner via the adjacency-file format), and asks the builder for the
// decomposition implied by the partition.
//
//	go get github.com/mipstruct/dwgraph
package dwgraph
