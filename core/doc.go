// Package core provides the two low-level graph backends behind the
// Graph and Hypergraph facades, abstracted by the Bridge capability
// interfaces.
//
// Both backends share an append-only, lock-after-flush lifecycle:
//
//  1. insert nodes (ids must be dense and in order) and edges,
//  2. call Flush exactly once, which finalizes adjacency storage,
//  3. query neighbors, weights and derived quantities.
//
// Structural mutation after Flush is rejected with ErrLocked; queries
// before Flush are rejected with ErrNotFlushed. This two-phase contract
// replaces any locking discipline: detectors run sequentially and never
// interleave mutation with queries.
//
// CliqueGraph is a fixed-capacity adjacency-list backend with unit edge
// weights and no deletion support. WeightedGraph generalizes it with
// node and edge weights, directed or dense storage, and an optional
// clustering capability (gonum-backed matrix kernel) used by Markov
// clustering.
package core
