// Package cluster scores partitions and computes them.
//
// The metric side evaluates a hypergraph partition: Soed (sum of
// external degrees), Mincut (total weight of cut hyperedges) and
// KMetric (the k-1 metric). All three walk each hyperedge's members in
// iteration order and collapse adjacent equal blocks with a sequential
// unique pass; the metrics are defined over that as-iterated order, so
// callers wanting a canonical multiset must pre-sort memberships
// themselves.
//
// The clustering side assigns blocks: DBSCAN (density-based, treating
// edge weights as distances), MST (a Kruskal spanning forest over
// below-cutoff edges, small components demoted to noise) and MCL
// (Markov clustering, which needs a backend exposing the clustering
// capability). Labels are -1 for noise/unassigned, 0..k-1 otherwise,
// ready for Graph.SetPartitionSlice.
package cluster
