// Package weights maps matrix rows and columns to integer graph weights.
//
// A Config holds one weight per variable kind (binary, integer, implied
// integer, continuous), a generic variable fallback, and a single
// constraint weight. Builders copy the Config by value at construction
// time; evaluation is a pure lookup with no failure modes.
//
// Defaults give every row and column weight 1, which reproduces the
// unweighted graph representations. Use the WithX options to bias a
// partitioner towards or away from particular variable kinds.
package weights
