// Package matrix provides a dense, bounds-checked float64 matrix type.
//
// Within this module it backs exactly one thing: heuristic.Cache, which
// precomputes an S²×S² cell-to-tile-target distance table so a solve looks
// up a precomputed float64 instead of recomputing Manhattan/Euclidean
// arithmetic on the search hot path.
package matrix
