// Package search implements the two informed-search algorithms that solve
// a sliding puzzle: AStar (best-first search over an open/closed set) and
// IDAStar (iterative-deepening depth-first search). Both are driven by a
// pluggable heuristic.Kind and return a result.Result carrying the move
// sequence and search metrics.
//
// AStar follows the dijkstra package's open-set shape: a container/heap-backed
// open priority queue ordered by (f, h), a parallel "open cost" map for lazy
// decrease-key, and a closed set used both to avoid re-expansion and to
// reconstruct the solution path backwards from the goal.
//
// IDAStar instead performs successive depth-first probes bounded by a
// rising f-cost threshold, tracking only the current path (no open/closed
// set), trading time for the linear memory footprint a plain bfs/dfs
// traversal gets for free.
//
// Configuration (heuristic choice, optional expansion cap, cancellation)
// is exposed via the functional-options idiom used throughout this module
// (core.GraphOption, dijkstra.Option).
//
// Errors (sentinel):
//
//   - ErrUnsolvable: the input grid's inversion parity forbids a solution.
package search
