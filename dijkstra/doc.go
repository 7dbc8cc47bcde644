// Package dijkstra computes single-source shortest paths over a weighted
// core.Graph using a container/heap-backed open set with lazy
// decrease-key: a cheaper distance is pushed as a new heap entry rather
// than patched in place, and stale entries are skipped on pop once their
// vertex is finalized. Within this module it is boardgraph's
// cross-validation engine: the board-graph distance between two cells must
// equal the Manhattan heuristic's estimate, since a 4-connectivity grid's
// shortest path length and Manhattan distance coincide.
package dijkstra
