// Package boardgraph is a diagnostic side channel, never on the solve
// path: Diagnose builds a board's 4-connectivity graph (gridgraph), checks
// it is fully reachable from the corner cell via algorithms.BFS, and
// cross-validates dijkstra.Dijkstra's shortest distances against the
// Manhattan heuristic every solve actually uses. A disconnected board or a
// distance mismatch can never happen for a square 4-connectivity grid; the
// point of this package is to make that invariant checkable on demand
// (cmd/npuzzle's --diagnose flag), not to guard against a real failure
// mode.
package boardgraph
