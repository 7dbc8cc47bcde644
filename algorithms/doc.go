// Package algorithms implements plain BFS and DFS traversal over
// core.Graph. Within this module, BFS is the brute-force shortest-path
// oracle search's tests cross-validate AStar/IDAStar against.
package algorithms
