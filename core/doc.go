// Package core defines the general-purpose Graph type that the puzzle
// packages borrow as a verification side channel: bruteforce_test.go builds
// one to get an independent BFS oracle, and boardgraph builds one to expose
// a board's cell-adjacency structure for diagnostics. Nothing on the solve
// hot path (search.AStar, search.IDAStar) ever touches it.
package core
