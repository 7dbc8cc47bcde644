// Package gridgraph exposes a square board's 4-connectivity structure as a
// core.Graph: one vertex per cell, one unit-weight edge per orthogonally
// adjacent pair. Within this module it is boardgraph's only source of
// topology — the puzzle's actual move legality (grid.Grid.IsOpLegal) never
// goes through it.
package gridgraph
