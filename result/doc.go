// Package result carries the outcome of a solved puzzle — the move
// sequence plus search metrics and the original grid — and renders a
// human-readable replay of it.
//
// Render walks a clone of the origin grid move by move, printing the
// board after each step (the empty cell visually distinguished, matching
// grid.Grid's own String rendering) and, as an addition beyond the bare
// sequence, the size of the largest contiguous region of cells already
// sitting on their snail-solved target. That region scan is a plain flood
// fill over the board's own 4-neighborhood (grid.Dirs); it is purely
// informational and never feeds back into move selection.
package result
