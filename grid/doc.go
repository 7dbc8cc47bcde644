// Package grid defines the sliding-puzzle board: a flat, row-major tile
// array of side S together with the cached coordinate of the empty cell.
//
// Overview:
//
//   - Grid is a value object. Search algorithms clone it on every branch;
//     there is no shared mutable state between sibling search nodes.
//   - Solved(s) builds the canonical snail-ordered goal board for side s.
//   - Op/IsOpLegal apply and validate single-cell slides.
//   - Solvable reports whether a board's inversion parity permits a
//     solution to the snail goal at all.
//
// Errors (sentinel):
//
//   - ErrInvalidSide: side is not a positive integer.
//   - ErrNotPermutation: the tile sequence is not a permutation of
//     {0, ..., side*side-1}.
//
// See also: grid/gridtext for the on-disk text format, and package
// heuristic for distance functions consumed by the search packages.
package grid
