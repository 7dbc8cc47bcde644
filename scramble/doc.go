// Package scramble generates random solvable puzzles by applying random
// legal moves to a solved grid. Since every move is its own class of
// reversible operation, any sequence of legal moves starting from solved
// is trivially solvable, sidestepping the need to run the inversion-parity
// check on generated output.
package scramble
