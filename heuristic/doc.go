// Package heuristic provides the admissible (and one deliberately
// inadmissible) distance functions used by the search packages to estimate
// the remaining moves from a board to the snail-solved goal.
//
// Kind selects one of four per-cell distance functions:
//
//   - Manhattan:     |dx| + |dy|. Admissible and consistent.
//   - EuclideanFloor: floor(sqrt(dx^2+dy^2)). Not guaranteed admissible for
//     this unit-cost model; exposed anyway as an operator-selected
//     trade-off, never silently swapped out for something safer.
//   - Misplaced:     1 if the cell's tile is not at its target, else 0.
//     Admissible and consistent.
//   - Zero:          always 0. Admissible; reduces A* to uniform-cost search.
//
// H sums the per-cell distance over every non-empty cell. Delta computes
// the O(1) incremental update to H after a single move, which the search
// packages use instead of recomputing H from scratch on every child node.
package heuristic
