package grid

// unroll rewrites g's tiles in the order the snail-solved goal visits the
// corresponding cells: u[k] holds the tile found at the cell that the goal
// assigns value k+1, for k in 0..side*side-2. The empty cell's value (0)
// is carried through unchanged at whatever position it unrolls to.
func unroll(g *Grid) []int {
	n := g.side * g.side
	solved := Solved(g.side)
	u := make([]int, n)
	for i, v := range g.tiles {
		goalValue := solved.tiles[i]
		// goalValue ranges over 1..n-1 for every cell except the solved
		// grid's own empty cell, whose goalValue is 0; map "slot after value
		// k" as (k-1) mod n so the single goal-zero cell lands at index n-1
		// without colliding with value n-1's slot.
		slot := (goalValue - 1 + n) % n
		u[slot] = v
	}

	return u
}

// Solvable reports whether g can reach the snail-solved goal of its side
// via legal slides. It counts inversions in the snail-unrolled tile order,
// ignoring the empty cell; the instance is solvable iff that count is even.
// This is the classical 15-puzzle parity test adapted to the snail goal by
// rewriting tiles in the goal's own traversal order first.
func Solvable(g *Grid) bool {
	u := unroll(g)
	inversions := 0
	for i := 0; i < len(u); i++ {
		if u[i] == 0 {
			continue
		}
		for j := i + 1; j < len(u); j++ {
			if u[j] != 0 && u[i] > u[j] {
				inversions++
			}
		}
	}

	return inversions%2 == 0
}
