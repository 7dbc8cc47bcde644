package scramble

import (
	"math/rand"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/vec2"
)

// Generate starts from grid.Solved(side) and applies iterations random
// legal moves drawn from rng. To avoid wasting iterations (and biasing
// small scrambles toward a lower actual edit-distance than requested), the
// direct inverse of the previous move is excluded from the candidate set
// whenever more than one legal move remains.
func Generate(side, iterations int, rng *rand.Rand) *grid.Grid {
	g := grid.Solved(side)
	hadPrev := false
	var prev vec2.Vec2

	for i := 0; i < iterations; i++ {
		candidates := legalMoves(g)
		if hadPrev && len(candidates) > 1 {
			candidates = excludeInverse(candidates, prev)
		}

		d := candidates[rng.Intn(len(candidates))]
		g.Op(d)
		prev = d
		hadPrev = true
	}

	return g
}

func legalMoves(g *grid.Grid) []vec2.Vec2 {
	moves := make([]vec2.Vec2, 0, len(grid.Dirs))
	for _, d := range grid.Dirs {
		if g.IsOpLegal(d) {
			moves = append(moves, d)
		}
	}

	return moves
}

func excludeInverse(candidates []vec2.Vec2, prev vec2.Vec2) []vec2.Vec2 {
	inverse := prev.Neg()
	filtered := make([]vec2.Vec2, 0, len(candidates))
	for _, d := range candidates {
		if d != inverse {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) == 0 {
		return candidates
	}

	return filtered
}
