package heuristic

import (
	"math"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/vec2"
)

// Kind selects one of the four per-cell distance functions.
type Kind int

const (
	// Manhattan is |dx| + |dy|: admissible and consistent.
	Manhattan Kind = iota
	// EuclideanFloor is floor(sqrt(dx^2+dy^2)): not guaranteed admissible.
	EuclideanFloor
	// Misplaced is 1 if the two coordinates differ, else 0.
	Misplaced
	// Zero is always 0.
	Zero
)

// String names the Kind, matching the CLI's --heuristic flag values.
func (k Kind) String() string {
	switch k {
	case Manhattan:
		return "manhattan"
	case EuclideanFloor:
		return "euclidian"
	case Misplaced:
		return "misplaced"
	case Zero:
		return "zero"
	default:
		return "unknown"
	}
}

// Dist computes the per-cell distance between two coordinates under k.
func (k Kind) Dist(a, b vec2.Vec2) int {
	switch k {
	case Manhattan:
		return iabs(a.X-b.X) + iabs(a.Y-b.Y)
	case EuclideanFloor:
		dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
		return int(math.Floor(math.Sqrt(dx*dx + dy*dy)))
	case Misplaced:
		if a == b {
			return 0
		}
		return 1
	case Zero:
		return 0
	default:
		return 0
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// H computes the full heuristic value of g under k: the sum, over every
// non-empty cell p, of k.Dist(p, snail.Target(g.Get(p))).
func H(g *grid.Grid, snail *grid.SnailMap, k Kind) int {
	side := g.Side()
	total := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			p := vec2.New(x, y)
			v := g.Get(p)
			if v == 0 {
				continue
			}
			total += k.Dist(p, snail.Target(v))
		}
	}

	return total
}

// Delta computes the child's h-cost in O(1) from the parent's, given the
// move d applied to a parent whose empty cell sits at zero. tile is the
// value that moves from zero+d into zero (i.e. parent.Get(zero.Add(d))).
// Every other tile's contribution to H is unchanged by the move, since a
// slide only ever relocates the empty cell and one tile.
func Delta(parentH int, zero, d vec2.Vec2, tile int, snail *grid.SnailMap, k Kind) int {
	next := zero.Add(d)
	target := snail.Target(tile)

	h := parentH
	h -= k.Dist(next, target)
	h += k.Dist(zero, target)

	return h
}
