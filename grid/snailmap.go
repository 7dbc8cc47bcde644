package grid

import "github.com/louiserondia/npuzzle/vec2"

// SnailMap maps each tile value in {0, ..., side*side-1} to its target
// coordinate in the canonical snail-solved board of the given side. It is
// built once per solve and consulted by every heuristic evaluation.
type SnailMap struct {
	side    int
	targets []vec2.Vec2 // indexed by tile value
}

// NewSnailMap builds the target-coordinate table for the given side.
func NewSnailMap(side int) *SnailMap {
	solved := Solved(side)
	targets := make([]vec2.Vec2, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			p := vec2.New(x, y)
			targets[solved.Get(p)] = p
		}
	}

	return &SnailMap{side: side, targets: targets}
}

// Target returns the goal coordinate of the given tile value.
func (m *SnailMap) Target(value int) vec2.Vec2 {
	return m.targets[value]
}

// Side returns the side length this map was built for.
func (m *SnailMap) Side() int {
	return m.side
}
