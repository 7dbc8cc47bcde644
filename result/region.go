package result

import (
	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/vec2"
)

// LargestCorrectRegion returns the size of the largest contiguous
// (orthogonally connected) region of cells whose tile already sits on its
// snail-solved target. It is a flood fill over g's own cells: a "correct"
// cell is land, an "incorrect" one is water, and the answer is the size of
// the biggest connected island — reusing grid.Dirs so the 4-neighborhood
// this scan walks is the same one move application uses.
func LargestCorrectRegion(g *grid.Grid, snail *grid.SnailMap) int {
	side := g.Side()
	correct := make([][]bool, side)
	for y := 0; y < side; y++ {
		correct[y] = make([]bool, side)
		for x := 0; x < side; x++ {
			p := vec2.New(x, y)
			tile := g.Get(p)
			correct[y][x] = tile != 0 && snail.Target(tile) == p
		}
	}

	visited := make([][]bool, side)
	for y := range visited {
		visited[y] = make([]bool, side)
	}

	largest := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if !correct[y][x] || visited[y][x] {
				continue
			}
			if size := floodFill(correct, visited, vec2.New(x, y), side); size > largest {
				largest = size
			}
		}
	}

	return largest
}

// floodFill walks the connected component of correct cells containing
// start, marking each visited cell in visited, and returns the component's
// size.
func floodFill(correct, visited [][]bool, start vec2.Vec2, side int) int {
	queue := []vec2.Vec2{start}
	visited[start.Y][start.X] = true
	size := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		size++

		for _, d := range grid.Dirs {
			n := p.Add(d)
			if n.X < 0 || n.X >= side || n.Y < 0 || n.Y >= side {
				continue
			}
			if !correct[n.Y][n.X] || visited[n.Y][n.X] {
				continue
			}
			visited[n.Y][n.X] = true
			queue = append(queue, n)
		}
	}

	return size
}
