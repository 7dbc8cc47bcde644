package heuristic

import (
	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/matrix"
	"github.com/louiserondia/npuzzle/vec2"
)

// Cache precomputes, once per solve, the distance from every board cell to
// every tile's snail target under a fixed Kind. Every d(a,b) call the
// search packages make during a solve compares a live cell against one of
// the side*side fixed SnailMap targets, so the whole table fits in a
// side²×side² matrix.Dense — row = cell index (y*side+x), column = tile
// value — and every lookup afterwards is O(1) instead of recomputing
// Manhattan/EuclideanFloor arithmetic on the hot path.
//
// Cache is a pure performance layer: Lookup must agree with Kind.Dist for
// every (cell, tile) pair it was built from (see heuristic_test.go).
type Cache struct {
	kind  Kind
	side  int
	table *matrix.Dense
}

// NewCache builds the distance table for side and kind against snail.
func NewCache(side int, snail *grid.SnailMap, k Kind) *Cache {
	n := side * side
	table, err := matrix.NewDense(n, n)
	if err != nil {
		// n = side*side is validated positive by callers constructing a
		// Grid/SnailMap first; a failure here is a programmer error.
		panic(err)
	}
	for cellIdx := 0; cellIdx < n; cellIdx++ {
		p := vec2.New(cellIdx%side, cellIdx/side)
		for tile := 0; tile < n; tile++ {
			d := k.Dist(p, snail.Target(tile))
			if err := table.Set(cellIdx, tile, float64(d)); err != nil {
				panic(err)
			}
		}
	}

	return &Cache{kind: k, side: side, table: table}
}

// Lookup returns the cached distance from cell p to the snail target of
// the given tile value.
func (c *Cache) Lookup(p vec2.Vec2, tile int) int {
	cellIdx := p.Y*c.side + p.X
	v, err := c.table.At(cellIdx, tile)
	if err != nil {
		panic(err)
	}

	return int(v)
}

// H computes the full heuristic value of g using the cached table instead
// of recomputing Kind.Dist per cell.
func (c *Cache) H(g *grid.Grid) int {
	side := g.Side()
	total := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			p := vec2.New(x, y)
			v := g.Get(p)
			if v == 0 {
				continue
			}
			total += c.Lookup(p, v)
		}
	}

	return total
}

// Delta mirrors the package-level Delta function but reads from the cache.
func (c *Cache) Delta(parentH int, zero, d vec2.Vec2, tile int) int {
	next := zero.Add(d)
	h := parentH
	h -= c.Lookup(next, tile)
	h += c.Lookup(zero, tile)

	return h
}
