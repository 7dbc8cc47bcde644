package grid

import (
	"strconv"
	"strings"

	"github.com/louiserondia/npuzzle/vec2"
)

// New constructs a Grid from a row-major tile sequence of length side*side.
// tiles must be a permutation of {0, ..., side*side-1}; the coordinate of
// the 0 tile is computed and cached. Returns ErrInvalidSide or
// ErrNotPermutation on violation.
func New(tiles []int, side int) (*Grid, error) {
	if side < 1 {
		return nil, ErrInvalidSide
	}
	n := side * side
	if len(tiles) != n {
		return nil, ErrNotPermutation
	}
	seen := make([]bool, n)
	zeroIdx := -1
	for i, v := range tiles {
		if v < 0 || v >= n || seen[v] {
			return nil, ErrNotPermutation
		}
		seen[v] = true
		if v == 0 {
			zeroIdx = i
		}
	}
	if zeroIdx < 0 {
		return nil, ErrNotPermutation
	}
	cp := make([]int, n)
	copy(cp, tiles)

	return &Grid{
		tiles: cp,
		side:  side,
		zero:  vec2.New(zeroIdx%side, zeroIdx/side),
	}, nil
}

// Solved constructs the canonical snail-ordered goal board of the given
// side: tiles 1..side*side-1 laid out in a clockwise inward spiral starting
// at (0,0) heading right, with 0 occupying the final, unvisited cell.
//
// Algorithm: walk position p from (0,0) in direction d starting at (1,0);
// for i = 1..side*side-1 write i at p, mark p visited, step p by d, then
// peek one cell further; if that next-next cell would leave the board or
// land on an already-visited cell, rotate d by +90 degrees before the next
// step. Panics if side < 1 (programmer error: callers must validate side
// before calling Solved, as it has no error return).
func Solved(side int) *Grid {
	if side < 1 {
		panic(ErrInvalidSide)
	}
	n := side * side
	tiles := make([]int, n)
	visited := make([]bool, n)

	p := vec2.New(0, 0)
	d := vec2.New(1, 0)
	for i := 1; i < n; i++ {
		idx := p.Y*side + p.X
		tiles[idx] = i
		visited[idx] = true

		p = p.Add(d)
		np := p.Add(d)
		if !inBounds(np, side) || visited[np.Y*side+np.X] {
			d = d.RotateCW90()
		}
	}
	// The one remaining unvisited cell holds 0: tiles defaults to zero there.
	zeroIdx := p.Y*side + p.X

	return &Grid{tiles: tiles, side: side, zero: vec2.New(zeroIdx%side, zeroIdx/side)}
}

func inBounds(p vec2.Vec2, side int) bool {
	return p.X >= 0 && p.X < side && p.Y >= 0 && p.Y < side
}

func (g *Grid) index(p vec2.Vec2) int {
	return p.Y*g.side + p.X
}

// IsOpLegal reports whether sliding the tile at zero+d into zero stays on
// the board.
func (g *Grid) IsOpLegal(d vec2.Vec2) bool {
	return inBounds(g.zero.Add(d), g.side)
}

// Op applies a single-cell slide: the tile at zero+d moves into zero, and
// zero becomes zero+d. Precondition: IsOpLegal(d); an illegal move is a
// programmer error and panics rather than returning an error, since no
// search path ever constructs one.
func (g *Grid) Op(d vec2.Vec2) {
	if !g.IsOpLegal(d) {
		panic("grid: illegal move " + d.String())
	}
	next := g.zero.Add(d)
	zi, ni := g.index(g.zero), g.index(next)
	g.tiles[zi], g.tiles[ni] = g.tiles[ni], g.tiles[zi]
	g.zero = next
}

// Get returns the tile value at p, which must lie on the board. The
// coordinates are not checked individually: it panics only when p's
// row-major index falls outside the tile array.
func (g *Grid) Get(p vec2.Vec2) int {
	return g.tiles[g.index(p)]
}

// Set writes v at p without touching zero; callers that move the empty
// cell must use Op instead so zero stays consistent.
func (g *Grid) Set(p vec2.Vec2, v int) {
	g.tiles[g.index(p)] = v
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	cp := make([]int, len(g.tiles))
	copy(cp, g.tiles)

	return &Grid{tiles: cp, side: g.side, zero: g.zero}
}

// Key returns a string uniquely determined by the tile sequence, suitable
// as a map key for the search packages' open/closed sets. Two grids with
// equal tile sequences (and therefore equal zero) produce equal keys.
func (g *Grid) Key() string {
	var b strings.Builder
	b.Grow(len(g.tiles) * 3)
	for i, v := range g.tiles {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Equal reports whether g and other have identical tile sequences.
func (g *Grid) Equal(other *Grid) bool {
	if g.side != other.side {
		return false
	}
	for i, v := range g.tiles {
		if other.tiles[i] != v {
			return false
		}
	}

	return true
}

// String renders the board as a human-readable grid, one row per line,
// tab-separated, matching the grid-replay format result.Result prints.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.side; y++ {
		for x := 0; x < g.side; x++ {
			if x > 0 {
				b.WriteByte('\t')
			}
			v := g.tiles[y*g.side+x]
			if v == 0 {
				b.WriteString("[ ]")
			} else {
				b.WriteByte('[')
				b.WriteString(strconv.Itoa(v))
				b.WriteByte(']')
			}
		}
		if y < g.side-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
