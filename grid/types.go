package grid

import (
	"errors"

	"github.com/louiserondia/npuzzle/vec2"
)

// Sentinel errors returned by grid construction.
var (
	// ErrInvalidSide indicates a non-positive side length.
	ErrInvalidSide = errors.New("grid: side must be a positive integer")

	// ErrNotPermutation indicates the tile sequence is not a permutation of
	// {0, ..., side*side-1}.
	ErrNotPermutation = errors.New("grid: tiles are not a permutation of 0..side*side-1")
)

// Dirs is the fixed enumeration order of legal move directions. The order is
// fixed for reproducibility (tests may assert specific expansion counts) but
// is not semantically significant.
var Dirs = [4]vec2.Vec2{
	vec2.New(0, 1),
	vec2.New(1, 0),
	vec2.New(0, -1),
	vec2.New(-1, 0),
}

// Grid is a row-major S×S board of tile values {0, ..., S*S-1}, 0 denoting
// the empty cell. zero is cached for O(1) access and kept in sync by Op.
//
// Grid is a plain value object: Clone is a full copy, and equality/hashing
// (see Key) considers only the tile sequence — zero is always derivable
// from it.
type Grid struct {
	tiles []int
	side  int
	zero  vec2.Vec2
}

// Side returns the board's side length S.
func (g *Grid) Side() int {
	return g.side
}

// Zero returns the coordinate of the empty cell.
func (g *Grid) Zero() vec2.Vec2 {
	return g.zero
}
