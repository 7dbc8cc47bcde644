package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/vec2"
)

func TestSolved3(t *testing.T) {
	g := grid.Solved(3)
	want, err := grid.New([]int{1, 2, 3, 8, 0, 4, 7, 6, 5}, 3)
	require.NoError(t, err)
	assert.True(t, g.Equal(want))
	assert.Equal(t, vec2.New(1, 1), g.Zero())
}

func TestSolvedAllValuesOnce(t *testing.T) {
	for side := 1; side <= 6; side++ {
		g := grid.Solved(side)
		seen := make(map[int]bool)
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				v := g.Get(vec2.New(x, y))
				assert.False(t, seen[v], "side=%d duplicate value %d", side, v)
				seen[v] = true
			}
		}
		assert.Len(t, seen, side*side)
	}
}

func TestOpSequenceFromSolved3(t *testing.T) {
	g := grid.Solved(3)

	g.Op(vec2.New(0, -1))
	want1, err := grid.New([]int{1, 0, 3, 8, 2, 4, 7, 6, 5}, 3)
	require.NoError(t, err)
	assert.True(t, g.Equal(want1))
	assert.Equal(t, vec2.New(1, 0), g.Zero())

	g.Op(vec2.New(1, 0))
	want2, err := grid.New([]int{1, 3, 0, 8, 2, 4, 7, 6, 5}, 3)
	require.NoError(t, err)
	assert.True(t, g.Equal(want2))
	assert.Equal(t, vec2.New(2, 0), g.Zero())
}

func TestOpInverseRestoresGrid(t *testing.T) {
	g := grid.Solved(4)
	orig := g.Clone()
	for _, d := range grid.Dirs {
		if !g.IsOpLegal(d) {
			continue
		}
		g.Op(d)
		g.Op(d.Neg())
		assert.True(t, g.Equal(orig))
	}
}

func TestOpPreservesMultisetAndMovesZero(t *testing.T) {
	g := grid.Solved(3)
	for _, d := range grid.Dirs {
		if !g.IsOpLegal(d) {
			continue
		}
		c := g.Clone()
		oldZero := c.Zero()
		c.Op(d)
		assert.Equal(t, oldZero.Add(d), c.Zero())

		counts := make(map[int]int)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				counts[c.Get(vec2.New(x, y))]++
			}
		}
		for v := 0; v < 9; v++ {
			assert.Equal(t, 1, counts[v])
		}
	}
}

func TestOpIllegalPanics(t *testing.T) {
	g := grid.Solved(2)
	// zero is guaranteed adjacent to the board edge; find an illegal direction.
	var illegal vec2.Vec2
	found := false
	for _, d := range grid.Dirs {
		if !g.IsOpLegal(d) {
			illegal = d
			found = true
			break
		}
	}
	require.True(t, found)
	assert.Panics(t, func() { g.Op(illegal) })
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := grid.New([]int{1, 2, 3}, 0)
	assert.ErrorIs(t, err, grid.ErrInvalidSide)

	_, err = grid.New([]int{1, 2, 3}, 2)
	assert.ErrorIs(t, err, grid.ErrNotPermutation)

	_, err = grid.New([]int{0, 1, 1, 2}, 2)
	assert.ErrorIs(t, err, grid.ErrNotPermutation)

	_, err = grid.New([]int{0, 1, 2, 4}, 2)
	assert.ErrorIs(t, err, grid.ErrNotPermutation)
}

func TestKeyMatchesEqual(t *testing.T) {
	a := grid.Solved(3)
	b := grid.Solved(3)
	assert.Equal(t, a.Key(), b.Key())

	b.Op(vec2.New(0, -1))
	assert.NotEqual(t, a.Key(), b.Key())
}
