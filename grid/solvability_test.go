package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiserondia/npuzzle/grid"
)

func TestSolvedIsSolvable(t *testing.T) {
	for side := 1; side <= 5; side++ {
		assert.True(t, grid.Solvable(grid.Solved(side)), "side=%d", side)
	}
}

func TestSolvableScenario(t *testing.T) {
	g, err := grid.New([]int{8, 4, 2, 3, 0, 5, 6, 7, 1}, 3)
	require.NoError(t, err)
	assert.True(t, grid.Solvable(g))
}

func TestUnsolvableScenario(t *testing.T) {
	g, err := grid.New([]int{6, 4, 0, 2, 7, 3, 5, 1, 8}, 3)
	require.NoError(t, err)
	assert.False(t, grid.Solvable(g))
}

func TestSingleMoveStaysSolvable(t *testing.T) {
	g := grid.Solved(4)
	for _, d := range grid.Dirs {
		if g.IsOpLegal(d) {
			c := g.Clone()
			c.Op(d)
			assert.True(t, grid.Solvable(c))
			break
		}
	}
}
