package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/heuristic"
	"github.com/louiserondia/npuzzle/search"
)

func TestSolveScenario5AllCombinationsLength18(t *testing.T) {
	side := 3
	tiles := []int{3, 6, 1, 2, 4, 5, 8, 7, 0}

	for _, h := range []heuristic.Kind{heuristic.Manhattan, heuristic.EuclideanFloor, heuristic.Misplaced} {
		for _, algo := range []search.Algo{search.AStar, search.IDAStar} {
			g, err := grid.New(tiles, side)
			require.NoError(t, err)

			r, err := search.Solve(g, algo, search.WithHeuristic(h))
			require.NoError(t, err, "heuristic=%s algo=%s", h, algo)
			assert.Equal(t, 18, r.Len(), "heuristic=%s algo=%s", h, algo)

			replay := g.Clone()
			for _, d := range r.Moves {
				replay.Op(d)
			}
			assert.True(t, replay.Equal(grid.Solved(side)), "heuristic=%s algo=%s", h, algo)
		}
	}
}

func TestSolveScenario6AllCombinationsLength22(t *testing.T) {
	side := 4
	tiles := []int{12, 1, 2, 4, 11, 13, 6, 5, 10, 9, 3, 0, 8, 15, 7, 14}

	for _, h := range []heuristic.Kind{heuristic.Manhattan, heuristic.EuclideanFloor, heuristic.Misplaced} {
		for _, algo := range []search.Algo{search.AStar, search.IDAStar} {
			g, err := grid.New(tiles, side)
			require.NoError(t, err)

			r, err := search.Solve(g, algo, search.WithHeuristic(h))
			require.NoError(t, err, "heuristic=%s algo=%s", h, algo)
			assert.Equal(t, 22, r.Len(), "heuristic=%s algo=%s", h, algo)

			replay := g.Clone()
			for _, d := range r.Moves {
				replay.Op(d)
			}
			assert.True(t, replay.Equal(grid.Solved(side)), "heuristic=%s algo=%s", h, algo)
		}
	}
}

func TestSolveUnsolvableReturnsErrUnsolvable(t *testing.T) {
	g, err := grid.New([]int{6, 4, 0, 2, 7, 3, 5, 1, 8}, 3)
	require.NoError(t, err)

	_, err = search.Solve(g, search.AStar, search.WithHeuristic(heuristic.Manhattan))
	assert.ErrorIs(t, err, search.ErrUnsolvable)
}

func TestSolveAlreadySolvedReturnsEmptySequence(t *testing.T) {
	g := grid.Solved(3)
	r, err := search.Solve(g, search.AStar, search.WithHeuristic(heuristic.Manhattan))
	require.NoError(t, err)
	assert.Empty(t, r.Moves)
}

func TestSolveReverseOfPathRestoresOrigin(t *testing.T) {
	g, err := grid.New([]int{3, 6, 1, 2, 4, 5, 8, 7, 0}, 3)
	require.NoError(t, err)
	origin := g.Clone()

	r, err := search.Solve(g, search.AStar, search.WithHeuristic(heuristic.Manhattan))
	require.NoError(t, err)

	replay := r.Origin.Clone()
	for _, d := range r.Moves {
		replay.Op(d)
	}
	require.True(t, replay.Equal(grid.Solved(3)))

	for i := len(r.Moves) - 1; i >= 0; i-- {
		replay.Op(r.Moves[i].Neg())
	}
	assert.True(t, replay.Equal(origin))
}
