package search

import (
	"math"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/heuristic"
	"github.com/louiserondia/npuzzle/result"
	"github.com/louiserondia/npuzzle/vec2"
)

// idaOutcome is the result of one bounded recursive probe: either the goal
// was found (the solution is read off the runner's shared move stack by
// the caller) or every branch exceeded limit, in which case next is the
// smallest f-cost seen among the branches that overflowed.
type idaOutcome struct {
	found bool
	next  int
}

type idaRunner struct {
	cache          *heuristic.Cache
	goal           *grid.Grid
	limit          int
	moveStack      []vec2.Vec2
	seen           map[string]bool
	timeComplexity int
	sizeComplexity int
	expansionCap   int
	overCap        bool
}

func runIDAStar(start *grid.Grid, snail *grid.SnailMap, cfg Options) (*result.Result, error) {
	cache := heuristic.NewCache(start.Side(), snail, cfg.Heuristic)
	goal := grid.Solved(start.Side())

	r := &idaRunner{
		cache:        cache,
		goal:         goal,
		seen:         map[string]bool{start.Key(): true},
		expansionCap: cfg.MaxExpansions,
	}

	limit := cache.H(start)
	for {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}

		r.limit = limit
		outcome := r.recurse(start, 0, cache.H(start))
		if r.overCap {
			return nil, ErrExpansionCapExceeded
		}
		if outcome.found {
			moves := make([]vec2.Vec2, len(r.moveStack))
			copy(moves, r.moveStack)

			return &result.Result{
				Origin:         start,
				Moves:          moves,
				Heuristic:      cfg.Heuristic,
				Algo:           IDAStar.String(),
				TimeComplexity: r.timeComplexity,
				SizeComplexity: r.sizeComplexity,
			}, nil
		}
		if outcome.next == math.MaxInt {
			return nil, ErrUnsolvable
		}
		limit = outcome.next
	}
}

// recurse explores from g (reached at depth-cost gcost, with heuristic h)
// under the runner's current limit. It mutates r.moveStack and r.seen as a
// shared path buffer rather than cloning them per call; both are restored on
// return, except when the goal is found, in which case r.moveStack is left
// holding the solution.
func (r *idaRunner) recurse(g *grid.Grid, gcost, h int) idaOutcome {
	f := gcost + h
	if f > r.limit {
		return idaOutcome{found: false, next: f}
	}
	if g.Equal(r.goal) {
		return idaOutcome{found: true}
	}

	minNext := math.MaxInt
	zero := g.Zero()
	for _, d := range grid.Dirs {
		if !g.IsOpLegal(d) {
			continue
		}

		if r.expansionCap > 0 && r.timeComplexity >= r.expansionCap {
			r.overCap = true
			return idaOutcome{found: false, next: math.MaxInt}
		}
		r.timeComplexity++

		tile := g.Get(zero.Add(d))

		child := g.Clone()
		child.Op(d)
		childKey := child.Key()
		if r.seen[childKey] {
			continue
		}

		childH := r.cache.Delta(h, zero, d, tile)

		r.moveStack = append(r.moveStack, d)
		r.seen[childKey] = true
		if len(r.moveStack) > r.sizeComplexity {
			r.sizeComplexity = len(r.moveStack)
		}

		outcome := r.recurse(child, gcost+1, childH)
		if outcome.found {
			return outcome
		}

		delete(r.seen, childKey)
		r.moveStack = r.moveStack[:len(r.moveStack)-1]

		if r.overCap {
			return outcome
		}
		if outcome.next < minNext {
			minNext = outcome.next
		}
	}

	return idaOutcome{found: false, next: minNext}
}
