package result

import (
	"fmt"
	"io"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/heuristic"
	"github.com/louiserondia/npuzzle/vec2"
)

// Result carries a solved move sequence, the search metrics that produced
// it, and the original (unsolved) grid it was computed from.
type Result struct {
	Origin         *grid.Grid
	Moves          []vec2.Vec2
	Heuristic      heuristic.Kind
	Algo           string
	TimeComplexity int
	SizeComplexity int
}

// Len returns the solution length (number of moves).
func (r *Result) Len() int { return len(r.Moves) }

// Render replays r.Moves on a clone of r.Origin, writing one board per
// step to w followed by the largest correctly-placed contiguous region at
// that step, then the final metric triple.
func (r *Result) Render(w io.Writer) error {
	side := r.Origin.Side()
	snail := grid.NewSnailMap(side)
	g := r.Origin.Clone()

	if err := writeStep(w, 0, g, snail); err != nil {
		return err
	}
	for i, d := range r.Moves {
		g.Op(d)
		if err := writeStep(w, i+1, g, snail); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nheuristic=%s algo=%s moves=%d time_complexity=%d size_complexity=%d\n",
		r.Heuristic, r.Algo, r.Len(), r.TimeComplexity, r.SizeComplexity)

	return err
}

func writeStep(w io.Writer, step int, g *grid.Grid, snail *grid.SnailMap) error {
	if _, err := fmt.Fprintf(w, "step %d:\n%s\n", step, g.String()); err != nil {
		return err
	}
	region := LargestCorrectRegion(g, snail)
	_, err := fmt.Fprintf(w, "largest correct region: %d\n\n", region)

	return err
}
