package algorithms

import "github.com/louiserondia/npuzzle/core"

// DFS performs a depth-first traversal of g starting at start, using an
// explicit stack rather than recursion (so it can't blow out the call stack
// on the diagnostic-sized graphs this module ever builds). Depth records
// the depth at which each vertex was first pushed, not a shortest distance.
// Returns core.ErrVertexNotFound if start is absent from g.
func DFS(g *core.Graph, start string) (*Result, error) {
	if !g.HasVertex(start) {
		return nil, core.ErrVertexNotFound
	}

	res := &Result{
		Visited: map[string]bool{},
		Depth:   map[string]int{},
		Order:   nil,
	}

	type frame struct {
		id    string
		depth int
	}
	stack := []frame{{start, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Visited[f.id] {
			continue
		}
		res.Visited[f.id] = true
		res.Depth[f.id] = f.depth
		res.Order = append(res.Order, f.id)

		nbrs, err := g.Neighbors(f.id)
		if err != nil {
			return nil, err
		}
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !res.Visited[nbrs[i].To] {
				stack = append(stack, frame{nbrs[i].To, f.depth + 1})
			}
		}
	}

	return res, nil
}
