package algorithms

import "github.com/louiserondia/npuzzle/core"

// Result carries the outcome of a BFS/DFS traversal from a single source:
// which vertices were reached, each one's distance (BFS: edge count from
// source; DFS: not a shortest distance, but still the depth at which it
// was first visited) and the order vertices were first visited in.
type Result struct {
	Visited map[string]bool
	Depth   map[string]int
	Order   []string
}

// BFS performs a breadth-first traversal of g starting at start, following
// Neighbors' sorted order so results are reproducible. Returns
// core.ErrVertexNotFound if start is absent from g.
func BFS(g *core.Graph, start string, _ interface{}) (*Result, error) {
	if !g.HasVertex(start) {
		return nil, core.ErrVertexNotFound
	}

	res := &Result{
		Visited: map[string]bool{start: true},
		Depth:   map[string]int{start: 0},
		Order:   []string{start},
	}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, e := range nbrs {
			if res.Visited[e.To] {
				continue
			}
			res.Visited[e.To] = true
			res.Depth[e.To] = res.Depth[cur] + 1
			res.Order = append(res.Order, e.To)
			queue = append(queue, e.To)
		}
	}

	return res, nil
}
