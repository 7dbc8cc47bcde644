package search

import (
	"container/heap"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/heuristic"
	"github.com/louiserondia/npuzzle/result"
	"github.com/louiserondia/npuzzle/vec2"
)

// astarNode is a single state on the open or closed set: its board, the
// move that produced it from its parent (absent for the start state), and
// the g/h costs used to order the open heap and reconstruct the path.
type astarNode struct {
	grid      *grid.Grid
	g         int
	h         int
	lastOp    vec2.Vec2
	hasLastOp bool
}

func (n *astarNode) f() int { return n.g + n.h }

// astarHeap is a min-heap of *astarNode ordered by (f, h) ascending,
// following dijkstra.nodePQ's lazy-decrease-key shape: stale duplicate
// entries are pushed rather than patched in place, and discarded on pop
// via the closed-set membership check.
type astarHeap []*astarNode

func (h astarHeap) Len() int { return len(h) }
func (h astarHeap) Less(i, j int) bool {
	if h[i].f() != h[j].f() {
		return h[i].f() < h[j].f()
	}
	return h[i].h < h[j].h
}
func (h astarHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *astarHeap) Push(x interface{}) {
	*h = append(*h, x.(*astarNode))
}
func (h *astarHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

func runAStar(start *grid.Grid, snail *grid.SnailMap, cfg Options) (*result.Result, error) {
	cache := heuristic.NewCache(start.Side(), snail, cfg.Heuristic)
	goal := grid.Solved(start.Side())

	openHeap := make(astarHeap, 0, 64)
	openG := make(map[string]int, 64)
	closed := make(map[string]*astarNode, 64)

	startNode := &astarNode{grid: start.Clone(), g: 0, h: cache.H(start)}
	heap.Push(&openHeap, startNode)
	openG[start.Key()] = 0

	goalKey := ""
	timeComplexity := 0
	sizeComplexity := 0

	for openHeap.Len() > 0 {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.MaxExpansions > 0 && timeComplexity >= cfg.MaxExpansions {
			return nil, ErrExpansionCapExceeded
		}

		s := heap.Pop(&openHeap).(*astarNode)
		sKey := s.grid.Key()
		delete(openG, sKey)
		timeComplexity++
		if n := openHeap.Len() + len(closed); n > sizeComplexity {
			sizeComplexity = n
		}

		if _, already := closed[sKey]; already {
			continue
		}

		zero := s.grid.Zero()
		for _, d := range grid.Dirs {
			if !s.grid.IsOpLegal(d) {
				continue
			}
			tile := s.grid.Get(zero.Add(d))

			child := s.grid.Clone()
			child.Op(d)
			childKey := child.Key()
			if _, done := closed[childKey]; done {
				continue
			}

			childG := s.g + 1
			childH := cache.Delta(s.h, zero, d, tile)
			if bestG, ok := openG[childKey]; ok && bestG <= childG {
				continue
			}
			openG[childKey] = childG
			heap.Push(&openHeap, &astarNode{
				grid:      child,
				g:         childG,
				h:         childH,
				lastOp:    d,
				hasLastOp: true,
			})
		}

		closed[sKey] = s
		if s.grid.Equal(goal) {
			goalKey = sKey
			break
		}
	}

	if goalKey == "" {
		return nil, ErrUnsolvable
	}

	return &result.Result{
		Origin:         start,
		Moves:          reconstructPath(closed, goalKey),
		Heuristic:      cfg.Heuristic,
		Algo:           AStar.String(),
		TimeComplexity: timeComplexity,
		SizeComplexity: sizeComplexity,
	}, nil
}

// reconstructPath walks backwards from the goal entry in closed, following
// each node's lastOp and inverting it to find the predecessor's key, until
// it reaches the start node (hasLastOp == false).
func reconstructPath(closed map[string]*astarNode, goalKey string) []vec2.Vec2 {
	var moves []vec2.Vec2
	node := closed[goalKey]
	for node.hasLastOp {
		moves = append(moves, node.lastOp)
		pred := node.grid.Clone()
		pred.Op(node.lastOp.Neg())
		node = closed[pred.Key()]
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}
