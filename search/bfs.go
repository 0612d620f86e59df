package search

import (
	"github.com/katalvlaran/pathviz/gridgraph"
)

// BFS runs breadth-first search from start to end on a FIFO queue.
// The first time end is dequeued the path is optimal in edge count.
// Returns (true, nil) on success, (false, nil) when end is unreachable,
// (false, ctx.Err()) on cancellation, or a validation error.
func BFS(g *gridgraph.Grid, start, end *gridgraph.Cell, opts ...Option) (bool, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}

	queue := make([]*gridgraph.Cell, 0, g.Rows()*g.Cols())
	queue = append(queue, start)
	visited := map[*gridgraph.Cell]bool{start: true}

	for len(queue) > 0 {
		// cancellation check (once per pop)
		if err = w.cancelled(); err != nil {
			return false, err
		}

		current := queue[0]
		queue = queue[1:]

		if current == end {
			w.reconstruct()
			return true, nil
		}

		for _, nbr := range current.Neighbors() {
			if visited[nbr] || !w.passable(nbr) {
				continue
			}
			visited[nbr] = true
			w.cameFrom[nbr] = current
			queue = append(queue, nbr)
			nbr.MakeOpen()
		}

		w.step()
		w.close(current)
	}

	return false, nil
}
