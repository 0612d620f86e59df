package search

import (
	"github.com/katalvlaran/pathviz/gridgraph"
)

// DFS runs depth-first search from start to end on an explicit LIFO stack.
// Neighbours are pushed in cache order and therefore popped in reverse.
// A cell enters the visited set when pushed and is never pushed twice, so
// DFS terminates on any finite grid; the path found need not be shortest.
func DFS(g *gridgraph.Grid, start, end *gridgraph.Cell, opts ...Option) (bool, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}

	stack := []*gridgraph.Cell{start}
	visited := map[*gridgraph.Cell]bool{start: true}

	for len(stack) > 0 {
		if err = w.cancelled(); err != nil {
			return false, err
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

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
			stack = append(stack, nbr)
			nbr.MakeOpen()
		}

		w.step()
		w.close(current)
	}

	return false, nil
}
