package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// stackItem pairs a cell with its depth (edges from start).
type stackItem struct {
	cell  *gridgraph.Cell
	depth int
}

// DLS runs depth-limited search: DFS on a stack of (cell, depth) where only
// cells with depth < limit have their neighbours expanded. With limit 0 only
// start itself is examined, so DLS succeeds only when start == end.
// The visited set is global to the call, so DLS may miss a path that a
// different expansion order would have found within the limit.
// A negative limit is ErrOptionViolation.
func DLS(g *gridgraph.Grid, start, end *gridgraph.Cell, limit int, opts ...Option) (bool, error) {
	if limit < 0 {
		return false, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}

	stack := []stackItem{{cell: start, depth: 0}}
	visited := map[*gridgraph.Cell]bool{start: true}

	for len(stack) > 0 {
		if err = w.cancelled(); err != nil {
			return false, err
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current := item.cell

		if current == end {
			w.reconstruct()
			return true, nil
		}

		if item.depth < limit {
			for _, nbr := range current.Neighbors() {
				if visited[nbr] || !w.passable(nbr) {
					continue
				}
				visited[nbr] = true
				w.cameFrom[nbr] = current
				stack = append(stack, stackItem{cell: nbr, depth: item.depth + 1})
				nbr.MakeOpen()
			}
		}

		w.step()
		w.close(current)
	}

	return false, nil
}

// IDS runs DLS with limits 0, 1, …, maxDepth-1 and returns on the first
// limit that succeeds. Each pass restarts from start with a fresh visited
// set; tags left by earlier passes are not cleared. maxDepth == 0 runs no
// pass and reports failure. A negative maxDepth is ErrOptionViolation.
func IDS(g *gridgraph.Grid, start, end *gridgraph.Cell, maxDepth int, opts ...Option) (bool, error) {
	if maxDepth < 0 {
		return false, fmt.Errorf("%w: maxDepth cannot be negative (%d)", ErrOptionViolation, maxDepth)
	}
	if _, err := newWalker(g, start, end, opts); err != nil {
		return false, err
	}
	for depth := 0; depth < maxDepth; depth++ {
		found, err := DLS(g, start, end, depth, opts...)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}
