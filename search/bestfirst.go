package search

import (
	"math"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// priorityFunc computes the heap key of a cell reached with cost-from-start g.
type priorityFunc func(g float64, c *gridgraph.Cell) float64

// bestFirst is the shared min-heap loop behind UCS, Dijkstra and A*.
//
//   - cost[c] starts at +Inf for every cell except start (0).
//   - A neighbour is relaxed only when cost[current]+1 is strictly lower.
//   - A relaxed neighbour not already on the frontier is pushed with
//     key(cost, cell) and the next sequence number, and tagged Open.
//   - Stale heap keys of cells already on the frontier are not updated.
func (w *walker) bestFirst(key priorityFunc) (bool, error) {
	cost := make(map[*gridgraph.Cell]float64, w.grid.Rows()*w.grid.Cols())
	w.grid.Each(func(c *gridgraph.Cell) { cost[c] = math.Inf(1) })
	cost[w.start] = 0

	var open frontier
	open.push(0, w.start)
	inOpen := map[*gridgraph.Cell]bool{w.start: true}

	for open.size() > 0 {
		if err := w.cancelled(); err != nil {
			return false, err
		}

		current := open.pop()
		delete(inOpen, current)

		if current == w.end {
			w.reconstruct()
			return true, nil
		}

		for _, nbr := range current.Neighbors() {
			if !w.passable(nbr) {
				continue
			}
			tentative := cost[current] + 1 // unit cost for every move
			if tentative >= cost[nbr] {
				continue
			}
			w.cameFrom[nbr] = current
			cost[nbr] = tentative
			if !inOpen[nbr] {
				open.push(key(tentative, nbr), nbr)
				inOpen[nbr] = true
				nbr.MakeOpen()
			}
		}

		w.step()
		w.close(current)
	}

	return false, nil
}

// UCS runs uniform-cost search: cells leave the frontier in order of
// accumulated cost, equal costs in insertion order. Under unit costs it
// behaves exactly like Dijkstra.
func UCS(g *gridgraph.Grid, start, end *gridgraph.Cell, opts ...Option) (bool, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}
	return w.bestFirst(func(costSoFar float64, _ *gridgraph.Cell) float64 {
		return costSoFar
	})
}

// Dijkstra runs Dijkstra's algorithm keyed by distance from start with the
// same strict relaxation rule as UCS. Exhausting the frontier is an explicit
// failure return.
func Dijkstra(g *gridgraph.Grid, start, end *gridgraph.Cell, opts ...Option) (bool, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}
	found, err := w.bestFirst(func(distance float64, _ *gridgraph.Cell) float64 {
		return distance
	})
	if err != nil || found {
		return found, err
	}
	return false, nil
}

// AStar runs A* keyed by f = g + h, where h is the configured heuristic
// (Manhattan unless WithHeuristic says otherwise). f is recomputed whenever
// g is relaxed.
func AStar(g *gridgraph.Grid, start, end *gridgraph.Cell, opts ...Option) (bool, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}
	return w.bestFirst(func(gScore float64, c *gridgraph.Cell) float64 {
		return gScore + w.heuristic(c)
	})
}
