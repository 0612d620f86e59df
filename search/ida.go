package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// IDAStar runs iterative deepening A*. Each pass is a recursive depth-first
// search from start bounded by threshold on f = g + h, with g the recursion
// depth. A pass that prunes reports the smallest pruned f; the next pass uses
// it as threshold. When a pass prunes nothing (next threshold +Inf) no
// reachable cell is left and the search fails.
//
// A path set holds the cells on the current recursion path only: a cell can
// be revisited from other branches and in later passes, never twice on one
// path. Predecessors persist across passes.
//
// A NaN initialThreshold is ErrOptionViolation. The usual choice is
// Manhattan(start, end).
func IDAStar(g *gridgraph.Grid, start, end *gridgraph.Cell, initialThreshold float64, opts ...Option) (bool, error) {
	if math.IsNaN(initialThreshold) {
		return false, fmt.Errorf("%w: initial threshold is NaN", ErrOptionViolation)
	}
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}

	threshold := initialThreshold
	onPath := map[*gridgraph.Cell]bool{start: true}

	for {
		found, next, err := w.deepen(start, 0, threshold, onPath)
		if err != nil {
			return false, err
		}
		if found {
			w.reconstruct()
			return true, nil
		}
		if math.IsInf(next, 1) {
			return false, nil
		}
		threshold = next
	}
}

// deepen is one bounded recursive step of IDA*. It returns whether end was
// reached and the smallest f that exceeded threshold below current.
func (w *walker) deepen(current *gridgraph.Cell, g, threshold float64, onPath map[*gridgraph.Cell]bool) (bool, float64, error) {
	if err := w.cancelled(); err != nil {
		return false, 0, err
	}

	f := g + w.heuristic(current)
	if f > threshold {
		return false, f, nil
	}
	if current == w.end {
		return true, f, nil
	}

	minNext := math.Inf(1)
	for _, nbr := range current.Neighbors() {
		if !w.passable(nbr) || onPath[nbr] {
			continue
		}

		onPath[nbr] = true
		w.cameFrom[nbr] = current
		nbr.MakeOpen()
		w.step()

		found, next, err := w.deepen(nbr, g+1, threshold, onPath)
		if err != nil {
			return false, 0, err
		}
		if found {
			return true, next, nil
		}

		delete(onPath, nbr)
		if next < minNext {
			minNext = next
		}
	}

	if current != w.start {
		current.MakeClosed()
		w.step()
	}

	return false, minNext, nil
}
