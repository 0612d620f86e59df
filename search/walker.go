package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// walker encapsulates the per-invocation search state shared by every
// algorithm. It never outlives one call.
type walker struct {
	grid       *gridgraph.Grid
	start, end *gridgraph.Cell
	opts       Options
	cameFrom   map[*gridgraph.Cell]*gridgraph.Cell
}

// newWalker validates inputs, resolves options and returns a fresh walker.
func newWalker(g *gridgraph.Grid, start, end *gridgraph.Cell, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if start == nil || end == nil {
		return nil, ErrNilEndpoint
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrForeignCell, start.Row, start.Col)
	}
	if !g.Contains(end) {
		return nil, fmt.Errorf("%w: end (%d,%d)", ErrForeignCell, end.Row, end.Col)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &walker{
		grid:     g,
		start:    start,
		end:      end,
		opts:     o,
		cameFrom: make(map[*gridgraph.Cell]*gridgraph.Cell, g.Rows()*g.Cols()),
	}, nil
}

// cancelled polls the context once; non-nil means stop now.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// step fires the animation hook.
func (w *walker) step() {
	if w.opts.trace != nil {
		w.opts.trace.steps++
	}
	w.opts.OnStep()
}

// passable reports whether c may be entered. Start and end always may,
// whatever their display tag.
func (w *walker) passable(c *gridgraph.Cell) bool {
	return c == w.start || c == w.end || !c.IsBarrier()
}

// close tags a fully expanded cell Closed, leaving start alone.
func (w *walker) close(c *gridgraph.Cell) {
	if c != w.start {
		c.MakeClosed()
	}
}

// heuristic evaluates the configured heuristic from c to end.
func (w *walker) heuristic(c *gridgraph.Cell) float64 {
	return w.opts.Heuristic(c, w.end)
}

// reconstruct walks cameFrom back from end, tagging each predecessor Path
// and firing the hook per cell, then restores the start and end tags.
func (w *walker) reconstruct() {
	current := w.end
	for {
		prev, ok := w.cameFrom[current]
		if !ok {
			break
		}
		current = prev
		current.MakePath()
		if w.opts.trace != nil {
			w.opts.trace.pathEdges++
		}
		w.step()
	}
	w.end.MakeEnd()
	w.start.MakeStart()
}
