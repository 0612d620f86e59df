package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Map symbols understood by FromStrings.
const (
	SymbolFree    = '.'
	SymbolBarrier = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
)

// Scenario is a grid together with its start and end cells. Start or End is
// nil when the map does not mark one.
type Scenario struct {
	Grid  *gridgraph.Grid
	Start *gridgraph.Cell
	End   *gridgraph.Cell
}

// FromStrings builds a Scenario from a rectangular text map, one string per
// row. Each cell is WithCellSize pixels square (DefaultCellSize otherwise).
//
// Errors: ErrEmptyMap, ErrRaggedMap, ErrUnknownSymbol, ErrDuplicateEndpoint.
// Complexity: O(R×C).
func FromStrings(rows []string, opts ...BuilderOption) (*Scenario, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	cfg := newConfig(opts)

	grid := make([][]rune, len(rows))
	for r, line := range rows {
		grid[r] = []rune(line)
		if len(grid[r]) != len(grid[0]) {
			return nil, fmt.Errorf("row %d has %d cells, row 0 has %d: %w", r, len(grid[r]), len(grid[0]), ErrRaggedMap)
		}
	}
	nRows, nCols := len(grid), len(grid[0])

	g, err := gridgraph.NewGrid(nRows, nCols, nCols*cfg.cellSize, nRows*cfg.cellSize)
	if err != nil {
		return nil, fmt.Errorf("FromStrings: %w", err)
	}

	for r := 0; r < nRows; r++ {
		for c := 0; c < nCols; c++ {
			cell := g.Cell(r, c)
			switch sym := grid[r][c]; sym {
			case SymbolFree:
			case SymbolBarrier:
				cell.MakeBarrier()
			case SymbolStart, SymbolEnd:
				tag := gridgraph.Start
				if sym == SymbolEnd {
					tag = gridgraph.End
				}
				if prev := g.Find(tag); prev != nil {
					return nil, fmt.Errorf("second %q at (%d,%d), first at (%d,%d): %w",
						sym, r, c, prev.Row, prev.Col, ErrDuplicateEndpoint)
				}
				if tag == gridgraph.Start {
					cell.MakeStart()
				} else {
					cell.MakeEnd()
				}
			default:
				return nil, fmt.Errorf("%q at (%d,%d): %w", sym, r, c, ErrUnknownSymbol)
			}
		}
	}
	g.UpdateAllNeighbors()
	return &Scenario{Grid: g, Start: g.Find(gridgraph.Start), End: g.Find(gridgraph.End)}, nil
}

// Open returns a rows×cols scenario with no barriers, start and end at the
// given coordinates.
func Open(rows, cols int, start, end [2]int, opts ...BuilderOption) (*Scenario, error) {
	cfg := newConfig(opts)
	g, err := gridgraph.NewGrid(rows, cols, cols*cfg.cellSize, rows*cfg.cellSize)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	s, e := g.Cell(start[0], start[1]), g.Cell(end[0], end[1])
	if s == nil || e == nil {
		return nil, fmt.Errorf("Open: start %v end %v: %w", start, end, ErrOutOfBounds)
	}
	s.MakeStart()
	if e != s {
		e.MakeEnd()
	}
	g.UpdateAllNeighbors()
	return &Scenario{Grid: g, Start: s, End: e}, nil
}

// String renders the scenario layout back to map symbols; search marks
// render as free cells.
func (sc *Scenario) String() string {
	g := sc.Grid
	buf := make([]rune, 0, g.Rows()*(g.Cols()+1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := g.Cell(r, c)
			switch {
			case cell == sc.Start:
				buf = append(buf, SymbolStart)
			case cell == sc.End:
				buf = append(buf, SymbolEnd)
			case cell.IsBarrier():
				buf = append(buf, SymbolBarrier)
			default:
				buf = append(buf, SymbolFree)
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
