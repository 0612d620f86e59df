// Package gridgraph provides the grid of cells searched by the engine.
//
// Cells are addressed by (row, col); row grows downward and col grows to the
// right, both in cells and in pixels.
package gridgraph

import (
	"fmt"
)

// offsets in DOWN, UP, RIGHT, LEFT order as (dRow, dCol).
var conn4Offsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NewGrid allocates a rows×cols grid of Unvisited cells laid out over a
// pixelWidth×pixelHeight surface. Each cell is pixelWidth/cols wide and
// pixelHeight/rows tall.
// Returns ErrEmptyGrid if rows or cols < 1, ErrBadGeometry if either cell
// dimension would be zero.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols, pixelWidth, pixelHeight int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrEmptyGrid, rows, cols)
	}
	cw, ch := pixelWidth/cols, pixelHeight/rows
	if cw < 1 || ch < 1 {
		return nil, fmt.Errorf("%w: %dx%d px for %dx%d cells", ErrBadGeometry, pixelWidth, pixelHeight, cols, rows)
	}

	cells := make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = &Cell{
				Row:    r,
				Col:    c,
				X:      c * cw,
				Y:      r * ch,
				Width:  cw,
				Height: ch,
				state:  Unvisited,
			}
		}
	}

	return &Grid{
		rows:            rows,
		cols:            cols,
		pixelWidth:      pixelWidth,
		pixelHeight:     pixelHeight,
		cellWidth:       cw,
		cellHeight:      ch,
		cells:           cells,
		neighborOffsets: conn4Offsets,
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellWidth returns the pixel width of one cell.
func (g *Grid) CellWidth() int { return g.cellWidth }

// CellHeight returns the pixel height of one cell.
func (g *Grid) CellHeight() int { return g.cellHeight }

// InBounds reports whether (row, col) addresses a cell of g.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// Cells exposes the cell matrix, indexed [row][col]. The slices are owned by g.
func (g *Grid) Cells() [][]*Cell {
	return g.cells
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Contains reports whether c is one of g's cells (identity, not coordinates).
func (g *Grid) Contains(c *Cell) bool {
	if c == nil || !g.InBounds(c.Row, c.Col) {
		return false
	}
	return g.cells[c.Row][c.Col] == c
}

// CellAt maps a pixel coordinate to grid indices by integer division by the
// cell size. The result is not bounds-checked: pointer positions outside the
// grid surface (a toolbar, a status line) yield out-of-range indices that
// the caller must reject with InBounds before indexing.
func (g *Grid) CellAt(px, py int) (row, col int) {
	return floorDiv(py, g.cellHeight), floorDiv(px, g.cellWidth)
}

// floorDiv rounds toward negative infinity so that negative coordinates never
// collapse onto row/col 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Reset tags every cell Unvisited. Start/end references remembered by a
// controller are not the grid's concern and stay untouched.
// Complexity: O(R×C).
func (g *Grid) Reset() {
	g.Each(func(c *Cell) { c.Reset() })
}

// ClearSearch wipes Open, Closed and Path marks left by a previous search,
// keeping barriers, start and end in place.
// Complexity: O(R×C).
func (g *Grid) ClearSearch() {
	g.Each(func(c *Cell) {
		switch c.state {
		case Open, Closed, Path:
			c.Reset()
		}
	})
}

// UpdateAllNeighbors recomputes the neighbour cache of every cell. Call it
// after barrier edits and before every search.
// Complexity: O(R×C).
func (g *Grid) UpdateAllNeighbors() {
	g.Each(func(c *Cell) { c.UpdateNeighbors(g) })
}

// Snapshot returns a row-major copy of all state tags: index r*Cols()+c.
func (g *Grid) Snapshot() []State {
	out := make([]State, 0, g.rows*g.cols)
	g.Each(func(c *Cell) { out = append(out, c.state) })
	return out
}

// Count returns how many cells currently carry tag s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.state == s {
			n++
		}
	})
	return n
}

// Find returns the first cell in row-major order tagged s, or nil.
func (g *Grid) Find(s State) *Cell {
	for _, row := range g.cells {
		for _, c := range row {
			if c.state == s {
				return c
			}
		}
	}
	return nil
}

// index maps (row, col) to a row-major index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}
