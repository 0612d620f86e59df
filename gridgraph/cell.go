package gridgraph

// Position returns the (row, col) coordinates of the cell.
func (c *Cell) Position() (row, col int) {
	return c.Row, c.Col
}

// State returns the current traversal tag.
func (c *Cell) State() State {
	return c.state
}

// Is reports whether the cell currently carries tag s.
func (c *Cell) Is(s State) bool {
	return c.state == s
}

// IsBarrier reports whether the cell cannot be entered.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsOpen reports whether the cell is on a search frontier.
func (c *Cell) IsOpen() bool { return c.state == Open }

// IsClosed reports whether the cell has been fully expanded.
func (c *Cell) IsClosed() bool { return c.state == Closed }

// IsStart reports whether the cell is tagged as the search origin.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell is tagged as the search goal.
func (c *Cell) IsEnd() bool { return c.state == End }

// IsPath reports whether c lies on the reconstructed path.
func (c *Cell) IsPath() bool { return c.state == Path }

// Reset tags the cell Unvisited.
func (c *Cell) Reset() { c.state = Unvisited }

// MakeOpen tags the cell Open.
func (c *Cell) MakeOpen() { c.state = Open }

// MakeClosed tags the cell Closed.
func (c *Cell) MakeClosed() { c.state = Closed }

// MakeBarrier tags the cell Barrier.
func (c *Cell) MakeBarrier() { c.state = Barrier }

// MakeStart tags the cell Start.
func (c *Cell) MakeStart() { c.state = Start }

// MakeEnd tags the cell End.
func (c *Cell) MakeEnd() { c.state = End }

// MakePath tags the cell Path.
func (c *Cell) MakePath() { c.state = Path }

// Neighbors returns the cached passable neighbours computed by the last
// UpdateNeighbors call. The slice is owned by the cell; do not modify it.
func (c *Cell) Neighbors() []*Cell {
	return c.neighbors
}

// UpdateNeighbors recomputes the neighbour cache from g: in-bounds cells
// DOWN, UP, RIGHT, LEFT of c that are not currently Barrier.
// Complexity: O(1).
func (c *Cell) UpdateNeighbors(g *Grid) {
	c.neighbors = make([]*Cell, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(r, col) {
			continue
		}
		n := g.cells[r][col]
		if n.IsBarrier() {
			continue
		}
		c.neighbors = append(c.neighbors, n)
	}
}
