// Package gridgraph defines the state tags, cell and grid types, and sentinel
// errors for the grid graph walked by the search engine.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrBadGeometry indicates pixel dimensions cannot give each cell a non-zero size.
	ErrBadGeometry = errors.New("gridgraph: pixel size smaller than cell count")
)

// State is the traversal tag of a cell. Exactly one State holds at any time.
type State int

const (
	// Unvisited is a free cell that no search has touched.
	Unvisited State = iota
	// Open marks a cell discovered and placed on the frontier.
	Open
	// Closed marks a cell whose neighbours have all been examined.
	Closed
	// Barrier cells cannot be entered.
	Barrier
	// Start is the search origin.
	Start
	// End is the search goal.
	End
	// Path marks a cell on the reconstructed path.
	Path
)

var stateNames = [...]string{
	Unvisited: "unvisited",
	Open:      "open",
	Closed:    "closed",
	Barrier:   "barrier",
	Start:     "start",
	End:       "end",
	Path:      "path",
}

// String returns the lower-case name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// ParseState resolves a lower-case state name as returned by String.
func ParseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return 0, false
}

// States lists every State in declaration order.
func States() []State {
	return []State{Unvisited, Open, Closed, Barrier, Start, End, Path}
}

// Cell is a single grid unit. Row and Col never change after construction;
// X, Y, Width and Height are the derived pixel rectangle (X = Col*Width).
type Cell struct {
	Row, Col      int
	X, Y          int
	Width, Height int

	state     State
	neighbors []*Cell
}

// Grid owns a rows×cols matrix of cells and the pixel geometry used to map
// pointer coordinates to cells. cells[row][col] is the cell at (row, col).
type Grid struct {
	rows, cols              int
	pixelWidth, pixelHeight int
	cellWidth, cellHeight   int
	cells                   [][]*Cell
	neighborOffsets         [4][2]int
}
