package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// ExampleGrid_CellAt maps mouse positions on an 800×800 surface to cells of
// a 50×50 grid and rejects a click on the toolbar below it.
func ExampleGrid_CellAt() {
	g, _ := gridgraph.NewGrid(50, 50, 800, 800)
	for _, p := range [][2]int{{0, 0}, {170, 33}, {400, 820}} {
		row, col := g.CellAt(p[0], p[1])
		fmt.Printf("(%d,%d) -> (%d,%d) in grid: %v\n", p[0], p[1], row, col, g.InBounds(row, col))
	}

	// Output:
	// (0,0) -> (0,0) in grid: true
	// (170,33) -> (2,10) in grid: true
	// (400,820) -> (51,25) in grid: false
}

// ExampleCell_UpdateNeighbors shows that barriers drop out of the neighbour
// cache once it is recomputed.
func ExampleCell_UpdateNeighbors() {
	g, _ := gridgraph.NewGrid(3, 3, 30, 30)
	g.Cell(0, 1).MakeBarrier()
	g.Cell(1, 2).MakeBarrier()
	g.UpdateAllNeighbors()

	for _, n := range g.Cell(1, 1).Neighbors() {
		fmt.Printf("(%d,%d) ", n.Row, n.Col)
	}
	fmt.Println()

	// Output:
	// (2,1) (1,0)
}
