package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// wallGrid builds a 3×5 grid split by a full barrier column at col 2.
func wallGrid(t *testing.T) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(3, 5, 50, 30)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	for r := 0; r < 3; r++ {
		g.Cell(r, 2).MakeBarrier()
	}
	return g
}

// TestRegions_SplitByWall expects two regions of six cells each.
func TestRegions_SplitByWall(t *testing.T) {
	g := wallGrid(t)
	regions := g.Regions()
	if len(regions) != 2 {
		t.Fatalf("Regions() = %d regions; want 2", len(regions))
	}
	for i, reg := range regions {
		if len(reg) != 6 {
			t.Errorf("region %d has %d cells; want 6", i, len(reg))
		}
	}
	r, c := g.Coordinate(regions[1][0])
	if r != 0 || c != 3 {
		t.Errorf("second region starts at (%d,%d); want (0,3)", r, c)
	}
}

// TestConnected checks reachability across and around a wall.
func TestConnected(t *testing.T) {
	g := wallGrid(t)
	left, right := g.Cell(0, 0), g.Cell(2, 4)
	if g.Connected(left, right) {
		t.Error("cells on both sides of a wall reported connected")
	}
	g.Cell(1, 2).Reset() // open a gap
	if !g.Connected(left, right) {
		t.Error("cells reported disconnected after opening a gap")
	}
	if !g.Connected(left, left) {
		t.Error("a cell must be connected to itself")
	}
}

// TestConnected_BarrierTarget treats the endpoints as passable.
func TestConnected_BarrierTarget(t *testing.T) {
	g, _ := gridgraph.NewGrid(1, 3, 30, 10)
	g.Cell(0, 2).MakeBarrier()
	if !g.Connected(g.Cell(0, 0), g.Cell(0, 2)) {
		t.Error("adjacent target tagged barrier should still be reachable")
	}
}
