package search

import (
	"math"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Manhattan returns |r1-r2| + |c1-c2|. On a 4-connected unit-cost grid it is
// an exact lower bound of the remaining path length, so A* and IDA* stay
// optimal with it.
func Manhattan(a, b *gridgraph.Cell) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Euclidean returns the straight-line distance between the cell coordinates.
// Admissible but weaker than Manhattan on 4-connected grids.
func Euclidean(a, b *gridgraph.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// HeuristicByName resolves "manhattan" or "euclidean".
func HeuristicByName(name string) (Heuristic, bool) {
	switch name {
	case "", "manhattan":
		return Manhattan, true
	case "euclidean":
		return Euclidean, true
	}
	return nil, false
}
