package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// RandomBarriers tags each free cell Barrier independently with probability
// density, visiting cells in row-major order so a given seed always yields
// the same field. Start, End and WithKeep cells are never touched; existing
// barriers stay. Returns the number of cells newly tagged.
//
// Errors: ErrInvalidDensity unless 0 ≤ density < 1.
// Complexity: O(R×C).
func RandomBarriers(g *gridgraph.Grid, density float64, opts ...BuilderOption) (int, error) {
	if density < 0 || density >= 1 || density != density {
		return 0, fmt.Errorf("RandomBarriers: density=%.4f not in [0,1): %w", density, ErrInvalidDensity)
	}
	cfg := newConfig(opts)

	added := 0
	g.Each(func(c *gridgraph.Cell) {
		// draw for every cell so the stream does not depend on the layout
		roll := cfg.rng.Float64()
		if c.IsStart() || c.IsEnd() || c.IsBarrier() || cfg.keep[c] {
			return
		}
		if roll < density {
			c.MakeBarrier()
			added++
		}
	})
	return added, nil
}

// Wall tags every cell on the axis-aligned segment (r0,c0)–(r1,c1) Barrier,
// endpoints included, skipping Start and End. Returns the number of cells
// tagged.
//
// Errors: ErrOutOfBounds, ErrNotAxisAligned.
func Wall(g *gridgraph.Grid, r0, c0, r1, c1 int) (int, error) {
	if !g.InBounds(r0, c0) || !g.InBounds(r1, c1) {
		return 0, fmt.Errorf("Wall (%d,%d)-(%d,%d): %w", r0, c0, r1, c1, ErrOutOfBounds)
	}
	if r0 != r1 && c0 != c1 {
		return 0, fmt.Errorf("Wall (%d,%d)-(%d,%d): %w", r0, c0, r1, c1, ErrNotAxisAligned)
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	n := 0
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cell := g.Cell(r, c)
			if cell.IsStart() || cell.IsEnd() {
				continue
			}
			cell.MakeBarrier()
			n++
		}
	}
	return n, nil
}

// Enclose tags the in-bounds orthogonal neighbours of c Barrier, skipping
// Start and End, and returns how many it tagged.
func Enclose(g *gridgraph.Grid, c *gridgraph.Cell) int {
	n := 0
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nb := g.Cell(c.Row+d[0], c.Col+d[1])
		if nb == nil || nb.IsStart() || nb.IsEnd() {
			continue
		}
		nb.MakeBarrier()
		n++
	}
	return n
}
