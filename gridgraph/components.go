package gridgraph

// Regions finds all 4-connected regions of passable (non-Barrier) cells.
// It reads barrier tags directly and does not depend on the neighbour cache.
// Returns a slice of regions; each region is a slice of row-major cell
// indices in BFS discovery order. Use Coordinate to convert back.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, g.rows*g.cols)
	var regions [][]int

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].IsBarrier() {
				continue
			}
			i0 := g.index(r, c)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				for _, d := range g.neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !g.InBounds(vr, vc) || g.cells[vr][vc].IsBarrier() {
						continue
					}
					vi := g.index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// Connected reports whether a and b lie in the same passable region, i.e.
// whether any unit-cost 4-connected path exists between them. a and b are
// treated as passable regardless of their own tag.
// Complexity: O(R·C).
func (g *Grid) Connected(a, b *Cell) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	if a == b {
		return true
	}
	target := g.index(b.Row, b.Col)
	seen := make([]bool, g.rows*g.cols)
	queue := []int{g.index(a.Row, a.Col)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		ur, uc := g.Coordinate(queue[qi])
		for _, d := range g.neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			vi := g.index(vr, vc)
			if vi == target {
				return true
			}
			if seen[vi] || g.cells[vr][vc].IsBarrier() {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return false
}
