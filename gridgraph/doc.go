// Package gridgraph models the uniform 2D grid that the search engine walks:
// a rectangular matrix of cells, each carrying a traversal state tag and a
// cached list of passable 4-connected neighbours.
//
// What:
//
//   - Grid owns rows×cols Cells, created once and never destroyed individually.
//   - Cell holds immutable (Row, Col), derived pixel geometry, exactly one
//     State tag and an ordered neighbour cache.
//   - CellAt maps a pointer coordinate to (row, col) by integer division by the
//     per-cell pixel size; callers bounds-check with InBounds.
//   - Reset returns every cell to Unvisited; ClearSearch only wipes the
//     Open/Closed/Path marks of a previous run.
//   - Regions/Connected report 4-connected components of passable cells.
//
// Neighbour cache:
//
//	Cell.Neighbors is a derived structure, not an always-consistent one.
//	It must be recomputed with UpdateNeighbors (or Grid.UpdateAllNeighbors)
//	whenever barrier placement may have changed, and always before a search.
//	Order is DOWN, UP, RIGHT, LEFT; traversal order of DFS-like searches
//	depends on it.
//
// State tags:
//
//	Setters (MakeOpen, MakeClosed, MakeBarrier, MakeStart, MakeEnd, MakePath,
//	Reset) overwrite unconditionally. Keeping at most one Start and one End on
//	the grid is the controller's job, not the grid's.
//
// Complexity:
//
//   - NewGrid, Reset, ClearSearch, UpdateAllNeighbors: O(R×C).
//   - UpdateNeighbors, CellAt, Cell, InBounds: O(1).
//   - Regions: O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols < 1.
//   - ErrBadGeometry: pixel size too small to give every cell at least one pixel.
//
// Concurrency:
//
//	Grid and Cell are not synchronized. Exactly one goroutine may mutate a
//	grid at a time; the controller enforces that while a search runs.
package gridgraph
