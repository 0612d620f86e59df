// Package search implements the eight grid search algorithms that drive the
// visualizer: BFS, DFS, depth-limited search (DLS), iterative deepening
// search (IDS), uniform-cost search (UCS), Dijkstra, A* and iterative
// deepening A* (IDA*).
//
// What
//
//   - Every algorithm walks a *gridgraph.Grid from start to end using only
//     the cells' cached 4-connected neighbour lists and unit edge costs.
//   - Cells are tagged while the search runs: Open when first placed on the
//     frontier, Closed once all neighbours have been examined (start and end
//     are never closed).
//   - On success the predecessor chain is walked back from end, each cell is
//     tagged Path, then start and end get their own tags back.
//   - On failure nothing is rolled back: the explored region stays visible.
//
// Contract
//
//	found, err := search.BFS(g, start, end,
//	    search.WithContext(ctx),
//	    search.WithOnStep(repaint),
//	)
//
//	(true,  nil)        a path exists; Path cells are tagged
//	(false, nil)        the frontier was exhausted
//	(false, ctx.Err())  the context was cancelled mid-search
//	(false, ErrX)       invalid input (nil grid, foreign cell, bad option)
//
//	Call g.UpdateAllNeighbors() before every search; the engine trusts the
//	neighbour cache.
//
// Step hook
//
//	OnStep runs synchronously after each cell's neighbour expansion, once per
//	Path cell during reconstruction, and for IDA* after every neighbour visit
//	and every Closed tagging. The search does not continue until it returns.
//	The hook must not start another search.
//
// Frontiers
//
//   - BFS      FIFO queue
//   - DFS      LIFO stack
//   - DLS      LIFO stack of (cell, depth); cells at depth == limit are not expanded
//   - IDS      DLS with limit 0, 1, …, maxDepth-1
//   - UCS      min-heap on (cost, seq)
//   - Dijkstra min-heap on (distance, seq)
//   - A*       min-heap on (g+h, seq), Manhattan h by default
//   - IDA*     recursion bounded by an f threshold raised to the smallest
//     pruned f after each pass
//
// The seq component is a strictly increasing insertion counter, so entries
// with equal priority leave the heap in FIFO order and cells never need to
// be compared with each other.
//
// Cancellation
//
//	WithContext(ctx) is polled once per frontier pop, and once per recursive
//	call in IDA*.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS, DLS:         O(N) time and memory.
//   - IDS:                   O(maxDepth·N) time.
//   - UCS, Dijkstra, A*:     O(N log N) time, O(N) memory.
//   - IDA*:                  exponential in the worst case; O(N) memory.
package search
