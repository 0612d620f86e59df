// Package pathviz is a playground for watching graph searches walk a grid,
// step by step, from an interactive terminal editor or a scripted run.
//
// 🚀 What is pathviz?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: cells with state tags and a cached 4-connected neighbourhood
//		• Uninformed search: BFS, DFS, depth-limited (DLS), iterative deepening (IDS)
//		• Cost-ordered search: UCS, Dijkstra
//		• Informed search: A*, IDA* with Manhattan or Euclidean heuristics
//		• Scenario builders: text maps, walls, enclosures, seeded random barriers
//		• Frontends: a bubbletea TUI and a headless runner
//
// ✨ Why pathviz?
//
//   - Every algorithm reports each step through one hook, so any frontend can
//     animate it.
//   - Searches are cancellable through context.Context.
//   - Deterministic: frontier ties break by insertion order, random layouts
//     by seed.
//
// Under the hood:
//
//	gridgraph/ — Cell, Grid, state tags, neighbour cache, pixel mapping
//	search/    — the eight algorithms, heuristics, registry and run statistics
//	builder/   — scenario construction helpers
//	render/    — palette, glyphs and frame rendering
//	config/    — defaults, YAML loading, validation
//	tui/       — interactive controller
//	cmd/pathviz — the command-line entry point
//
// Quick start:
//
//	go run ./cmd/pathviz tui
//	go run ./cmd/pathviz run --algo astar --rows 20 --cols 40 --density 0.3 --seed 7
package pathviz
