// Package render turns grid state snapshots into terminal frames.
//
// Every cell is drawn as a block two terminal columns wide and one row tall,
// so a pointer position in terminal cells maps to a grid cell with
// gridgraph's CellAt when the grid is laid out with CellWidth×CellHeight
// "pixels" per cell.
//
// Each state has a glyph as well as a colour, so frames stay legible on
// terminals without colour support and in plain-text output:
//
//	unvisited ·   open o   closed x   barrier █   start S   end E   path *
//
// Colours come from a Palette, defaulting to the classic visualizer palette
// and overridable per state name.
package render
