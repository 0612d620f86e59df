// Package builder lays out grid scenarios for the search engine: text maps,
// barrier walls, enclosures and seeded random obstacle fields.
//
// The package offers:
//
//   - FromStrings: parse a rectangular text map into a grid plus start/end.
//     Symbols: '.' free, '#' barrier, 'S' start, 'E' end.
//   - Open: an empty rows×cols scenario with start and end placed.
//   - RandomBarriers: scatter barriers with a given density, deterministic
//     for a given seed, never touching protected cells.
//   - Wall: lay an axis-aligned barrier segment.
//   - Enclose: barrier the four orthogonal neighbours of a cell.
//
// Guarantees:
//
//   - Start and End cells are never overwritten with barriers.
//   - Same seed ⇒ same obstacle field on every platform.
//   - Only sentinel errors; option constructors panic on meaningless input,
//     builders themselves never panic.
//
// FromStrings and Open return grids with a fresh neighbour cache. The
// editing builders only tag cells; call Grid.UpdateAllNeighbors after them
// and before searching.
package builder
