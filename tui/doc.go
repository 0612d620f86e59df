// Package tui is the interactive front end: a bubbletea program that lets
// the user place start, end and barrier cells with the mouse and watch any
// of the eight searches run on the grid.
//
// Input:
//
//   - Left button (press or drag) on a cell: the first click places start,
//     the second places end, later clicks place barriers. Start and end are
//     never overwritten.
//   - Right button: reset the cell; if it was start or end it is forgotten.
//   - 1–8 or a click on the toolbar: run an algorithm. Requires start and end.
//   - c clears the grid, r clears the marks of the last search, ? toggles
//     help, q or ctrl+c quits.
//
// While a search runs all input except quit is ignored.
//
// Animation handshake:
//
//	The search runs in its own goroutine. After every step it sends a
//	stepMsg carrying an ack channel and blocks until the event loop has
//	copied a snapshot of the grid and closed the channel. The grid is
//	therefore never read while the search writes it, and the search never
//	runs ahead of the screen. Quitting cancels the search context, which
//	also releases a search blocked in the handshake.
package tui
