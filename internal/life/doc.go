// Package life provides Life-like cellular automata on a fixed grid.
//
//   - [Board]: a width x height grid of live/dead cells with [Board.Next]
//   - [Rule]: birth/survival neighbour counts in B/S notation, e.g. "B3/S23"
//   - [Pattern]: plaintext .cells patterns and the built-in catalogue
//   - [Registry]: name lookup for patterns and rules with suggestions
//
// Boards wrap toroidally unless wrapping is turned off, in which case cells
// beyond the edges count as dead.
package life
