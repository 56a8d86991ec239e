// Package puzzle models the sliding-tile N-puzzle (8-puzzle, 15-puzzle, ...)
// as a search domain: a comparable Board state, reversible Move actions, a
// successor generator and two heuristics.
//
// A Move names the direction the blank travels: Up moves the blank one row
// up, swapping it with the tile above. Every move costs 1 and is undone by
// its Reverse, so the domain is symmetric and suits the bidirectional search.
//
// Heuristics (both admissible and consistent; the blank is never counted):
//
//   - Misplaced: number of tiles not on their goal square.
//   - Manhattan: sum over tiles of the grid distance to their goal square.
//
// Boards are values; Successors never mutates its argument.
package puzzle
