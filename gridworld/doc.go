// Package gridworld treats a 2D grid of integer step costs as a search
// domain for the algorithms in lvsearch.
//
// Cells with value < WallBelow (default 1) are walls and never entered.
// Moving between two open neighbors costs the mean of their values, scaled
// by √2 on diagonals, so every move costs the same in both directions and
// the domain suits the bidirectional search.
//
// Connectivity:
//
//   - Conn4: N, E, S, W. Pair with Manhattan.
//   - Conn8: adds NE, SE, SW, NW. Pair with Octile.
//
// Both heuristics scale grid distance by the cheapest open cell, which keeps
// them admissible for any cost layout.
package gridworld
