// Package lvsearch is a toolkit of heuristic best-first searches over any
// state space you can describe with three functions: a comparable state, a
// successor generator and a heuristic.
//
// 🚀 What is inside?
//
//   - A*: optimal with an admissible heuristic
//   - IDA*: iterative deepening, memory linear in depth
//   - IEA*: iterative expansion, keeps each iteration's frontier
//   - Bidirectional A*: two goroutines racing from both ends
//   - Result policies: full path (states, actions, costs) or actions only
//   - Domains: sliding-tile N-puzzle and weighted grid maps
//
// ✨ Why lvsearch?
//
//   - Generic: states and actions are your own types; no interface{} casts
//   - Uniform: every searcher returns Result{Path, Outcome, Cost, Stats}
//   - Observable: slog records and one OpenTelemetry span per search call
//   - Safe: searchers hold no per-call state and may be shared by goroutines
//
// Packages:
//
//	search/: Node, Frontier, Explored, policies, outcomes and Options
//	astar/: A*
//	idastar/: Iterative-Deepening A*
//	ieastar/: Iterative-Expansion A*
//	bidir/: bidirectional parallel A*
//	puzzle/: N-puzzle boards, moves and heuristics
//	gridworld/: weighted grids with 4- or 8-connectivity
//	cmd/npuzzle: command-line demo
//
// Quick example:
//
//	start, _ := puzzle.Parse("8,6,7/2,5,4/3,0,1")
//	goal, _ := puzzle.Goal(3)
//	sr := astar.New(puzzle.Successors, puzzle.Manhattan, search.ActionPath[puzzle.Board, puzzle.Move]())
//	res, err := sr.Search(start, goal)
//	// res.Outcome == search.Success, res.Cost == 31
//
// Outcomes are values, not errors: Failure means the goal is unreachable,
// Cutoff means it may be reachable but every route exceeded WithMaxCost.
// Errors are reserved for missing collaborators, invalid options, negative
// costs or estimates, and context cancellation.
package lvsearch
