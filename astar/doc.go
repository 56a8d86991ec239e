// Package astar implements the A* best-first search over an abstract state
// space described by a search.Generator and a search.Heuristic.
//
// Overview:
//
//   - A* expands nodes in order of f(n) = g(n) + h(n), where g is the cost
//     accumulated from the start and h the heuristic estimate to the goal.
//   - The open set is a search.Frontier (indexed heap + state index); the
//     closed set is a search.Explored map.
//   - When a cheaper path to a state that is still queued is found, the
//     queued node is rewritten in place and its heap position repaired.
//     States that were already explored are never reopened.
//
// Guarantees:
//
//   - Complete on finite state spaces.
//   - Optimal when the heuristic is consistent (graph search); with an
//     admissible but inconsistent heuristic the returned cost may exceed the
//     optimum because explored states are final.
//
// Cost bound:
//
//	search.WithMaxCost(c) is a soft cutoff: a popped node with g > c is
//	closed without expansion and the search carries on with the rest of the
//	frontier. If the frontier empties after any such rejection the outcome
//	is search.Cutoff, otherwise search.Failure. A goal node reached with
//	g > c is rejected the same way, so the result never exceeds the bound.
//
// Complexity:
//
//   - Time:  O(E log V) heap operations over the V states and E transitions
//     actually generated.
//   - Space: O(V) for the frontier, the explored set and the parent chains.
//
// Example usage:
//
//	s := astar.New(gen, h, search.ActionPath[Board, Move]())
//	res, err := s.Search(start, goal, search.WithMaxCost(50))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res.Path)
//	}
package astar
