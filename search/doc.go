// Package search holds the building blocks shared by every heuristic
// best-first search in lvsearch: the search Node, the Frontier (open set)
// and Explored (closed set) containers, the result Policy strategies, the
// Outcome taxonomy and the functional Options accepted by each algorithm.
//
// Overview:
//
//   - A problem is described by three collaborators supplied by the caller:
//     a state type S (any comparable value), a Generator that lists the
//     successors of a state as (next state, action, step cost) triples, and
//     a Heuristic estimating the remaining cost from a state to the goal.
//   - Algorithms (astar, idastar, ieastar, bidir) grow a tree of *Node values
//     rooted at the start state. Each node remembers the action that produced
//     it and a pointer to its parent, so a solution is recovered by walking
//     the parent chain from the goal node back to the root.
//   - What a solution materializes into is decided by a Policy chosen at
//     construction time: FullPath returns every visited Step, ActionPath only
//     the actions.
//
// Node ordering:
//
//	lower FCost first; on equal FCost, higher GCost first.
//
// Two nodes are equal iff their states are equal; costs never take part in
// equality. This is what lets the Frontier deduplicate pending states.
//
// Frontier:
//
//	The Frontier is an indexed binary heap (container/heap) paired with a
//	state-keyed membership map. When a cheaper path to a queued state is
//	found the queued node is rewritten in place and its heap position is
//	repaired with heap.Fix, so the heap invariant always holds.
//
// Outcomes (not errors):
//
//   - Success:         a path was found; Result.Path holds it.
//   - Failure:         the reachable space was exhausted without reaching the goal.
//   - Cutoff:          the goal may be reachable but every remaining branch exceeded MaxCost.
//   - IterationCutoff: internal signal of the iterative-deepening variants; never returned.
//
// Errors (sentinel):
//
//   - ErrNilGenerator / ErrNilHeuristic / ErrNilPolicy: missing collaborator.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrNegativeCost:    a successor reported a negative step cost.
//   - ErrNegativeHeuristic: the heuristic returned a negative estimate.
//
// Ownership:
//
//	Nodes are shared freely between the frontier, the explored set and the
//	parent chains of their descendants. The garbage collector reclaims a
//	node once nothing references it, so no arena bookkeeping is needed.
package search
