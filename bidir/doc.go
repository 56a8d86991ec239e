// Package bidir implements a bidirectional, parallel A*: one search grows
// forward from the start, another grows backward from the goal using the
// same successor generator, and the two race towards a common state.
//
// Requirements:
//
//   - Transitions must be symmetric: if the generator moves s to t with
//     action a, it must also move t to s with a.Reverse() at the same cost.
//     The backward half of a path is rendered forward in time through
//     Reverse, so A must satisfy search.Reversible[A].
//
// Protocol (identical on both sides, each on its own goroutine):
//
//  1. Stop if the shared done flag is set or the context is cancelled.
//  2. Pop the best local node. An empty frontier ends the side with a
//     cutoff when MaxCost rejected something, otherwise with a failure that
//     also sets done, since the two states are then disconnected.
//  3. Close and skip the node if its g-cost exceeds MaxCost.
//  4. If it holds the side's own target (the goal for the forward side,
//     the start for the backward side) the side succeeds on its own.
//  5. Under the other side's mutex, look the popped state up in the other
//     side's frontier. A hit whose joined cost stays within MaxCost is a
//     meeting point: set done and stop.
//  6. Close the node and expand it like package astar does.
//
// Each side mutates only its own frontier, always under its own mutex; the
// opposite side only reads it, under the same mutex. The done flag is a
// best-effort stop: the other side may finish one more expansion before it
// observes the flag.
//
// Combining the two sides after both goroutines return:
//
//	forward success  > backward success > forward meeting > backward meeting
//	> failure (either side) > cutoff
//
// Optimality:
//
//	The first meeting point is not guaranteed to lie on a cheapest path.
//	With WithImprovedAccuracy(true) (the default) both frontiers are scanned
//	after the race for the pair of matching nodes with the lowest combined
//	g-cost, at O(min(|F1|, |F2|)) extra work. When both sides report a meeting
//	at the same time, the forward one is used.
package bidir
