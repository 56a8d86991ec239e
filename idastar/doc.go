// Package idastar implements Iterative-Deepening A* (IDA*): a sequence of
// depth-first searches, each bounded by an f-cost limit, trading repeated
// traversal for memory proportional to the solution depth.
//
// Each iteration explores every node with f(n) <= limit. Nodes over the
// limit are not expanded; the smallest f-cost among them becomes the limit
// of the next iteration. The first iteration uses f(root) = h(start, goal).
//
// With an admissible heuristic the first solution found is optimal, so IDA*
// returns the same cost as A* on the same instance.
//
// Memory:
//
//	Only the current DFS path is kept. Successors whose state already lies
//	on the current path are skipped, which keeps cyclic state spaces from
//	recursing forever and lets finite spaces end in search.Failure.
//
// Cost bound:
//
//	A node whose g-cost minus one exceeds MaxCost ends its branch with a
//	hard search.Cutoff. The one-unit slack lets unit-cost domains reach
//	exactly MaxCost+1 moves before being cut.
//
// Options read: WithMaxCost, WithMaxIterations, WithContext, WithLogger,
// WithTracerProvider, WithMeterProvider.
package idastar
