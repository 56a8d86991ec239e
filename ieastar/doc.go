// Package ieastar implements Iterative-Expansion A* (IEA*), a variant of
// IDA* that keeps the frontier of each iteration instead of restarting from
// the root.
//
// Algorithm:
//
//	limit ← f(root); frontier ← {root}; explored ← {root}
//	repeat:
//	    for each node popped from frontier in increasing f order:
//	        run a depth-first search below node bounded by limit,
//	        skipping states already in explored;
//	        queue node's unexplored children with f <= limit for the next
//	        iteration, and node itself again if some child exceeded limit.
//	    limit ← smallest f that exceeded limit
//
// The explored set is shared by all iterations, so a state is re-entered by
// the bounded searches only when a strictly cheaper path to it shows up.
// Compared to IDA*, the top levels of the tree are not re-traversed on every
// iteration, at the price of memory for the retained frontier.
//
// Cost bound and iteration bound follow package idastar: g - 1 > MaxCost
// ends a branch with search.Cutoff; reaching WithMaxIterations yields
// search.Cutoff.
//
// Optimality:
//
//	Solutions are found within the current f-limit, which never exceeds the
//	optimal cost while the optimal path stays reachable through the frontier.
//	Reopening on strictly cheaper paths preserves that in practice, but unlike
//	IDA* no strict guarantee is made.
package ieastar
