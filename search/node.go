package search

import (
	"fmt"
	"math"
)

// Node is one vertex of the search tree.
//
// FCost is GCost plus the heuristic estimate at creation time. It is only
// rewritten when a cheaper path to the same state replaces the node's
// contents (see Frontier.Improve).
type Node[S comparable, A any] struct {
	FCost  float64     // GCost + heuristic(State, goal)
	GCost  float64     // accumulated cost from the root
	State  S           // problem configuration
	Action A           // action that produced State from Parent.State; zero for the root
	Parent *Node[S, A] // predecessor; nil for the root

	index int // position inside a Frontier heap, -1 when not queued
}

// NewRoot creates the root node for start with GCost 0 and FCost h(start, goal).
func NewRoot[S comparable, A any](start, goal S, h Heuristic[S]) (*Node[S, A], error) {
	est := h(start, goal)
	if est < 0 || math.IsNaN(est) {
		return nil, fmt.Errorf("%w: h=%v at root", ErrNegativeHeuristic, est)
	}

	return &Node[S, A]{FCost: est, GCost: 0, State: start, index: -1}, nil
}

// Successors expands n: for each (next, action, cost) returned by gen it
// builds a child with g' = g + cost, f' = g' + h(next, goal) and Parent = n.
// n itself is left untouched. A negative cost or estimate is reported as an
// error instead of silently corrupting the ordering.
func (n *Node[S, A]) Successors(gen Generator[S, A], h Heuristic[S], goal S) ([]*Node[S, A], error) {
	next := gen(n.State)
	children := make([]*Node[S, A], 0, len(next))
	for _, s := range next {
		if s.Cost < 0 || math.IsNaN(s.Cost) {
			return nil, fmt.Errorf("%w: cost=%v at depth %d", ErrNegativeCost, s.Cost, n.Depth()+1)
		}
		est := h(s.State, goal)
		if est < 0 || math.IsNaN(est) {
			return nil, fmt.Errorf("%w: h=%v at depth %d", ErrNegativeHeuristic, est, n.Depth()+1)
		}
		g := n.GCost + s.Cost
		children = append(children, &Node[S, A]{
			FCost:  g + est,
			GCost:  g,
			State:  s.State,
			Action: s.Action,
			Parent: n,
			index:  -1,
		})
	}

	return children, nil
}

// Less reports whether n must be expanded before o:
// lower FCost first, ties broken by higher GCost.
func (n *Node[S, A]) Less(o *Node[S, A]) bool {
	if n.FCost != o.FCost {
		return n.FCost < o.FCost
	}

	return n.GCost > o.GCost
}

// Equal reports whether n and o hold the same state. Costs are ignored.
func (n *Node[S, A]) Equal(o *Node[S, A]) bool {
	return n.State == o.State
}

// Depth returns the number of parent links between n and the root.
func (n *Node[S, A]) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}

	return d
}

// assign copies the search fields of src into n, keeping n's heap position.
func (n *Node[S, A]) assign(src *Node[S, A]) {
	n.FCost = src.FCost
	n.GCost = src.GCost
	n.State = src.State
	n.Action = src.Action
	n.Parent = src.Parent
}
