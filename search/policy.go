package search

import "slices"

// Step is one entry of a full path: the state reached, the action that
// reached it, and the costs recorded on the node.
type Step[S comparable, A any] struct {
	State  S
	Action A
	GCost  float64
	FCost  float64
}

// Policy decides what a solution materializes into.
//
// Path renders the chain ending at goal, root excluded.
// Join renders a bidirectional solution: the forward chain ending at fw
// followed by the backward chain starting after bw, whose actions are
// rewritten with reverse so the whole path reads forward in time.
// Either fw or bw may be nil.
type Policy[S comparable, A any, R any] interface {
	Path(goal *Node[S, A]) R
	Join(fw, bw *Node[S, A], reverse func(A) A) R
}

// FullPath returns the policy producing every Step from the first move to the goal.
func FullPath[S comparable, A any]() Policy[S, A, []Step[S, A]] {
	return fullPath[S, A]{}
}

// ActionPath returns the policy producing only the sequence of actions.
func ActionPath[S comparable, A any]() Policy[S, A, []A] {
	return actionPath[S, A]{}
}

type fullPath[S comparable, A any] struct{}

func (fullPath[S, A]) Path(goal *Node[S, A]) []Step[S, A] {
	steps := forwardSteps(goal)
	if steps == nil {
		return []Step[S, A]{}
	}

	return steps
}

func (fullPath[S, A]) Join(fw, bw *Node[S, A], reverse func(A) A) []Step[S, A] {
	steps := forwardSteps(fw)
	if steps == nil {
		steps = []Step[S, A]{}
	}
	if bw == nil || bw.Parent == nil {
		return steps
	}
	// The action stored on a backward node leads away from the goal, so the
	// forward-time action into bw.Parent is the reverse of bw's own action,
	// and so on one position down the chain.
	pending := reverse(bw.Action)
	fwCost := 0.0
	if fw != nil {
		fwCost = fw.GCost
	}
	total := fwCost + bw.GCost
	for n := bw.Parent; n != nil; n = n.Parent {
		g := total - n.GCost
		steps = append(steps, Step[S, A]{State: n.State, Action: pending, GCost: g, FCost: g})
		pending = reverse(n.Action)
	}

	return steps
}

type actionPath[S comparable, A any] struct{}

func (actionPath[S, A]) Path(goal *Node[S, A]) []A {
	actions := forwardActions(goal)
	if actions == nil {
		return []A{}
	}

	return actions
}

func (actionPath[S, A]) Join(fw, bw *Node[S, A], reverse func(A) A) []A {
	actions := forwardActions(fw)
	if actions == nil {
		actions = []A{}
	}
	for n := bw; n != nil && n.Parent != nil; n = n.Parent {
		actions = append(actions, reverse(n.Action))
	}

	return actions
}

// forwardSteps walks from n to the root and returns the steps in root→n
// order, root excluded. It returns nil for a nil node.
func forwardSteps[S comparable, A any](n *Node[S, A]) []Step[S, A] {
	if n == nil {
		return nil
	}
	steps := make([]Step[S, A], 0, n.Depth())
	for ; n.Parent != nil; n = n.Parent {
		steps = append(steps, Step[S, A]{State: n.State, Action: n.Action, GCost: n.GCost, FCost: n.FCost})
	}
	slices.Reverse(steps)

	return steps
}

// forwardActions is forwardSteps restricted to actions.
func forwardActions[S comparable, A any](n *Node[S, A]) []A {
	if n == nil {
		return nil
	}
	actions := make([]A, 0, n.Depth())
	for ; n.Parent != nil; n = n.Parent {
		actions = append(actions, n.Action)
	}
	slices.Reverse(actions)

	return actions
}

// JoinCost returns the cost of the path that Join(fw, bw) would produce.
func JoinCost[S comparable, A any](fw, bw *Node[S, A]) float64 {
	c := 0.0
	if fw != nil {
		c += fw.GCost
	}
	if bw != nil {
		c += bw.GCost
	}

	return c
}
