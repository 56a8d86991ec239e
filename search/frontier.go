package search

import "container/heap"

// Frontier is the open set: a min-heap of *Node ordered by Node.Less,
// paired with a membership index keyed by state.
//
// A state appears at most once. Improve rewrites a queued node in place and
// repairs its heap position with heap.Fix, so no stale entries exist.
// Frontier is not safe for concurrent use; callers synchronize externally.
type Frontier[S comparable, A any] struct {
	pq    nodePQ[S, A]
	index map[S]*Node[S, A]
	peak  int
}

// NewFrontier returns an empty frontier with room for capacity nodes.
func NewFrontier[S comparable, A any](capacity int) *Frontier[S, A] {
	return &Frontier[S, A]{
		pq:    make(nodePQ[S, A], 0, capacity),
		index: make(map[S]*Node[S, A], capacity),
	}
}

// Len returns the number of queued nodes.
func (f *Frontier[S, A]) Len() int { return len(f.pq) }

// Peak returns the largest size the frontier has reached.
func (f *Frontier[S, A]) Peak() int { return f.peak }

// Push queues n. If n's state is already queued the call is a no-op and
// returns false.
func (f *Frontier[S, A]) Push(n *Node[S, A]) bool {
	if _, ok := f.index[n.State]; ok {
		return false
	}
	f.index[n.State] = n
	heap.Push(&f.pq, n)
	if len(f.pq) > f.peak {
		f.peak = len(f.pq)
	}

	return true
}

// Pop removes and returns the best node, or nil if the frontier is empty.
func (f *Frontier[S, A]) Pop() *Node[S, A] {
	if len(f.pq) == 0 {
		return nil
	}
	n := heap.Pop(&f.pq).(*Node[S, A])
	delete(f.index, n.State)

	return n
}

// Get returns the queued node holding state, if any.
func (f *Frontier[S, A]) Get(state S) (*Node[S, A], bool) {
	n, ok := f.index[state]

	return n, ok
}

// Contains reports whether state is queued.
func (f *Frontier[S, A]) Contains(state S) bool {
	_, ok := f.index[state]

	return ok
}

// Improve replaces the queued node for cand.State with cand's fields when
// cand has a strictly lower FCost. It reports whether the node changed.
func (f *Frontier[S, A]) Improve(cand *Node[S, A]) bool {
	cur, ok := f.index[cand.State]
	if !ok || cur.FCost <= cand.FCost {
		return false
	}
	cur.assign(cand)
	heap.Fix(&f.pq, cur.index)

	return true
}

// Each calls fn for every queued node in unspecified order until fn returns false.
func (f *Frontier[S, A]) Each(fn func(*Node[S, A]) bool) {
	for _, n := range f.index {
		if !fn(n) {
			return
		}
	}
}

// Explored is the closed set: finalized nodes keyed by state.
type Explored[S comparable, A any] map[S]*Node[S, A]

// Add records n, replacing any node previously stored for its state.
func (e Explored[S, A]) Add(n *Node[S, A]) { e[n.State] = n }

// Get returns the explored node holding state, if any.
func (e Explored[S, A]) Get(state S) (*Node[S, A], bool) {
	n, ok := e[state]

	return n, ok
}

// Contains reports whether state has been explored.
func (e Explored[S, A]) Contains(state S) bool {
	_, ok := e[state]

	return ok
}

// nodePQ is the heap behind Frontier; each node tracks its own index so
// heap.Fix can be called after an in-place improvement.
type nodePQ[S comparable, A any] []*Node[S, A]

// Len returns the number of items in the heap.
func (pq nodePQ[S, A]) Len() int { return len(pq) }

// Less defers to Node.Less.
func (pq nodePQ[S, A]) Less(i, j int) bool { return pq[i].Less(pq[j]) }

// Swap swaps two elements and keeps their indices current.
func (pq nodePQ[S, A]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push appends x; called by heap.Push.
func (pq *nodePQ[S, A]) Push(x any) {
	n := x.(*Node[S, A])
	n.index = len(*pq)
	*pq = append(*pq, n)
}

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ[S, A]) Pop() any {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]

	return n
}
