package ieastar

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/search"
)

// Search runs IEA* from start to goal.
//
// The outcome is search.Success, search.Failure or search.Cutoff. Errors
// mirror astar.Searcher.Search.
func (s *Searcher[S, A, R]) Search(start, goal S, opts ...search.Option) (search.Result[R], error) {
	var res search.Result[R]
	if err := search.Validate(s.gen, s.h, s.policy); err != nil {
		return res, err
	}
	cfg, err := search.Apply(opts...)
	if err != nil {
		return res, err
	}

	run := telemetry.Start(cfg.Ctx, cfg.TracerProvider, cfg.MeterProvider, algorithm)
	w := &walker[S, A, R]{
		s:        s,
		cfg:      cfg,
		goal:     goal,
		explored: make(search.Explored[S, A], 64),
		onPath:   make(map[S]struct{}, 64),
	}
	res, err = w.run(start)
	res.Stats.Duration = run.Elapsed()
	run.Finish(telemetry.Summary{
		Outcome:    res.Outcome.String(),
		Expanded:   res.Stats.Expanded,
		Generated:  res.Stats.Generated,
		Iterations: res.Stats.Iterations,
		Cost:       res.Cost,
		PathLen:    w.pathLen,
		Err:        err,
	})

	return res, err
}

// walker holds the state of one IEA* execution.
type walker[S comparable, A any, R any] struct {
	s        *Searcher[S, A, R]    // collaborators
	cfg      search.Options        // resolved options of this call
	goal     S                     // target state
	explored search.Explored[S, A] // shared by all iterations
	onPath   map[S]struct{}        // states on the current DFS path
	stats    search.Stats          // counters reported in the Result
	pathLen  int                   // depth of the solution, for telemetry
}

// run drives the iterations over the retained frontier.
func (w *walker[S, A, R]) run(start S) (search.Result[R], error) {
	var res search.Result[R]
	root, err := search.NewRoot[S, A](start, w.goal, w.s.h)
	if err != nil {
		return res, err
	}

	// the first iteration starts from the root alone
	limit := root.FCost
	frontier := search.NewFrontier[S, A](16)
	frontier.Push(root)
	w.explored.Add(root)

	for {
		w.stats.Iterations++
		next := search.NewFrontier[S, A](frontier.Len() * 2) // frontier of the following iteration
		nextLimit := math.Inf(1)
		sawIteration, sawCutoff := false, false

		// 1) Descend from every retained node, cheapest first.
		for best := frontier.Pop(); best != nil; best = frontier.Pop() {
			p, children, err := w.expandFrom(best, limit)
			if err != nil {
				res.Stats = w.snapshot(next)
				return res, err
			}
			switch p.outcome {
			// 2) Solved below this frontier node.
			case search.Success:
				res.Stats = w.snapshot(next)
				res.Outcome = search.Success
				res.Cost = p.goal.GCost
				res.Path = w.s.policy.Path(p.goal)
				w.pathLen = p.goal.Depth()
				w.cfg.Logger.Debug("ieastar solved",
					slog.Int("iterations", w.stats.Iterations),
					slog.Float64("cost", res.Cost),
				)
				return res, nil
			// 3) Remember the smallest f beyond the limit for the next round.
			case search.IterationCutoff:
				sawIteration = true
				if p.next > limit && p.next < nextLimit {
					nextLimit = p.next
				}
			case search.Cutoff:
				sawCutoff = true
			}
			// 4) Grow the next frontier from this node's children.
			w.retain(best, children, limit, next)
		}

		// 5) Stop unless a larger limit can still find something.
		res.Stats = w.snapshot(next)
		switch {
		case !sawIteration && sawCutoff:
			res.Outcome = search.Cutoff
			return res, nil
		case !sawIteration:
			res.Outcome = search.Failure
			return res, nil
		case w.cfg.MaxIterations > 0 && w.stats.Iterations >= w.cfg.MaxIterations:
			res.Outcome = search.Cutoff
			return res, nil
		}

		w.cfg.Logger.Debug("ieastar raising f-limit",
			slog.Int("iteration", w.stats.Iterations),
			slog.Float64("from", limit),
			slog.Float64("to", nextLimit),
			slog.Int("frontier", next.Len()),
		)
		// 6) Resume from the retained frontier, not from the root.
		frontier = next
		limit = nextLimit
	}
}

// expandFrom runs the bounded search below a frontier node and also returns
// that node's direct children, which retain needs to grow the next frontier.
func (w *walker[S, A, R]) expandFrom(node *search.Node[S, A], limit float64) (verdict[S, A], []*search.Node[S, A], error) {
	if p, stop := w.bounds(node, limit); stop {
		return p, nil, nil
	}
	children, err := w.children(node)
	if err != nil {
		return verdict[S, A]{}, nil, err
	}
	p, err := w.descendChildren(node, children, limit)

	return p, children, err
}

// descend is the bounded depth-first search below node.
func (w *walker[S, A, R]) descend(node *search.Node[S, A], limit float64) (verdict[S, A], error) {
	if p, stop := w.bounds(node, limit); stop {
		return p, nil
	}
	children, err := w.children(node)
	if err != nil {
		return verdict[S, A]{}, err
	}

	return w.descendChildren(node, children, limit)
}

// bounds applies the f-limit, cost and goal tests to node.
func (w *walker[S, A, R]) bounds(node *search.Node[S, A], limit float64) (verdict[S, A], bool) {
	switch {
	case node.FCost > limit:
		return verdict[S, A]{outcome: search.IterationCutoff, next: node.FCost}, true
	case node.GCost-1 > w.cfg.MaxCost:
		return verdict[S, A]{outcome: search.Cutoff, next: limit}, true
	case node.State == w.goal:
		return verdict[S, A]{outcome: search.Success, next: limit, goal: node}, true
	}

	return verdict[S, A]{}, false
}

// children generates node's successors and updates the counters.
func (w *walker[S, A, R]) children(node *search.Node[S, A]) ([]*search.Node[S, A], error) {
	// cancellation check (once per expansion)
	if err := w.cfg.Ctx.Err(); err != nil {
		return nil, err
	}
	children, err := node.Successors(w.s.gen, w.s.h, w.goal)
	if err != nil {
		return nil, fmt.Errorf("ieastar: expanding node at g=%v: %w", node.GCost, err)
	}
	w.stats.Expanded++
	w.stats.Generated += len(children)

	return children, nil
}

// descendChildren recurses into the children of node that are neither on
// the current path nor already explored at an equal or lower cost.
func (w *walker[S, A, R]) descendChildren(node *search.Node[S, A], children []*search.Node[S, A], limit float64) (verdict[S, A], error) {
	// 1) Keep node on the path while its subtree is searched.
	w.onPath[node.State] = struct{}{}
	defer delete(w.onPath, node.State)

	// 2) Recurse; a success returns at once, other outcomes are collected.
	best := math.Inf(1) // smallest f beyond the limit among the children
	sawIteration, sawCutoff := false, false
	for _, child := range children {
		if _, cycle := w.onPath[child.State]; cycle {
			continue
		}
		// reopened only when reached more cheaply
		if w.known(child) {
			continue
		}
		p, err := w.descend(child, limit)
		if err != nil {
			return p, err
		}
		switch p.outcome {
		case search.Success:
			return p, nil
		case search.IterationCutoff:
			sawIteration = true
			if p.next < best {
				best = p.next
			}
		case search.Cutoff:
			sawCutoff = true
		}
	}

	// 3) Aggregate: IterationCutoff, then Cutoff, then Failure.
	switch {
	case sawIteration:
		return verdict[S, A]{outcome: search.IterationCutoff, next: best}, nil
	case sawCutoff:
		return verdict[S, A]{outcome: search.Cutoff, next: limit}, nil
	default:
		return verdict[S, A]{outcome: search.Failure, next: best}, nil
	}
}

// known reports whether n's state was explored through a path no more
// expensive than n's.
func (w *walker[S, A, R]) known(n *search.Node[S, A]) bool {
	prev, ok := w.explored.Get(n.State)

	return ok && prev.GCost <= n.GCost
}

// retain moves node's unexplored children with f <= limit into next and
// re-queues node when some of its unexplored children lay beyond the limit.
func (w *walker[S, A, R]) retain(node *search.Node[S, A], children []*search.Node[S, A], limit float64, next *search.Frontier[S, A]) {
	fringe := false // some child lies beyond the limit
	for _, child := range children {
		if w.known(child) {
			continue
		}
		if child.FCost > limit {
			fringe = true
			continue
		}
		w.explored.Add(child)
		if !next.Push(child) {
			next.Improve(child)
		}
	}
	if fringe && !next.Push(node) {
		next.Improve(node)
	}
}

// snapshot returns the counters collected so far.
func (w *walker[S, A, R]) snapshot(next *search.Frontier[S, A]) search.Stats {
	st := w.stats
	if p := next.Peak(); p > st.MaxFrontier {
		st.MaxFrontier = p
	}
	w.stats.MaxFrontier = st.MaxFrontier

	return st
}
