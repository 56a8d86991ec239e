package idastar

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/search"
)

// Search runs IDA* from start to goal.
//
// The outcome is search.Success, search.Failure or search.Cutoff; the
// internal iteration signal never escapes. Reaching the WithMaxIterations
// bound also yields search.Cutoff. Errors mirror astar.Searcher.Search.
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
		s:      s,
		cfg:    cfg,
		goal:   goal,
		onPath: make(map[S]struct{}, 64),
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

// walker encapsulates the state of one IDA* execution.
type walker[S comparable, A any, R any] struct {
	s       *Searcher[S, A, R] // collaborators
	cfg     search.Options     // resolved options of this call
	goal    S                  // target state
	onPath  map[S]struct{}     // states on the current DFS path
	stats   search.Stats       // counters reported in the Result
	depth   int                // current DFS depth, tracked for MaxFrontier
	pathLen int                // depth of the solution, for telemetry
}

// run repeats bounded descents with an increasing f-limit.
func (w *walker[S, A, R]) run(start S) (search.Result[R], error) {
	var res search.Result[R]
	root, err := search.NewRoot[S, A](start, w.goal, w.s.h)
	if err != nil {
		return res, err
	}

	// the first f-limit is the root's own estimate
	limit := root.FCost
	for {
		// 1) One bounded descent from the root.
		w.stats.Iterations++
		p, err := w.descend(root, limit)
		res.Stats = w.stats
		if err != nil {
			return res, err
		}

		switch p.outcome {
		// 2) Solved: render the path.
		case search.Success:
			res.Outcome = search.Success
			res.Cost = p.goal.GCost
			res.Path = w.s.policy.Path(p.goal)
			w.pathLen = p.goal.Depth()
			w.cfg.Logger.Debug("idastar solved",
				slog.Int("iterations", w.stats.Iterations),
				slog.Float64("cost", res.Cost),
			)
			return res, nil
		// 3) Something lay beyond the limit: retry with the smallest f seen
		// there, unless the iteration bound is reached.
		case search.IterationCutoff:
			if w.cfg.MaxIterations > 0 && w.stats.Iterations >= w.cfg.MaxIterations {
				res.Outcome = search.Cutoff
				return res, nil
			}
			w.cfg.Logger.Debug("idastar raising f-limit",
				slog.Int("iteration", w.stats.Iterations),
				slog.Float64("from", limit),
				slog.Float64("to", p.next),
			)
			limit = p.next
		// 4) Failure or Cutoff: no larger limit can change the answer.
		default:
			res.Outcome = p.outcome
			return res, nil
		}
	}
}

// descend is the bounded depth-first search below node.
//
//   - f > limit:           IterationCutoff, reporting f as the next limit candidate.
//   - g - 1 > MaxCost:     Cutoff.
//   - state == goal:       Success.
//   - otherwise recurse; IterationCutoff wins over Cutoff, which wins over Failure.
func (w *walker[S, A, R]) descend(node *search.Node[S, A], limit float64) (verdict[S, A], error) {
	// cancellation check (once per node)
	if err := w.cfg.Ctx.Err(); err != nil {
		return verdict[S, A]{}, err
	}

	// 1) Leaf tests: limit, cost bound, goal.
	if node.FCost > limit {
		return verdict[S, A]{outcome: search.IterationCutoff, next: node.FCost}, nil
	}
	if node.GCost-1 > w.cfg.MaxCost {
		return verdict[S, A]{outcome: search.Cutoff, next: limit}, nil
	}
	if node.State == w.goal {
		return verdict[S, A]{outcome: search.Success, next: limit, goal: node}, nil
	}

	// 2) Expand.
	children, err := node.Successors(w.s.gen, w.s.h, w.goal)
	if err != nil {
		return verdict[S, A]{}, fmt.Errorf("idastar: expanding node at g=%v: %w", node.GCost, err)
	}
	w.stats.Expanded++
	w.stats.Generated += len(children)

	// 3) Push node on the path for the duration of the recursion.
	w.onPath[node.State] = struct{}{}
	w.depth++
	if w.depth > w.stats.MaxFrontier {
		w.stats.MaxFrontier = w.depth
	}
	defer func() {
		delete(w.onPath, node.State)
		w.depth--
	}()

	// 4) Recurse; a success returns at once, other outcomes are collected.
	best := math.Inf(1) // smallest f beyond the limit among the children
	sawIteration, sawCutoff := false, false
	for _, child := range children {
		// states already on the path would only close a cycle
		if _, cycle := w.onPath[child.State]; cycle {
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

	// 5) Aggregate.
	switch {
	case sawIteration:
		return verdict[S, A]{outcome: search.IterationCutoff, next: best}, nil
	case sawCutoff:
		return verdict[S, A]{outcome: search.Cutoff, next: limit}, nil
	default:
		return verdict[S, A]{outcome: search.Failure, next: best}, nil
	}
}
