package astar

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/search"
)

// Search runs A* from start to goal.
//
// Returns:
//
//   - Result.Outcome: search.Success, search.Failure or search.Cutoff.
//   - Result.Path:    the policy's rendering of the solution, or the zero
//     value of R unless Success. start == goal yields Success with an empty path.
//   - err: search.ErrNil* for missing collaborators, search.ErrOptionViolation
//     for bad options, search.ErrNegativeCost / ErrNegativeHeuristic for
//     misbehaving collaborators, or ctx.Err() on cancellation.
//
// Options read: WithMaxCost, WithContext, WithLogger, WithTracerProvider,
// WithMeterProvider.
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
	r := &runner[S, A, R]{
		s:        s,
		cfg:      cfg,
		goal:     goal,
		frontier: search.NewFrontier[S, A](64),
		explored: make(search.Explored[S, A], 64),
	}
	res, err = r.run(start)
	res.Stats.Duration = run.Elapsed()
	run.Finish(telemetry.Summary{
		Outcome:    res.Outcome.String(),
		Expanded:   res.Stats.Expanded,
		Generated:  res.Stats.Generated,
		Iterations: res.Stats.Iterations,
		Cost:       res.Cost,
		PathLen:    r.pathLen,
		Err:        err,
	})
	cfg.Logger.Debug("astar finished",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("expanded", res.Stats.Expanded),
		slog.Int("generated", res.Stats.Generated),
		slog.Float64("cost", res.Cost),
	)

	return res, err
}

// runner holds the mutable state of a single A* execution.
type runner[S comparable, A any, R any] struct {
	s        *Searcher[S, A, R]
	cfg      search.Options
	goal     S
	frontier *search.Frontier[S, A] // open set
	explored search.Explored[S, A]  // closed set
	cutoff   bool                   // a node was rejected for exceeding MaxCost
	stats    search.Stats
	pathLen  int
}

// run seeds the frontier with the root and executes the main loop.
func (r *runner[S, A, R]) run(start S) (search.Result[R], error) {
	var res search.Result[R]
	r.stats.Iterations = 1

	root, err := search.NewRoot[S, A](start, r.goal, r.s.h)
	if err != nil {
		return res, err
	}
	r.frontier.Push(root)

	for {
		// cancellation check (once per loop)
		if err := r.cfg.Ctx.Err(); err != nil {
			res.Stats = r.snapshot()
			return res, err
		}

		// 1) Exhausted frontier: cutoff if anything was pruned by MaxCost.
		node := r.frontier.Pop()
		if node == nil {
			res.Stats = r.snapshot()
			res.Outcome = search.Failure
			if r.cutoff {
				res.Outcome = search.Cutoff
			}
			return res, nil
		}

		// 2) Close the node; nodes past MaxCost are never expanded nor accepted.
		r.explored.Add(node)
		if node.GCost > r.cfg.MaxCost {
			r.cutoff = true
			continue
		}

		// 3) Goal test.
		if node.State == r.goal {
			res.Stats = r.snapshot()
			res.Outcome = search.Success
			res.Cost = node.GCost
			res.Path = r.s.policy.Path(node)
			r.pathLen = node.Depth()
			return res, nil
		}

		// 4) Expand.
		if err := r.expand(node); err != nil {
			res.Stats = r.snapshot()
			return res, err
		}
	}
}

// expand generates node's successors and merges them into the frontier:
// new states are queued, queued states are improved when the new f-cost is
// strictly lower, explored states are left alone.
func (r *runner[S, A, R]) expand(node *search.Node[S, A]) error {
	children, err := node.Successors(r.s.gen, r.s.h, r.goal)
	if err != nil {
		return fmt.Errorf("astar: expanding node at g=%v: %w", node.GCost, err)
	}
	r.stats.Expanded++
	r.stats.Generated += len(children)

	for _, child := range children {
		if r.frontier.Contains(child.State) {
			r.frontier.Improve(child)
			continue
		}
		if r.explored.Contains(child.State) {
			continue
		}
		r.frontier.Push(child)
	}

	return nil
}

// snapshot returns the counters collected so far.
func (r *runner[S, A, R]) snapshot() search.Stats {
	st := r.stats
	st.MaxFrontier = r.frontier.Peak()

	return st
}
