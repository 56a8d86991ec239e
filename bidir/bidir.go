package bidir

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/search"
)

// Search runs the forward and backward searches concurrently and blocks
// until both have stopped.
//
// The outcome is search.Success, search.Failure or search.Cutoff. The first
// error from either side (a misbehaving collaborator or cancellation of the
// WithContext context) cancels the other side and is returned.
//
// Options read: WithImprovedAccuracy, WithMaxCost, WithContext, WithLogger,
// WithTracerProvider, WithMeterProvider.
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

	// 1) Race the two sides; the first error cancels the sibling.
	fw := newSide[S, A]("forward")
	bw := newSide[S, A]("backward")
	var rc race
	var fwOut, bwOut outcome[S, A]

	g, ctx := errgroup.WithContext(cfg.Ctx)
	g.Go(func() error {
		var err error
		fwOut, err = s.advance(ctx, cfg, &rc, fw, bw, start, goal)
		return err
	})
	g.Go(func() error {
		var err error
		bwOut, err = s.advance(ctx, cfg, &rc, bw, fw, goal, start)
		return err
	})
	err = g.Wait()

	// 2) Both goroutines are done: merge counters and build the result.
	res.Stats = merge(fw.stats, bw.stats)
	res.Stats.MaxFrontier = fw.frontier.Peak() + bw.frontier.Peak()
	pathLen := 0
	if err == nil {
		res, pathLen = s.combine(cfg, fw, bw, fwOut, bwOut, res.Stats)
	}
	res.Stats.Duration = run.Elapsed()
	run.Finish(telemetry.Summary{
		Outcome:    res.Outcome.String(),
		Expanded:   res.Stats.Expanded,
		Generated:  res.Stats.Generated,
		Iterations: res.Stats.Iterations,
		Cost:       res.Cost,
		PathLen:    pathLen,
		Err:        err,
	})

	return res, err
}

// newSide returns an empty side named name.
func newSide[S comparable, A any](name string) *side[S, A] {
	return &side[S, A]{
		name:     name,
		frontier: search.NewFrontier[S, A](64),
		explored: make(search.Explored[S, A], 64),
	}
}

// advance is the A* loop of one side searching from `from` towards `to`,
// watching the opposite side's frontier for a meeting point.
func (s *Searcher[S, A, R]) advance(
	ctx context.Context,
	cfg search.Options,
	rc *race,
	self, other *side[S, A],
	from, to S,
) (outcome[S, A], error) {
	// seed the own frontier with the root
	self.stats.Iterations = 1
	root, err := search.NewRoot[S, A](from, to, s.h)
	if err != nil {
		return outcome[S, A]{}, err
	}
	self.mu.Lock()
	self.frontier.Push(root)
	self.mu.Unlock()

	cutoff := false // some node was rejected by MaxCost
	for !rc.done.Load() {
		// cancellation check (once per loop)
		if err := ctx.Err(); err != nil {
			return outcome[S, A]{}, err
		}

		// 1) Exhausted frontier.
		self.mu.Lock()
		node := self.frontier.Pop()
		self.mu.Unlock()
		if node == nil {
			if cutoff {
				return outcome[S, A]{kind: partialCutoff}, nil
			}
			// an exhausted side proves the two states disconnected
			rc.done.Store(true)
			return outcome[S, A]{kind: partialFailure}, nil
		}

		// 2) Nodes past MaxCost are closed without expansion.
		if node.GCost > cfg.MaxCost {
			self.explored.Add(node)
			cutoff = true
			continue
		}
		// 3) Reached the other end on its own.
		if node.State == to {
			rc.done.Store(true)
			return outcome[S, A]{kind: partialSuccess, node: node}, nil
		}

		// 4) Meeting test against the opposite frontier.
		other.mu.Lock()
		met, ok := other.frontier.Get(node.State)
		var gOther float64
		if ok {
			gOther = met.GCost
		}
		other.mu.Unlock()
		if ok && node.GCost+gOther > cfg.MaxCost {
			// the joined path would exceed the bound; keep searching
			cutoff = true
			ok = false
		}
		if ok {
			rc.done.Store(true)
			cfg.Logger.Debug("bidir frontiers met",
				slog.String("side", self.name),
				slog.Float64("g_self", node.GCost),
				slog.Float64("g_other", gOther),
			)
			return outcome[S, A]{kind: partialConnect, node: node, other: met}, nil
		}

		// 5) Close and expand.
		self.explored.Add(node)
		if err := s.expand(self, node, to); err != nil {
			return outcome[S, A]{}, err
		}
	}

	// the other side finished first
	return outcome[S, A]{kind: partialStopped}, nil
}

// expand merges node's successors into self's frontier under self's mutex.
func (s *Searcher[S, A, R]) expand(self *side[S, A], node *search.Node[S, A], to S) error {
	children, err := node.Successors(s.gen, s.h, to)
	if err != nil {
		return fmt.Errorf("bidir: %s side expanding node at g=%v: %w", self.name, node.GCost, err)
	}
	self.stats.Expanded++
	self.stats.Generated += len(children)

	self.mu.Lock()
	defer self.mu.Unlock()
	for _, child := range children {
		// improve-or-skip, as in plain A*
		if self.frontier.Contains(child.State) {
			self.frontier.Improve(child)
			continue
		}
		if self.explored.Contains(child.State) {
			continue
		}
		self.frontier.Push(child)
	}

	return nil
}

// combine turns the two side outcomes into a Result. It runs after both
// goroutines have returned, so the sides are read without locking.
func (s *Searcher[S, A, R]) combine(
	cfg search.Options,
	fw, bw *side[S, A],
	fwOut, bwOut outcome[S, A],
	stats search.Stats,
) (search.Result[R], int) {
	res := search.Result[R]{Stats: stats}
	reverse := func(a A) A { return a.Reverse() }

	// 1) Pick the deciding side; a forward result wins a tie.
	var fwNode, bwNode *search.Node[S, A]
	switch {
	case fwOut.kind == partialSuccess:
		res.Outcome = search.Success
		res.Cost = fwOut.node.GCost
		res.Path = s.policy.Path(fwOut.node)
		return res, fwOut.node.Depth()
	case bwOut.kind == partialSuccess:
		bwNode = bwOut.node
	case fwOut.kind == partialConnect:
		fwNode, bwNode = fwOut.node, fwOut.other
	case bwOut.kind == partialConnect:
		fwNode, bwNode = bwOut.other, bwOut.node
	case fwOut.kind == partialFailure || bwOut.kind == partialFailure:
		res.Outcome = search.Failure
		return res, 0
	default:
		res.Outcome = search.Cutoff
		return res, 0
	}

	// 2) Optionally look for a cheaper meeting point, then splice.
	if fwNode != nil && cfg.ImprovedAccuracy {
		fwNode, bwNode = bestConnect(fwNode, bwNode, fw.frontier, bw.frontier)
	}
	res.Outcome = search.Success
	res.Cost = search.JoinCost(fwNode, bwNode)
	res.Path = s.policy.Join(fwNode, bwNode, reverse)

	return res, depth(fwNode) + depth(bwNode)
}

// bestConnect scans the smaller frontier for states also queued on the other
// side and returns the pair with the lowest combined g-cost, starting from
// the meeting pair found during the race.
func bestConnect[S comparable, A any](fwNode, bwNode *search.Node[S, A], fwF, bwF *search.Frontier[S, A]) (*search.Node[S, A], *search.Node[S, A]) {
	cost := fwNode.GCost + bwNode.GCost
	// iterate the smaller frontier and look states up in the larger one
	src, dst, srcIsForward := fwF, bwF, true
	if bwF.Len() < fwF.Len() {
		src, dst, srcIsForward = bwF, fwF, false
	}
	src.Each(func(n *search.Node[S, A]) bool {
		m, ok := dst.Get(n.State)
		if !ok {
			return true
		}
		if c := n.GCost + m.GCost; c < cost {
			cost = c
			if srcIsForward {
				fwNode, bwNode = n, m
			} else {
				fwNode, bwNode = m, n
			}
		}
		return true
	})

	return fwNode, bwNode
}

// merge adds up the counters of both sides.
func merge(a, b search.Stats) search.Stats {
	return search.Stats{
		Expanded:   a.Expanded + b.Expanded,
		Generated:  a.Generated + b.Generated,
		Iterations: max(a.Iterations, b.Iterations),
	}
}

// depth is Node.Depth tolerating nil.
func depth[S comparable, A any](n *search.Node[S, A]) int {
	if n == nil {
		return 0
	}

	return n.Depth()
}
