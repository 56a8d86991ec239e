package bidir_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsearch/bidir"
	"github.com/katalvlaran/lvsearch/internal/searchtest"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

// BidirSuite exercises the bidirectional search. Meeting points depend on
// goroutine scheduling, so puzzle assertions check validity rather than a
// particular path.
type BidirSuite struct {
	suite.Suite
}

func moves() search.Policy[puzzle.Board, puzzle.Move, []puzzle.Move] {
	return search.ActionPath[puzzle.Board, puzzle.Move]()
}

func hops() search.Policy[string, searchtest.Hop, []searchtest.Hop] {
	return search.ActionPath[string, searchtest.Hop]()
}

// TestHardestPuzzle finds a valid solution with and without the scan.
func (s *BidirSuite) TestHardestPuzzle() {
	start, goal := searchtest.Board(s.T(), searchtest.Hardest), searchtest.Goal3(s.T())
	sr := bidir.New(puzzle.Successors, puzzle.Manhattan, moves())

	for _, improved := range []bool{true, false} {
		res, err := sr.Search(start, goal, search.WithImprovedAccuracy(improved))
		require.NoError(s.T(), err)
		require.Equal(s.T(), search.Success, res.Outcome)
		require.GreaterOrEqual(s.T(), res.Cost, 31.0)
		require.Equal(s.T(), float64(len(res.Path)), res.Cost)
		searchtest.RequireSolves(s.T(), start, goal, res.Path)
		require.Positive(s.T(), res.Stats.Expanded)
		require.Equal(s.T(), 1, res.Stats.Iterations)
	}
}

// TestFullPath checks the stitched steps read forward in time.
func (s *BidirSuite) TestFullPath() {
	start, goal := searchtest.Board(s.T(), searchtest.Medium), searchtest.Goal3(s.T())
	sr := bidir.New(puzzle.Successors, puzzle.Manhattan, search.FullPath[puzzle.Board, puzzle.Move]())

	res, err := sr.Search(start, goal)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found())
	require.NotEmpty(s.T(), res.Path)

	prev := start
	for i, st := range res.Path {
		next, ok := prev.Apply(st.Action)
		require.Truef(s.T(), ok, "step %d: %s is illegal", i, st.Action)
		require.Equalf(s.T(), next, st.State, "step %d", i)
		require.Equalf(s.T(), float64(i+1), st.GCost, "step %d", i)
		prev = next
	}
	require.Equal(s.T(), goal, prev)
	require.Equal(s.T(), res.Cost, res.Path[len(res.Path)-1].GCost)
}

// TestLine has a single route, so every run must return it.
func (s *BidirSuite) TestLine() {
	g := searchtest.Line(9)
	sr := bidir.New(g.Successors, searchtest.Zero[string], hops())

	for _, improved := range []bool{true, false} {
		res, err := sr.Search("v0", "v8", search.WithImprovedAccuracy(improved))
		require.NoError(s.T(), err)
		require.Equal(s.T(), search.Success, res.Outcome)
		require.Equal(s.T(), 8.0, res.Cost)
		require.Len(s.T(), res.Path, 8)
		require.Equal(s.T(), 8.0, g.Cost(s.T(), "v0", res.Path))
		require.Equal(s.T(), "v8", searchtest.End("v0", res.Path))
	}
}

// TestImprovedFindsCheaperMeeting stages the race so the forward side meets
// the backward frontier at X (2.5+3) while q is queued on both sides
// (3+2). The backward side parks in its expansion of Z until the meeting
// is logged, which keeps both frontiers fixed.
func (s *BidirSuite) TestImprovedFindsCheaperMeeting() {
	g := searchtest.NewGraph().
		Edge("S", "X", 2.5).Edge("X", "G", 3).
		Edge("S", "p", 2).Edge("p", "q", 1).Edge("q", "G", 2).
		Edge("G", "Z", 0.5)

	run := func(improved bool) search.Result[[]searchtest.Hop] {
		parked := make(chan struct{})
		met := &meetHandler{ch: make(chan struct{})}
		gen := func(v string) []search.Successor[string, searchtest.Hop] {
			switch v {
			case "S":
				wait(parked)
			case "Z":
				close(parked)
				wait(met.ch)
			}
			return g.Successors(v)
		}

		res, err := bidir.New(gen, searchtest.Zero[string], hops()).Search("S", "G",
			search.WithImprovedAccuracy(improved),
			search.WithLogger(slog.New(met)),
		)
		require.NoError(s.T(), err)
		require.Equal(s.T(), search.Success, res.Outcome)
		require.Equal(s.T(), res.Cost, g.Cost(s.T(), "S", res.Path))
		require.Equal(s.T(), "G", searchtest.End("S", res.Path))
		return res
	}

	off := run(false)
	s.Equal(5.5, off.Cost)
	s.Equal([]searchtest.Hop{{From: "S", To: "X"}, {From: "X", To: "G"}}, off.Path)

	on := run(true)
	s.Equal(5.0, on.Cost)
	s.Equal([]searchtest.Hop{{From: "S", To: "p"}, {From: "p", To: "q"}, {From: "q", To: "G"}}, on.Path)
}

// meetHandler closes ch on the first "bidir frontiers met" record.
type meetHandler struct {
	ch   chan struct{}
	once sync.Once
}

func (h *meetHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *meetHandler) Handle(_ context.Context, r slog.Record) error {
	if r.Message == "bidir frontiers met" {
		h.once.Do(func() { close(h.ch) })
	}
	return nil
}

func (h *meetHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *meetHandler) WithGroup(string) slog.Handler      { return h }

// wait blocks on ch, giving up after a while so a broken schedule fails
// the assertions instead of hanging.
func wait(ch <-chan struct{}) {
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
	}
}

// TestStartIsGoal returns an empty path.
func (s *BidirSuite) TestStartIsGoal() {
	goal := searchtest.Goal3(s.T())
	for _, p := range []bool{true, false} {
		res, err := bidir.New(puzzle.Successors, puzzle.Manhattan, moves()).
			Search(goal, goal, search.WithImprovedAccuracy(p))
		require.NoError(s.T(), err)
		require.Equal(s.T(), search.Success, res.Outcome)
		require.NotNil(s.T(), res.Path)
		require.Empty(s.T(), res.Path)
		require.Zero(s.T(), res.Cost)
	}
}

// TestOneMove covers a solution found as soon as one side expands.
func (s *BidirSuite) TestOneMove() {
	start, goal := searchtest.Board(s.T(), "1,2,3/4,5,6/7,0,8"), searchtest.Goal3(s.T())
	res, err := bidir.New(puzzle.Successors, puzzle.Manhattan, moves()).Search(start, goal)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Success, res.Outcome)
	require.Equal(s.T(), []puzzle.Move{puzzle.Right}, res.Path)
}

// TestMaxCost distinguishes cutoff from success at the boundary.
func (s *BidirSuite) TestMaxCost() {
	g := searchtest.Line(9)
	sr := bidir.New(g.Successors, searchtest.Zero[string], hops())

	res, err := sr.Search("v0", "v8", search.WithMaxCost(8))
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Success, res.Outcome)

	res, err = sr.Search("v0", "v8", search.WithMaxCost(7))
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Cutoff, res.Outcome)
	require.Nil(s.T(), res.Path)

	start, goal := searchtest.Board(s.T(), searchtest.Easy), searchtest.Goal3(s.T())
	pres, err := bidir.New(puzzle.Successors, puzzle.Manhattan, moves()).Search(start, goal, search.WithMaxCost(0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Cutoff, pres.Outcome)
}

// TestFailure reports disconnected states from either side.
func (s *BidirSuite) TestFailure() {
	g := searchtest.Line(5).Vertex("island")
	sr := bidir.New(g.Successors, searchtest.Zero[string], hops())

	res, err := sr.Search("island", "v2")
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Failure, res.Outcome)
	require.Nil(s.T(), res.Path)

	res, err = sr.Search("v2", "island")
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Failure, res.Outcome)

	goal, err := puzzle.Goal(2)
	require.NoError(s.T(), err)
	pres, err := bidir.New(puzzle.Successors, puzzle.Manhattan, moves()).Search(searchtest.Board(s.T(), "2,1/3,0"), goal)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Failure, pres.Outcome)
}

// TestErrors covers validation, option and collaborator errors.
func (s *BidirSuite) TestErrors() {
	goal := searchtest.Goal3(s.T())

	_, err := bidir.New[puzzle.Board, puzzle.Move, []puzzle.Move](puzzle.Successors, puzzle.Manhattan, nil).Search(goal, goal)
	require.ErrorIs(s.T(), err, search.ErrNilPolicy)

	_, err = bidir.New(puzzle.Successors, puzzle.Manhattan, moves()).Search(goal, goal, search.WithMaxCost(-1))
	require.ErrorIs(s.T(), err, search.ErrOptionViolation)

	g := searchtest.NewGraph().Edge("a", "b", -1)
	_, err = bidir.New(g.Successors, searchtest.Zero[string], hops()).Search("a", "b")
	require.ErrorIs(s.T(), err, search.ErrNegativeCost)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bidir.New(puzzle.Successors, puzzle.Manhattan, moves()).
		Search(searchtest.Board(s.T(), searchtest.Easy), goal, search.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestConcurrentCalls shares one Searcher between goroutines.
func (s *BidirSuite) TestConcurrentCalls() {
	start, goal := searchtest.Board(s.T(), searchtest.Easy), searchtest.Goal3(s.T())
	sr := bidir.New(puzzle.Successors, puzzle.Manhattan, moves())

	const n = 8
	var wg sync.WaitGroup
	results := make([]search.Result[[]puzzle.Move], n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = sr.Search(start, goal)
		}()
	}
	wg.Wait()
	for i := 0; i < n; i++ {
		require.NoError(s.T(), errs[i])
		require.Equal(s.T(), search.Success, results[i].Outcome)
		searchtest.RequireSolves(s.T(), start, goal, results[i].Path)
	}
}

// TestBidirSuite runs the suite.
func TestBidirSuite(t *testing.T) {
	suite.Run(t, new(BidirSuite))
}
