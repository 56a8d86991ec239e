package bidir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

type flip string

func (f flip) Reverse() flip { return "~" + f }

func leaf(state string, g float64, parent *search.Node[string, flip]) *search.Node[string, flip] {
	return &search.Node[string, flip]{State: state, GCost: g, FCost: g, Action: flip(state), Parent: parent}
}

func frontierOf(nodes ...*search.Node[string, flip]) *search.Frontier[string, flip] {
	f := search.NewFrontier[string, flip](len(nodes))
	for _, n := range nodes {
		f.Push(n)
	}

	return f
}

func TestBestConnect(t *testing.T) {
	fwRoot, bwRoot := leaf("S", 0, nil), leaf("G", 0, nil)
	fwMeet, bwMeet := leaf("M", 6, fwRoot), leaf("M", 4, bwRoot)

	fwX, bwX := leaf("X", 3, fwRoot), leaf("X", 4, bwRoot)
	fwY, bwY := leaf("Y", 1, fwRoot), leaf("Y", 2, bwRoot)
	fwOnly := leaf("Z", 0.5, fwRoot)

	cases := []struct {
		name   string
		fw, bw *search.Frontier[string, flip]
	}{
		{"forward side smaller", frontierOf(fwX, fwY), frontierOf(bwX, bwY, leaf("W", 1, bwRoot))},
		{"backward side smaller", frontierOf(fwX, fwY, fwOnly), frontierOf(bwX, bwY)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, b := bestConnect(fwMeet, bwMeet, tc.fw, tc.bw)
			assert.Same(t, fwY, f, "forward node comes from the forward frontier")
			assert.Same(t, bwY, b)
		})
	}
}

func TestBestConnect_KeepsMeetingPair(t *testing.T) {
	fwRoot, bwRoot := leaf("S", 0, nil), leaf("G", 0, nil)
	fwMeet, bwMeet := leaf("M", 1, fwRoot), leaf("M", 1, bwRoot)

	// X is shared but dearer than the meeting pair; Z is one-sided
	fw := frontierOf(leaf("X", 3, fwRoot), leaf("Z", 0, fwRoot))
	bw := frontierOf(leaf("X", 3, bwRoot))
	f, b := bestConnect(fwMeet, bwMeet, fw, bw)
	assert.Same(t, fwMeet, f)
	assert.Same(t, bwMeet, b)
}

func TestCombine_Priority(t *testing.T) {
	s := New[string, flip, []flip](
		func(string) []search.Successor[string, flip] { return nil },
		func(string, string) float64 { return 0 },
		search.ActionPath[string, flip](),
	)
	cfg, err := search.Apply(search.WithImprovedAccuracy(false))
	require.NoError(t, err)
	fw, bw := newSide[string, flip]("forward"), newSide[string, flip]("backward")

	fwRoot, bwRoot := leaf("S", 0, nil), leaf("G", 0, nil)
	fwGoal := leaf("G", 1, fwRoot)
	bwStart := leaf("S", 1, bwRoot)
	fwMeet, bwMeet := leaf("M", 1, fwRoot), leaf("M", 1, bwRoot)

	cases := []struct {
		name     string
		fwOut    outcome[string, flip]
		bwOut    outcome[string, flip]
		want     search.Outcome
		wantPath []flip
	}{
		{
			"forward success wins",
			outcome[string, flip]{kind: partialSuccess, node: fwGoal},
			outcome[string, flip]{kind: partialSuccess, node: bwStart},
			search.Success, []flip{"G"},
		},
		{
			"backward success",
			outcome[string, flip]{kind: partialStopped},
			outcome[string, flip]{kind: partialSuccess, node: bwStart},
			search.Success, []flip{"~S"},
		},
		{
			"forward meeting before backward meeting",
			outcome[string, flip]{kind: partialConnect, node: fwMeet, other: bwMeet},
			outcome[string, flip]{kind: partialConnect, node: bwStart, other: fwGoal},
			search.Success, []flip{"M", "~M"},
		},
		{
			"backward meeting",
			outcome[string, flip]{kind: partialStopped},
			outcome[string, flip]{kind: partialConnect, node: bwMeet, other: fwMeet},
			search.Success, []flip{"M", "~M"},
		},
		{
			"failure beats cutoff",
			outcome[string, flip]{kind: partialCutoff},
			outcome[string, flip]{kind: partialFailure},
			search.Failure, nil,
		},
		{
			"cutoff",
			outcome[string, flip]{kind: partialCutoff},
			outcome[string, flip]{kind: partialCutoff},
			search.Cutoff, nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, _ := s.combine(cfg, fw, bw, tc.fwOut, tc.bwOut, search.Stats{})
			assert.Equal(t, tc.want, res.Outcome)
			assert.Equal(t, tc.wantPath, res.Path)
		})
	}
}

func TestMerge(t *testing.T) {
	got := merge(
		search.Stats{Expanded: 3, Generated: 7, Iterations: 1},
		search.Stats{Expanded: 2, Generated: 5, Iterations: 1},
	)
	assert.Equal(t, search.Stats{Expanded: 5, Generated: 12, Iterations: 1}, got)
}
