package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

func chain(states []int, actions []string) *search.Node[int, string] {
	n := &search.Node[int, string]{State: states[0]}
	for i := 1; i < len(states); i++ {
		g := n.GCost + 1
		n = &search.Node[int, string]{State: states[i], Action: actions[i-1], GCost: g, FCost: g, Parent: n}
	}

	return n
}

func rev(a string) string { return "~" + a }

func TestFullPath_Path(t *testing.T) {
	p := search.FullPath[int, string]()
	goal := chain([]int{0, 1, 2}, []string{"a", "b"})

	steps := p.Path(goal)
	require.Len(t, steps, 2, "the root is excluded")
	assert.Equal(t, search.Step[int, string]{State: 1, Action: "a", GCost: 1, FCost: 1}, steps[0])
	assert.Equal(t, search.Step[int, string]{State: 2, Action: "b", GCost: 2, FCost: 2}, steps[1])

	root := chain([]int{0}, nil)
	empty := p.Path(root)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestActionPath_Path(t *testing.T) {
	p := search.ActionPath[int, string]()
	goal := chain([]int{0, 1, 2, 3}, []string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, p.Path(goal))

	empty := p.Path(chain([]int{0}, nil))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// fw: 0 -a-> 1 -b-> 2 ; bw (rooted at goal 4): 4 -x-> 3 -y-> 2
func joinFixture() (*search.Node[int, string], *search.Node[int, string]) {
	fw := chain([]int{0, 1, 2}, []string{"a", "b"})
	bw := chain([]int{4, 3, 2}, []string{"x", "y"})

	return fw, bw
}

func TestFullPath_Join(t *testing.T) {
	fw, bw := joinFixture()
	steps := search.FullPath[int, string]().Join(fw, bw, rev)
	require.Len(t, steps, 4)

	states := make([]int, len(steps))
	actions := make([]string, len(steps))
	for i, s := range steps {
		states[i] = s.State
		actions[i] = s.Action
	}
	assert.Equal(t, []int{1, 2, 3, 4}, states)
	// the action into 3 undoes y, the action into 4 undoes x
	assert.Equal(t, []string{"a", "b", "~y", "~x"}, actions)
	assert.Equal(t, 3.0, steps[2].GCost)
	assert.Equal(t, 4.0, steps[3].GCost)
	assert.Equal(t, 4.0, search.JoinCost(fw, bw))
}

func TestActionPath_Join(t *testing.T) {
	fw, bw := joinFixture()
	actions := search.ActionPath[int, string]().Join(fw, bw, rev)
	assert.Equal(t, []string{"a", "b", "~y", "~x"}, actions)
}

func TestJoin_OneSided(t *testing.T) {
	fw, bw := joinFixture()
	full := search.FullPath[int, string]()
	acts := search.ActionPath[int, string]()

	// forward side reached the goal alone
	assert.Equal(t, []string{"a", "b"}, acts.Join(fw, nil, rev))
	assert.Len(t, full.Join(fw, nil, rev), 2)

	// backward side reached the start alone
	assert.Equal(t, []string{"~y", "~x"}, acts.Join(nil, bw, rev))
	steps := full.Join(nil, bw, rev)
	require.Len(t, steps, 2)
	assert.Equal(t, 3, steps[0].State)
	assert.Equal(t, 1.0, steps[0].GCost)
	assert.Equal(t, 4, steps[1].State)
	assert.Equal(t, 2.0, steps[1].GCost)

	// nothing on either side
	assert.Empty(t, acts.Join(nil, nil, rev))
	assert.NotNil(t, full.Join(nil, nil, rev))
	assert.Equal(t, 0.0, search.JoinCost[int, string](nil, nil))
}
