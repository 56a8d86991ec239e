package gridworld_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/bidir"
	"github.com/katalvlaran/lvsearch/gridworld"
	"github.com/katalvlaran/lvsearch/search"
)

func TestNew_Validation(t *testing.T) {
	_, err := gridworld.New(nil, gridworld.DefaultOptions())
	require.ErrorIs(t, err, gridworld.ErrEmptyGrid)
	_, err = gridworld.New([][]int{{}}, gridworld.DefaultOptions())
	require.ErrorIs(t, err, gridworld.ErrEmptyGrid)
	_, err = gridworld.New([][]int{{1, 1}, {1}}, gridworld.DefaultOptions())
	require.ErrorIs(t, err, gridworld.ErrNonRectangular)
}

func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g, err := gridworld.New(in, gridworld.DefaultOptions())
	require.NoError(t, err)
	in[0][0] = 0
	assert.Equal(t, 1, g.Costs[0][0])
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
}

func TestParse(t *testing.T) {
	g, err := gridworld.Parse("1 2 3\n\n4 0 6\n", gridworld.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 0, 6}}, g.Costs)
	assert.False(t, g.Open(gridworld.Cell{X: 1, Y: 1}))

	_, err = gridworld.Parse("1 x", gridworld.DefaultOptions())
	require.Error(t, err)
}

func TestDirection(t *testing.T) {
	all := []gridworld.Direction{
		gridworld.North, gridworld.NorthEast, gridworld.East, gridworld.SouthEast,
		gridworld.South, gridworld.SouthWest, gridworld.West, gridworld.NorthWest,
	}
	for _, d := range all {
		back := gridworld.Cell{X: 5, Y: 5}.Step(d).Step(d.Reverse())
		assert.Equal(t, gridworld.Cell{X: 5, Y: 5}, back, d.String())
		assert.Equal(t, d, d.Reverse().Reverse())
	}
	assert.Equal(t, gridworld.South, gridworld.North.Reverse())
	assert.Equal(t, gridworld.NorthEast, gridworld.SouthWest.Reverse())
	assert.Equal(t, gridworld.None, gridworld.None.Reverse())
	assert.Equal(t, "NW", gridworld.NorthWest.String())
}

func TestSuccessors(t *testing.T) {
	g, err := gridworld.New([][]int{
		{1, 3, 1},
		{1, 1, 0},
		{1, 1, 1},
	}, gridworld.Options{WallBelow: 1, Conn: gridworld.Conn8})
	require.NoError(t, err)

	succ := g.Successors(gridworld.Cell{X: 1, Y: 1})
	got := map[gridworld.Direction]float64{}
	for _, s := range succ {
		got[s.Action] = s.Cost
		assert.Equal(t, gridworld.Cell{X: 1, Y: 1}.Step(s.Action), s.State)
	}
	assert.Len(t, got, 7, "the wall to the east is skipped")
	assert.NotContains(t, got, gridworld.East)
	assert.Equal(t, 2.0, got[gridworld.North], "mean of both cells")
	assert.Equal(t, 1.0, got[gridworld.South])
	assert.InDelta(t, math.Sqrt2, got[gridworld.SouthWest], 1e-12)

	assert.Empty(t, g.Successors(gridworld.Cell{X: 2, Y: 1}), "walls have no successors")
	assert.Empty(t, g.Successors(gridworld.Cell{X: -1, Y: 0}))

	four, err := gridworld.New([][]int{{1, 1}, {1, 1}}, gridworld.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, four.Successors(gridworld.Cell{}), 2)
}

func TestSuccessors_Symmetric(t *testing.T) {
	g, err := gridworld.New([][]int{
		{1, 5, 2},
		{3, 1, 4},
	}, gridworld.Options{WallBelow: 1, Conn: gridworld.Conn8})
	require.NoError(t, err)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := gridworld.Cell{X: x, Y: y}
			for _, s := range g.Successors(c) {
				found := false
				for _, back := range g.Successors(s.State) {
					if back.State == c {
						found = true
						assert.Equal(t, s.Action.Reverse(), back.Action)
						assert.Equal(t, s.Cost, back.Cost)
					}
				}
				assert.True(t, found)
			}
		}
	}
}

func TestHeuristics(t *testing.T) {
	g, err := gridworld.New([][]int{{2, 3, 2}, {2, 9, 2}}, gridworld.DefaultOptions())
	require.NoError(t, err)
	a, b := gridworld.Cell{X: 0, Y: 0}, gridworld.Cell{X: 2, Y: 1}

	assert.Equal(t, 6.0, g.Manhattan(a, b), "3 steps at the cheapest cell cost 2")
	assert.InDelta(t, 2*(1+math.Sqrt2), g.Octile(a, b), 1e-12)
	assert.Equal(t, g.Manhattan(a, b), g.Heuristic()(a, b))
	assert.Zero(t, g.Manhattan(b, b))
}

func TestWalk(t *testing.T) {
	g, err := gridworld.New([][]int{{1, 2}, {0, 1}}, gridworld.DefaultOptions())
	require.NoError(t, err)

	cells, cost, err := g.Walk(gridworld.Cell{}, []gridworld.Direction{gridworld.East, gridworld.South})
	require.NoError(t, err)
	assert.Equal(t, []gridworld.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}}, cells)
	assert.Equal(t, 3.0, cost)

	_, _, err = g.Walk(gridworld.Cell{}, []gridworld.Direction{gridworld.South})
	require.ErrorIs(t, err, gridworld.ErrOutOfBounds)

	for _, d := range []gridworld.Direction{gridworld.NorthWest + 1, -1, 100} {
		cells, _, err = g.Walk(gridworld.Cell{}, []gridworld.Direction{gridworld.East, d})
		require.ErrorIs(t, err, gridworld.ErrOutOfBounds, "direction %d", int(d))
		assert.Equal(t, []gridworld.Cell{{X: 1, Y: 0}}, cells)
	}
}

func TestDirection_Unknown(t *testing.T) {
	d := gridworld.Direction(-1)
	assert.Equal(t, gridworld.None, d.Reverse())
	assert.Equal(t, "Direction(-1)", d.String())
	assert.Equal(t, gridworld.Cell{X: 2, Y: 3}, gridworld.Cell{X: 2, Y: 3}.Step(gridworld.NorthWest+1))
}

// maze has a cheap detour around an expensive middle column.
var maze = [][]int{
	{1, 1, 1, 1, 1},
	{1, 9, 9, 9, 1},
	{1, 9, 0, 9, 1},
	{1, 9, 9, 9, 1},
	{1, 1, 1, 1, 1},
}

func TestSearch_Maze(t *testing.T) {
	for _, conn := range []gridworld.Connectivity{gridworld.Conn4, gridworld.Conn8} {
		g, err := gridworld.New(maze, gridworld.Options{WallBelow: 1, Conn: conn})
		require.NoError(t, err)
		start, goal := gridworld.Cell{X: 0, Y: 2}, gridworld.Cell{X: 4, Y: 2}
		policy := search.ActionPath[gridworld.Cell, gridworld.Direction]()

		res, err := astar.New(g.Successors, g.Heuristic(), policy).Search(start, goal)
		require.NoError(t, err)
		require.Equal(t, search.Success, res.Outcome)
		cells, cost, err := g.Walk(start, res.Path)
		require.NoError(t, err)
		assert.Equal(t, goal, cells[len(cells)-1])
		assert.InDelta(t, res.Cost, cost, 1e-9)

		// through the 9s would cost at least 4 * 5 = 20
		if conn == gridworld.Conn4 {
			assert.Equal(t, 8.0, res.Cost)
		} else {
			assert.InDelta(t, 4+2*math.Sqrt2, res.Cost, 1e-9)
		}

		bres, err := bidir.New(g.Successors, g.Heuristic(), policy).Search(start, goal)
		require.NoError(t, err)
		require.Equal(t, search.Success, bres.Outcome)
		_, bcost, err := g.Walk(start, bres.Path)
		require.NoError(t, err)
		assert.InDelta(t, bres.Cost, bcost, 1e-9)
		assert.GreaterOrEqual(t, bres.Cost+1e-9, res.Cost)
	}
}

func TestSearch_Walled(t *testing.T) {
	g, err := gridworld.New([][]int{
		{1, 0, 1},
		{1, 0, 1},
	}, gridworld.DefaultOptions())
	require.NoError(t, err)

	res, err := astar.New(g.Successors, g.Manhattan, search.ActionPath[gridworld.Cell, gridworld.Direction]()).
		Search(gridworld.Cell{X: 0, Y: 0}, gridworld.Cell{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, search.Failure, res.Outcome)
}
