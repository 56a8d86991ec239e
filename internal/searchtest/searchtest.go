// Package searchtest provides small problem fixtures shared by the tests of
// the search algorithms.
package searchtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

// Hop is the action of walking one edge of a Graph.
type Hop struct {
	From, To string
}

// Reverse returns the hop walking the same edge backwards.
func (h Hop) Reverse() Hop { return Hop{From: h.To, To: h.From} }

type edge struct {
	to   string
	cost float64
}

// Graph is a weighted undirected graph with string vertices.
type Graph struct {
	adj map[string][]edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]edge)}
}

// Edge adds the undirected edge u-v with the given cost and returns g.
func (g *Graph) Edge(u, v string, cost float64) *Graph {
	g.adj[u] = append(g.adj[u], edge{to: v, cost: cost})
	g.adj[v] = append(g.adj[v], edge{to: u, cost: cost})

	return g
}

// Vertex adds an isolated vertex and returns g.
func (g *Graph) Vertex(v string) *Graph {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}

	return g
}

// Successors satisfies search.Generator[string, Hop]. Edges are listed in
// insertion order.
func (g *Graph) Successors(v string) []search.Successor[string, Hop] {
	out := make([]search.Successor[string, Hop], 0, len(g.adj[v]))
	for _, e := range g.adj[v] {
		out = append(out, search.Successor[string, Hop]{State: e.to, Action: Hop{From: v, To: e.to}, Cost: e.cost})
	}

	return out
}

// Cost returns the total cost of walking hops from start, failing t when a
// hop does not follow an edge or does not continue from the previous one.
func (g *Graph) Cost(t testing.TB, start string, hops []Hop) float64 {
	t.Helper()
	at, total := start, 0.0
	for i, h := range hops {
		require.Equalf(t, at, h.From, "hop %d starts at %s, want %s", i, h.From, at)
		c, ok := g.edgeCost(h.From, h.To)
		require.Truef(t, ok, "hop %d: no edge %s-%s", i, h.From, h.To)
		total += c
		at = h.To
	}

	return total
}

// End returns the vertex reached by hops from start.
func End(start string, hops []Hop) string {
	if len(hops) == 0 {
		return start
	}

	return hops[len(hops)-1].To
}

func (g *Graph) edgeCost(u, v string) (float64, bool) {
	best, ok := 0.0, false
	for _, e := range g.adj[u] {
		if e.to == v && (!ok || e.cost < best) {
			best, ok = e.cost, true
		}
	}

	return best, ok
}

// Line returns the path graph v0 - v1 - ... - v(n-1) with unit edges.
func Line(n int) *Graph {
	g := NewGraph()
	for i := 0; i+1 < n; i++ {
		g.Edge(Name(i), Name(i+1), 1)
	}

	return g
}

// Name returns the vertex name used by Line for index i.
func Name(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return "v" + digits[i:i+1]
	}

	return Name(i/10) + digits[i%10:i%10+1]
}

// Diamond is S-A-G at cost 1+5 and S-B-G at cost 2+2: the cheapest route
// is not the one through the first neighbor.
func Diamond() *Graph {
	return NewGraph().
		Edge("S", "A", 1).
		Edge("A", "G", 5).
		Edge("S", "B", 2).
		Edge("B", "G", 2)
}

// Zero is the null heuristic.
func Zero[S comparable](_, _ S) float64 { return 0 }

// Puzzle instances with their optimal solution lengths.
const (
	Hardest = "8,6,7/2,5,4/3,0,1" // 31 moves
	Medium  = "5,2,8/4,1,7/0,3,6" // 22 moves
	Easy    = "4,1,3/7,2,6/0,5,8" // 6 moves
	TwoAway = "1,2,3/4,5,6/0,7,8" // 2 moves
)

// Board parses s, failing t on error.
func Board(t testing.TB, s string) puzzle.Board {
	t.Helper()
	b, err := puzzle.Parse(s)
	require.NoError(t, err)

	return b
}

// Goal3 returns the solved 8-puzzle.
func Goal3(t testing.TB) puzzle.Board {
	t.Helper()
	g, err := puzzle.Goal(3)
	require.NoError(t, err)

	return g
}

// RequireSolves replays moves from start and requires the result to be goal.
func RequireSolves(t testing.TB, start, goal puzzle.Board, moves []puzzle.Move) {
	t.Helper()
	end, err := puzzle.Replay(start, moves)
	require.NoError(t, err)
	require.Equal(t, goal, end)
}
