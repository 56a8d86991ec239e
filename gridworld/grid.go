package gridworld

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Grid is an immutable cost map. Costs[y][x] holds the value of cell (x, y).
type Grid struct {
	Width, Height int
	Costs         [][]int
	Conn          Connectivity
	WallBelow     int

	moves   []Direction
	minCost float64
}

// New constructs a Grid from a non-empty, rectangular 2D slice, deep-copying
// the input. Returns ErrEmptyGrid or ErrNonRectangular on bad shape.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]int, h)
	minCost := math.Inf(1)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.WallBelow && float64(v) < minCost {
				minCost = float64(v)
			}
		}
	}
	if math.IsInf(minCost, 1) {
		minCost = 0
	}
	moves := []Direction{North, East, South, West}
	if opts.Conn == Conn8 {
		moves = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	}

	return &Grid{
		Width:     w,
		Height:    h,
		Costs:     cells,
		Conn:      opts.Conn,
		WallBelow: opts.WallBelow,
		moves:     moves,
		minCost:   minCost,
	}, nil
}

// Parse reads a grid from lines of whitespace-separated integers.
func Parse(s string, opts Options) (*Grid, error) {
	var rows [][]int
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			if _, err := fmt.Sscan(f, &row[i]); err != nil {
				return nil, fmt.Errorf("gridworld: bad cell %q: %w", f, err)
			}
		}
		rows = append(rows, row)
	}

	return New(rows, opts)
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Open reports whether c is inside the grid and not a wall.
func (g *Grid) Open(c Cell) bool {
	return g.InBounds(c) && g.Costs[c.Y][c.X] >= g.WallBelow
}

// Step returns the cell reached from c by d. An unknown direction leaves c
// where it is.
func (c Cell) Step(d Direction) Cell {
	if !d.valid() {
		return c
	}
	o := offsets[d]

	return Cell{X: c.X + o[0], Y: c.Y + o[1]}
}

// cost of moving between the open neighbors a and b along d.
func (g *Grid) cost(a, b Cell, d Direction) float64 {
	c := float64(g.Costs[a.Y][a.X]+g.Costs[b.Y][b.X]) / 2
	if d.diagonal() {
		c *= math.Sqrt2
	}

	return c
}

// Successors lists the open neighbors of c. A wall or out-of-grid cell has
// none. It satisfies search.Generator[Cell, Direction].
func (g *Grid) Successors(c Cell) []search.Successor[Cell, Direction] {
	if !g.Open(c) {
		return nil
	}
	out := make([]search.Successor[Cell, Direction], 0, len(g.moves))
	for _, d := range g.moves {
		n := c.Step(d)
		if !g.Open(n) {
			continue
		}
		out = append(out, search.Successor[Cell, Direction]{State: n, Action: d, Cost: g.cost(c, n, d)})
	}

	return out
}

// Manhattan is the 4-connected distance scaled by the cheapest open cell.
func (g *Grid) Manhattan(state, goal Cell) float64 {
	dx, dy := absInt(state.X-goal.X), absInt(state.Y-goal.Y)

	return g.minCost * float64(dx+dy)
}

// Octile is the 8-connected distance scaled by the cheapest open cell.
func (g *Grid) Octile(state, goal Cell) float64 {
	dx, dy := absInt(state.X-goal.X), absInt(state.Y-goal.Y)
	lo, hi := min(dx, dy), max(dx, dy)

	return g.minCost * (float64(hi-lo) + math.Sqrt2*float64(lo))
}

// Heuristic returns the admissible heuristic matching g's connectivity.
func (g *Grid) Heuristic() search.Heuristic[Cell] {
	if g.Conn == Conn8 {
		return g.Octile
	}

	return g.Manhattan
}

// Walk follows dirs from start and returns the visited cells and the total
// cost. It fails with ErrOutOfBounds when a step leaves the open area or
// names an unknown direction.
func (g *Grid) Walk(start Cell, dirs []Direction) ([]Cell, float64, error) {
	if !g.Open(start) {
		return nil, 0, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	cells := make([]Cell, 0, len(dirs))
	total := 0.0
	cur := start
	for i, d := range dirs {
		if !d.valid() {
			return cells, total, fmt.Errorf("%w: step %d has unknown direction %s", ErrOutOfBounds, i, d)
		}
		next := cur.Step(d)
		if !g.Open(next) {
			return cells, total, fmt.Errorf("%w: step %d (%s) to %v", ErrOutOfBounds, i, d, next)
		}
		total += g.cost(cur, next, d)
		cells = append(cells, next)
		cur = next
	}

	return cells, total, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
