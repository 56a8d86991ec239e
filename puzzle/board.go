package puzzle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// New builds an n×n board from rows. Every value 0..n*n-1 must appear once;
// 0 is the blank.
func New(rows [][]int) (Board, error) {
	n := len(rows)
	if n < MinSize || n > MaxSize {
		return Board{}, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	flat := make([]int, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrBadTiles, i, len(row), n)
		}
		flat = append(flat, row...)
	}

	return FromTiles(n, flat)
}

// FromTiles builds an n×n board from row-major tiles.
func FromTiles(n int, tiles []int) (Board, error) {
	if n < MinSize || n > MaxSize {
		return Board{}, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	if len(tiles) != n*n {
		return Board{}, fmt.Errorf("%w: got %d tiles, want %d", ErrBadTiles, len(tiles), n*n)
	}
	var seen [MaxSize * MaxSize]bool
	b := Board{n: int8(n)}
	for i, t := range tiles {
		if t < 0 || t >= n*n || seen[t] {
			return Board{}, fmt.Errorf("%w: tile %d at index %d", ErrBadTiles, t, i)
		}
		seen[t] = true
		b.tiles[i] = int8(t)
	}

	return b, nil
}

// Parse reads a board from a comma- or space-separated list of tiles, with
// optional "/" or newlines between rows. The side length is inferred from
// the tile count.
func Parse(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ';' || r == ' ' || r == '\n' || r == '\t'
	})
	n := int(math.Round(math.Sqrt(float64(len(fields)))))
	if n*n != len(fields) {
		return Board{}, fmt.Errorf("%w: %d tiles do not form a square", ErrBadTiles, len(fields))
	}
	tiles := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q", ErrBadTiles, f)
		}
		tiles[i] = v
	}

	return FromTiles(n, tiles)
}

// Goal returns the canonical solved board of side n: 1..n*n-1 in order with
// the blank last.
func Goal(n int) (Board, error) {
	tiles := make([]int, n*n)
	for i := range tiles {
		tiles[i] = i + 1
	}
	if len(tiles) > 0 {
		tiles[len(tiles)-1] = Blank
	}

	return FromTiles(n, tiles)
}

// Size returns the side length.
func (b Board) Size() int { return int(b.n) }

// At returns the tile at row r, column c.
func (b Board) At(r, c int) int { return int(b.tiles[r*int(b.n)+c]) }

// Tiles returns the tiles in row-major order.
func (b Board) Tiles() []int {
	n := int(b.n) * int(b.n)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(b.tiles[i])
	}

	return out
}

// blank returns the row and column of the blank.
func (b Board) blank() (int, int) {
	n := int(b.n)
	for i := 0; i < n*n; i++ {
		if b.tiles[i] == Blank {
			return i / n, i % n
		}
	}

	return -1, -1
}

// Apply returns the board after m and whether m was legal.
func (b Board) Apply(m Move) (Board, bool) {
	dr, dc := m.delta()
	if dr == 0 && dc == 0 {
		return b, m == Idle
	}
	n := int(b.n)
	r, c := b.blank()
	nr, nc := r+dr, c+dc
	if nr < 0 || nr >= n || nc < 0 || nc >= n {
		return b, false
	}
	next := b
	next.tiles[r*n+c], next.tiles[nr*n+nc] = next.tiles[nr*n+nc], next.tiles[r*n+c]

	return next, true
}

// Replay applies moves to b in order and returns the final board.
func Replay(b Board, moves []Move) (Board, error) {
	for i, m := range moves {
		next, ok := b.Apply(m)
		if !ok {
			return b, fmt.Errorf("%w: %s at step %d", ErrIllegalMove, m, i)
		}
		b = next
	}

	return b, nil
}

// Successors lists the boards reachable from b in one move, each at cost 1.
// It satisfies search.Generator[Board, Move].
func Successors(b Board) []search.Successor[Board, Move] {
	out := make([]search.Successor[Board, Move], 0, len(expansionOrder))
	for _, m := range expansionOrder {
		if next, ok := b.Apply(m); ok {
			out = append(out, search.Successor[Board, Move]{State: next, Action: m, Cost: 1})
		}
	}

	return out
}

// Solvable reports whether goal can be reached from b. The permutation
// taking b to goal must have the same parity as the blank's grid distance.
func Solvable(b, goal Board) (bool, error) {
	if b.n != goal.n {
		return false, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, b.n, goal.n)
	}
	n := int(b.n) * int(b.n)
	var where [MaxSize * MaxSize]int
	for i := 0; i < n; i++ {
		where[goal.tiles[i]] = i
	}
	var perm [MaxSize * MaxSize]int
	for i := 0; i < n; i++ {
		perm[i] = where[b.tiles[i]]
	}
	// parity via cycle decomposition: a k-cycle is k-1 transpositions
	var visited [MaxSize * MaxSize]bool
	transpositions := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		k := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			k++
		}
		transpositions += k - 1
	}
	br, bc := b.blank()
	gr, gc := goal.blank()
	dist := abs(br-gr) + abs(bc-gc)

	return transpositions%2 == dist%2, nil
}

// String renders the board one row per line, tiles right-aligned.
func (b Board) String() string {
	var sb strings.Builder
	n := int(b.n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			fmt.Fprintf(&sb, "%3d", b.At(r, c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
