package puzzle

// Misplaced counts the non-blank tiles of state that are not where goal has
// them. It satisfies search.Heuristic[Board].
func Misplaced(state, goal Board) float64 {
	n := int(state.n) * int(state.n)
	count := 0
	for i := 0; i < n; i++ {
		if state.tiles[i] != Blank && state.tiles[i] != goal.tiles[i] {
			count++
		}
	}

	return float64(count)
}

// Manhattan sums, over the non-blank tiles of state, the row and column
// distance to the tile's square in goal. It satisfies search.Heuristic[Board].
func Manhattan(state, goal Board) float64 {
	n := int(state.n)
	var where [MaxSize * MaxSize]int
	for i := 0; i < n*n; i++ {
		where[goal.tiles[i]] = i
	}
	sum := 0
	for i := 0; i < n*n; i++ {
		t := state.tiles[i]
		if t == Blank {
			continue
		}
		j := where[t]
		sum += abs(i/n-j/n) + abs(i%n-j%n)
	}

	return float64(sum)
}
