package astar

import (
	"github.com/katalvlaran/lvsearch/search"
)

// algorithm names the spans and metrics of this package.
const algorithm = "astar"

// Searcher runs A* with a generator, heuristic and result policy bound at
// construction. A Searcher holds no per-call state and may be shared by
// concurrent callers as long as its collaborators are safe for concurrent use.
type Searcher[S comparable, A any, R any] struct {
	gen    search.Generator[S, A]
	h      search.Heuristic[S]
	policy search.Policy[S, A, R]
}

// New returns a Searcher. Nil collaborators are reported by Search.
func New[S comparable, A any, R any](
	gen search.Generator[S, A],
	h search.Heuristic[S],
	policy search.Policy[S, A, R],
) *Searcher[S, A, R] {
	return &Searcher[S, A, R]{gen: gen, h: h, policy: policy}
}
