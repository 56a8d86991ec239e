package idastar

import (
	"github.com/katalvlaran/lvsearch/search"
)

// algorithm names the spans and metrics of this package.
const algorithm = "idastar"

// Searcher runs IDA* with a generator, heuristic and result policy bound at
// construction. It holds no per-call state.
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

// verdict is what one bounded depth-first descent reports.
type verdict[S comparable, A any] struct {
	outcome search.Outcome
	next    float64            // candidate f-limit when outcome == IterationCutoff
	goal    *search.Node[S, A] // set when outcome == Success
}
