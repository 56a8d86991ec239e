package bidir

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvsearch/search"
)

// algorithm names the spans and metrics of this package.
const algorithm = "bidir"

// Searcher runs the bidirectional search with a generator, heuristic and
// result policy bound at construction. It holds no per-call state.
type Searcher[S comparable, A search.Reversible[A], R any] struct {
	gen    search.Generator[S, A]
	h      search.Heuristic[S]
	policy search.Policy[S, A, R]
}

// New returns a Searcher. Nil collaborators are reported by Search.
func New[S comparable, A search.Reversible[A], R any](
	gen search.Generator[S, A],
	h search.Heuristic[S],
	policy search.Policy[S, A, R],
) *Searcher[S, A, R] {
	return &Searcher[S, A, R]{gen: gen, h: h, policy: policy}
}

// partial is how a single side ended.
type partial int

const (
	partialFailure partial = iota // own frontier exhausted
	partialCutoff                 // own frontier exhausted after MaxCost rejections
	partialSuccess                // reached its own target
	partialConnect                // met the other side
	partialStopped                // observed the done flag
)

// side is the state owned by one direction of the search.
type side[S comparable, A any] struct {
	name     string                 // "forward" or "backward", for logs and errors
	mu       sync.Mutex             // guards frontier against reads from the opposite side
	frontier *search.Frontier[S, A] // open set, read by the other side when meeting
	explored search.Explored[S, A]  // closed set, touched only by its own goroutine
	stats    search.Stats           // this side's counters
}

// outcome is what a side hands back once its loop ends.
type outcome[S comparable, A any] struct {
	kind  partial
	node  *search.Node[S, A] // own node: target or meeting node
	other *search.Node[S, A] // opposite side's node at the meeting point
}

// race bundles the state shared by both sides of one search call.
type race struct {
	done atomic.Bool // set by the first side to finish decisively
}
