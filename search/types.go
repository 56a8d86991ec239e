package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors shared by all search algorithms.
var (
	// ErrNilGenerator indicates that a searcher was built without a successor generator.
	ErrNilGenerator = errors.New("search: generator is nil")

	// ErrNilHeuristic indicates that a searcher was built without a heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrNilPolicy indicates that a searcher was built without a result policy.
	ErrNilPolicy = errors.New("search: result policy is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNegativeCost indicates that the generator produced a negative step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("search: negative heuristic estimate")
)

// Successor is one transition produced by a Generator.
type Successor[S comparable, A any] struct {
	State  S       // state reached
	Action A       // action leading to State
	Cost   float64 // step cost, must be >= 0
}

// Generator lists the successors of a state. An empty result marks a dead end.
type Generator[S comparable, A any] func(state S) []Successor[S, A]

// Heuristic estimates the remaining cost from state to goal. It must be
// non-negative; admissibility is required for optimal A* and IDA* results.
type Heuristic[S comparable] func(state, goal S) float64

// Reversible is satisfied by actions that can be undone. Only the
// bidirectional search needs it, to render the backward half of a path.
type Reversible[A any] interface {
	Reverse() A
}

// Outcome tags the result of a search call.
type Outcome int

const (
	// Failure means the reachable state space was exhausted without reaching the goal.
	Failure Outcome = iota
	// Cutoff means some branch was pruned because it exceeded the maximum cost.
	Cutoff
	// Success means a path to the goal was found.
	Success
	// IterationCutoff is an internal signal of the iterative variants: the
	// current f-limit was exceeded. It never escapes a top-level Search call.
	IterationCutoff
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Failure:
		return "failure"
	case Cutoff:
		return "cutoff"
	case Success:
		return "success"
	case IterationCutoff:
		return "iteration_cutoff"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats collects counters about a single search call.
type Stats struct {
	Expanded    int           // nodes whose successors were generated
	Generated   int           // successor nodes created
	Iterations  int           // f-limit iterations (IDA*, IEA*); 1 for single-pass searches
	MaxFrontier int           // peak frontier size (summed over both sides for bidir)
	Duration    time.Duration // wall-clock time of the call
}

// Result is the uniform outcome of a search call. Path is the zero value of
// R unless Outcome == Success.
type Result[R any] struct {
	Path    R
	Outcome Outcome
	Cost    float64 // accumulated cost of Path; 0 unless Success
	Stats   Stats
}

// Found reports whether the search succeeded.
func (r Result[R]) Found() bool { return r.Outcome == Success }

// Option configures a single search call.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the parameters of one search call.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// MaxCost bounds the accumulated path cost. Default +Inf.
	MaxCost float64

	// ImprovedAccuracy makes the bidirectional search scan both frontiers for
	// the cheapest meeting point before building the path. Default true.
	ImprovedAccuracy bool

	// MaxIterations bounds the number of f-limit iterations of IDA* and IEA*.
	// Zero means unlimited.
	MaxIterations int

	// Logger receives debug records about iterations and termination.
	Logger *slog.Logger

	// TracerProvider and MeterProvider feed the per-call span and metrics.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - MaxCost = +Inf
//   - ImprovedAccuracy = true
//   - no iteration bound
//   - slog.Default() and the global otel providers.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxCost:          math.Inf(1),
		ImprovedAccuracy: true,
		MaxIterations:    0,
		Logger:           slog.Default(),
		TracerProvider:   otel.GetTracerProvider(),
		MeterProvider:    otel.GetMeterProvider(),
	}
}

// Apply builds Options from DefaultOptions and opts, returning
// ErrOptionViolation (wrapped) if any option was invalid.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost bounds the accumulated path cost.
//
//	c >= 0: nodes whose cost exceeds c are not expanded
//	c < 0 or NaN: invalid → ErrOptionViolation
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if math.IsNaN(c) || c < 0 {
			o.err = fmt.Errorf("%w: MaxCost must be a non-negative number (%v)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithImprovedAccuracy toggles the cheapest-meeting-point scan of the
// bidirectional search.
func WithImprovedAccuracy(on bool) Option {
	return func(o *Options) {
		o.ImprovedAccuracy = on
	}
}

// WithMaxIterations bounds the f-limit iterations of IDA* and IEA*.
// Zero disables the bound; negative values are invalid.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global otel meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// Validate reports the first missing collaborator, in the order generator,
// heuristic, policy.
func Validate[S comparable, A any, R any](gen Generator[S, A], h Heuristic[S], p Policy[S, A, R]) error {
	switch {
	case gen == nil:
		return ErrNilGenerator
	case h == nil:
		return ErrNilHeuristic
	case p == nil:
		return ErrNilPolicy
	}

	return nil
}
