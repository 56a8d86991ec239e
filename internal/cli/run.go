package cli

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/bidir"
	"github.com/katalvlaran/lvsearch/idastar"
	"github.com/katalvlaran/lvsearch/ieastar"
	"github.com/katalvlaran/lvsearch/search"
)

// searchFunc is the Search method shared by every searcher.
type searchFunc[S comparable, R any] func(start, goal S, opts ...search.Option) (search.Result[R], error)

// pick builds the searcher named by algo.
func pick[S comparable, A search.Reversible[A], R any](
	algo string,
	gen search.Generator[S, A],
	h search.Heuristic[S],
	policy search.Policy[S, A, R],
) (searchFunc[S, R], error) {
	switch algo {
	case "astar":
		return astar.New(gen, h, policy).Search, nil
	case "idastar":
		return idastar.New(gen, h, policy).Search, nil
	case "ieastar":
		return ieastar.New(gen, h, policy).Search, nil
	case "bidir":
		return bidir.New(gen, h, policy).Search, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// options turns cfg into search options. The returned shutdown flushes the
// trace exporter and must be called once the search is done.
func (a *App) options(ctx context.Context, cfg Config) ([]search.Option, func(context.Context) error, error) {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithImprovedAccuracy(cfg.ImprovedAccuracy),
		search.WithMaxIterations(cfg.MaxIterations),
		search.WithLogger(a.logger(cfg.Verbose)),
	}
	if cfg.MaxCost != nil {
		opts = append(opts, search.WithMaxCost(*cfg.MaxCost))
	}
	shutdown := func(context.Context) error { return nil }
	if cfg.Trace {
		tp, err := newTracerProvider(a.stderr)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, search.WithTracerProvider(tp))
		shutdown = tp.Shutdown
	}

	return opts, shutdown, nil
}

// newTracerProvider exports spans synchronously to w.
func newTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

// report prints the outcome line shared by every command.
func report[R any](w io.Writer, algo string, res search.Result[R], steps int) {
	st := res.Stats
	switch res.Outcome {
	case search.Success:
		fmt.Fprintf(w, "%s: success, %d steps, cost %g\n", algo, steps, res.Cost)
	default:
		fmt.Fprintf(w, "%s: %s\n", algo, res.Outcome)
	}
	fmt.Fprintf(w, "expanded %d, generated %d, iterations %d, peak frontier %d, time %s\n",
		st.Expanded, st.Generated, st.Iterations, st.MaxFrontier, st.Duration)
}
