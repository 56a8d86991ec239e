// Package telemetry records one span and a small set of metrics for every
// search call. Instruments are obtained from the call's meter provider.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies lvsearch spans and metrics.
const instrumentationName = "github.com/katalvlaran/lvsearch"

// instruments groups the metric instruments of one search call.
type instruments struct {
	total    metric.Int64Counter
	expanded metric.Int64Histogram
	latency  metric.Float64Histogram
}

// newInstruments builds the instruments of one search call from mp. The
// provider returns the same instrument for a repeated registration, so no
// state is kept between calls. A nil result means instrument creation
// failed; metrics are then skipped.
func newInstruments(mp metric.MeterProvider) *instruments {
	meter := mp.Meter(instrumentationName)
	total, err := meter.Int64Counter(
		"search_total",
		metric.WithDescription("Total number of search calls"),
	)
	if err != nil {
		return nil
	}
	expanded, err := meter.Int64Histogram(
		"search_expanded_nodes",
		metric.WithDescription("Nodes expanded per search call"),
	)
	if err != nil {
		return nil
	}
	latency, err := meter.Float64Histogram(
		"search_duration_seconds",
		metric.WithDescription("Duration of search calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil
	}

	return &instruments{total: total, expanded: expanded, latency: latency}
}

// Run is an in-flight search call.
type Run struct {
	ctx       context.Context
	span      trace.Span
	inst      *instruments
	algorithm string
	start     time.Time
}

// Start opens the span "<algorithm>.Search" and starts the clock.
func Start(ctx context.Context, tp trace.TracerProvider, mp metric.MeterProvider, algorithm string) *Run {
	ctx, span := tp.Tracer(instrumentationName).Start(ctx, algorithm+".Search",
		trace.WithAttributes(attribute.String("search.algorithm", algorithm)),
	)

	return &Run{
		ctx:       ctx,
		span:      span,
		inst:      newInstruments(mp),
		algorithm: algorithm,
		start:     time.Now(),
	}
}

// Context returns the context carrying the run's span.
func (r *Run) Context() context.Context { return r.ctx }

// Elapsed returns the time since Start.
func (r *Run) Elapsed() time.Duration { return time.Since(r.start) }

// Summary is what a finished search reports.
type Summary struct {
	Outcome    string
	Expanded   int
	Generated  int
	Iterations int
	Cost       float64
	PathLen    int
	Err        error
}

// Finish records the summary on the span and the metrics and ends the span.
func (r *Run) Finish(s Summary) {
	elapsed := r.Elapsed()
	r.span.SetAttributes(
		attribute.String("search.outcome", s.Outcome),
		attribute.Int("search.expanded", s.Expanded),
		attribute.Int("search.generated", s.Generated),
		attribute.Int("search.iterations", s.Iterations),
		attribute.Float64("search.cost", s.Cost),
		attribute.Int("search.path_length", s.PathLen),
	)
	if s.Err != nil {
		r.span.RecordError(s.Err)
		r.span.SetStatus(codes.Error, s.Err.Error())
	}
	r.span.End()

	if r.inst == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("algorithm", r.algorithm),
		attribute.String("outcome", s.Outcome),
	)
	r.inst.total.Add(r.ctx, 1, attrs)
	r.inst.expanded.Record(r.ctx, int64(s.Expanded), attrs)
	r.inst.latency.Record(r.ctx, elapsed.Seconds(), attrs)
}
