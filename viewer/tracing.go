package viewer

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridwalk/search"
)

// errSuperseded is recorded on a span left open when the next run starts.
var errSuperseded = errors.New("viewer: run superseded before it finished")

// tracerName is the instrumentation scope used when no tracer is given.
const tracerName = "github.com/katalvlaran/gridwalk/viewer"

// Tracing records one span per search run: opened on started, closed on
// goal_found or search_exhausted. Per-node span events are opt-in, since a
// run can produce thousands of them.
type Tracing[S comparable, A any] struct {
	tracer     trace.Tracer
	nodeEvents bool
	span       trace.Span
}

// NewTracing creates a Tracing that uses tracer, or otel.Tracer(tracerName)
// from the global provider if tracer is nil. nodeEvents adds one span event
// per chosen node.
func NewTracing[S comparable, A any](tracer trace.Tracer, nodeEvents bool) *Tracing[S, A] {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Tracing[S, A]{tracer: tracer, nodeEvents: nodeEvents}
}

// Notify opens, annotates and closes the run span.
func (o *Tracing[S, A]) Notify(ctx context.Context, event search.Event[S, A]) error {
	switch event.Kind {
	case search.EventStarted:
		o.Abort(errSuperseded)
		_, o.span = o.tracer.Start(ctx, "search.run",
			trace.WithAttributes(
				attribute.String("strategy", event.Strategy.String()),
				attribute.String("initial_state", fmt.Sprint(event.Node.State())),
			),
		)
	case search.EventNodeChosen:
		if o.span != nil && o.nodeEvents {
			o.span.AddEvent("node_chosen", trace.WithAttributes(
				attribute.String("state", fmt.Sprint(event.Node.State())),
				attribute.Float64("cost", event.Node.PathCost()),
				attribute.Int("frontier", event.FrontierLen),
			))
		}
	case search.EventGoalFound:
		o.finish(event, true)
		o.span = nil
	case search.EventSearchExhausted:
		o.finish(event, false)
		o.span = nil
	}
	return nil
}

// finish sets the result attributes and ends the span.
func (o *Tracing[S, A]) finish(event search.Event[S, A], found bool) {
	if o.span == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.Bool("found", found),
		attribute.Int("iterations", event.Stats.Iterations),
		attribute.Int("expanded", event.Stats.Expanded),
		attribute.Int("generated", event.Stats.Generated),
		attribute.Int("max_frontier", event.Stats.MaxFrontier),
	}
	if found {
		attrs = append(attrs,
			attribute.Float64("cost", event.Node.PathCost()),
			attribute.Int("depth", event.Node.Depth()),
		)
		o.span.SetStatus(codes.Ok, "goal found")
	}
	o.span.SetAttributes(attrs...)
	o.span.End()
}

// Abort ends an open span with err recorded, for runs stopped by
// cancellation or by another observer. It is a no-op when no span is open.
func (o *Tracing[S, A]) Abort(err error) {
	if o.span == nil {
		return
	}
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}
	o.span.End()
	o.span = nil
}
