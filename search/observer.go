package search

import "context"

// EventKind names a point in the search lifecycle.
type EventKind string

const (
	// EventStarted is emitted once, after the root is pushed.
	EventStarted EventKind = "started"
	// EventNodeChosen is emitted for every node popped from the frontier.
	EventNodeChosen EventKind = "node_chosen"
	// EventNodeGenerated is emitted for every child produced by expansion.
	EventNodeGenerated EventKind = "node_generated"
	// EventGoalFound is emitted when a chosen node passes the goal test.
	EventGoalFound EventKind = "goal_found"
	// EventSearchExhausted is emitted when the frontier empties without a goal.
	// Its Node is the zero (invalid) Node.
	EventSearchExhausted EventKind = "search_exhausted"
)

// Event is one notification from the engine.
type Event[S comparable, A any] struct {
	// Kind is the lifecycle point.
	Kind EventKind
	// Node is the subject node; invalid for EventSearchExhausted.
	Node Node[S, A]
	// Strategy is the frontier's strategy for this run.
	Strategy Strategy
	// FrontierLen is the frontier size at notification time.
	FrontierLen int
	// Stats is a snapshot of the engine counters at notification time.
	Stats Stats
}

// Observer receives engine notifications synchronously, on the search
// goroutine. A non-nil error aborts the run; Search returns it wrapped in
// ErrObserver. Slow observers stall the search for their duration.
type Observer[S comparable, A any] interface {
	Notify(ctx context.Context, event Event[S, A]) error
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc[S comparable, A any] func(ctx context.Context, event Event[S, A]) error

// Notify calls f(ctx, event).
func (f ObserverFunc[S, A]) Notify(ctx context.Context, event Event[S, A]) error {
	return f(ctx, event)
}

// discard is the observer used when Search is given nil.
type discard[S comparable, A any] struct{}

func (discard[S, A]) Notify(context.Context, Event[S, A]) error { return nil }
