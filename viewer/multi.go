package viewer

import (
	"context"

	"github.com/katalvlaran/gridwalk/search"
)

// Multi fans out events to several observers in order.
type Multi[S comparable, A any] struct {
	observers []search.Observer[S, A]
}

// NewMulti creates a Multi that forwards events to all non-nil observers.
func NewMulti[S comparable, A any](observers ...search.Observer[S, A]) *Multi[S, A] {
	filtered := make([]search.Observer[S, A], 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &Multi[S, A]{observers: filtered}
}

// Notify forwards event to each observer and returns the first error.
// Observers after the failing one do not see the event.
func (m *Multi[S, A]) Notify(ctx context.Context, event search.Event[S, A]) error {
	for _, obs := range m.observers {
		if err := obs.Notify(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of wrapped observers.
func (m *Multi[S, A]) Len() int { return len(m.observers) }
