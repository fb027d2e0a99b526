package viewer

import (
	"context"

	"github.com/katalvlaran/gridwalk/search"
)

// Noop discards all events.
type Noop[S comparable, A any] struct{}

func (Noop[S, A]) Notify(context.Context, search.Event[S, A]) error { return nil }
