package viewer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridwalk/search"
)

// Slog emits events to a slog.Logger. Lifecycle events (started, goal_found,
// search_exhausted) are logged at Info; per-node events at Debug, so a
// handler at Info level keeps only one record per run boundary.
type Slog[S comparable, A any] struct {
	logger *slog.Logger
}

// NewSlog creates a Slog that emits to logger, or to slog.Default() if nil.
func NewSlog[S comparable, A any](logger *slog.Logger) *Slog[S, A] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog[S, A]{logger: logger}
}

// Notify logs event with the message "search.<kind>".
func (o *Slog[S, A]) Notify(ctx context.Context, event search.Event[S, A]) error {
	level := slog.LevelDebug
	switch event.Kind {
	case search.EventStarted, search.EventGoalFound, search.EventSearchExhausted:
		level = slog.LevelInfo
	}
	if !o.logger.Enabled(ctx, level) {
		return nil
	}

	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs,
		slog.String("strategy", event.Strategy.String()),
		slog.Int("frontier", event.FrontierLen),
		slog.Int("expanded", event.Stats.Expanded),
		slog.Int("generated", event.Stats.Generated),
	)
	if event.Node.Valid() {
		attrs = append(attrs,
			slog.String("state", fmt.Sprint(event.Node.State())),
			slog.Float64("cost", event.Node.PathCost()),
			slog.Int("depth", event.Node.Depth()),
		)
	}

	o.logger.LogAttrs(ctx, level, "search."+string(event.Kind), attrs...)
	return nil
}
