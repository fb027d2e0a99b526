// Package viewer provides search.Observer implementations that turn the
// engine's event stream into statistics, logs, metrics, traces and animated
// ASCII frames.
//
// Every observer is synchronous: it runs on the search goroutine and any
// delay it introduces stalls the search. An observer returning an error
// aborts the run (the engine wraps it in search.ErrObserver).
//
// Generic observers work for any state and action types:
//
//	Noop     discards events.
//	Stats    counts chosen and generated nodes and tracks frontier size.
//	Multi    fans out to several observers, stopping at the first error.
//	Slog     logs one structured record per event.
//	Metrics  exports Prometheus counters, gauges and histograms.
//	Tracing  records one OpenTelemetry span per run.
//
// Animated is specific to the grid puzzle: it redraws the map with visited
// cells, the current cell and finally the solution path, plus an info panel.
//
// A registry maps names ("noop", "stats", "slog") to factories of grid
// observers so the experiment runner can select them from configuration.
package viewer
