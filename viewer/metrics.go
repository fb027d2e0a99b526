package viewer

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridwalk/search"
)

// Outcome label values of gridwalk_search_runs_total.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
)

// Metrics exports search activity to Prometheus, labeled by strategy.
//
// Collectors are registered once, at construction; create one Metrics per
// registry and reuse it across runs. Runs must be sequential.
type Metrics[S comparable, A any] struct {
	runs      *prometheus.CounterVec
	chosen    *prometheus.CounterVec
	generated *prometheus.CounterVec
	frontier  *prometheus.GaugeVec
	cost      *prometheus.HistogramVec
	duration  *prometheus.HistogramVec

	mu    sync.Mutex
	start time.Time
}

// NewMetrics registers the search collectors with reg, or with
// prometheus.DefaultRegisterer if reg is nil. Registering twice on the same
// registry panics, as with any promauto collector.
func NewMetrics[S comparable, A any](reg prometheus.Registerer) *Metrics[S, A] {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics[S, A]{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridwalk_search_runs_total",
			Help: "Finished search runs by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		chosen: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridwalk_search_nodes_chosen_total",
			Help: "Nodes popped from the frontier",
		}, []string{"strategy"}),
		generated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridwalk_search_nodes_generated_total",
			Help: "Child nodes produced by expansion",
		}, []string{"strategy"}),
		frontier: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gridwalk_search_frontier_size",
			Help: "Frontier size at the latest event",
		}, []string{"strategy"}),
		cost: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridwalk_search_solution_cost",
			Help:    "Path cost of found solutions",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512
		}, []string{"strategy"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridwalk_search_duration_seconds",
			Help:    "Wall time from started to the final event",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"strategy"}),
	}
}

// Notify updates the collectors for event.
func (m *Metrics[S, A]) Notify(_ context.Context, event search.Event[S, A]) error {
	strategy := event.Strategy.String()
	m.frontier.WithLabelValues(strategy).Set(float64(event.FrontierLen))

	switch event.Kind {
	case search.EventStarted:
		m.mu.Lock()
		m.start = time.Now()
		m.mu.Unlock()
	case search.EventNodeChosen:
		m.chosen.WithLabelValues(strategy).Inc()
	case search.EventNodeGenerated:
		m.generated.WithLabelValues(strategy).Inc()
	case search.EventGoalFound:
		m.runs.WithLabelValues(strategy, OutcomeFound).Inc()
		m.cost.WithLabelValues(strategy).Observe(event.Node.PathCost())
		m.observeDuration(strategy)
	case search.EventSearchExhausted:
		m.runs.WithLabelValues(strategy, OutcomeExhausted).Inc()
		m.observeDuration(strategy)
	}
	return nil
}

func (m *Metrics[S, A]) observeDuration(strategy string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.start.IsZero() {
		return
	}
	m.duration.WithLabelValues(strategy).Observe(time.Since(m.start).Seconds())
	m.start = time.Time{}
}
