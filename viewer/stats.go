package viewer

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/gridwalk/search"
)

// Snapshot is a copy of the counters gathered by Stats.
type Snapshot struct {
	// Visited counts node_chosen events.
	Visited int
	// Generated counts node_generated events.
	Generated int
	// Expanded is the engine's expansion counter at the last event.
	Expanded int
	// MaxFrontier is the largest FrontierLen seen in any event.
	MaxFrontier int
	// Found reports whether goal_found was seen.
	Found bool
	// Finished reports whether the run ended (goal_found or search_exhausted).
	Finished bool
	// Elapsed is the time between started and the last event.
	Elapsed time.Duration
}

// Stats accumulates run statistics from events. A started event resets it,
// so one Stats can observe several sequential runs; Snapshot always
// describes the latest one. Snapshot is safe to call from other goroutines.
type Stats[S comparable, A any] struct {
	mu    sync.Mutex
	snap  Snapshot
	start time.Time
	now   func() time.Time
}

// NewStats returns an empty Stats using the wall clock.
func NewStats[S comparable, A any]() *Stats[S, A] {
	return &Stats[S, A]{now: time.Now}
}

// Notify updates the counters.
func (s *Stats[S, A]) Notify(_ context.Context, event search.Event[S, A]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	switch event.Kind {
	case search.EventStarted:
		s.snap = Snapshot{}
		s.start = now
	case search.EventNodeChosen:
		s.snap.Visited++
	case search.EventNodeGenerated:
		s.snap.Generated++
	case search.EventGoalFound:
		s.snap.Found = true
		s.snap.Finished = true
	case search.EventSearchExhausted:
		s.snap.Finished = true
	}
	s.snap.Expanded = event.Stats.Expanded
	if event.FrontierLen > s.snap.MaxFrontier {
		s.snap.MaxFrontier = event.FrontierLen
	}
	if !s.start.IsZero() {
		s.snap.Elapsed = now.Sub(s.start)
	}
	return nil
}

// Snapshot returns a copy of the current counters.
func (s *Stats[S, A]) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
