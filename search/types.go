// Package search defines tunable options, strategy identifiers and error
// definitions for the generic graph-search engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to Search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilFrontier is returned when a nil Frontier is passed to Search.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrNoHeuristic is returned when A* is requested for a Problem that
	// does not implement Heuristic.
	ErrNoHeuristic = errors.New("search: problem does not provide a heuristic")

	// ErrObserver wraps an error returned by an Observer. The run is aborted
	// at the notification that failed.
	ErrObserver = errors.New("search: observer failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy and NewFrontier for
	// names or values outside the supported set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy identifies the frontier ordering and therefore the algorithm realized.
type Strategy int

const (
	// StrategyCustom marks a caller-supplied Frontier with its own ordering.
	StrategyCustom Strategy = iota
	// StrategyBreadthFirst pops the oldest inserted node first (FIFO).
	StrategyBreadthFirst
	// StrategyDepthFirst pops the most recently inserted node first (LIFO).
	StrategyDepthFirst
	// StrategyUniformCost pops the node with the smallest path cost.
	StrategyUniformCost
	// StrategyAStar pops the node with the smallest path cost + heuristic.
	StrategyAStar
)

var strategyNames = map[Strategy]string{
	StrategyCustom:       "custom",
	StrategyBreadthFirst: "breadth_first",
	StrategyDepthFirst:   "depth_first",
	StrategyUniformCost:  "uniform_cost",
	StrategyAStar:        "astar",
}

// String returns the snake_case algorithm name, e.g. "uniform_cost".
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// CostOrdered reports whether the strategy pops nodes by a cost priority.
func (s Strategy) CostOrdered() bool {
	return s == StrategyUniformCost || s == StrategyAStar
}

// ParseStrategy maps a name to a Strategy. It accepts the String form and the
// usual short aliases (bfs, dfs, ucs, a*), case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "breadth_first", "bfs":
		return StrategyBreadthFirst, nil
	case "depth_first", "dfs":
		return StrategyDepthFirst, nil
	case "uniform_cost", "ucs":
		return StrategyUniformCost, nil
	case "astar", "a*", "a_star":
		return StrategyAStar, nil
	}
	return StrategyCustom, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ClosedPolicy selects how graph search decides that a state was already handled.
type ClosedPolicy int

const (
	// ClosedAuto derives the policy from the frontier's Strategy:
	// ClosedByCost for cost-ordered strategies, ClosedByPresence otherwise.
	ClosedAuto ClosedPolicy = iota
	// ClosedByPresence discards any node whose state was already expanded.
	ClosedByPresence
	// ClosedByCost discards a node only when its state was expanded with an
	// equal-or-better path cost.
	ClosedByCost
)

// String returns a short policy name.
func (p ClosedPolicy) String() string {
	switch p {
	case ClosedAuto:
		return "auto"
	case ClosedByPresence:
		return "presence"
	case ClosedByCost:
		return "cost"
	}
	return fmt.Sprintf("closed(%d)", int(p))
}

// resolve turns ClosedAuto into a concrete policy for strategy s.
func (p ClosedPolicy) resolve(s Strategy) ClosedPolicy {
	if p != ClosedAuto {
		return p
	}
	if s.CostOrdered() {
		return ClosedByCost
	}
	return ClosedByPresence
}

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters that customize a single Search invocation.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per loop
	// iteration, between expansions, and passed to every Observer call.
	Ctx context.Context

	// GraphSearch enables the closed set. When false the engine performs
	// tree search and re-expands revisited states.
	GraphSearch bool

	// Closed selects the duplicate-detection policy used in graph search.
	Closed ClosedPolicy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - graph search enabled
//   - ClosedAuto policy
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		GraphSearch: true,
		Closed:      ClosedAuto,
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGraphSearch enables (true) or disables (false) duplicate-state suppression.
func WithGraphSearch(enabled bool) Option {
	return func(o *Options) {
		o.GraphSearch = enabled
	}
}

// WithClosedPolicy forces the duplicate-detection policy.
// Values outside the declared constants are an ErrOptionViolation.
func WithClosedPolicy(p ClosedPolicy) Option {
	return func(o *Options) {
		switch p {
		case ClosedAuto, ClosedByPresence, ClosedByCost:
			o.Closed = p
		default:
			o.err = fmt.Errorf("%w: unknown closed policy %d", ErrOptionViolation, int(p))
		}
	}
}

// Stats holds the counters tracked by the engine during one run.
type Stats struct {
	// Iterations counts nodes popped from the frontier.
	Iterations int
	// Expanded counts nodes whose successors were generated.
	Expanded int
	// Generated counts child nodes produced by expansion.
	Generated int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}
