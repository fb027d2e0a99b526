package search

import (
	"context"
	"fmt"
)

// Result holds the outcome of one search run:
//   - Goal:     the terminal node that passed the goal test (valid only if Found).
//   - Found:    false when the frontier emptied without reaching a goal.
//   - Strategy: the frontier strategy that produced the run.
//   - Stats:    expansion, generation and frontier counters.
type Result[S comparable, A any] struct {
	Goal     Node[S, A]
	Found    bool
	Strategy Strategy
	Stats    Stats
}

// Path returns the root-to-goal steps, or nil when no goal was found.
func (r *Result[S, A]) Path() []Step[S, A] {
	if r == nil || !r.Found {
		return nil
	}
	return r.Goal.Path()
}

// Cost returns the goal's path cost, or 0 when no goal was found.
func (r *Result[S, A]) Cost() float64 {
	if r == nil || !r.Found {
		return 0
	}
	return r.Goal.PathCost()
}

// Len returns the number of path entries including the root,
// or 0 when no goal was found.
func (r *Result[S, A]) Len() int {
	if r == nil || !r.Found {
		return 0
	}
	return r.Goal.Depth() + 1
}

// runner encapsulates the mutable state of one search run.
type runner[S comparable, A any] struct {
	problem  Problem[S, A]
	frontier Frontier[S, A]
	observer Observer[S, A]
	ctx      context.Context
	graph    bool
	policy   ClosedPolicy
	closed   map[S]float64
	res      *Result[S, A]
}

// Search runs graph (or tree) search over problem using frontier for node
// ordering and reports every lifecycle step to observer (nil is allowed).
//
// The frontier must be empty and must not be reused by another run.
// Exhausting the frontier is a normal outcome: Search returns a Result with
// Found == false and a nil error. On an observer failure or cancellation the
// partial Result is returned together with the error.
//
// Returns ErrNilProblem, ErrNilFrontier, ErrOptionViolation, ErrObserver
// (wrapping the observer's error) or the context's error.
func Search[S comparable, A any](
	problem Problem[S, A],
	frontier Frontier[S, A],
	observer Observer[S, A],
	opts ...Option,
) (*Result[S, A], error) {
	// 1) Validate collaborators.
	if problem == nil {
		return nil, ErrNilProblem
	}
	if frontier == nil {
		return nil, ErrNilFrontier
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if observer == nil {
		observer = discard[S, A]{}
	}

	// 3) Prepare a fresh runner; nothing crosses run boundaries.
	r := &runner[S, A]{
		problem:  problem,
		frontier: frontier,
		observer: observer,
		ctx:      o.Ctx,
		graph:    o.GraphSearch,
		policy:   o.Closed.resolve(frontier.Strategy()),
		res:      &Result[S, A]{Strategy: frontier.Strategy()},
	}
	if r.graph {
		r.closed = make(map[S]float64)
	}

	return r.res, r.loop()
}

// loop seeds the frontier with the root and runs until goal, exhaustion,
// observer failure or cancellation.
func (r *runner[S, A]) loop() error {
	root := MakeRoot[S, A](r.problem.InitialState())
	r.push(root)
	if err := r.emit(EventStarted, root); err != nil {
		return err
	}

	for !r.frontier.Empty() {
		// cancellation check (once per loop)
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		node := r.frontier.Pop()
		r.res.Stats.Iterations++
		if err := r.emit(EventNodeChosen, node); err != nil {
			return err
		}

		if r.problem.IsGoal(node.State()) {
			r.res.Goal = node
			r.res.Found = true
			return r.emit(EventGoalFound, node)
		}

		if r.graph {
			if r.handled(node) {
				continue
			}
			r.closed[node.State()] = node.PathCost()
		}

		if err := r.expand(node); err != nil {
			return err
		}
	}

	return r.emit(EventSearchExhausted, Node[S, A]{})
}

// handled reports whether node's state was already expanded under the
// closed-set policy.
func (r *runner[S, A]) handled(node Node[S, A]) bool {
	best, ok := r.closed[node.State()]
	if !ok {
		return false
	}
	if r.policy == ClosedByPresence {
		return true
	}
	return best <= node.PathCost()
}

// expand generates node's children, notifies the observer about each one
// and pushes it onto the frontier.
func (r *runner[S, A]) expand(node Node[S, A]) error {
	r.res.Stats.Expanded++
	for _, child := range node.Expand(r.problem) {
		r.res.Stats.Generated++
		if err := r.emit(EventNodeGenerated, child); err != nil {
			return err
		}
		r.push(child)
	}
	return nil
}

// push inserts node and updates the max-frontier statistic.
func (r *runner[S, A]) push(node Node[S, A]) {
	r.frontier.Push(node)
	if n := r.frontier.Len(); n > r.res.Stats.MaxFrontier {
		r.res.Stats.MaxFrontier = n
	}
}

// emit delivers one event and wraps observer failures in ErrObserver.
func (r *runner[S, A]) emit(kind EventKind, node Node[S, A]) error {
	err := r.observer.Notify(r.ctx, Event[S, A]{
		Kind:        kind,
		Node:        node,
		Strategy:    r.res.Strategy,
		FrontierLen: r.frontier.Len(),
		Stats:       r.res.Stats,
	})
	if err != nil {
		return fmt.Errorf("%w: %s at %v: %w", ErrObserver, kind, node, err)
	}
	return nil
}

// BreadthFirst runs Search with a FIFO frontier.
func BreadthFirst[S comparable, A any](problem Problem[S, A], observer Observer[S, A], opts ...Option) (*Result[S, A], error) {
	return Search[S, A](problem, NewFIFO[S, A](), observer, opts...)
}

// DepthFirst runs Search with a LIFO frontier.
func DepthFirst[S comparable, A any](problem Problem[S, A], observer Observer[S, A], opts ...Option) (*Result[S, A], error) {
	return Search[S, A](problem, NewLIFO[S, A](), observer, opts...)
}

// UniformCost runs Search with a path-cost priority frontier.
func UniformCost[S comparable, A any](problem Problem[S, A], observer Observer[S, A], opts ...Option) (*Result[S, A], error) {
	return Search[S, A](problem, NewCostPriority[S, A](), observer, opts...)
}

// AStar runs Search with a path-cost + heuristic priority frontier.
// problem must implement Heuristic, otherwise ErrNoHeuristic is returned.
func AStar[S comparable, A any](problem Problem[S, A], observer Observer[S, A], opts ...Option) (*Result[S, A], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	h, ok := problem.(Heuristic[S])
	if !ok {
		return nil, ErrNoHeuristic
	}
	return Search[S, A](problem, NewAStarPriority[S, A](h), observer, opts...)
}

// Run dispatches to the algorithm realized by strategy.
func Run[S comparable, A any](strategy Strategy, problem Problem[S, A], observer Observer[S, A], opts ...Option) (*Result[S, A], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	frontier, err := NewFrontier[S, A](strategy, problem)
	if err != nil {
		return nil, err
	}
	return Search[S, A](problem, frontier, observer, opts...)
}
