package search

// Problem defines a search space over states S reached through actions A.
//
// S must be comparable: equal states must compare == and hash identically
// regardless of the path that produced them, since graph search keys its
// closed set by state. Implementations must be immutable once constructed;
// a Problem may be shared by any number of sequential runs.
type Problem[S comparable, A any] interface {
	// InitialState returns the state the search starts from.
	InitialState() S

	// IsGoal reports whether state satisfies the goal predicate.
	IsGoal(state S) bool

	// Actions returns the actions applicable in state. The returned order is
	// significant: it fixes child order in Node.Expand and therefore
	// tie-breaking in every frontier.
	Actions(state S) []A

	// Result returns the state reached by applying action in state.
	// It must be deterministic.
	Result(state S, action A) S

	// Cost returns the non-negative cost of moving from state to next via action.
	// Uniform-cost and A* are optimal only when every cost is ≥ 0.
	Cost(state S, action A, next S) float64
}

// Heuristic is implemented by problems that support informed search.
//
// Heuristic(state) estimates the remaining cost from state to the nearest
// goal and must be ≥ 0. A* is optimal only when the estimate never exceeds the
// true remaining cost (admissibility); the engine does not check this.
type Heuristic[S comparable] interface {
	Heuristic(state S) float64
}

// HeuristicFunc adapts an ordinary function to the Heuristic interface.
type HeuristicFunc[S comparable] func(state S) float64

// Heuristic calls f(state).
func (f HeuristicFunc[S]) Heuristic(state S) float64 { return f(state) }
