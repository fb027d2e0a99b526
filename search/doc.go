// Package search provides a generic, observable graph-search engine over an
// abstract Problem, returning the goal node, its reconstructed path and
// traversal statistics.
//
// What
//
//   - One search loop, parameterized by a pluggable Frontier:
//   - FIFO queue            → breadth-first search
//   - LIFO stack            → depth-first search
//   - min path cost         → uniform-cost search
//   - min path cost + h(s)  → A* search
//   - Graph-search mode (default) keeps a closed set of expanded states and
//     discards nodes whose state was already expanded with an equal-or-better
//     cost. Tree-search mode (WithGraphSearch(false)) re-expands freely.
//   - Nodes live in a per-run arena: children reference their parent by index,
//     never the inverse, so the search tree is acyclic by construction and is
//     released wholesale when the last Node handle is dropped.
//   - Every lifecycle step is reported to an Observer:
//   - EventStarted          (root pushed)
//   - EventNodeChosen       (node popped from the frontier)
//   - EventNodeGenerated    (child produced by expansion)
//   - EventGoalFound        (goal test succeeded)
//   - EventSearchExhausted  (frontier empty, no solution)
//
// Why
//
//   - Compare uninformed and informed strategies on the same Problem without
//     duplicating the search loop per algorithm.
//   - Drive visualizations, metrics and tracing from the event stream while the
//     engine stays unaware of any presentation layer.
//
// Determinism
//
//	The engine has no source of randomness. Given the same Problem, frontier
//	strategy and options, the sequence of chosen, generated and expanded
//	states is identical across runs. Priority frontiers break ties by
//	insertion order, and Node.Expand preserves the order of Problem.Actions.
//
// Closed-set policy
//
//	Cost-ordered strategies (uniform-cost, A*) record the best expanded cost
//	per state and re-expand a state only when reached strictly cheaper.
//	FIFO/LIFO strategies record presence only, so each state is expanded at
//	most once. Override with WithClosedPolicy.
//
// Complexity (b = branching factor, d = solution depth, R = reachable states)
//
//   - Breadth-first:  Time O(b^d), Memory O(b^d); graph mode bounded by O(R).
//   - Depth-first:    Time O(b^m) for max depth m; graph mode bounded by O(R).
//   - Uniform-cost/A*: Time O(R log R) in graph mode with a consistent heuristic.
//
// No artificial cap is imposed; unbounded state spaces need an external
// termination policy such as a deadline passed through WithContext.
//
// Usage
//
//	res, err := search.AStar[State, Action](problem, observer)
//	if err != nil {
//	    // ErrNilProblem, ErrNoHeuristic, ErrObserver, ErrOptionViolation, ctx.Err()
//	}
//	if !res.Found {
//	    // no path exists: a normal outcome, not an error
//	}
//	for _, step := range res.Path() {
//	    fmt.Println(step.Action, step.State)
//	}
//
// Options
//
//   - DefaultOptions():       background context, graph search, automatic closed policy.
//   - WithContext(ctx):       cancellation checked once per loop iteration.
//   - WithGraphSearch(bool):  enable or disable duplicate-state suppression.
//   - WithClosedPolicy(p):    force presence- or cost-based duplicate detection.
//
// Errors
//
//   - ErrNilProblem       if the problem is nil.
//   - ErrNilFrontier      if the frontier is nil.
//   - ErrNoHeuristic      if A* is requested for a problem without Heuristic.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrObserver         wrapping any error returned by the Observer.
//   - context errors      if the WithContext context is done.
//
// Admissibility of the heuristic is a caller obligation: A* returns an
// optimal path only when Heuristic never overestimates the remaining cost.
package search
