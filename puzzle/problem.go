package puzzle

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/search"
)

// Problem is the grid-walking puzzle over one map, cost table and heuristic.
// It is immutable after NewProblem and may be shared by sequential runs.
type Problem struct {
	m       *gridmap.Map
	costs   Costs
	actions []Action
	kind    HeuristicKind
}

// Compile-time interface checks.
var (
	_ search.Problem[State, Action] = (*Problem)(nil)
	_ search.Heuristic[State]       = (*Problem)(nil)
)

// NewProblem builds the puzzle for m with the given cost table and heuristic
// selector. costs is copied.
//
// Returns ErrNilMap, ErrInvalidHeuristic, or the errors of Costs.Validate.
func NewProblem(m *gridmap.Map, costs Costs, kind HeuristicKind) (*Problem, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeuristic, int(kind))
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	c := costs.Clone()

	return &Problem{m: m, costs: c, actions: c.offered(), kind: kind}, nil
}

// Map returns the underlying map.
func (p *Problem) Map() *gridmap.Map { return p.m }

// Costs returns a copy of the cost table.
func (p *Problem) Costs() Costs { return p.costs.Clone() }

// HeuristicKind returns the heuristic selector.
func (p *Problem) HeuristicKind() HeuristicKind { return p.kind }

// InitialState returns the start cell.
func (p *Problem) InitialState() State { return p.m.Start() }

// IsGoal reports whether s is the goal cell.
func (p *Problem) IsGoal(s State) bool { return s == p.m.Goal() }

// Actions returns the offered actions, in canonical order, whose target cell
// is inside the map and not a wall.
func (p *Problem) Actions(s State) []Action {
	out := make([]Action, 0, len(p.actions))
	for _, a := range p.actions {
		if p.m.Passable(s.Add(a.Delta())) {
			out = append(out, a)
		}
	}
	return out
}

// Result applies a's coordinate change to s.
func (p *Problem) Result(s State, a Action) State { return s.Add(a.Delta()) }

// Cost returns the fixed cost of a.
func (p *Problem) Cost(_ State, a Action, _ State) float64 { return p.costs[a] }

// Heuristic estimates the remaining cost from s to the goal with the
// selected distance.
func (p *Problem) Heuristic(s State) float64 {
	g := p.m.Goal()
	switch p.kind {
	case Chebyshev:
		return ChebyshevDistance(s, g)
	case ScaledManhattan:
		return 2 * ManhattanDistance(s, g)
	default:
		return ManhattanDistance(s, g)
	}
}

// TotalCost replays Cost along steps, skipping the root entry.
// It equals the goal node's path cost for any path the engine returns.
func (p *Problem) TotalCost(steps []search.Step[State, Action]) float64 {
	total := 0.0
	for i := 1; i < len(steps); i++ {
		if steps[i].HasAction {
			total += p.Cost(steps[i-1].State, steps[i].Action, steps[i].State)
		}
	}
	return total
}

// Solve runs strategy over p and reports progress to observer (nil allowed).
func (p *Problem) Solve(
	strategy search.Strategy,
	observer search.Observer[State, Action],
	opts ...search.Option,
) (*search.Result[State, Action], error) {
	return search.Run[State, Action](strategy, p, observer, opts...)
}

// Positions extracts the cells of steps, root first.
func Positions(steps []search.Step[State, Action]) []gridmap.Point {
	out := make([]gridmap.Point, len(steps))
	for i, s := range steps {
		out[i] = s.State
	}
	return out
}

// ActionNames extracts the action names of steps, skipping the root.
func ActionNames(steps []search.Step[State, Action]) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if s.HasAction {
			out = append(out, string(s.Action))
		}
	}
	return out
}
