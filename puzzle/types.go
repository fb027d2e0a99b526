package puzzle

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/gridwalk/gridmap"
)

// Sentinel errors for puzzle construction.
var (
	// ErrNilMap is returned when NewProblem is given a nil map.
	ErrNilMap = errors.New("puzzle: map is nil")
	// ErrInvalidHeuristic is returned for a heuristic selector outside 1..3.
	ErrInvalidHeuristic = errors.New("puzzle: invalid heuristic")
	// ErrNegativeCost is returned when an action cost is negative or NaN.
	ErrNegativeCost = errors.New("puzzle: action cost must be non-negative")
	// ErrUnknownAction is returned for a cost key or name outside the four moves.
	ErrUnknownAction = errors.New("puzzle: unknown action")
	// ErrNoActions is returned when the cost table is empty.
	ErrNoActions = errors.New("puzzle: cost table has no actions")
)

// State is a cell position on the map.
type State = gridmap.Point

// Action is one of the four moves.
type Action string

const (
	Left  Action = "left"
	Right Action = "right"
	Up    Action = "up"
	Down  Action = "down"
)

// canonical fixes the order in which actions are offered.
var canonical = [...]Action{Left, Right, Up, Down}

// AllActions returns the four moves in canonical order.
func AllActions() []Action { return append([]Action(nil), canonical[:]...) }

// Delta returns the coordinate change applied by a: up is y-1, down y+1,
// left x-1, right x+1. Unknown actions do not move.
func (a Action) Delta() gridmap.Point {
	switch a {
	case Left:
		return gridmap.Point{X: -1}
	case Right:
		return gridmap.Point{X: 1}
	case Up:
		return gridmap.Point{Y: -1}
	case Down:
		return gridmap.Point{Y: 1}
	}
	return gridmap.Point{}
}

// Valid reports whether a is one of the four moves.
func (a Action) Valid() bool {
	switch a {
	case Left, Right, Up, Down:
		return true
	}
	return false
}

// ParseAction maps a case-insensitive name to an Action.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// Costs maps each offered action to its fixed cost.
type Costs map[Action]float64

// UniformCosts returns a table assigning c to all four moves.
func UniformCosts(c float64) Costs {
	return Costs{Left: c, Right: c, Up: c, Down: c}
}

// Validate checks that the table is non-empty, names only known actions and
// holds only non-negative costs.
func (c Costs) Validate() error {
	if len(c) == 0 {
		return ErrNoActions
	}
	for _, a := range c.sortedKeys() {
		if !a.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
		}
		if v := c[a]; v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: %s=%v", ErrNegativeCost, a, v)
		}
	}
	return nil
}

// Uniform reports whether every action in the table has the same cost.
func (c Costs) Uniform() bool {
	first, set := 0.0, false
	for _, v := range c {
		if !set {
			first, set = v, true
			continue
		}
		if v != first {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of c.
func (c Costs) Clone() Costs {
	out := make(Costs, len(c))
	for a, v := range c {
		out[a] = v
	}
	return out
}

// offered returns the table's actions in canonical order.
func (c Costs) offered() []Action {
	out := make([]Action, 0, len(canonical))
	for _, a := range canonical {
		if _, ok := c[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// sortedKeys lists canonical actions first, then unknown keys in
// lexical order, so validation errors are deterministic.
func (c Costs) sortedKeys() []Action {
	keys := c.offered()
	var extra []string
	for a := range c {
		if !a.Valid() {
			extra = append(extra, string(a))
		}
	}
	sort.Strings(extra)
	for _, e := range extra {
		keys = append(keys, Action(e))
	}
	return keys
}

// HeuristicKind selects the goal-distance estimate.
type HeuristicKind int

const (
	// Manhattan is |dx| + |dy|.
	Manhattan HeuristicKind = 1
	// Chebyshev is max(|dx|, |dy|).
	Chebyshev HeuristicKind = 2
	// ScaledManhattan is 2 × (|dx| + |dy|); not admissible.
	ScaledManhattan HeuristicKind = 3
)

// String returns the heuristic's name.
func (k HeuristicKind) String() string {
	switch k {
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	case ScaledManhattan:
		return "scaled_manhattan"
	}
	return fmt.Sprintf("heuristic(%d)", int(k))
}

// Valid reports whether k is one of the three supported selectors.
func (k HeuristicKind) Valid() bool { return k >= Manhattan && k <= ScaledManhattan }

// Admissible reports whether k never overestimates under costs ≥ 1.
func (k HeuristicKind) Admissible() bool { return k == Manhattan || k == Chebyshev }

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y|.
func ManhattanDistance(a, b gridmap.Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// ChebyshevDistance returns max(|a.X-b.X|, |a.Y-b.Y|).
func ChebyshevDistance(a, b gridmap.Point) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
