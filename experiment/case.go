package experiment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/search"
)

// Sentinel errors for experiment setup.
var (
	// ErrUnknownCase is returned for case numbers other than 1, 2 and 3.
	ErrUnknownCase = errors.New("experiment: case must be 1, 2 or 3")
	// ErrNoRuns is returned when a case ends up with no algorithm to run.
	ErrNoRuns = errors.New("experiment: no algorithms to run")
)

// Run is one algorithm invocation within a case.
type Run struct {
	Strategy  search.Strategy
	Heuristic puzzle.HeuristicKind
}

// Label names the run for reports: the strategy, plus the heuristic for A*.
func (r Run) Label() string {
	if r.Strategy == search.StrategyAStar {
		return fmt.Sprintf("%s(h%d)", r.Strategy, int(r.Heuristic))
	}
	return r.Strategy.String()
}

// Case is a cost table and the runs to perform with it.
type Case struct {
	Number int
	Costs  puzzle.Costs
	Runs   []Run
}

// asymmetricCosts makes left and down three times as expensive as right and up.
func asymmetricCosts() puzzle.Costs {
	return puzzle.Costs{puzzle.Left: 3, puzzle.Right: 1, puzzle.Up: 1, puzzle.Down: 3}
}

// LookupCase returns the built-in case n.
func LookupCase(n int) (Case, error) {
	switch n {
	case 1:
		return Case{
			Number: 1,
			Costs:  puzzle.UniformCosts(1),
			Runs: []Run{
				{search.StrategyBreadthFirst, puzzle.Manhattan},
				{search.StrategyDepthFirst, puzzle.Manhattan},
			},
		}, nil
	case 2:
		return Case{
			Number: 2,
			Costs:  asymmetricCosts(),
			Runs: []Run{
				{search.StrategyBreadthFirst, puzzle.Manhattan},
				{search.StrategyUniformCost, puzzle.Manhattan},
				{search.StrategyAStar, puzzle.Manhattan},
			},
		}, nil
	case 3:
		return Case{
			Number: 3,
			Costs:  asymmetricCosts(),
			Runs: []Run{
				{search.StrategyAStar, puzzle.Manhattan},
				{search.StrategyAStar, puzzle.Chebyshev},
				{search.StrategyAStar, puzzle.ScaledManhattan},
			},
		}, nil
	}
	return Case{}, fmt.Errorf("%w: got %d", ErrUnknownCase, n)
}

// BuildCase resolves cfg into a Case: the built-in case cfg.Case, with its
// cost table replaced by cfg.Costs and its runs replaced by the cross
// product of cfg.Algorithms and cfg.Heuristics when those are set. Without
// Heuristics, every overridden run uses Manhattan.
func BuildCase(cfg *Config) (Case, error) {
	c, err := LookupCase(cfg.Case)
	if err != nil {
		return Case{}, err
	}

	if len(cfg.Costs) > 0 {
		costs := make(puzzle.Costs, len(cfg.Costs))
		for name, v := range cfg.Costs {
			a, err := puzzle.ParseAction(name)
			if err != nil {
				return Case{}, err
			}
			costs[a] = v
		}
		if err := costs.Validate(); err != nil {
			return Case{}, err
		}
		c.Costs = costs
	}

	if len(cfg.Algorithms) > 0 || len(cfg.Heuristics) > 0 {
		runs, err := buildRuns(c.Runs, cfg.Algorithms, cfg.Heuristics)
		if err != nil {
			return Case{}, err
		}
		c.Runs = runs
	}
	if len(c.Runs) == 0 {
		return Case{}, ErrNoRuns
	}
	return c, nil
}

// buildRuns expands names × heuristics. Missing names keep the strategies of
// base in order, deduplicated; missing heuristics default to Manhattan.
func buildRuns(base []Run, names []string, heuristics []int) ([]Run, error) {
	var strategies []search.Strategy
	if len(names) > 0 {
		for _, name := range names {
			s, err := search.ParseStrategy(name)
			if err != nil {
				return nil, err
			}
			strategies = append(strategies, s)
		}
	} else {
		seen := make(map[search.Strategy]bool)
		for _, r := range base {
			if !seen[r.Strategy] {
				seen[r.Strategy] = true
				strategies = append(strategies, r.Strategy)
			}
		}
	}

	kinds := []puzzle.HeuristicKind{puzzle.Manhattan}
	if len(heuristics) > 0 {
		kinds = kinds[:0]
		for _, h := range heuristics {
			k := puzzle.HeuristicKind(h)
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %d", puzzle.ErrInvalidHeuristic, h)
			}
			kinds = append(kinds, k)
		}
	}

	var runs []Run
	for _, s := range strategies {
		if s != search.StrategyAStar {
			// the heuristic does not influence uninformed strategies
			runs = append(runs, Run{Strategy: s, Heuristic: kinds[0]})
			continue
		}
		for _, k := range kinds {
			runs = append(runs, Run{Strategy: s, Heuristic: k})
		}
	}
	return runs, nil
}
