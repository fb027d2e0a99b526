package experiment

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/search"
)

// Row is one line of the metrics table.
type Row struct {
	Algorithm   string
	Found       bool
	Length      int // path entries including the start
	Cost        float64
	Expanded    int
	MaxFrontier int
	Optimal     bool
}

// ExtractRow summarizes res for the metrics table. costs is the table the
// run used; it decides the breadth-first optimality claim.
func ExtractRow(run Run, costs puzzle.Costs, res *search.Result[puzzle.State, puzzle.Action]) Row {
	return Row{
		Algorithm:   run.Label(),
		Found:       res.Found,
		Length:      res.Len(),
		Cost:        res.Cost(),
		Expanded:    res.Stats.Expanded,
		MaxFrontier: res.Stats.MaxFrontier,
		Optimal:     OptimalityClaim(run, costs),
	}
}

// OptimalityClaim reports whether run is guaranteed to return a cheapest
// path: breadth-first iff all costs are equal, uniform-cost always, A* iff
// the heuristic is admissible, anything else never.
func OptimalityClaim(run Run, costs puzzle.Costs) bool {
	switch run.Strategy {
	case search.StrategyBreadthFirst:
		return costs.Uniform()
	case search.StrategyUniformCost:
		return true
	case search.StrategyAStar:
		return run.Heuristic.Admissible()
	}
	return false
}

// Table renders rows as an aligned text table.
func Table(rows []Row) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tLength\tCost\tExpanded\tMax frontier\tOptimal")
	for _, r := range rows {
		length, cost := "-", "-"
		if r.Found {
			length, cost = fmt.Sprint(r.Length), fmt.Sprintf("%g", r.Cost)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.Algorithm, length, cost, r.Expanded, r.MaxFrontier, yesNo(r.Optimal))
	}
	_ = tw.Flush()
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
