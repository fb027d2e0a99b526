package experiment

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/search"
)

// Report renders the map with the solution overlaid, followed by the
// solution length, the total cost recomputed by replaying the problem's
// costs along the path, and the run statistics. Without a solution the map
// is drawn bare and the report says so.
func Report(p *puzzle.Problem, res *search.Result[puzzle.State, puzzle.Action]) string {
	var sb strings.Builder
	path := res.Path()
	sb.WriteString(p.Map().RenderPath(puzzle.Positions(path)))

	if res.Found {
		fmt.Fprintf(&sb, "Total length of solution: %d\n", len(path))
		fmt.Fprintf(&sb, "Total cost of solution: %g\n", p.TotalCost(path))
		fmt.Fprintf(&sb, "Actions: %s\n", strings.Join(puzzle.ActionNames(path), " > "))
	} else {
		sb.WriteString("No solution found\n")
	}
	fmt.Fprintf(&sb, "iterations: %d\n", res.Stats.Iterations)
	fmt.Fprintf(&sb, "expanded nodes: %d\n", res.Stats.Expanded)
	fmt.Fprintf(&sb, "generated nodes: %d\n", res.Stats.Generated)
	fmt.Fprintf(&sb, "max fringe size: %d\n", res.Stats.MaxFrontier)
	return sb.String()
}
