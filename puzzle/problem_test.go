package puzzle_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/mapgen"
	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/search"
)

const nineBySeven = `
#########
# P     #
# # ##  #
#    #  #
# ##T   #
#       #
#########
`

// asymmetric is the {left:3, right:1, up:1, down:3} table.
var asymmetric = puzzle.Costs{puzzle.Left: 3, puzzle.Right: 1, puzzle.Up: 1, puzzle.Down: 3}

func newProblem(t *testing.T, costs puzzle.Costs, kind puzzle.HeuristicKind) *puzzle.Problem {
	t.Helper()
	p, err := puzzle.NewProblem(gridmap.MustParse(nineBySeven), costs, kind)
	require.NoError(t, err)
	return p
}

func TestNewProblem_Errors(t *testing.T) {
	m := gridmap.MustParse(nineBySeven)
	cases := []struct {
		name  string
		m     *gridmap.Map
		costs puzzle.Costs
		kind  puzzle.HeuristicKind
		err   error
	}{
		{"NilMap", nil, puzzle.UniformCosts(1), puzzle.Manhattan, puzzle.ErrNilMap},
		{"HeuristicZero", m, puzzle.UniformCosts(1), 0, puzzle.ErrInvalidHeuristic},
		{"HeuristicFour", m, puzzle.UniformCosts(1), 4, puzzle.ErrInvalidHeuristic},
		{"NegativeCost", m, puzzle.Costs{puzzle.Up: -1}, puzzle.Manhattan, puzzle.ErrNegativeCost},
		{"NaNCost", m, puzzle.Costs{puzzle.Up: math.NaN()}, puzzle.Manhattan, puzzle.ErrNegativeCost},
		{"UnknownAction", m, puzzle.Costs{"jump": 1, puzzle.Up: 1}, puzzle.Manhattan, puzzle.ErrUnknownAction},
		{"EmptyCosts", m, puzzle.Costs{}, puzzle.Manhattan, puzzle.ErrNoActions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := puzzle.NewProblem(tc.m, tc.costs, tc.kind)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestProblem_Moves(t *testing.T) {
	p := newProblem(t, asymmetric, puzzle.Manhattan)
	start := p.InitialState()
	require.Equal(t, gridmap.Point{X: 4, Y: 4}, start)
	assert.False(t, p.IsGoal(start))
	assert.True(t, p.IsGoal(gridmap.Point{X: 2, Y: 1}))

	// left of the start is a wall
	assert.Equal(t, []puzzle.Action{puzzle.Right, puzzle.Up, puzzle.Down}, p.Actions(start))

	assert.Equal(t, gridmap.Point{X: 5, Y: 4}, p.Result(start, puzzle.Right))
	assert.Equal(t, gridmap.Point{X: 4, Y: 3}, p.Result(start, puzzle.Up))
	assert.Equal(t, gridmap.Point{X: 4, Y: 5}, p.Result(start, puzzle.Down))
	assert.Equal(t, gridmap.Point{X: 3, Y: 4}, p.Result(start, puzzle.Left))

	assert.Equal(t, 3.0, p.Cost(start, puzzle.Down, p.Result(start, puzzle.Down)))
	assert.Equal(t, 1.0, p.Cost(start, puzzle.Up, p.Result(start, puzzle.Up)))
}

func TestProblem_ActionsLimitedToCostTable(t *testing.T) {
	p := newProblem(t, puzzle.Costs{puzzle.Up: 1, puzzle.Left: 1}, puzzle.Manhattan)
	assert.Equal(t, []puzzle.Action{puzzle.Up}, p.Actions(p.InitialState()))
}

func TestProblem_CostTableIsCopied(t *testing.T) {
	costs := puzzle.UniformCosts(1)
	p := newProblem(t, costs, puzzle.Manhattan)
	costs[puzzle.Up] = 100
	assert.Equal(t, 1.0, p.Costs()[puzzle.Up])
}

func TestProblem_Heuristics(t *testing.T) {
	// start (4,4) to goal (2,1): dx=2, dy=3
	want := map[puzzle.HeuristicKind]float64{
		puzzle.Manhattan:       5,
		puzzle.Chebyshev:       3,
		puzzle.ScaledManhattan: 10,
	}
	for kind, h := range want {
		p := newProblem(t, puzzle.UniformCosts(1), kind)
		assert.Equal(t, h, p.Heuristic(p.InitialState()), kind.String())
		assert.Zero(t, p.Heuristic(p.Map().Goal()), kind.String())
		assert.Equal(t, kind, p.HeuristicKind())
	}
}

func TestScenario_UnitCosts_BreadthFirstNoLongerThanDepthFirst(t *testing.T) {
	p := newProblem(t, puzzle.UniformCosts(1), puzzle.Manhattan)

	bfs, err := p.Solve(search.StrategyBreadthFirst, nil)
	require.NoError(t, err)
	require.True(t, bfs.Found)
	dfs, err := p.Solve(search.StrategyDepthFirst, nil)
	require.NoError(t, err)
	require.True(t, dfs.Found)

	assert.Equal(t, 6, bfs.Len())
	assert.Equal(t, 5.0, bfs.Cost())
	assert.Equal(t, []string{"up", "left", "up", "up", "left"}, puzzle.ActionNames(bfs.Path()))
	assert.LessOrEqual(t, bfs.Len(), dfs.Len())
	assert.Equal(t, 22, dfs.Len())
}

func TestScenario_AsymmetricCosts_OptimalAgree(t *testing.T) {
	ucs, err := newProblem(t, asymmetric, puzzle.Manhattan).Solve(search.StrategyUniformCost, nil)
	require.NoError(t, err)
	require.True(t, ucs.Found)

	for _, kind := range []puzzle.HeuristicKind{puzzle.Manhattan, puzzle.Chebyshev} {
		res, err := newProblem(t, asymmetric, kind).Solve(search.StrategyAStar, nil)
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, ucs.Cost(), res.Cost(), kind.String())
	}
	assert.Equal(t, 9.0, ucs.Cost())

	// A* explores less than UCS with an informative admissible heuristic
	astar, err := newProblem(t, asymmetric, puzzle.Manhattan).Solve(search.StrategyAStar, nil)
	require.NoError(t, err)
	assert.Less(t, astar.Stats.Expanded, ucs.Stats.Expanded)
}

// TestProperties_RandomMaps checks on seeded random maps that uniform-cost
// search and A* with an admissible heuristic agree on the cheapest cost, that
// breadth-first search finds the fewest moves under unit costs, and that no
// graph search expands more states than the start can reach.
func TestProperties_RandomMaps(t *testing.T) {
	strategies := []search.Strategy{
		search.StrategyBreadthFirst,
		search.StrategyDepthFirst,
		search.StrategyUniformCost,
		search.StrategyAStar,
	}
	tables := map[string]puzzle.Costs{
		"unit":       puzzle.UniformCosts(1),
		"asymmetric": asymmetric,
	}

	checked := 0
	for seed := int64(1); seed <= 120; seed++ {
		width, height := 5+int(seed%8), 5+int(seed/8%6)
		m, err := mapgen.Generate(width, height, 0.3, mapgen.WithSeed(seed))
		if errors.Is(err, mapgen.ErrGenerationFailed) {
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		reachable := len(m.Reachable(m.Start()))
		checked++

		for name, costs := range tables {
			results := make(map[search.Strategy]*search.Result[puzzle.State, puzzle.Action], len(strategies))
			for _, s := range strategies {
				p, err := puzzle.NewProblem(m, costs, puzzle.Manhattan)
				require.NoError(t, err)
				res, err := p.Solve(s, nil)
				require.NoError(t, err)
				require.True(t, res.Found, "seed %d %s %s", seed, name, s)
				assert.LessOrEqual(t, res.Stats.Expanded, reachable, "seed %d %s %s", seed, name, s)
				assert.Equal(t, res.Cost(), p.TotalCost(res.Path()), "seed %d %s %s", seed, name, s)
				results[s] = res
			}

			ucs := results[search.StrategyUniformCost]
			assert.Equal(t, ucs.Cost(), results[search.StrategyAStar].Cost(), "seed %d %s", seed, name)
			chebyshev, err := puzzle.NewProblem(m, costs, puzzle.Chebyshev)
			require.NoError(t, err)
			res, err := chebyshev.Solve(search.StrategyAStar, nil)
			require.NoError(t, err)
			assert.Equal(t, ucs.Cost(), res.Cost(), "seed %d %s chebyshev", seed, name)

			bfs := results[search.StrategyBreadthFirst]
			for _, s := range strategies {
				assert.LessOrEqual(t, bfs.Len(), results[s].Len(), "seed %d %s %s", seed, name, s)
			}
			if costs.Uniform() {
				assert.Equal(t, bfs.Len(), ucs.Len(), "seed %d", seed)
				assert.Equal(t, ucs.Cost(), bfs.Cost(), "seed %d", seed)
			}
		}
	}
	assert.Greater(t, checked, 60)
}

func TestTotalCost_ReplaysPath(t *testing.T) {
	p := newProblem(t, asymmetric, puzzle.Manhattan)
	for _, s := range []search.Strategy{
		search.StrategyBreadthFirst,
		search.StrategyDepthFirst,
		search.StrategyUniformCost,
		search.StrategyAStar,
	} {
		res, err := p.Solve(s, nil)
		require.NoError(t, err)
		require.True(t, res.Found)
		path := res.Path()
		assert.Equal(t, res.Cost(), p.TotalCost(path), s.String())

		positions := puzzle.Positions(path)
		assert.Equal(t, p.InitialState(), positions[0])
		assert.Equal(t, p.Map().Goal(), positions[len(positions)-1])
		for i := 1; i < len(positions); i++ {
			assert.True(t, p.Map().Passable(positions[i]))
			assert.Equal(t, 1.0, puzzle.ManhattanDistance(positions[i-1], positions[i]))
		}
	}
}

func TestProblem_UnsolvableMap(t *testing.T) {
	m := gridmap.MustParse("#####\n#T#P#\n#####")
	p, err := puzzle.NewProblem(m, puzzle.UniformCosts(1), puzzle.Manhattan)
	require.NoError(t, err)

	res, err := p.Solve(search.StrategyAStar, nil)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Stats.Expanded)
}
