package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/search"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]search.Strategy{
		"bfs":           search.StrategyBreadthFirst,
		"breadth_first": search.StrategyBreadthFirst,
		"DFS":           search.StrategyDepthFirst,
		"ucs":           search.StrategyUniformCost,
		" uniform_cost": search.StrategyUniformCost,
		"a*":            search.StrategyAStar,
		"astar":         search.StrategyAStar,
		"A_Star":        search.StrategyAStar,
	}
	for in, want := range cases {
		got, err := search.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseStrategy("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "breadth_first", search.StrategyBreadthFirst.String())
	assert.Equal(t, "astar", search.StrategyAStar.String())
	assert.Equal(t, "custom", search.StrategyCustom.String())
	assert.Equal(t, "strategy(17)", search.Strategy(17).String())

	assert.True(t, search.StrategyUniformCost.CostOrdered())
	assert.True(t, search.StrategyAStar.CostOrdered())
	assert.False(t, search.StrategyDepthFirst.CostOrdered())
}

func TestDefaultOptions(t *testing.T) {
	o := search.DefaultOptions()
	assert.NotNil(t, o.Ctx)
	assert.True(t, o.GraphSearch)
	assert.Equal(t, search.ClosedAuto, o.Closed)

	search.WithContext(nil)(&o)
	assert.NotNil(t, o.Ctx)
	search.WithGraphSearch(false)(&o)
	assert.False(t, o.GraphSearch)
	search.WithClosedPolicy(search.ClosedByCost)(&o)
	assert.Equal(t, search.ClosedByCost, o.Closed)
	assert.Equal(t, "cost", o.Closed.String())
}
