package viewer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/puzzle"
)

// smallMap has two equally short routes from T to P around a single wall.
const smallMap = `
#####
#T  #
# # #
#  P#
#####
`

func newProblem(t *testing.T) *puzzle.Problem {
	t.Helper()
	return newProblemFor(t, gridmap.MustParse(smallMap))
}

func newProblemFor(t *testing.T, m *gridmap.Map) *puzzle.Problem {
	t.Helper()
	p, err := puzzle.NewProblem(m, puzzle.UniformCosts(1), puzzle.Manhattan)
	require.NoError(t, err)
	return p
}
