package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/search"
)

func TestMakeRoot(t *testing.T) {
	root := search.MakeRoot[string, string]("A")
	assert.True(t, root.Valid())
	assert.True(t, root.IsRoot())
	assert.Equal(t, "A", root.State())
	assert.Zero(t, root.PathCost())
	assert.Zero(t, root.Depth())
	assert.Empty(t, root.Action())

	_, ok := root.Parent()
	assert.False(t, ok)

	path := root.Path()
	require.Len(t, path, 1)
	assert.False(t, path[0].HasAction)
	assert.Empty(t, root.Actions())
}

func TestExpand_ChildrenFollowActionOrder(t *testing.T) {
	p := diamond("D")
	root := search.MakeRoot[string, string]("A")
	kids := root.Expand(p)
	require.Len(t, kids, 2)

	assert.Equal(t, "B", kids[0].State())
	assert.Equal(t, "B", kids[0].Action())
	assert.Equal(t, 10.0, kids[0].PathCost())
	assert.Equal(t, "C", kids[1].State())
	assert.Equal(t, 1.0, kids[1].PathCost())
	for _, k := range kids {
		assert.Equal(t, 1, k.Depth())
		assert.False(t, k.IsRoot())
		parent, ok := k.Parent()
		require.True(t, ok)
		assert.Equal(t, root, parent)
	}

	// expansion accumulates cost and depth along the chain
	e := kids[1].Expand(p)[0]
	d := e.Expand(p)[0]
	assert.Equal(t, 3.0, d.PathCost())
	assert.Equal(t, 3, d.Depth())
	assert.Equal(t, []string{"A", "C", "E", "D"}, d.States())
	assert.Equal(t, []string{"C", "E", "D"}, d.Actions())

	// earlier handles stay valid after the arena grows
	assert.Equal(t, "B", kids[0].State())
	assert.Equal(t, "D (cost=3, depth=3)", d.String())
}

func TestExpand_LeafHasNoChildren(t *testing.T) {
	leaf := search.MakeRoot[string, string]("D")
	assert.Empty(t, leaf.Expand(diamond("D")))
}

func TestNode_ZeroValue(t *testing.T) {
	var n search.Node[string, string]
	assert.False(t, n.Valid())
	assert.Equal(t, "<nil node>", n.String())
	assert.Panics(t, func() { _ = n.State() })
}

func TestPath_Idempotent(t *testing.T) {
	root := search.MakeRoot[string, string]("A")
	c := root.Expand(diamond("D"))[1]
	assert.Equal(t, c.Path(), c.Path())
	assert.Equal(t, []search.Step[string, string]{
		{State: "A"},
		{Action: "C", State: "C", HasAction: true},
	}, c.Path())
}
