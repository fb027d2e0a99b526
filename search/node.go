package search

import "fmt"

// noParent marks the root record in an arena.
const noParent = -1

// record is the arena-resident payload of one search-tree node.
type record[S comparable, A any] struct {
	state  S
	action A
	parent int     // index of the parent record, noParent for the root
	cost   float64 // cumulative path cost from the root
	depth  int     // number of actions from the root
}

// arena owns every node created during one run. Children only ever append,
// so indices stay valid for the arena's lifetime.
type arena[S comparable, A any] struct {
	records []record[S, A]
}

// Node is a lightweight handle to a search-tree node stored in a run arena.
//
// The zero Node is invalid (Valid reports false); it is what observers receive
// with EventSearchExhausted. Copying a Node copies the handle, not the tree.
type Node[S comparable, A any] struct {
	tree  *arena[S, A]
	index int
}

// Step is one entry of a reconstructed path.
// The root entry has HasAction == false and a zero Action.
type Step[S comparable, A any] struct {
	Action    A
	State     S
	HasAction bool
}

// MakeRoot creates a new arena holding a single root node for state:
// path cost 0, depth 0, no parent.
func MakeRoot[S comparable, A any](state S) Node[S, A] {
	a := &arena[S, A]{records: make([]record[S, A], 0, 64)}
	a.records = append(a.records, record[S, A]{state: state, parent: noParent})

	return Node[S, A]{tree: a, index: 0}
}

// Valid reports whether n refers to a node.
func (n Node[S, A]) Valid() bool { return n.tree != nil }

// rec returns the record behind n. It panics on an invalid Node.
func (n Node[S, A]) rec() *record[S, A] {
	if n.tree == nil {
		panic("search: use of invalid Node")
	}
	return &n.tree.records[n.index]
}

// State returns the node's state.
func (n Node[S, A]) State() S { return n.rec().state }

// Action returns the action that produced this node from its parent.
// For the root it returns the zero value of A.
func (n Node[S, A]) Action() A { return n.rec().action }

// PathCost returns the cumulative cost from the root.
func (n Node[S, A]) PathCost() float64 { return n.rec().cost }

// Depth returns the number of actions between the root and n.
func (n Node[S, A]) Depth() int { return n.rec().depth }

// IsRoot reports whether n has no parent.
func (n Node[S, A]) IsRoot() bool { return n.rec().parent == noParent }

// Parent returns the parent node, or false for the root.
func (n Node[S, A]) Parent() (Node[S, A], bool) {
	p := n.rec().parent
	if p == noParent {
		return Node[S, A]{}, false
	}
	return Node[S, A]{tree: n.tree, index: p}, true
}

// Expand generates one child per action returned by problem.Actions, in that
// order. Each child's cost is the parent's cost plus problem.Cost and its depth
// is the parent's depth plus one. Children are stored in n's arena.
//
// Complexity: O(k) for k applicable actions, plus the problem's own cost.
func (n Node[S, A]) Expand(problem Problem[S, A]) []Node[S, A] {
	// Copy the parent record: appending may move the backing array.
	parent := *n.rec()
	actions := problem.Actions(parent.state)
	children := make([]Node[S, A], 0, len(actions))

	var next S
	for _, action := range actions {
		next = problem.Result(parent.state, action)
		n.tree.records = append(n.tree.records, record[S, A]{
			state:  next,
			action: action,
			parent: n.index,
			cost:   parent.cost + problem.Cost(parent.state, action, next),
			depth:  parent.depth + 1,
		})
		children = append(children, Node[S, A]{tree: n.tree, index: len(n.tree.records) - 1})
	}

	return children
}

// Path walks parent links from n to the root and returns the steps in
// root-to-n order. It is a pure function of the arena, so repeated calls
// return equal slices.
//
// Complexity: O(depth) time and memory.
func (n Node[S, A]) Path() []Step[S, A] {
	steps := make([]Step[S, A], 0, n.Depth()+1)
	for i := n.index; i != noParent; i = n.tree.records[i].parent {
		r := n.tree.records[i]
		steps = append(steps, Step[S, A]{
			Action:    r.action,
			State:     r.state,
			HasAction: r.parent != noParent,
		})
	}
	// reverse to get root → n
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// States returns the states along Path, root first.
func (n Node[S, A]) States() []S {
	steps := n.Path()
	states := make([]S, len(steps))
	for i, s := range steps {
		states[i] = s.State
	}
	return states
}

// Actions returns the actions along Path, excluding the root entry.
func (n Node[S, A]) Actions() []A {
	steps := n.Path()
	actions := make([]A, 0, len(steps))
	for _, s := range steps {
		if s.HasAction {
			actions = append(actions, s.Action)
		}
	}
	return actions
}

// String formats the node as "state (cost=c, depth=d)".
func (n Node[S, A]) String() string {
	if !n.Valid() {
		return "<nil node>"
	}
	r := n.rec()
	return fmt.Sprintf("%v (cost=%g, depth=%d)", r.state, r.cost, r.depth)
}
