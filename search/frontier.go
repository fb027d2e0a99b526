package search

import (
	"container/heap"
	"fmt"
)

// Frontier is an ordered multiset of nodes awaiting expansion.
//
// Pop on an empty frontier panics; the engine always checks Empty first.
// Frontiers are owned by a single run and are not safe for concurrent use.
type Frontier[S comparable, A any] interface {
	// Push inserts node.
	Push(node Node[S, A])
	// Pop removes and returns the next node per the ordering policy.
	Pop() Node[S, A]
	// Empty reports whether no node awaits expansion.
	Empty() bool
	// Len returns the number of queued nodes.
	Len() int
	// Strategy identifies the ordering policy.
	Strategy() Strategy
}

// NewFrontier returns a fresh frontier for strategy. A* needs problem to
// implement Heuristic, otherwise ErrNoHeuristic is returned.
func NewFrontier[S comparable, A any](strategy Strategy, problem Problem[S, A]) (Frontier[S, A], error) {
	switch strategy {
	case StrategyBreadthFirst:
		return NewFIFO[S, A](), nil
	case StrategyDepthFirst:
		return NewLIFO[S, A](), nil
	case StrategyUniformCost:
		return NewCostPriority[S, A](), nil
	case StrategyAStar:
		h, ok := problem.(Heuristic[S])
		if !ok {
			return nil, ErrNoHeuristic
		}
		return NewAStarPriority[S, A](h), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
}

// FIFO is a first-in first-out queue: breadth-first search.
type FIFO[S comparable, A any] struct {
	items []Node[S, A]
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO[S comparable, A any]() *FIFO[S, A] {
	return &FIFO[S, A]{items: make([]Node[S, A], 0, 64)}
}

// Push appends node at the tail.
func (q *FIFO[S, A]) Push(node Node[S, A]) { q.items = append(q.items, node) }

// Pop removes the oldest node.
func (q *FIFO[S, A]) Pop() Node[S, A] {
	node := q.items[0]
	q.items[0] = Node[S, A]{}
	q.items = q.items[1:]
	return node
}

// Empty reports whether the queue is empty.
func (q *FIFO[S, A]) Empty() bool { return len(q.items) == 0 }

// Len returns the queue length.
func (q *FIFO[S, A]) Len() int { return len(q.items) }

// Strategy returns StrategyBreadthFirst.
func (q *FIFO[S, A]) Strategy() Strategy { return StrategyBreadthFirst }

// LIFO is a last-in first-out stack: depth-first search.
type LIFO[S comparable, A any] struct {
	items []Node[S, A]
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO[S comparable, A any]() *LIFO[S, A] {
	return &LIFO[S, A]{items: make([]Node[S, A], 0, 64)}
}

// Push places node on top of the stack.
func (s *LIFO[S, A]) Push(node Node[S, A]) { s.items = append(s.items, node) }

// Pop removes the most recently pushed node.
func (s *LIFO[S, A]) Pop() Node[S, A] {
	last := len(s.items) - 1
	node := s.items[last]
	s.items[last] = Node[S, A]{}
	s.items = s.items[:last]
	return node
}

// Empty reports whether the stack is empty.
func (s *LIFO[S, A]) Empty() bool { return len(s.items) == 0 }

// Len returns the stack height.
func (s *LIFO[S, A]) Len() int { return len(s.items) }

// Strategy returns StrategyDepthFirst.
func (s *LIFO[S, A]) Strategy() Strategy { return StrategyDepthFirst }

// Priority is a min-priority frontier with stable tie-breaking: among equal
// priorities the node inserted first is popped first.
type Priority[S comparable, A any] struct {
	pq       nodePQ[S, A]
	priority func(Node[S, A]) float64
	strategy Strategy
	seq      uint64
}

// NewPriority returns a min-priority frontier ordered by priority(node).
// The priority is computed once, at Push time.
func NewPriority[S comparable, A any](strategy Strategy, priority func(Node[S, A]) float64) *Priority[S, A] {
	if priority == nil {
		panic("search: NewPriority(nil priority)")
	}
	p := &Priority[S, A]{
		pq:       make(nodePQ[S, A], 0, 64),
		priority: priority,
		strategy: strategy,
	}
	heap.Init(&p.pq)
	return p
}

// NewCostPriority orders nodes by path cost: uniform-cost search.
func NewCostPriority[S comparable, A any]() *Priority[S, A] {
	return NewPriority[S, A](StrategyUniformCost, func(n Node[S, A]) float64 {
		return n.PathCost()
	})
}

// NewAStarPriority orders nodes by path cost + h(state): A* search.
func NewAStarPriority[S comparable, A any](h Heuristic[S]) *Priority[S, A] {
	if h == nil {
		panic("search: NewAStarPriority(nil heuristic)")
	}
	return NewPriority[S, A](StrategyAStar, func(n Node[S, A]) float64 {
		return n.PathCost() + h.Heuristic(n.State())
	})
}

// Push inserts node with its computed priority and the next sequence number.
func (p *Priority[S, A]) Push(node Node[S, A]) {
	heap.Push(&p.pq, &pqItem[S, A]{node: node, priority: p.priority(node), seq: p.seq})
	p.seq++
}

// Pop removes the node with the lowest priority, oldest first on ties.
func (p *Priority[S, A]) Pop() Node[S, A] {
	return heap.Pop(&p.pq).(*pqItem[S, A]).node
}

// Empty reports whether the heap is empty.
func (p *Priority[S, A]) Empty() bool { return p.pq.Len() == 0 }

// Len returns the heap size.
func (p *Priority[S, A]) Len() int { return p.pq.Len() }

// Strategy returns the strategy given at construction.
func (p *Priority[S, A]) Strategy() Strategy { return p.strategy }

// pqItem is a heap entry: a node, its priority and its insertion sequence.
type pqItem[S comparable, A any] struct {
	node     Node[S, A]
	priority float64
	seq      uint64
}

// nodePQ is a min-heap of *pqItem ordered by (priority, seq) ascending.
type nodePQ[S comparable, A any] []*pqItem[S, A]

// Len returns the number of items in the heap.
func (pq nodePQ[S, A]) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence.
func (pq nodePQ[S, A]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[S, A]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ[S, A]) Push(x interface{}) { *pq = append(*pq, x.(*pqItem[S, A])) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ[S, A]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
