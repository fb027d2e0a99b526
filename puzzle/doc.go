// Package puzzle implements the grid-walking puzzle as a search.Problem:
// an agent starts on the 'T' cell of a gridmap.Map and must reach the 'P'
// cell by moving left, right, up or down through non-wall cells.
//
// What:
//
//   - States are gridmap.Point values; actions are the Action strings
//     "left", "right", "up", "down".
//   - Every action has a fixed, non-negative cost taken from a Costs table.
//     Only actions present in the table are ever offered, always in the
//     canonical order left, right, up, down.
//   - Three goal-distance heuristics are selectable by number:
//     1 Manhattan, 2 Chebyshev, 3 scaled Manhattan (2×, not admissible).
//
// Why:
//
//   - Asymmetric cost tables (e.g. cheap right/up, expensive left/down) make
//     breadth-first, uniform-cost and A* diverge on the same map, which is
//     the point of comparing them.
//
// Admissibility:
//
//	Manhattan and Chebyshev count cells, so they never overestimate the
//	remaining cost when every action costs at least 1. Scaled Manhattan
//	doubles the estimate and may overestimate; A* driven by it can return
//	a suboptimal path. HeuristicKind.Admissible reports which is which.
//
// Errors:
//
//   - ErrNilMap:           NewProblem was given a nil map.
//   - ErrInvalidHeuristic: heuristic selector outside 1..3.
//   - ErrNegativeCost:     a cost is negative or NaN.
//   - ErrUnknownAction:    a cost key is not one of the four actions.
//   - ErrNoActions:        the cost table is empty.
package puzzle
