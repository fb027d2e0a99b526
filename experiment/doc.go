// Package experiment drives search comparisons on grid maps: it resolves the
// map (fixed, from a file, or randomly generated), builds one of the three
// experiment cases, runs every configured algorithm with a fresh observer
// chain, and reports a rendered solution plus a metrics table.
//
// Cases:
//
//	1  unit costs                         breadth-first, depth-first
//	2  left 3, right 1, up 1, down 3      breadth-first, uniform-cost, A* (Manhattan)
//	3  left 3, right 1, up 1, down 3      A* with heuristics 1, 2 and 3
//
// Configuration is a YAML document merged over DefaultConfig; zero-valued
// fields keep their defaults. The optimality column of the metrics table is
// a claim derived from the algorithm and the inputs, not a measurement:
// breadth-first is optimal iff all costs are equal, uniform-cost always,
// A* iff its heuristic is admissible, depth-first never.
package experiment
