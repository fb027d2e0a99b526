// Package gridwalk is a small laboratory for classic state-space search:
// a generic engine running breadth-first, depth-first, uniform-cost and A*
// search, applied to a grid-walk puzzle where an agent 'T' must reach a
// treasure 'P' on an ASCII map.
//
// What is inside?
//
//	search/       generic Problem, Node, Frontier (FIFO, LIFO, priority),
//	              the Search engine and its Observer events
//	gridmap/      ASCII map parsing, reachability and path rendering
//	puzzle/       the grid-walk Problem: four moves, cost tables, heuristics
//	mapgen/       seeded random map generation with guaranteed connectivity
//	viewer/       observers: stats, slog, Prometheus, OpenTelemetry, animated
//	experiment/   the three comparison cases, YAML config, reports, metrics table
//	cmd/gridwalk  command-line driver
//
// Quick ASCII example:
//
//	#########
//	# P·    #
//	# #·##  #
//	#  ··#  #
//	# ##T   #
//	#       #
//	#########
//
// is the breadth-first solution on the built-in map: five moves, cost 5
// with unit costs.
//
//	go run github.com/katalvlaran/gridwalk/cmd/gridwalk -case 2
package gridwalk
