// Package gridmap parses, validates and renders the ASCII maps walked by the
// grid puzzle: a rectangle of cells where '#' is a wall, 'T' marks the start
// and 'P' marks the goal.
//
// What:
//
//   - Parse reads the textual format (rows separated by newlines, empty lines
//     ignored, start/goal letters case-insensitive). A line of spaces is a
//     row of open cells.
//   - New builds a Map from runes, deep-copying the input.
//   - Reachable and Connected answer 4-neighbor reachability over walkable
//     cells with a plain breadth-first flood fill.
//   - String and RenderPath draw the map back, the latter overlaying a
//     solution path with '·'.
//
// Why:
//
//   - Puzzles and generators share one validated, immutable grid type.
//   - Generators need a cheap connectivity check before handing out a map.
//
// Complexity:
//
//   - Parse / New:     O(W×H) time and memory.
//   - Reachable:       O(W×H) time, O(W×H) memory.
//   - RenderPath:      O(W×H + len(path)).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart:   no 'T' cell.
//   - ErrMissingGoal:    no 'P' cell.
//   - ErrDuplicateStart: more than one 'T' cell.
//   - ErrDuplicateGoal:  more than one 'P' cell.
package gridmap
