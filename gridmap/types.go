package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for map construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrMissingStart indicates no start cell was found.
	ErrMissingStart = errors.New("gridmap: map has no start cell")
	// ErrMissingGoal indicates no goal cell was found.
	ErrMissingGoal = errors.New("gridmap: map has no goal cell")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("gridmap: map has more than one start cell")
	// ErrDuplicateGoal indicates more than one goal cell.
	ErrDuplicateGoal = errors.New("gridmap: map has more than one goal cell")
)

// Cell glyphs of the map format.
const (
	Wall  = '#'
	Open  = ' '
	Start = 'T'
	Goal  = 'P'
	// PathMark overlays solution cells in RenderPath.
	PathMark = '·'
)

// Point is a cell coordinate: X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Map is an immutable rectangular grid with exactly one start and one goal.
// cells[y][x] holds the glyph as read; start and goal letters keep their case.
type Map struct {
	width, height int
	cells         [][]rune
	start, goal   Point
}

// neighborOffsets is the 4-connectivity used by reachability checks.
var neighborOffsets = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
