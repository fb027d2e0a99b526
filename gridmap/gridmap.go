package gridmap

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse reads a map in the textual format: one row per line, empty lines
// ignored, '#' walls, 'T'/'t' start, 'P'/'p' goal, any other rune walkable.
// A line of spaces is a row of open cells, not a blank line.
// Trailing carriage returns are stripped so CRLF input parses the same.
//
// Returns the errors of New.
func Parse(ascii string) (*Map, error) {
	var rows [][]rune
	for _, line := range strings.Split(ascii, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	return New(rows)
}

// MustParse is like Parse but panics on error. Intended for fixed maps
// compiled into programs and tests.
func MustParse(ascii string) *Map {
	m, err := Parse(ascii)
	if err != nil {
		panic(fmt.Sprintf("gridmap: MustParse: %v", err))
	}
	return m
}

// New constructs a Map from a non-empty, rectangular grid of glyphs.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrMissingStart, ErrMissingGoal,
// ErrDuplicateStart or ErrDuplicateGoal (the latter two wrapped with both
// offending coordinates).
// Complexity: O(W×H) time and memory.
func New(rows [][]rune) (*Map, error) {
	// 1) Shape checks.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// 2) Deep copy while locating start and goal.
	m := &Map{width: w, height: h, cells: make([][]rune, h)}
	var hasStart, hasGoal bool
	for y := 0; y < h; y++ {
		m.cells[y] = make([]rune, w)
		copy(m.cells[y], rows[y])
		for x, r := range rows[y] {
			switch unicode.ToUpper(r) {
			case Start:
				if hasStart {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, m.start, Point{x, y})
				}
				m.start, hasStart = Point{x, y}, true
			case Goal:
				if hasGoal {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateGoal, m.goal, Point{x, y})
				}
				m.goal, hasGoal = Point{x, y}, true
			}
		}
	}

	// 3) Both markers are mandatory.
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasGoal {
		return nil, ErrMissingGoal
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Start returns the start cell.
func (m *Map) Start() Point { return m.start }

// Goal returns the goal cell.
func (m *Map) Goal() Point { return m.goal }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// At returns the glyph at p, or Wall outside the grid.
func (m *Map) At(p Point) rune {
	if !m.InBounds(p) {
		return Wall
	}
	return m.cells[p.Y][p.X]
}

// IsWall reports whether p is a wall. Out-of-bounds cells count as walls.
func (m *Map) IsWall(p Point) bool { return m.At(p) == Wall }

// Passable reports whether p is inside the grid and not a wall.
func (m *Map) Passable(p Point) bool { return m.InBounds(p) && m.cells[p.Y][p.X] != Wall }

// FreeCells returns every passable cell in row-major order.
func (m *Map) FreeCells() []Point {
	out := make([]Point, 0, m.width*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] != Wall {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Rows returns a deep copy of the glyph grid.
func (m *Map) Rows() [][]rune {
	out := make([][]rune, m.height)
	for y := range m.cells {
		out[y] = append([]rune(nil), m.cells[y]...)
	}
	return out
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (m *Map) index(p Point) int {
	return p.Y*m.width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (m *Map) Coordinate(idx int) Point {
	return Point{X: idx % m.width, Y: idx / m.width}
}
