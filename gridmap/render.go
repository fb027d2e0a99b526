package gridmap

import "strings"

// String draws the map as read, one line per row, without a trailing newline.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow(m.height * (m.width + 1))
	for y, row := range m.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// RenderPath draws the map with the start as 'T', the goal as 'P' and every
// other cell of path as '·'. Points outside the grid are ignored.
// The result ends with a newline after the last row.
func (m *Map) RenderPath(path []Point) string {
	on := make(map[Point]struct{}, len(path))
	for _, p := range path {
		on[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow(m.height * (m.width*2 + 1))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Point{x, y}
			switch _, marked := on[p]; {
			case p == m.start:
				sb.WriteRune(Start)
			case p == m.goal:
				sb.WriteRune(Goal)
			case marked:
				sb.WriteRune(PathMark)
			default:
				sb.WriteRune(m.cells[y][x])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
