package gridmap

// Reachable returns every passable cell reachable from from by 4-neighbor
// moves, in breadth-first discovery order, from included. A wall or
// out-of-bounds origin yields nil.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Map) Reachable(from Point) []Point {
	if !m.Passable(from) {
		return nil
	}
	seen := make([]bool, m.width*m.height)
	seen[m.index(from)] = true
	queue := []Point{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range neighborOffsets {
			v := u.Add(d)
			if !m.Passable(v) {
				continue
			}
			if vi := m.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// Connected reports whether b is reachable from a. It stops as soon as b is
// discovered.
func (m *Map) Connected(a, b Point) bool {
	if !m.Passable(a) || !m.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, m.width*m.height)
	seen[m.index(a)] = true
	queue := []Point{a}

	for qi := 0; qi < len(queue); qi++ {
		for _, d := range neighborOffsets {
			v := queue[qi].Add(d)
			if !m.Passable(v) {
				continue
			}
			if v == b {
				return true
			}
			if vi := m.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

// Solvable reports whether the goal is reachable from the start.
func (m *Map) Solvable() bool { return m.Connected(m.start, m.goal) }

// Components partitions the passable cells into 4-connected regions.
// Regions are ordered by their first cell in row-major order; cells inside a
// region are in breadth-first discovery order.
func (m *Map) Components() [][]Point {
	seen := make([]bool, m.width*m.height)
	var comps [][]Point
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Point{x, y}
			if !m.Passable(p) || seen[m.index(p)] {
				continue
			}
			comp := m.Reachable(p)
			for _, c := range comp {
				seen[m.index(c)] = true
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
