// SPDX-License-Identifier: MIT
// Package: gridwalk/mapgen
//
// generate.go - random solvable map generation.
//
// Model (per attempt):
//   - Start from an open width×height grid surrounded by a wall border.
//   - Turn every interior cell into a wall independently with probability p.
//   - Collect the remaining free cells; fewer than two ⇒ retry.
//   - Draw the goal, then (without replacement) the start, uniformly.
//   - Keep the map only if the start reaches the goal by 4-neighbor moves.
//
// Contract:
//   - width, height ≥ MinSide (else ErrTooSmall).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Up to maxTries attempts, then ErrGenerationFailed. A disconnected map
//     is never returned.
//
// Complexity:
//   - Time: O(maxTries × W × H).
//   - Space: O(W × H).
//
// Determinism:
//   - Stable trial order: rows ascending, columns ascending, then goal, then
//     start. Same seed ⇒ same map.

package mapgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridwalk/gridmap"
)

// MinSide is the smallest accepted width or height.
const MinSide = 3

// Generate returns a random map with a wall border, interior walls drawn
// with probability wallProb, and distinct, connected start and goal cells.
func Generate(width, height int, wallProb float64, opts ...Option) (*gridmap.Map, error) {
	// 1) Validate parameters.
	if width < MinSide || height < MinSide {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, width, height, MinSide, MinSide)
	}
	if math.IsNaN(wallProb) || wallProb < 0 || wallProb > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, wallProb)
	}
	cfg := newConfig(opts...)

	// 2) Attempt until a solvable layout appears or the budget runs out.
	for try := 0; try < cfg.maxTries; try++ {
		if m := attempt(cfg, width, height, wallProb); m != nil {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: %dx%d with wall probability %v after %d tries",
		ErrGenerationFailed, width, height, wallProb, cfg.maxTries)
}

// attempt draws one layout and returns it when valid, nil otherwise.
func attempt(cfg *config, width, height int, wallProb float64) *gridmap.Map {
	rows := make([][]rune, height)
	free := make([]gridmap.Point, 0, (width-2)*(height-2))
	for y := 0; y < height; y++ {
		rows[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			switch {
			case y == 0 || y == height-1 || x == 0 || x == width-1:
				rows[y][x] = gridmap.Wall
			case cfg.rng.Float64() < wallProb:
				rows[y][x] = gridmap.Wall
			default:
				rows[y][x] = gridmap.Open
				free = append(free, gridmap.Point{X: x, Y: y})
			}
		}
	}
	if len(free) < 2 {
		return nil // too many walls
	}

	// goal first, then start from the remaining cells
	gi := cfg.rng.Intn(len(free))
	goal := free[gi]
	free[gi] = free[len(free)-1]
	free = free[:len(free)-1]
	start := free[cfg.rng.Intn(len(free))]

	rows[goal.Y][goal.X] = gridmap.Goal
	rows[start.Y][start.X] = gridmap.Start
	m, err := gridmap.New(rows)
	if err != nil || !m.Solvable() {
		return nil
	}
	return m
}
