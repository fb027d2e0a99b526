// SPDX-License-Identifier: MIT
// Package: gridwalk/mapgen
//
// errors.go - sentinel errors for the mapgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (sizes, probabilities, attempt counts) is attached with %w.
//   • Generate never panics; validation panics are confined to option
//     constructors (WithX...).

package mapgen

import "errors"

// ErrTooSmall indicates a width or height below MinSide: a map needs a wall
// border plus at least one interior row and column.
var ErrTooSmall = errors.New("mapgen: map side too small")

// ErrInvalidProbability indicates a wall probability outside [0,1] (or NaN).
var ErrInvalidProbability = errors.New("mapgen: wall probability out of range")

// ErrGenerationFailed indicates that no attempt within the try budget produced
// a map with two free cells connected by a walkable route.
var ErrGenerationFailed = errors.New("mapgen: could not generate a solvable map")
