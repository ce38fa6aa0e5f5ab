// Package core provides the rules and simulation core of the ochoXocho block puzzle.
// This package is UI-agnostic and deterministic for a given RNG.
package core

import "fmt"

// Size is the board dimension. The board is always Size x Size.
const Size = 8

// HandSize is the number of slots in a dealt hand.
const HandSize = 3

// Point is a cell coordinate or a cell offset.
// X increases to the right, Y increases downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// InBounds returns true if the point lies on the board.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Mode selects the hand generation strategy.
type Mode string

const (
	// ModeGuaranteedFit forward-simulates placements to bias toward a solvable hand.
	ModeGuaranteedFit Mode = "guaranteed-fit"

	// ModeUnconstrained draws every shape independently.
	ModeUnconstrained Mode = "unconstrained"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeGuaranteedFit:
		return ModeGuaranteedFit, true
	case ModeUnconstrained:
		return ModeUnconstrained, true
	default:
		return "", false
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeGuaranteedFit {
		return ModeUnconstrained
	}
	return ModeGuaranteedFit
}
