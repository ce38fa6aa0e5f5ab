package core

import "fmt"

// PlacementError describes why a placement was rejected.
type PlacementError struct {
	Code    string
	Message string
}

func (e PlacementError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Placement rejection codes.
const (
	CodeOutOfBounds = "OUT_OF_BOUNDS"
	CodeOccupied    = "OCCUPIED"
	CodeEmptyShape  = "EMPTY_SHAPE"
	CodeEmptySlot   = "EMPTY_SLOT"
	CodeBadSlot     = "BAD_SLOT"
	CodeGameOver    = "GAME_OVER"
)

// CheckPlacement returns nil if shape fits at pos, otherwise a PlacementError.
// It never mutates the grid.
func CheckPlacement(g *Grid, s Shape, pos Point) error {
	if s.IsEmpty() {
		return PlacementError{Code: CodeEmptyShape, Message: "shape has no cells"}
	}
	for _, c := range s.cells {
		p := c.Add(pos)
		if !p.InBounds() {
			return PlacementError{
				Code:    CodeOutOfBounds,
				Message: fmt.Sprintf("cell %s is off the board", p),
			}
		}
		if g[p.Y][p.X] {
			return PlacementError{
				Code:    CodeOccupied,
				Message: fmt.Sprintf("cell %s is occupied", p),
			}
		}
	}
	return nil
}

// CanPlace returns true iff every cell of shape translated by pos is on the board
// and empty.
func CanPlace(g *Grid, s Shape, pos Point) bool {
	if s.IsEmpty() {
		return false
	}
	for _, c := range s.cells {
		if !g.IsEmpty(c.Add(pos)) {
			return false
		}
	}
	return true
}

// AllValidPositions scans every board origin in row-major order and returns those
// where the shape can be placed.
func AllValidPositions(g *Grid, s Shape) []Point {
	var out []Point
	for y := range Size {
		for x := range Size {
			pos := P(x, y)
			if CanPlace(g, s, pos) {
				out = append(out, pos)
			}
		}
	}
	return out
}

// HasValidPosition is AllValidPositions without building the slice.
func HasValidPosition(g *Grid, s Shape) bool {
	for y := range Size {
		for x := range Size {
			if CanPlace(g, s, P(x, y)) {
				return true
			}
		}
	}
	return false
}

// CanPlaceAny returns true iff some filled hand slot has at least one valid position.
func CanPlaceAny(g *Grid, hand Hand) bool {
	for _, slot := range hand {
		if slot.Filled && HasValidPosition(g, slot.Piece.Shape) {
			return true
		}
	}
	return false
}
