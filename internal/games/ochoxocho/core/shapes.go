package core

import (
	"fmt"
	"sort"
	"strings"
)

// Shape is a rigid polyomino: a set of cell offsets relative to an implicit origin.
// Shapes built by this package are normalized (min X and min Y are 0) and their
// cells are sorted row-major. Treat a Shape as immutable.
type Shape struct {
	cells []Point
}

// NewShape builds a normalized shape from the given offsets. Duplicate offsets are dropped.
func NewShape(cells ...Point) Shape {
	return Shape{cells: normalize(cells)}
}

// ParseShape builds a shape from a picture where '#' marks a filled cell.
// Rows are separated by newlines; leading and trailing blank lines are ignored.
func ParseShape(pic string) (Shape, error) {
	var cells []Point
	y := 0
	for _, line := range strings.Split(strings.Trim(pic, "\n"), "\n") {
		for x, ch := range line {
			switch ch {
			case '#':
				cells = append(cells, P(x, y))
			case '.', ' ':
			default:
				return Shape{}, fmt.Errorf("shape: unexpected character %q at (%d,%d)", ch, x, y)
			}
		}
		y++
	}
	if len(cells) == 0 {
		return Shape{}, fmt.Errorf("shape: no cells in picture")
	}
	return NewShape(cells...), nil
}

// MustParseShape is like ParseShape but panics on error.
func MustParseShape(pic string) Shape {
	s, err := ParseShape(pic)
	if err != nil {
		panic(err)
	}
	return s
}

// normalize translates cells so min X and min Y are 0, removes duplicates and
// sorts them row-major.
func normalize(cells []Point) []Point {
	if len(cells) == 0 {
		return nil
	}
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}

	seen := make(map[Point]bool, len(cells))
	out := make([]Point, 0, len(cells))
	for _, c := range cells {
		n := P(c.X-minX, c.Y-minY)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Cells returns a copy of the shape's offsets.
func (s Shape) Cells() []Point {
	out := make([]Point, len(s.cells))
	copy(out, s.cells)
	return out
}

// Len returns the number of cells.
func (s Shape) Len() int {
	return len(s.cells)
}

// IsEmpty returns true if the shape has no cells.
func (s Shape) IsEmpty() bool {
	return len(s.cells) == 0
}

// Bounds returns the width and height of the shape's bounding box.
func (s Shape) Bounds() (w, h int) {
	for _, c := range s.cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// Contains returns true if the offset is one of the shape's cells.
func (s Shape) Contains(p Point) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
	}
	return false
}

// At returns the absolute cells covered when the shape is placed at pos.
func (s Shape) At(pos Point) []Point {
	out := make([]Point, len(s.cells))
	for i, c := range s.cells {
		out[i] = c.Add(pos)
	}
	return out
}

// Equal reports whether two shapes cover the same normalized cell set.
// Rotation is not considered; see Catalog.CanonicalIndex for that.
func (s Shape) Equal(other Shape) bool {
	a, b := normalize(s.cells), normalize(other.cells)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// key packs the normalized cell set into a bitmask, bit y*Size+x.
// Returns false if the shape does not fit in a Size x Size box.
func (s Shape) key() (uint64, bool) {
	cells := normalize(s.cells)
	if len(cells) == 0 {
		return 0, false
	}
	var k uint64
	for _, c := range cells {
		if c.X >= Size || c.Y >= Size {
			return 0, false
		}
		k |= 1 << uint(c.Y*Size+c.X)
	}
	return k, true
}

// String draws the shape using '#' and '.'.
func (s Shape) String() string {
	w, h := s.Bounds()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if s.Contains(P(x, y)) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Rotate returns the shape turned clockwise by quarterTurns * 90 degrees and
// re-normalized so its minimum X and Y are 0. Any integer count is accepted.
// The rotation is exact integer geometry, so repeated rotation never drifts.
func Rotate(s Shape, quarterTurns int) Shape {
	turns := ((quarterTurns % 4) + 4) % 4
	cells := s.Cells()
	for t := 0; t < turns; t++ {
		for i, c := range cells {
			// (x, y) -> (-y, x) is a clockwise quarter turn in screen coordinates.
			cells[i] = P(-c.Y, c.X)
		}
	}
	return Shape{cells: normalize(cells)}
}

// Rotations returns the four rotations of a shape, index = quarter turns.
// Symmetric shapes produce repeated entries.
func Rotations(s Shape) [4]Shape {
	var out [4]Shape
	for i := range out {
		out[i] = Rotate(s, i)
	}
	return out
}
