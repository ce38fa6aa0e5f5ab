package core

import "strings"

// Grid is a Size x Size occupancy grid indexed [y][x].
// Grid is a value type: assigning it makes an independent scratch copy, which is
// how previews, the generator and the solver simulate moves without touching the
// real board.
type Grid [Size][Size]bool

// ParseGrid builds a grid from Size rows of '#' (filled) and '.' (empty).
// Missing rows and columns are left empty; extra ones are ignored.
func ParseGrid(pic string) Grid {
	var g Grid
	for y, line := range strings.Split(strings.Trim(pic, "\n"), "\n") {
		if y >= Size {
			break
		}
		for x, ch := range strings.TrimSpace(line) {
			if x >= Size {
				break
			}
			g[y][x] = ch == '#'
		}
	}
	return g
}

// IsEmpty returns true if the cell is on the board and unoccupied.
// Out-of-bounds cells count as not empty so placement fails safely.
func (g *Grid) IsEmpty(p Point) bool {
	if !p.InBounds() {
		return false
	}
	return !g[p.Y][p.X]
}

// Occupied returns true if the cell is on the board and occupied.
func (g *Grid) Occupied(p Point) bool {
	return p.InBounds() && g[p.Y][p.X]
}

// Place marks every in-bounds cell of shape at pos as occupied.
// It does not validate; callers check CanPlace first.
func (g *Grid) Place(s Shape, pos Point) {
	g.set(s, pos, true)
}

// Remove marks every in-bounds cell of shape at pos as empty, rolling back a Place.
func (g *Grid) Remove(s Shape, pos Point) {
	g.set(s, pos, false)
}

func (g *Grid) set(s Shape, pos Point, v bool) {
	for _, c := range s.cells {
		p := c.Add(pos)
		if p.InBounds() {
			g[p.Y][p.X] = v
		}
	}
}

// ClearRow empties row y.
func (g *Grid) ClearRow(y int) {
	if y < 0 || y >= Size {
		return
	}
	for x := range Size {
		g[y][x] = false
	}
}

// ClearColumn empties column x.
func (g *Grid) ClearColumn(x int) {
	if x < 0 || x >= Size {
		return
	}
	for y := range Size {
		g[y][x] = false
	}
}

// ClearCell empties a single cell.
func (g *Grid) ClearCell(p Point) {
	if p.InBounds() {
		g[p.Y][p.X] = false
	}
}

// FullRows returns the indices of rows whose every cell is occupied.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := range Size {
		full := true
		for x := range Size {
			if !g[y][x] {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// FullColumns returns the indices of columns whose every cell is occupied.
func (g *Grid) FullColumns() []int {
	var cols []int
	for x := range Size {
		full := true
		for y := range Size {
			if !g[y][x] {
				full = false
				break
			}
		}
		if full {
			cols = append(cols, x)
		}
	}
	return cols
}

// EmptyCells returns all unoccupied cells in row-major order.
func (g *Grid) EmptyCells() []Point {
	var cells []Point
	for y := range Size {
		for x := range Size {
			if !g[y][x] {
				cells = append(cells, P(x, y))
			}
		}
	}
	return cells
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for y := range Size {
		for x := range Size {
			if g[y][x] {
				n++
			}
		}
	}
	return n
}

// IsClear returns true if no cell is occupied.
func (g *Grid) IsClear() bool {
	return g.FilledCount() == 0
}

// Reset empties the grid.
func (g *Grid) Reset() {
	*g = Grid{}
}

// String draws the grid using '#' and '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for y := range Size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Size {
			if g[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
