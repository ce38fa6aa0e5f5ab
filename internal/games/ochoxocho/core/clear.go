package core

// Lines identifies full rows and columns.
type Lines struct {
	Rows    []int
	Columns []int
}

// Count returns the number of lines.
func (l Lines) Count() int {
	return len(l.Rows) + len(l.Columns)
}

// Empty returns true if no line is listed.
func (l Lines) Empty() bool {
	return l.Count() == 0
}

// Contains returns true if p lies in one of the lines.
func (l Lines) Contains(p Point) bool {
	for _, y := range l.Rows {
		if p.Y == y {
			return true
		}
	}
	for _, x := range l.Columns {
		if p.X == x {
			return true
		}
	}
	return false
}

// FullLines returns every full row and column of the grid.
func FullLines(g *Grid) Lines {
	return Lines{Rows: g.FullRows(), Columns: g.FullColumns()}
}

// Clear empties the given rows and columns in place. Cells at a row/column
// intersection are cleared once; clearing an empty cell is a no-op.
func Clear(g *Grid, lines Lines) {
	for _, y := range lines.Rows {
		g.ClearRow(y)
	}
	for _, x := range lines.Columns {
		g.ClearColumn(x)
	}
}

// ClearFull detects and clears every full line, returning what was cleared.
// Both rows and columns are detected before anything is cleared.
func ClearFull(g *Grid) Lines {
	lines := FullLines(g)
	Clear(g, lines)
	return lines
}

// LinesCompletedBy simulates placing shape at pos on a throwaway copy of g and
// returns the lines that would be full afterwards. It returns false without
// simulating when the placement is illegal. g is never mutated.
func LinesCompletedBy(g *Grid, s Shape, pos Point) (Lines, bool) {
	if !CanPlace(g, s, pos) {
		return Lines{}, false
	}
	scratch := *g
	scratch.Place(s, pos)
	return FullLines(&scratch), true
}
