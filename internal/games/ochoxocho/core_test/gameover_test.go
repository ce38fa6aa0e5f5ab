package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

// fitsAnywhere is a brute-force placement check independent of the validator.
func fitsAnywhere(g core.Grid, s core.Shape) bool {
	cells := s.Cells()
	for oy := -core.Size; oy < core.Size; oy++ {
		for ox := -core.Size; ox < core.Size; ox++ {
			ok := true
			for _, c := range cells {
				x, y := c.X+ox, c.Y+oy
				if x < 0 || y < 0 || x >= core.Size || y >= core.Size || g[y][x] {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
	}
	return false
}

func TestDetectorExhaustiveWindow(t *testing.T) {
	// Every pattern of holes in the top-left 3x3 window, rest of the board
	// filled, checked against every catalog shape in every rotation.
	cat := newCatalog(1)
	for mask := 0; mask < 1<<9; mask++ {
		g := fullGrid()
		for bit := range 9 {
			if mask&(1<<bit) != 0 {
				g[bit/3][bit%3] = false
			}
		}
		for _, e := range cat.Entries() {
			for turns := range 4 {
				piece := cat.Piece(e.Index, turns)
				var d core.Detector
				got := d.Evaluate(&g, core.NewHand(piece))

				want := core.StateOver
				if fitsAnywhere(g, piece.Shape) {
					want = core.StateActive
				}
				if got != want {
					t.Fatalf("mask %09b shape %s turns %d: got %v, want %v", mask, e.Name, turns, got, want)
				}
			}
		}
	}
}

func TestDetectorEmptyHandIsActive(t *testing.T) {
	g := fullGrid()
	var d core.Detector
	assert.Equal(t, core.StateActive, d.Evaluate(&g, core.Hand{}))
}

func TestDetectorOverIsSticky(t *testing.T) {
	cat := newCatalog(1)
	g := fullGrid()
	var d core.Detector
	hand := core.NewHand(cat.Piece(0, 0))
	assert.Equal(t, core.StateOver, d.Evaluate(&g, hand))

	var empty core.Grid
	assert.Equal(t, core.StateOver, d.Evaluate(&empty, hand))
	assert.True(t, d.Over())

	d.Reset()
	assert.Equal(t, core.StateActive, d.Evaluate(&empty, hand))
}

func TestDetectorMixedHand(t *testing.T) {
	// Only the dot fits; one placeable slot keeps the game going.
	cat := newCatalog(1)
	g := fullGrid()
	g[6][6] = false
	var d core.Detector
	hand := core.NewHand(cat.Piece(11, 0), cat.Piece(0, 0))
	assert.Equal(t, core.StateActive, d.Evaluate(&g, hand))
}
