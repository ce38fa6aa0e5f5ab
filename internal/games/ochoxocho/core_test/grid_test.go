package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

func TestGridIsEmptyBounds(t *testing.T) {
	var g core.Grid
	testCases := []struct {
		p    core.Point
		want bool
	}{
		{core.P(0, 0), true},
		{core.P(7, 7), true},
		{core.P(-1, 0), false},
		{core.P(0, -1), false},
		{core.P(8, 0), false},
		{core.P(0, 8), false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, g.IsEmpty(tc.p), "at %v", tc.p)
	}
}

func TestGridPlaceRemove(t *testing.T) {
	var g core.Grid
	o := core.MustParseShape("##\n##")
	g.Place(o, core.P(3, 3))
	assert.Equal(t, 4, g.FilledCount())
	assert.True(t, g.Occupied(core.P(4, 4)))

	g.Remove(o, core.P(3, 3))
	assert.True(t, g.IsClear())
}

func TestFullRowsAndColumns(t *testing.T) {
	g := core.ParseGrid(`
########
#.......
#.......
########
#.......
#.......
#.......
#.......`)
	assert.Equal(t, []int{0, 3}, g.FullRows())
	assert.Equal(t, []int{0}, g.FullColumns())
	assert.Len(t, g.EmptyCells(), 64-8-8-6)
}

func TestCanPlace(t *testing.T) {
	g := core.ParseGrid(`
.#......
........`)
	domino := core.MustParseShape("##")

	assert.False(t, core.CanPlace(&g, domino, core.P(0, 0)), "overlaps (1,0)")
	assert.True(t, core.CanPlace(&g, domino, core.P(2, 0)))
	assert.True(t, core.CanPlace(&g, domino, core.P(6, 7)))
	assert.False(t, core.CanPlace(&g, domino, core.P(7, 7)), "runs off the right edge")
	assert.False(t, core.CanPlace(&g, domino, core.P(-1, 3)))
	assert.False(t, core.CanPlace(&g, core.Shape{}, core.P(3, 3)))
}

func TestCanPlaceDoesNotMutate(t *testing.T) {
	g := core.ParseGrid(`
##.##...
.#......
........
...###..`)
	before := g
	l := core.MustParseShape("#.\n#.\n##")
	first := core.CanPlace(&g, l, core.P(2, 0))
	for range 10 {
		assert.Equal(t, first, core.CanPlace(&g, l, core.P(2, 0)))
		core.AllValidPositions(&g, l)
	}
	assert.Equal(t, before, g)
}

func TestAllValidPositions(t *testing.T) {
	var g core.Grid
	testCases := []struct {
		name string
		pic  string
		want int
	}{
		{"dot", "#", 64},
		{"domino", "##", 56},
		{"O", "##\n##", 49},
		{"square3", "###\n###\n###", 36},
		{"I vertical", "#\n#\n#\n#", 40},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := core.AllValidPositions(&g, core.MustParseShape(tc.pic))
			assert.Len(t, got, tc.want)
		})
	}

	// Row-major order.
	got := core.AllValidPositions(&g, core.MustParseShape("#"))
	assert.Equal(t, core.P(0, 0), got[0])
	assert.Equal(t, core.P(1, 0), got[1])
	assert.Equal(t, core.P(7, 7), got[63])
}

func TestCheckPlacementCodes(t *testing.T) {
	g := core.ParseGrid("#.......")
	dot := core.MustParseShape("#")

	testCases := []struct {
		name  string
		shape core.Shape
		pos   core.Point
		code  string
	}{
		{"occupied", dot, core.P(0, 0), core.CodeOccupied},
		{"out of bounds", dot, core.P(8, 0), core.CodeOutOfBounds},
		{"empty shape", core.Shape{}, core.P(1, 1), core.CodeEmptyShape},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := core.CheckPlacement(&g, tc.shape, tc.pos)
			var perr core.PlacementError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.code, perr.Code)
		})
	}
	assert.NoError(t, core.CheckPlacement(&g, dot, core.P(1, 0)))
}

func TestCanPlaceAny(t *testing.T) {
	cat := newCatalog(1)
	var full core.Grid
	for y := range core.Size {
		for x := range core.Size {
			full[y][x] = true
		}
	}
	hand := core.NewHand(cat.Piece(0, 0))
	assert.False(t, core.CanPlaceAny(&full, hand))

	full[4][4] = false
	assert.True(t, core.CanPlaceAny(&full, hand))
	assert.False(t, core.CanPlaceAny(&full, core.NewHand(cat.Piece(1, 0))))
	assert.False(t, core.CanPlaceAny(&full, core.Hand{}))
}
