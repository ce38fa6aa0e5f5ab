package core_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

// replay applies a plan to g, failing the test on any illegal move.
func replay(t *testing.T, g core.Grid, plan core.Plan) core.Grid {
	t.Helper()
	for i, m := range plan.Moves {
		require.True(t, core.CanPlace(&g, m.Piece.Shape, m.Pos), "move %d at %v", i, m.Pos)
		g.Place(m.Piece.Shape, m.Pos)
		core.ClearFull(&g)
	}
	return g
}

func TestSolveEmptyHand(t *testing.T) {
	plan := core.Solve(core.Grid{}, core.Hand{}, rand.New(rand.NewSource(1)), 0)
	assert.True(t, plan.Complete)
	assert.True(t, plan.Empty())
}

func TestSolveEmptyBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cat := core.NewCatalog(rng)
	gen := core.NewGenerator(cat, rng, 0)
	for range 50 {
		hand := gen.Unconstrained()
		plan := core.Solve(core.Grid{}, hand, rng, 0)
		require.True(t, plan.Complete)
		require.Len(t, plan.Moves, core.HandSize)

		used := map[int]bool{}
		for _, m := range plan.Moves {
			assert.False(t, used[m.Slot], "slot %d used twice", m.Slot)
			used[m.Slot] = true
		}
		replay(t, core.Grid{}, plan)
	}
}

func TestSolvePrefersClearingPosition(t *testing.T) {
	cat := newCatalog(1)
	g := core.ParseGrid("#######.")
	hand := core.NewHand(cat.Piece(0, 0))

	plan := core.Solve(g, hand, rand.New(rand.NewSource(1)), 0)
	require.True(t, plan.Complete)
	require.Len(t, plan.Moves, 1)
	assert.Equal(t, core.P(7, 0), plan.Moves[0].Pos)
}

func TestSolveFindsWorkingOrder(t *testing.T) {
	// The domino only fits after the dot fills the hole and clears the board.
	cat := newCatalog(1)
	g := fullGrid()
	g[0][0] = false
	hand := core.NewHand(cat.Piece(1, 0), cat.Piece(0, 0), cat.Piece(1, 1))

	plan := core.Solve(g, hand, rand.New(rand.NewSource(2)), 100)
	require.True(t, plan.Complete)
	require.Len(t, plan.Moves, 3)
	assert.Equal(t, 1, plan.Moves[0].Slot)
	assert.Equal(t, core.P(0, 0), plan.Moves[0].Pos)
	replay(t, g, plan)
}

func TestSolveNoPlacement(t *testing.T) {
	cat := newCatalog(1)
	g := fullGrid()
	g[0][0] = false
	hand := core.NewHand(cat.Piece(1, 0), cat.Piece(2, 0), cat.Piece(4, 0))

	plan := core.Solve(g, hand, rand.New(rand.NewSource(1)), 0)
	assert.False(t, plan.Complete)
	assert.True(t, plan.Empty())
}

func TestSolvePartialFallback(t *testing.T) {
	// Four isolated holes, two per touched row and column, so a dot never
	// completes a line and the I pieces never fit.
	cat := newCatalog(1)
	g := fullGrid()
	for _, p := range []core.Point{core.P(0, 0), core.P(2, 0), core.P(0, 2), core.P(2, 2)} {
		g[p.Y][p.X] = false
	}
	hand := core.NewHand(cat.Piece(0, 0), cat.Piece(4, 0), cat.Piece(4, 1))

	plan := core.Solve(g, hand, rand.New(rand.NewSource(1)), 0)
	assert.False(t, plan.Complete)
	require.Len(t, plan.Moves, 1)
	assert.Equal(t, 0, plan.Moves[0].Slot)

	after := replay(t, g, plan)
	if diff := cmp.Diff(3, len(after.EmptyCells())); diff != "" {
		t.Errorf("empty cells mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	cat := newCatalog(1)
	g := core.ParseGrid("######..")
	before := g
	hand := core.NewHand(cat.Piece(1, 0), cat.Piece(5, 0))
	core.Solve(g, hand, rand.New(rand.NewSource(1)), 0)
	if diff := cmp.Diff(before, g); diff != "" {
		t.Errorf("grid mutated (-want +got):\n%s", diff)
	}
}
