package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

func block(pic string, origin core.Point, base, placedAt int) core.PlacedBlock {
	return core.PlacedBlock{
		Shape:     core.MustParseShape(pic),
		Origin:    origin,
		BaseValue: base,
		PlacedAt:  placedAt,
		Freshness: 1,
	}
}

func TestTierIncrements(t *testing.T) {
	r := core.DefaultRules()
	testCases := []struct {
		placedNow, placedAt, want int
	}{
		{10, 9, 1},
		{19, 10, 0},
		{25, 1, 2},
		{5, 5, 0},
		{30, 30, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, r.TierIncrements(tc.placedNow, tc.placedAt),
			"now=%d at=%d", tc.placedNow, tc.placedAt)
	}

	r.ShapesPerTier = 0
	assert.Equal(t, 0, r.TierIncrements(100, 1))
}

func TestBlockValue(t *testing.T) {
	r := core.DefaultRules()
	r.PointsPerTier = 3
	b := block("#", core.P(0, 0), 4, 9)
	b.Bonus = 2
	assert.Equal(t, 6, b.Value(9, r))
	assert.Equal(t, 9, b.Value(10, r))
	assert.Equal(t, 12, b.Value(20, r))
}

// row 0 is completed by an I, a tri-line and a vertical domino; an O sits below.
func scoringBoard() (*core.Board, *core.Scorer) {
	b := core.NewBoard()
	s := core.NewScorer(core.DefaultRules())
	blocks := []core.PlacedBlock{
		block("####", core.P(0, 0), 3, 1),
		block("###", core.P(4, 0), 5, 2),
		block("#\n#", core.P(7, 0), 2, 3),
		block("##\n##", core.P(0, 1), 4, 4),
	}
	for _, blk := range blocks {
		s.NotePlaced()
		b.Commit(blk)
	}
	return b, s
}

func TestApplyClearPartial(t *testing.T) {
	b, s := scoringBoard()
	g := b.Grid()
	lines := core.FullLines(&g)
	require.Equal(t, []int{0}, lines.Rows)
	require.Empty(t, lines.Columns)

	delta := s.ApplyClear(b, lines)
	assert.Equal(t, 3+5+2, delta)

	blocks := b.Blocks()
	require.Len(t, blocks, 2, "I and tri-line are destroyed")

	domino, ok := b.BlockAt(core.P(7, 1))
	require.True(t, ok)
	assert.Equal(t, []core.Point{core.P(7, 1)}, domino.Cells())
	assert.Equal(t, 1, domino.Bonus)
	assert.InDelta(t, 0.75, domino.Freshness, 1e-9)

	o, ok := b.BlockAt(core.P(0, 1))
	require.True(t, ok)
	assert.Equal(t, 1, o.Bonus, "untouched survivors also gain the bonus")
	assert.Len(t, o.Cells(), 4)

	// Occupancy matches the surviving blocks.
	cells := 0
	for _, blk := range blocks {
		cells += len(blk.Cells())
	}
	g = b.Grid()
	assert.Equal(t, cells, g.FilledCount())
	assert.False(t, g.Occupied(core.P(7, 0)))

	st := s.State()
	assert.Equal(t, 10, st.Score)
	assert.Equal(t, 1, st.Lines)
	assert.Equal(t, 1, st.Level)
	assert.InDelta(t, 10.0, st.Progress, 1e-9)
}

func TestApplyClearNoLines(t *testing.T) {
	b, s := scoringBoard()
	assert.Equal(t, 0, s.ApplyClear(b, core.Lines{}))
	assert.Len(t, b.Blocks(), 4)
	assert.Equal(t, 0, s.State().Score)
}

func TestFreshnessFloorsAtZero(t *testing.T) {
	b := core.NewBoard()
	s := core.NewScorer(core.DefaultRules())
	b.Commit(block("#", core.P(3, 3), 1, 1))
	for range 6 {
		s.ApplyClear(b, core.Lines{Rows: []int{0}})
	}
	blk, ok := b.BlockAt(core.P(3, 3))
	require.True(t, ok)
	assert.Equal(t, 0.0, blk.Freshness)
	assert.Equal(t, 6, blk.Bonus)
}

func TestLevelRollover(t *testing.T) {
	r := core.DefaultRules()
	r.LevelProgressPerLine = 60
	s := core.NewScorer(r)
	s.ApplyClear(core.NewBoard(), core.Lines{Rows: []int{0, 1}, Columns: []int{2, 3}})

	st := s.State()
	assert.Equal(t, 3, st.Level)
	assert.InDelta(t, 40.0, st.Progress, 1e-9)
	assert.Equal(t, 4, st.Lines)
}

func TestCleanupAwards(t *testing.T) {
	b := core.NewBoard()
	s := core.NewScorer(core.DefaultRules())
	b.Commit(block("##\n##", core.P(0, 1), 4, 1))
	dot := block("#", core.P(5, 0), 0, 2)
	dot.Bonus = 2
	b.Commit(dot)

	want := []core.CellAward{
		{Cell: core.P(5, 0), Value: 2},
		{Cell: core.P(0, 1), Value: 4},
		{Cell: core.P(1, 1), Value: 4},
		{Cell: core.P(0, 2), Value: 4},
		{Cell: core.P(1, 2), Value: 4},
	}
	assert.Equal(t, want, s.CleanupAwards(b))
	assert.Equal(t, 0, s.State().Score)

	assert.Equal(t, want, s.AwardCleanup(b))
	assert.Equal(t, 18, s.State().Score)
}
