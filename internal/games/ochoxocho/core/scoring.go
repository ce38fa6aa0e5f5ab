package core

// Rules holds the scoring constants.
type Rules struct {
	ShapesPerTier        int     // Shapes placed per tier step; <= 0 disables tiers
	PointsPerTier        int     // Points added to surviving blocks per tier step
	FreshnessDecrement   float64 // Freshness lost per clear survived
	LevelProgressPerLine float64 // Level progress gained per line cleared
	LevelThreshold       float64 // Progress needed for one level
}

// DefaultRules returns the standard scoring constants.
func DefaultRules() Rules {
	return Rules{
		ShapesPerTier:        10,
		PointsPerTier:        1,
		FreshnessDecrement:   0.25,
		LevelProgressPerLine: 10,
		LevelThreshold:       100,
	}
}

// TierIncrements returns how many tier boundaries have been crossed between a
// block's creation and now.
func (r Rules) TierIncrements(placedNow, placedAt int) int {
	if r.ShapesPerTier <= 0 || placedNow <= placedAt {
		return 0
	}
	return placedNow/r.ShapesPerTier - placedAt/r.ShapesPerTier
}

// Value returns the block's current point value given the total number of shapes
// placed so far in the game.
func (b PlacedBlock) Value(placedNow int, r Rules) int {
	return b.BaseValue + b.Bonus + r.TierIncrements(placedNow, b.PlacedAt)*r.PointsPerTier
}

// ScoreState is the score and level progress of a game.
type ScoreState struct {
	Score    int
	Level    int
	Progress float64 // Level progress in [0, LevelThreshold)
	Placed   int     // Shapes placed this game
	Lines    int     // Lines cleared this game
}

// CellAward is the points given for one remaining cell at game over.
type CellAward struct {
	Cell  Point
	Value int
}

// Scorer applies the scoring model to a board.
type Scorer struct {
	rules Rules
	state ScoreState
}

// NewScorer creates a scorer with zeroed counters.
func NewScorer(r Rules) *Scorer {
	s := &Scorer{rules: r}
	s.Reset()
	return s
}

// Reset zeroes score, progress and counters and returns to level 1.
func (s *Scorer) Reset() {
	s.state = ScoreState{Level: 1}
}

// Rules returns the scoring constants in use.
func (s *Scorer) Rules() Rules {
	return s.rules
}

// State returns a copy of the current score state.
func (s *Scorer) State() ScoreState {
	return s.state
}

// NotePlaced counts one more placed shape and returns the new total.
func (s *Scorer) NotePlaced() int {
	s.state.Placed++
	return s.state.Placed
}

// BlockValue returns the current point value of a block.
func (s *Scorer) BlockValue(b PlacedBlock) int {
	return b.Value(s.state.Placed, s.rules)
}

// ApplyClear clears lines on the board and returns the points awarded.
//
// The award is the sum of current values of every block with at least one cell
// in a cleared line. Those blocks are then trimmed to their surviving cells and
// dropped when nothing survives. Every surviving block, cleared or not, gains
// one bonus point per line and loses freshness.
func (s *Scorer) ApplyClear(b *Board, lines Lines) int {
	n := lines.Count()
	if n == 0 {
		return 0
	}

	delta := 0
	kept := make([]PlacedBlock, 0, len(b.blocks))
	for _, blk := range b.blocks {
		hit := false
		surviving := make([]Point, 0, blk.Shape.Len())
		for _, c := range blk.Shape.cells {
			if lines.Contains(c.Add(blk.Origin)) {
				hit = true
				continue
			}
			surviving = append(surviving, c)
		}
		if hit {
			delta += s.BlockValue(blk)
		}
		if len(surviving) == 0 {
			continue
		}
		blk.Shape = Shape{cells: surviving}
		kept = append(kept, blk)
	}

	Clear(&b.grid, lines)

	for i := range kept {
		kept[i].Bonus += n
		kept[i].Freshness = max(0, kept[i].Freshness-s.rules.FreshnessDecrement)
	}
	b.blocks = kept

	s.state.Score += delta
	s.state.Lines += n
	s.advanceLevel(n)
	return delta
}

// advanceLevel adds progress for n cleared lines, rolling over as many levels as
// the progress covers.
func (s *Scorer) advanceLevel(n int) {
	s.state.Progress += s.rules.LevelProgressPerLine * float64(n)
	if s.rules.LevelThreshold <= 0 {
		return
	}
	for s.state.Progress >= s.rules.LevelThreshold {
		s.state.Progress -= s.rules.LevelThreshold
		s.state.Level++
	}
}

// CleanupAwards returns, in row-major order, the current value of every occupied
// cell. It does not change the score.
func (s *Scorer) CleanupAwards(b *Board) []CellAward {
	var awards []CellAward
	for y := range Size {
		for x := range Size {
			p := P(x, y)
			if blk, ok := b.BlockAt(p); ok {
				awards = append(awards, CellAward{Cell: p, Value: s.BlockValue(blk)})
			}
		}
	}
	return awards
}

// AwardCleanup adds every remaining cell's value to the score one cell at a time
// and returns the awards in the order given.
func (s *Scorer) AwardCleanup(b *Board) []CellAward {
	awards := s.CleanupAwards(b)
	for _, a := range awards {
		s.state.Score += a.Value
	}
	return awards
}
