package core

// Event is emitted by a Session after each state change.
type Event interface {
	event()
}

// PlacedEvent is emitted when a piece is committed to the board.
type PlacedEvent struct {
	Slot  int
	Block PlacedBlock
}

func (PlacedEvent) event() {}

// LinesClearedEvent is emitted when a placement clears one or more lines.
type LinesClearedEvent struct {
	Rows       []int
	Columns    []int
	ScoreDelta int
	Level      int
}

func (LinesClearedEvent) event() {}

// HandDealtEvent is emitted whenever a new hand is dealt.
type HandDealtEvent struct {
	Generation int // Hands dealt this game, including this one
	Hand       Hand
	Report     GenReport
}

func (HandDealtEvent) event() {}

// GameOverEvent is emitted once when no piece in the hand fits.
type GameOverEvent struct {
	Score   ScoreState // Final score, cleanup awards included
	Cleanup []CellAward
}

func (GameOverEvent) event() {}

// ResetEvent is emitted when the session restarts.
type ResetEvent struct{}

func (ResetEvent) event() {}
