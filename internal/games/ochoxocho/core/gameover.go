package core

// State is the game-over detector state.
type State int

const (
	StateActive State = iota
	StateOver
)

func (s State) String() string {
	if s == StateOver {
		return "over"
	}
	return "active"
}

// Detector tracks whether the game is over. Over is terminal until Reset.
type Detector struct {
	state State
}

// State returns the current state.
func (d *Detector) State() State {
	return d.state
}

// Over returns true once the game has ended.
func (d *Detector) Over() bool {
	return d.state == StateOver
}

// Evaluate checks the hand against g after a refill or a placement. An empty hand
// never ends the game: a refill is pending.
func (d *Detector) Evaluate(g *Grid, hand Hand) State {
	if d.state == StateOver || hand.IsEmpty() {
		return d.state
	}
	if !CanPlaceAny(g, hand) {
		d.state = StateOver
	}
	return d.state
}

// Reset returns the detector to Active.
func (d *Detector) Reset() {
	d.state = StateActive
}
