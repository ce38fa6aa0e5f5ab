package core

import (
	"fmt"
	"math/rand"
)

// Options configures a Session.
type Options struct {
	Mode          Mode
	Rules         Rules
	FitAttempts   int
	SolveAttempts int
}

// DefaultOptions returns guaranteed-fit mode with the default rules and budgets.
func DefaultOptions() Options {
	return Options{
		Mode:          ModeGuaranteedFit,
		Rules:         DefaultRules(),
		FitAttempts:   DefaultFitAttempts,
		SolveAttempts: DefaultSolveAttempts,
	}
}

// PlacementResult is the outcome of a placement request.
type PlacementResult struct {
	Accepted       bool
	Reason         error // PlacementError when not accepted
	ClearedRows    []int
	ClearedColumns []int
	ScoreDelta     int // Points from cleared lines; cleanup awards are separate
	HandRefilled   bool
	GameOver       bool
	Cleanup        []CellAward // Set on the placement that ended the game
}

// Preview describes what a placement would do without committing it.
type Preview struct {
	Valid             bool
	WouldClearRows    []int
	WouldClearColumns []int
}

// CellView is one board cell as seen by a renderer.
type CellView struct {
	Occupied  bool
	Index     int
	Color     Color
	Value     int
	Freshness float64
}

// BoardView is a read-only snapshot of the board, indexed [y][x].
type BoardView struct {
	Cells [Size][Size]CellView
}

// SlotView is one hand slot as seen by a renderer.
type SlotView struct {
	Filled    bool
	Shape     Shape
	Index     int
	Color     Color
	BaseValue int
}

// HandView is a read-only snapshot of the hand in slot order.
type HandView struct {
	Slots [HandSize]SlotView
}

// Session owns one game: board, hand, score and game-over state.
// It is not safe for concurrent use; callers serialize requests.
type Session struct {
	rng     *rand.Rand
	catalog *Catalog
	gen     *Generator
	scorer  *Scorer
	board   *Board

	hand       Hand
	detector   Detector
	mode       Mode
	handsDealt int
	lastReport GenReport
	cleanup    []CellAward

	solveAttempts int
	subscribers   []func(Event)
}

// NewSession creates a session and deals the first hand. The catalog, and with it
// the base point values, is drawn from rng once and kept across resets.
func NewSession(rng *rand.Rand, opts Options) *Session {
	if _, ok := ParseMode(string(opts.Mode)); !ok {
		opts.Mode = ModeGuaranteedFit
	}
	catalog := NewCatalog(rng)
	s := &Session{
		rng:           rng,
		catalog:       catalog,
		gen:           NewGenerator(catalog, rng, opts.FitAttempts),
		scorer:        NewScorer(opts.Rules),
		board:         NewBoard(),
		mode:          opts.Mode,
		solveAttempts: opts.SolveAttempts,
	}
	s.deal()
	return s
}

// Subscribe registers fn to receive every subsequent event.
func (s *Session) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) emit(ev Event) {
	for _, fn := range s.subscribers {
		fn(ev)
	}
}

// Catalog returns the session's shape catalog.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Mode returns the mode used for the next refill.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode changes the generation mode. The current hand is unaffected.
func (s *Session) SetMode(m Mode) {
	if _, ok := ParseMode(string(m)); ok {
		s.mode = m
	}
}

// Score returns the current score state.
func (s *Session) Score() ScoreState {
	return s.scorer.State()
}

// Rules returns the scoring rules.
func (s *Session) Rules() Rules {
	return s.scorer.Rules()
}

// State returns the game-over detector state.
func (s *Session) State() State {
	return s.detector.State()
}

// HandsDealt returns the number of hands dealt this game.
func (s *Session) HandsDealt() int {
	return s.handsDealt
}

// LastReport returns how the current hand was generated.
func (s *Session) LastReport() GenReport {
	return s.lastReport
}

// Cleanup returns the end-of-game awards, or nil while the game is active.
func (s *Session) Cleanup() []CellAward {
	if s.cleanup == nil {
		return nil
	}
	out := make([]CellAward, len(s.cleanup))
	copy(out, s.cleanup)
	return out
}

// Hand returns a copy of the current hand.
func (s *Session) Hand() Hand {
	return s.hand
}

// Grid returns a scratch copy of the board occupancy.
func (s *Session) Grid() Grid {
	return s.board.Grid()
}

// Blocks returns a copy of the placed blocks.
func (s *Session) Blocks() []PlacedBlock {
	return s.board.Blocks()
}

// Reset starts a new game: empty board, zeroed counters, fresh hand.
func (s *Session) Reset() {
	s.board.Reset()
	s.scorer.Reset()
	s.detector.Reset()
	s.handsDealt = 0
	s.cleanup = nil
	s.emit(ResetEvent{})
	s.deal()
}

// deal refills the hand and checks for game over.
func (s *Session) deal() {
	s.hand, s.lastReport = s.gen.Deal(s.mode, s.board.Grid())
	s.handsDealt++
	s.emit(HandDealtEvent{Generation: s.handsDealt, Hand: s.hand, Report: s.lastReport})
	s.evaluate()
}

// evaluate runs the detector and, on the transition to Over, awards cleanup.
func (s *Session) evaluate() bool {
	if s.detector.Over() {
		return false
	}
	if s.detector.Evaluate(&s.board.grid, s.hand) != StateOver {
		return false
	}
	s.cleanup = s.scorer.AwardCleanup(s.board)
	s.emit(GameOverEvent{Score: s.scorer.State(), Cleanup: s.Cleanup()})
	return true
}

func reject(code, format string, args ...any) PlacementResult {
	return PlacementResult{
		Reason: PlacementError{Code: code, Message: fmt.Sprintf(format, args...)},
	}
}

// RequestPlacement validates the piece in slot at pos against the current board
// and, if legal, commits it, clears full lines, refills an emptied hand and
// checks for game over. A rejected request changes nothing.
func (s *Session) RequestPlacement(slot int, pos Point) PlacementResult {
	if s.detector.Over() {
		res := reject(CodeGameOver, "game is over")
		res.GameOver = true
		return res
	}
	if slot < 0 || slot >= HandSize {
		return reject(CodeBadSlot, "slot %d out of range", slot)
	}
	piece, ok := s.hand.Get(slot)
	if !ok {
		return reject(CodeEmptySlot, "slot %d is empty", slot)
	}
	if err := CheckPlacement(&s.board.grid, piece.Shape, pos); err != nil {
		return PlacementResult{Reason: err}
	}

	s.hand.Take(slot)
	placed := s.scorer.NotePlaced()
	block := PlacedBlock{
		Shape:          piece.Shape,
		Origin:         pos,
		Color:          s.catalog.ColorFor(piece.Index),
		Index:          piece.Index,
		BaseValue:      s.catalog.BasePointValue(piece.Index),
		PlacedAt:       placed,
		HandGeneration: s.handsDealt,
		Freshness:      1,
	}
	s.board.Commit(block)
	s.emit(PlacedEvent{Slot: slot, Block: block})

	res := PlacementResult{Accepted: true}
	lines := FullLines(&s.board.grid)
	if !lines.Empty() {
		res.ClearedRows = lines.Rows
		res.ClearedColumns = lines.Columns
		res.ScoreDelta = s.scorer.ApplyClear(s.board, lines)
		s.emit(LinesClearedEvent{
			Rows:       lines.Rows,
			Columns:    lines.Columns,
			ScoreDelta: res.ScoreDelta,
			Level:      s.scorer.State().Level,
		})
	}

	if s.hand.IsEmpty() {
		s.deal()
		res.HandRefilled = true
	} else {
		s.evaluate()
	}
	if s.detector.Over() {
		res.GameOver = true
		res.Cleanup = s.Cleanup()
	}
	return res
}

// PreviewPlacement reports whether shape fits at pos and which lines it would
// complete. The board is not touched.
func (s *Session) PreviewPlacement(shape Shape, pos Point) Preview {
	lines, ok := LinesCompletedBy(&s.board.grid, shape, pos)
	if !ok {
		return Preview{}
	}
	return Preview{Valid: true, WouldClearRows: lines.Rows, WouldClearColumns: lines.Columns}
}

// PreviewSlot is PreviewPlacement for the piece in a hand slot.
func (s *Session) PreviewSlot(slot int, pos Point) Preview {
	piece, ok := s.hand.Get(slot)
	if !ok {
		return Preview{}
	}
	return s.PreviewPlacement(piece.Shape, pos)
}

// AutoPlay places the current hand using Solve, one validated request per move.
// It stops early on a rejection, a refill or game over. An empty plan does nothing.
func (s *Session) AutoPlay() []PlacementResult {
	if s.detector.Over() {
		return nil
	}
	plan := Solve(s.board.Grid(), s.hand, s.rng, s.solveAttempts)
	var results []PlacementResult
	for _, m := range plan.Moves {
		res := s.RequestPlacement(m.Slot, m.Pos)
		results = append(results, res)
		if !res.Accepted || res.HandRefilled || res.GameOver {
			break
		}
	}
	return results
}

// BoardSnapshot returns the board with each cell's color, current value and
// freshness.
func (s *Session) BoardSnapshot() BoardView {
	var v BoardView
	for _, blk := range s.board.blocks {
		value := s.scorer.BlockValue(blk)
		for _, p := range blk.Cells() {
			if !p.InBounds() {
				continue
			}
			v.Cells[p.Y][p.X] = CellView{
				Occupied:  true,
				Index:     blk.Index,
				Color:     blk.Color,
				Value:     value,
				Freshness: blk.Freshness,
			}
		}
	}
	return v
}

// HandSnapshot returns the hand slots in order.
func (s *Session) HandSnapshot() HandView {
	var v HandView
	for i, slot := range s.hand {
		if !slot.Filled {
			continue
		}
		v.Slots[i] = SlotView{
			Filled:    true,
			Shape:     slot.Piece.Shape,
			Index:     slot.Piece.Index,
			Color:     s.catalog.ColorFor(slot.Piece.Index),
			BaseValue: s.catalog.BasePointValue(slot.Piece.Index),
		}
	}
	return v
}
