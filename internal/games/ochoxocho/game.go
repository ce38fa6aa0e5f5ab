// Package ochoxocho adapts the block puzzle core to the platform game loop:
// cursor and slot selection, live placement preview, HUD and overlays.
package ochoxocho

import (
	"errors"
	"fmt"
	"math/rand"

	platformcore "github.com/draney98/ochoXocho/internal/core"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
	"github.com/draney98/ochoXocho/internal/registry"
)

// Variant IDs.
const (
	IDGuaranteed = "ochoxocho"
	IDClassic    = "ochoxocho_classic"
)

const (
	messageTicks = 60 // How long a status message stays up
	flashTicks   = 12 // How long cleared lines stay highlighted
)

// Game is one ochoXocho variant.
type Game struct {
	id        string
	title     string
	startMode core.Mode

	rng     *rand.Rand
	session *core.Session

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	tick      uint64
	paused    bool
	highScore int

	// Selection
	cursor core.Point
	slot   int

	// Feedback
	message      string
	messageLeft  int
	flash        core.Lines
	flashLeft    int
	cleanupTotal int
}

func init() {
	registry.Register(IDGuaranteed, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// New creates the standard variant, starting in the configured mode.
func New() *Game {
	return &Game{
		id:        IDGuaranteed,
		title:     "ochoXocho",
		startMode: ConfiguredMode(gameConfig),
	}
}

// NewClassic creates the variant that starts with unconstrained hands.
func NewClassic() *Game {
	return &Game{
		id:        IDClassic,
		title:     "ochoXocho (Classic)",
		startMode: core.ModeUnconstrained,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Mode returns the generation mode used for the next hand.
func (g *Game) Mode() string {
	if g.session == nil {
		return string(g.startMode)
	}
	return string(g.session.Mode())
}

// SetMode changes the generation mode. Before the first Reset it sets the
// starting mode. It returns false for an unknown mode name.
func (g *Game) SetMode(name string) bool {
	m, ok := core.ParseMode(name)
	if !ok {
		return false
	}
	g.startMode = m
	if g.session != nil {
		g.session.SetMode(m)
	}
	return true
}

// SetHighScore sets the best saved score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Session exposes the underlying core session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Reset starts a new game with a fresh catalog drawn from the seed.
// The current generation mode carries over.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if g.session != nil {
		g.startMode = g.session.Mode()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = core.NewSession(g.rng, Options(gameConfig, g.startMode))
	g.session.Subscribe(g.onEvent)
	Watch(g.session, logger)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.resetSelection()
	g.checkScreenSize()
}

func (g *Game) resetSelection() {
	g.cursor = core.P(0, 0)
	g.slot = 0
	g.message = ""
	g.messageLeft = 0
	g.flash = core.Lines{}
	g.flashLeft = 0
	g.cleanupTotal = 0
	g.selectFirstFilled()
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

func (g *Game) onEvent(ev core.Event) {
	switch ev := ev.(type) {
	case core.LinesClearedEvent:
		g.flash = core.Lines{Rows: ev.Rows, Columns: ev.Columns}
		g.flashLeft = flashTicks
		g.say(fmt.Sprintf("+%d  (%d lines)", ev.ScoreDelta, len(ev.Rows)+len(ev.Columns)))
	case core.GameOverEvent:
		g.cleanupTotal = 0
		for _, a := range ev.Cleanup {
			g.cleanupTotal += a.Value
		}
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

// Step applies one tick of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.messageLeft > 0 {
		g.messageLeft--
	}
	if g.flashLeft > 0 {
		g.flashLeft--
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.State() == core.StateOver {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.session.Reset()
		g.resetSelection()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionToggleMode) {
		g.session.SetMode(g.session.Mode().Toggle())
		g.say("next hand: " + string(g.session.Mode()))
	}

	switch {
	case in.Has(platformcore.ActionSlot1):
		g.selectSlot(0)
	case in.Has(platformcore.ActionSlot2):
		g.selectSlot(1)
	case in.Has(platformcore.ActionSlot3):
		g.selectSlot(2)
	case in.Has(platformcore.ActionNextSlot):
		g.nextSlot()
	}

	switch {
	case in.Has(platformcore.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(platformcore.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(platformcore.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(platformcore.ActionRight):
		g.moveCursor(1, 0)
	}

	switch {
	case in.Has(platformcore.ActionConfirm):
		g.place()
	case in.Has(platformcore.ActionAuto):
		g.autoPlace()
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) selectSlot(i int) {
	if _, ok := g.session.Hand().Get(i); !ok {
		return
	}
	g.slot = i
	g.clampCursor()
}

// nextSlot cycles to the next filled slot after the current one.
func (g *Game) nextSlot() {
	hand := g.session.Hand()
	for step := 1; step <= core.HandSize; step++ {
		i := platformcore.Wrap(g.slot+step, core.HandSize)
		if hand[i].Filled {
			g.slot = i
			g.clampCursor()
			return
		}
	}
}

func (g *Game) selectFirstFilled() {
	if g.session == nil {
		return
	}
	if filled := g.session.Hand().FilledSlots(); len(filled) > 0 {
		g.slot = filled[0]
	}
	g.clampCursor()
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor = core.P(g.cursor.X+dx, g.cursor.Y+dy)
	g.clampCursor()
}

// clampCursor keeps the selected piece's bounding box on the board.
func (g *Game) clampCursor() {
	w, h := 1, 1
	if piece, ok := g.session.Hand().Get(g.slot); ok {
		w, h = piece.Shape.Bounds()
	}
	g.cursor = core.P(
		platformcore.Clamp(g.cursor.X, 0, core.Size-w),
		platformcore.Clamp(g.cursor.Y, 0, core.Size-h),
	)
}

func (g *Game) place() {
	res := g.session.RequestPlacement(g.slot, g.cursor)
	if !res.Accepted {
		var perr core.PlacementError
		if errors.As(res.Reason, &perr) {
			g.say(perr.Message)
		}
		return
	}
	g.afterPlacement(res)
}

func (g *Game) autoPlace() {
	results := g.session.AutoPlay()
	if len(results) == 0 {
		g.say("no placement found")
		return
	}
	g.afterPlacement(results[len(results)-1])
}

func (g *Game) afterPlacement(res core.PlacementResult) {
	if res.HandRefilled {
		g.selectFirstFilled()
		return
	}
	if !g.session.Hand().IsEmpty() {
		g.nextSlot()
	}
}

// State returns the platform-facing game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	score := g.session.Score()
	return platformcore.GameState{
		Score:    score.Score,
		Level:    score.Level,
		Lines:    score.Lines,
		Shapes:   score.Placed,
		GameOver: g.session.State() == core.StateOver,
		Paused:   g.paused || g.tooSmall,
	}
}
