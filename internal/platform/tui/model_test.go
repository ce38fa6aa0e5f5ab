package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/draney98/ochoXocho/internal/core"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho"
	"github.com/draney98/ochoXocho/internal/storage"
)

// overGame is a game that is already over.
type overGame struct {
	best  int
	steps int
}

func (g *overGame) ID() string { return "over" }
func (g *overGame) Title() string { return "Over" }
func (g *overGame) Reset(core.RuntimeConfig) {}
func (g *overGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "over") }
func (g *overGame) SetHighScore(score int) { g.best = score }
func (g *overGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *overGame) State() core.GameState {
	return core.GameState{Score: 120, Level: 2, Lines: 9, Shapes: 30, GameOver: true}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &overGame{}
	m := NewModel(game, store, testRuntime())
	m.Init()

	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("over", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 120 || got.Level != 2 || got.Lines != 9 || got.Shapes != 30 {
		t.Errorf("saved record = %+v", got.ScoreRecord)
	}
	if game.best != 120 {
		t.Errorf("high score pushed to game = %d, want 120", game.best)
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := NewModel(&overGame{}, nil, testRuntime())
	m.Init()
	m = step(t, m, TickMsg(time.Now()))

	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("b after game over should go back to the menu")
	}
	if m.IsQuitting() {
		t.Error("back to menu should not quit")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&overGame{}, nil, testRuntime())
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelPersistsMode(t *testing.T) {
	store := openStore(t)
	key := ModeSettingKey(ochoxocho.IDGuaranteed)
	if err := store.SaveSetting(key, "unconstrained"); err != nil {
		t.Fatalf("SaveSetting: %v", err)
	}

	game := ochoxocho.New()
	m := NewModel(game, store, testRuntime())
	m.Init()
	if game.Mode() != "unconstrained" {
		t.Fatalf("saved mode not applied: %q", game.Mode())
	}

	m = step(t, m, runeKey('m'))
	m = step(t, m, TickMsg(time.Now()))
	if game.Mode() != "guaranteed-fit" {
		t.Fatalf("mode after toggle = %q", game.Mode())
	}

	saved, ok, err := store.Setting(key)
	if err != nil || !ok {
		t.Fatalf("Setting: %v, %v", ok, err)
	}
	if saved != "guaranteed-fit" {
		t.Errorf("persisted mode = %q", saved)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := ochoxocho.New()
	m := NewModel(game, nil, testRuntime())
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg(time.Now()))
	if game.State().Shapes != 1 {
		t.Fatalf("shapes = %d, want 1", game.State().Shapes)
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.State().Shapes != 1 {
		t.Error("resize restarted the game")
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("view missing HUD")
	}
}
