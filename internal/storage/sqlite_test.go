package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreRecord{GameID: "ochoxocho", Score: 42}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	high, err := store.HighScore("ochoxocho")
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v; expected 42", high, err)
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	records := []ScoreRecord{
		{GameID: "ochoxocho", Score: 100, Level: 2, Lines: 12, Shapes: 40},
		{GameID: "ochoxocho", Score: 50, Level: 1, Lines: 4, Shapes: 20},
		{GameID: "ochoxocho", Score: 200, Level: 3, Lines: 25, Shapes: 70},
		{GameID: "ochoxocho_classic", Score: 500, Level: 5, Lines: 44, Shapes: 120},
	}
	for _, r := range records {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("ochoxocho", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d].Score = %d, expected %d", i, s.Score, want[i])
		}
	}
	top := scores[0]
	if top.Level != 3 || top.Lines != 25 || top.Shapes != 70 {
		t.Errorf("top entry = %+v, expected level 3, 25 lines, 70 shapes", top.ScoreRecord)
	}
	if top.CreatedAt.IsZero() || time.Since(top.CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected a recent time", top.CreatedAt)
	}

	classic, err := store.TopScores("ochoxocho_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 || classic[0].Score != 500 {
		t.Errorf("classic scores = %+v", classic)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 20 {
		if _, err := store.SaveScore(ScoreRecord{GameID: "ochoxocho", Score: i * 10}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("ochoxocho", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("expected 190 first, got %d", scores[0].Score)
	}

	scores, err = store.TopScores("ochoxocho", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("limit 0 should default to 10, got %d", len(scores))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ochoxocho")
	if err != nil || high != 0 {
		t.Errorf("empty HighScore() = %d, %v; expected 0", high, err)
	}

	store.SaveScore(ScoreRecord{GameID: "ochoxocho", Score: 10})
	store.SaveScore(ScoreRecord{GameID: "ochoxocho", Score: 30})
	store.SaveScore(ScoreRecord{GameID: "ochoxocho_classic", Score: 99})

	high, _ = store.HighScore("ochoxocho")
	if high != 30 {
		t.Errorf("HighScore() = %d, expected 30", high)
	}

	if err := store.ClearScores("ochoxocho"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores("ochoxocho", 10)
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	high, _ = store.HighScore("ochoxocho_classic")
	if high != 99 {
		t.Error("ClearScores removed another variant's scores")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("ochoxocho")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore(ScoreRecord{GameID: "ochoxocho", Score: 10, Level: 1, Lines: 3})
	store.SaveScore(ScoreRecord{GameID: "ochoxocho", Score: 30, Level: 4, Lines: 9})

	stats, err = store.GetGameStats("ochoxocho")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, expected 4", stats.BestLevel)
	}
	if stats.TotalLines != 12 {
		t.Errorf("TotalLines = %d, expected 12", stats.TotalLines)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Setting("mode")
	if err != nil || ok {
		t.Fatalf("unset Setting() = ok %v, err %v", ok, err)
	}

	if err := store.SaveSetting("mode", "unconstrained"); err != nil {
		t.Fatalf("SaveSetting() failed: %v", err)
	}
	if err := store.SaveSetting("mode", "guaranteed-fit"); err != nil {
		t.Fatalf("SaveSetting() overwrite failed: %v", err)
	}

	value, ok, err := store.Setting("mode")
	if err != nil || !ok {
		t.Fatalf("Setting() = ok %v, err %v", ok, err)
	}
	if value != "guaranteed-fit" {
		t.Errorf("Setting() = %q, expected guaranteed-fit", value)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.ochoxocho/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".ochoxocho", "test.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite text", "2026-03-01 12:30:00", want},
		{"rfc3339", "2026-03-01T12:30:00Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}
