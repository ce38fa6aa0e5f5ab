package ochoxocho

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/draney98/ochoXocho/internal/config"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

// Package-level configuration shared by every game instance, set by the CLI
// before games are created.
var (
	gameConfig = config.DefaultOchoConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.OchoConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger used for generator and catalog diagnostics.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Options converts a loaded configuration into session options for mode.
func Options(cfg config.OchoConfig, mode core.Mode) core.Options {
	return core.Options{
		Mode: mode,
		Rules: core.Rules{
			ShapesPerTier:        cfg.Scoring.ShapesPerTier,
			PointsPerTier:        cfg.Scoring.PointsPerTier,
			FreshnessDecrement:   cfg.Scoring.FreshnessDecrement,
			LevelProgressPerLine: cfg.Scoring.LevelProgressPerLine,
			LevelThreshold:       cfg.Scoring.LevelThreshold,
		},
		FitAttempts:   cfg.Generator.FitAttempts,
		SolveAttempts: cfg.Solver.Attempts,
	}
}

// ConfiguredMode returns the mode named in cfg, defaulting to guaranteed-fit.
func ConfiguredMode(cfg config.OchoConfig) core.Mode {
	if m, ok := core.ParseMode(cfg.Mode); ok {
		return m
	}
	return core.ModeGuaranteedFit
}

// Watch logs generator fallbacks at debug level and catalog mismatches at
// error level, starting with the hand already dealt. A mismatch means a dealt
// piece does not map back to its own catalog entry: a rotation or catalog bug.
func Watch(s *core.Session, l *log.Logger) {
	checkDeal(s, l, core.HandDealtEvent{
		Generation: s.HandsDealt(),
		Hand:       s.Hand(),
		Report:     s.LastReport(),
	})
	s.Subscribe(func(ev core.Event) {
		if dealt, ok := ev.(core.HandDealtEvent); ok {
			checkDeal(s, l, dealt)
		}
	})
}

func checkDeal(s *core.Session, l *log.Logger, dealt core.HandDealtEvent) {
	if dealt.Report.FellBack {
		l.Debug("hand generation fell back",
			"hand", dealt.Generation,
			"fit_slots", dealt.Report.FitSlots)
	}
	for i, slot := range dealt.Hand {
		if !slot.Filled {
			continue
		}
		idx := s.Catalog().CanonicalIndex(slot.Piece.Shape)
		if idx == core.NotFound || idx != slot.Piece.Index {
			l.Error("catalog miss",
				"slot", i,
				"piece_index", slot.Piece.Index,
				"canonical_index", idx,
				"shape", slot.Piece.Shape.String())
		}
	}
}
