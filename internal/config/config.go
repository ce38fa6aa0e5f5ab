// Package config loads the YAML configuration for ochoXocho and applies
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// OchoConfig is the full game configuration.
type OchoConfig struct {
	Mode      string          `yaml:"mode"` // "guaranteed-fit" or "unconstrained"
	Scoring   ScoringConfig   `yaml:"scoring"`
	Generator GeneratorConfig `yaml:"generator"`
	Solver    SolverConfig    `yaml:"solver"`
	Sim       SimConfig       `yaml:"sim"`
}

// ScoringConfig holds the per-block value and level constants.
type ScoringConfig struct {
	ShapesPerTier        int     `yaml:"shapes_per_tier"`
	PointsPerTier        int     `yaml:"points_per_tier"`
	FreshnessDecrement   float64 `yaml:"freshness_decrement"`
	LevelProgressPerLine float64 `yaml:"level_progress_per_line"`
	LevelThreshold       float64 `yaml:"level_threshold"`
}

// GeneratorConfig bounds guaranteed-fit hand generation.
type GeneratorConfig struct {
	FitAttempts int `yaml:"fit_attempts"` // Candidate draws per slot before falling back
}

// SolverConfig bounds the placement-order search.
type SolverConfig struct {
	Attempts int `yaml:"attempts"` // Shuffled orders tried per hand
}

// SimConfig holds defaults for the headless simulator.
type SimConfig struct {
	Games    int `yaml:"games"`
	Workers  int `yaml:"workers"`
	MaxMoves int `yaml:"max_moves"` // Per-game placement cap
}

// Mode names accepted in the mode field.
const (
	ModeGuaranteedFit = "guaranteed-fit"
	ModeUnconstrained = "unconstrained"
)

// Validate reports every invalid field.
func (c OchoConfig) Validate() error {
	var errs []error
	if c.Mode != ModeGuaranteedFit && c.Mode != ModeUnconstrained {
		errs = append(errs, fmt.Errorf("mode: unknown value %q", c.Mode))
	}
	if c.Scoring.ShapesPerTier < 0 {
		errs = append(errs, errors.New("scoring.shapes_per_tier: must not be negative"))
	}
	if c.Scoring.FreshnessDecrement < 0 || c.Scoring.FreshnessDecrement > 1 {
		errs = append(errs, errors.New("scoring.freshness_decrement: must be in [0, 1]"))
	}
	if c.Scoring.LevelThreshold <= 0 {
		errs = append(errs, errors.New("scoring.level_threshold: must be positive"))
	}
	if c.Generator.FitAttempts <= 0 {
		errs = append(errs, errors.New("generator.fit_attempts: must be positive"))
	}
	if c.Solver.Attempts <= 0 {
		errs = append(errs, errors.New("solver.attempts: must be positive"))
	}
	if c.Sim.Workers < 0 || c.Sim.Games < 0 || c.Sim.MaxMoves < 0 {
		errs = append(errs, errors.New("sim: counts must not be negative"))
	}
	return errors.Join(errs...)
}
