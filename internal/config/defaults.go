package config

import (
	_ "embed"
)

//go:embed defaults/ochoxocho.yaml
var defaultOchoYAML []byte

// DefaultOchoConfig returns the hardcoded defaults, used when no YAML source
// can be parsed.
func DefaultOchoConfig() OchoConfig {
	return OchoConfig{
		Mode: ModeGuaranteedFit,
		Scoring: ScoringConfig{
			ShapesPerTier:        10,
			PointsPerTier:        1,
			FreshnessDecrement:   0.25,
			LevelProgressPerLine: 10,
			LevelThreshold:       100,
		},
		Generator: GeneratorConfig{
			FitAttempts: 20,
		},
		Solver: SolverConfig{
			Attempts: 10,
		},
		Sim: SimConfig{
			Games:    100,
			Workers:  4,
			MaxMoves: 1000,
		},
	}
}
