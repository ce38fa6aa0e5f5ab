package config

import "fmt"

// DifficultyPreset is a named bundle of overrides.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies cfg for the preset.
//
//	easy:   guaranteed-fit with a doubled attempt budget
//	normal: the loaded config unchanged
//	hard:   unconstrained hands and tiers twice as long
func ApplyPreset(cfg *OchoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Mode = ModeGuaranteedFit
		cfg.Generator.FitAttempts *= 2
	case DifficultyHard:
		cfg.Mode = ModeUnconstrained
		cfg.Scoring.ShapesPerTier *= 2
	}
}
