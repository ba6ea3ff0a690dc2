// Package config provides YAML-based configuration loading and
// difficulty presets for Garden Match.
package config

import (
	"fmt"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

// GardenConfig contains all tunable settings for the game.
type GardenConfig struct {
	Scoring      ScoringConfig      `yaml:"scoring"`
	Generator    GeneratorConfig    `yaml:"generator"`
	Presentation PresentationConfig `yaml:"presentation"`
	Progress     ProgressConfig     `yaml:"progress"`
	DailyRewards []core.DailyReward `yaml:"daily_rewards"`
	LevelsPath   string             `yaml:"levels_path"` // Optional level pack file or directory
	Difficulty   DifficultyPreset   `yaml:"difficulty"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	BasePoints    int `yaml:"base_points"`     // Per matched cell, before the combo multiplier
	BombCellBonus int `yaml:"bomb_cell_bonus"` // Per cell cleared by a bomb
	HammerBonus   int `yaml:"hammer_bonus"`
}

// GeneratorConfig defines board generation limits.
type GeneratorConfig struct {
	MaxRedraws int `yaml:"max_redraws"`
}

// PresentationConfig defines front end pacing.
type PresentationConfig struct {
	CascadeDelayTicks int `yaml:"cascade_delay_ticks"` // Ticks between cascade passes
	HintAfterTicks    int `yaml:"hint_after_ticks"`    // Idle ticks before a move hint, 0 disables
}

// ProgressConfig is the record given to a brand new player.
type ProgressConfig struct {
	Lives          int            `yaml:"lives"`
	MaxLives       int            `yaml:"max_lives"`
	Currency       int            `yaml:"currency"`
	UnlockedLevels int            `yaml:"unlocked_levels"`
	Boosters       core.Inventory `yaml:"boosters"`
}

// Rules converts the scoring and generator sections into engine rules.
// Zero values fall back to the defaults.
func (c GardenConfig) Rules() core.Rules {
	r := core.DefaultRules()
	if c.Scoring.BasePoints > 0 {
		r.BasePoints = c.Scoring.BasePoints
	}
	if c.Scoring.BombCellBonus > 0 {
		r.BombCellBonus = c.Scoring.BombCellBonus
	}
	if c.Scoring.HammerBonus > 0 {
		r.HammerBonus = c.Scoring.HammerBonus
	}
	if c.Generator.MaxRedraws > 0 {
		r.MaxRedraws = c.Generator.MaxRedraws
	}
	return r
}

// StartingProgress returns the progress record for a new player.
func (c GardenConfig) StartingProgress() core.Progress {
	p := core.DefaultProgress()
	if c.Progress.Lives > 0 {
		p.Lives = c.Progress.Lives
	}
	if c.Progress.MaxLives > 0 {
		p.MaxLives = c.Progress.MaxLives
	}
	if p.Lives > p.MaxLives {
		p.MaxLives = p.Lives
	}
	if c.Progress.Currency > 0 {
		p.Currency = c.Progress.Currency
	}
	if c.Progress.UnlockedLevels > 0 {
		p.UnlockedLevels = c.Progress.UnlockedLevels
	}
	if !c.Progress.Boosters.IsZero() {
		p.Boosters = c.Progress.Boosters
	}
	return p
}

// Rewards returns the daily reward cycle, falling back to the default.
func (c GardenConfig) Rewards() []core.DailyReward {
	if len(c.DailyRewards) == 0 {
		return core.DefaultDailyRewards()
	}
	return c.DailyRewards
}

// CascadeDelay returns the tick gap between cascade passes, at least 1.
func (c GardenConfig) CascadeDelay() int {
	if c.Presentation.CascadeDelayTicks < 1 {
		return 1
	}
	return c.Presentation.CascadeDelayTicks
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables special gem spawns.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
