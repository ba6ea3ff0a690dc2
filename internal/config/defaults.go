package config

import (
	_ "embed"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the hardcoded configuration.
// Used only if the embedded YAML cannot be parsed.
func DefaultGardenConfig() GardenConfig {
	p := core.DefaultProgress()
	rules := core.DefaultRules()
	return GardenConfig{
		Scoring: ScoringConfig{
			BasePoints:    rules.BasePoints,
			BombCellBonus: rules.BombCellBonus,
			HammerBonus:   rules.HammerBonus,
		},
		Generator: GeneratorConfig{
			MaxRedraws: rules.MaxRedraws,
		},
		Presentation: PresentationConfig{
			CascadeDelayTicks: 12,
			HintAfterTicks:    600,
		},
		Progress: ProgressConfig{
			Lives:          p.Lives,
			MaxLives:       p.MaxLives,
			Currency:       p.Currency,
			UnlockedLevels: p.UnlockedLevels,
			Boosters:       p.Boosters,
		},
		DailyRewards: core.DefaultDailyRewards(),
		Difficulty:   DifficultyNormal,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGardenYAML
}
