// Package formats provides level pack file parsers.
package formats

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
	"gopkg.in/yaml.v3"
)

// YAMLPack is the on-disk layout of a level pack.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is a single level entry.
type YAMLLevel struct {
	Level         int     `yaml:"level"`
	GridSize      int     `yaml:"grid_size,omitempty"`
	Moves         int     `yaml:"moves"`
	TargetScore   int     `yaml:"target_score"`
	GemKinds      int     `yaml:"gem_kinds,omitempty"`
	SpecialChance float64 `yaml:"special_chance,omitempty"`
	Obstacles     int     `yaml:"obstacles,omitempty"`
}

// Pack is a parsed level pack, sorted by level number.
type Pack struct {
	Name   string
	Levels []core.LevelConfig
}

// ParseYAML parses a level pack.
// Missing grid size and kind count default to 8 and 6.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{Name: yp.Name}
	seen := make(map[int]bool)
	for i, yl := range yp.Levels {
		if yl.Level < 1 {
			return Pack{}, fmt.Errorf("entry %d: level must be >= 1", i)
		}
		if seen[yl.Level] {
			return Pack{}, fmt.Errorf("entry %d: duplicate level %d", i, yl.Level)
		}
		if yl.Moves <= 0 || yl.TargetScore <= 0 {
			return Pack{}, fmt.Errorf("level %d: moves and target_score must be positive", yl.Level)
		}
		seen[yl.Level] = true

		if yl.GridSize == 0 {
			yl.GridSize = 8
		}
		if yl.GemKinds == 0 {
			yl.GemKinds = int(core.KindCount)
		}
		pack.Levels = append(pack.Levels, core.LevelConfig{
			Level:         yl.Level,
			GridSize:      yl.GridSize,
			Moves:         yl.Moves,
			TargetScore:   yl.TargetScore,
			GemKinds:      yl.GemKinds,
			SpecialChance: yl.SpecialChance,
			Obstacles:     yl.Obstacles,
		}.Normalized())
	}

	sort.Slice(pack.Levels, func(i, j int) bool {
		return pack.Levels[i].Level < pack.Levels[j].Level
	})
	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
