// Package levels provides the Garden Match level table and level pack loading.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

// Set is an ordered list of levels. Level numbers are 1-based and
// Levels[i] is level i+1.
type Set struct {
	Name   string
	Levels []core.LevelConfig
}

// handTuned are the first ten levels.
var handTuned = []core.LevelConfig{
	{Level: 1, GridSize: 8, Moves: 35, TargetScore: 300, GemKinds: 5, SpecialChance: 0.05},
	{Level: 2, GridSize: 8, Moves: 33, TargetScore: 400, GemKinds: 5, SpecialChance: 0.05},
	{Level: 3, GridSize: 8, Moves: 32, TargetScore: 500, GemKinds: 5, SpecialChance: 0.06},
	{Level: 4, GridSize: 8, Moves: 30, TargetScore: 600, GemKinds: 6, SpecialChance: 0.06},
	{Level: 5, GridSize: 8, Moves: 28, TargetScore: 800, GemKinds: 6, SpecialChance: 0.07},
	{Level: 6, GridSize: 8, Moves: 26, TargetScore: 1000, GemKinds: 6, SpecialChance: 0.07},
	{Level: 7, GridSize: 8, Moves: 24, TargetScore: 1200, GemKinds: 6, SpecialChance: 0.08},
	{Level: 8, GridSize: 8, Moves: 22, TargetScore: 1500, GemKinds: 6, SpecialChance: 0.08},
	{Level: 9, GridSize: 8, Moves: 20, TargetScore: 1800, GemKinds: 6, SpecialChance: 0.09},
	{Level: 10, GridSize: 8, Moves: 18, TargetScore: 2000, GemKinds: 6, SpecialChance: 0.10},
}

// DefaultCount is the size of the built-in campaign.
const DefaultCount = 100

// Default returns the built-in campaign: ten hand-tuned levels followed
// by derived ones with shrinking move budgets and growing targets.
func Default() *Set {
	lv := make([]core.LevelConfig, 0, DefaultCount)
	lv = append(lv, handTuned...)
	for i := 0; len(lv) < DefaultCount; i++ {
		moves := 18 - i/10
		if moves < 12 {
			moves = 12
		}
		special := 0.10 + float64(i+1)*0.003
		if special > 0.15 {
			special = 0.15
		}
		lv = append(lv, core.LevelConfig{
			Level:         len(handTuned) + i + 1,
			GridSize:      8,
			Moves:         moves,
			TargetScore:   2000 + (i+1)*400,
			GemKinds:      6,
			SpecialChance: special,
		})
	}
	return &Set{Name: "garden", Levels: lv}
}

// Count returns the number of levels.
func (s *Set) Count() int {
	return len(s.Levels)
}

// Lookup returns level n, clamped to [1, Count].
func (s *Set) Lookup(n int) core.LevelConfig {
	if len(s.Levels) == 0 {
		return core.LevelConfig{Level: 1}.Normalized()
	}
	if n < 1 {
		n = 1
	}
	if n > len(s.Levels) {
		n = len(s.Levels)
	}
	return s.Levels[n-1]
}

// Tier names the difficulty band a level belongs to.
func Tier(n int) string {
	switch {
	case n <= 5:
		return "Seedling"
	case n <= 10:
		return "Sprout"
	case n <= 40:
		return "Bloom"
	case n <= 70:
		return "Orchard"
	default:
		return "Wild Garden"
	}
}

// Names returns display names of all levels.
func (s *Set) Names() []string {
	names := make([]string, len(s.Levels))
	for i, lvl := range s.Levels {
		names[i] = fmt.Sprintf("Level %d - %s", lvl.Level, Tier(lvl.Level))
	}
	return names
}
