package config

import "github.com/vovakirdan/garden-match/internal/games/garden/core"

// minMoves is the smallest move budget a preset may leave.
const minMoves = 5

// ApplyPreset adjusts a level for a difficulty preset.
//
//   - easy: five extra moves, target lowered by 10%
//   - normal: level as authored
//   - hard: three fewer moves, target raised by 10%
//   - fixed: level as authored with no special gem spawns
func ApplyPreset(l core.LevelConfig, preset DifficultyPreset) core.LevelConfig {
	switch preset {
	case DifficultyEasy:
		l.Moves += 5
		l.TargetScore = l.TargetScore * 9 / 10
	case DifficultyHard:
		l.Moves -= 3
		if l.Moves < minMoves {
			l.Moves = minMoves
		}
		l.TargetScore = l.TargetScore * 11 / 10
	case DifficultyFixed:
		l.SpecialChance = 0
	}
	return l
}
