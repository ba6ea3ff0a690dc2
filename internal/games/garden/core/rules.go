package core

// LevelConfig describes one playable level.
type LevelConfig struct {
	Level         int
	GridSize      int
	Moves         int
	TargetScore   int
	GemKinds      int
	SpecialChance float64
	Obstacles     int // Reserved, no gameplay effect
}

// Normalized returns a copy with zero or out-of-range fields fixed up.
func (l LevelConfig) Normalized() LevelConfig {
	if l.Level < 1 {
		l.Level = 1
	}
	if l.GridSize < MinRun {
		l.GridSize = 8
	}
	l.GemKinds = ClampKinds(l.GemKinds)
	if l.SpecialChance < 0 {
		l.SpecialChance = 0
	}
	if l.SpecialChance > 1 {
		l.SpecialChance = 1
	}
	return l
}

// Rules holds scoring and generation constants for an Engine.
type Rules struct {
	BasePoints    int // Points per matched cell before the combo multiplier
	BombCellBonus int // Flat points per cell cleared by a bomb
	HammerBonus   int // Flat points for a hammer hit
	MaxRedraws    int // Generator redraw budget per cell
}

// DefaultRules returns the standard scoring table.
func DefaultRules() Rules {
	return Rules{
		BasePoints:    10,
		BombCellBonus: 10,
		HammerBonus:   10,
		MaxRedraws:    10,
	}
}

// Stars rates a finished score against the level target.
// Returns 0 when the target was not reached.
func Stars(score, target int) int {
	switch {
	case target <= 0 || score < target:
		return 0
	case score >= target*2:
		return 3
	case score*2 >= target*3:
		return 2
	default:
		return 1
	}
}
