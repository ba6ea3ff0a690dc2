package core

import "time"

// Booster identifies a one-shot power-up.
type Booster uint8

const (
	BoosterBomb Booster = iota
	BoosterHammer
	BoosterShuffle
	BoosterRainbow
)

// AllBoosters lists every booster in display order.
var AllBoosters = []Booster{BoosterBomb, BoosterHammer, BoosterShuffle, BoosterRainbow}

// String returns the booster name.
func (b Booster) String() string {
	switch b {
	case BoosterBomb:
		return "bomb"
	case BoosterHammer:
		return "hammer"
	case BoosterShuffle:
		return "shuffle"
	case BoosterRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// Inventory counts boosters per kind.
type Inventory struct {
	Bomb    int `yaml:"bomb"`
	Hammer  int `yaml:"hammer"`
	Shuffle int `yaml:"shuffle"`
	Rainbow int `yaml:"rainbow"`
}

// Count returns the number held of one booster.
func (inv Inventory) Count(b Booster) int {
	switch b {
	case BoosterBomb:
		return inv.Bomb
	case BoosterHammer:
		return inv.Hammer
	case BoosterShuffle:
		return inv.Shuffle
	case BoosterRainbow:
		return inv.Rainbow
	default:
		return 0
	}
}

// Add returns a copy with n added to booster b, floored at zero.
func (inv Inventory) Add(b Booster, n int) Inventory {
	v := inv.Count(b) + n
	if v < 0 {
		v = 0
	}
	switch b {
	case BoosterBomb:
		inv.Bomb = v
	case BoosterHammer:
		inv.Hammer = v
	case BoosterShuffle:
		inv.Shuffle = v
	case BoosterRainbow:
		inv.Rainbow = v
	}
	return inv
}

// Plus returns the per-booster sum of two inventories.
func (inv Inventory) Plus(o Inventory) Inventory {
	for _, b := range AllBoosters {
		inv = inv.Add(b, o.Count(b))
	}
	return inv
}

// Minus returns inv with o subtracted, floored at zero per booster.
func (inv Inventory) Minus(o Inventory) Inventory {
	for _, b := range AllBoosters {
		inv = inv.Add(b, -o.Count(b))
	}
	return inv
}

// IsZero reports whether every count is zero.
func (inv Inventory) IsZero() bool {
	return inv == Inventory{}
}

// Progress is the persistent player record.
type Progress struct {
	Lives          int
	MaxLives       int
	Currency       int
	UnlockedLevels int
	TotalScore     int
	Boosters       Inventory
	Streak         int       // Last claimed day of the daily reward cycle, 0 if never
	LastDaily      time.Time // Zero when no reward was ever claimed
}

// DefaultProgress returns the record for a brand new player.
func DefaultProgress() Progress {
	return Progress{
		Lives:          5,
		MaxLives:       5,
		Currency:       100,
		UnlockedLevels: 1,
		Boosters: Inventory{
			Bomb:    1,
			Hammer:  3,
			Shuffle: 1,
		},
	}
}

// ProgressDelta is the change a session asks the store to persist.
type ProgressDelta struct {
	LivesLost      int
	CurrencyEarned int
	UnlockedLevels int // Highest unlocked level after the session, 0 for no change
	ScoreEarned    int
	BoostersUsed   Inventory
}

// IsZero reports whether the delta carries no change.
func (d ProgressDelta) IsZero() bool {
	return d == ProgressDelta{}
}

// Apply returns p with the delta folded in.
// Lives never drop below zero and unlocked levels never go down.
func (p Progress) Apply(d ProgressDelta) Progress {
	p.Lives -= d.LivesLost
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.Currency += d.CurrencyEarned
	if d.UnlockedLevels > p.UnlockedLevels {
		p.UnlockedLevels = d.UnlockedLevels
	}
	p.TotalScore += d.ScoreEarned
	p.Boosters = p.Boosters.Minus(d.BoostersUsed)
	return p
}

// LifeRefillPrice is the currency cost of refilling lives to MaxLives.
const LifeRefillPrice = 60

// RefillLives buys a full set of lives. It fails when lives are already
// full or the player cannot afford the price.
func RefillLives(p Progress, price int) (Progress, bool) {
	if p.Lives >= p.MaxLives || p.Currency < price {
		return p, false
	}
	p.Currency -= price
	p.Lives = p.MaxLives
	return p, true
}
