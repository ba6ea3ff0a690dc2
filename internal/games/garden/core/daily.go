package core

import "time"

// DailyReward is one day of the login reward cycle.
type DailyReward struct {
	Day      int       `yaml:"day"`
	Currency int       `yaml:"currency"`
	Boosters Inventory `yaml:"boosters"`
}

// DefaultDailyRewards returns the seven-day cycle.
func DefaultDailyRewards() []DailyReward {
	return []DailyReward{
		{Day: 1, Currency: 10, Boosters: Inventory{Bomb: 1}},
		{Day: 2, Currency: 20, Boosters: Inventory{Hammer: 2}},
		{Day: 3, Currency: 30, Boosters: Inventory{Shuffle: 2}},
		{Day: 4, Currency: 50, Boosters: Inventory{Bomb: 2, Hammer: 1}},
		{Day: 5, Currency: 75, Boosters: Inventory{Rainbow: 1}},
		{Day: 6, Currency: 100, Boosters: Inventory{Bomb: 3, Hammer: 3}},
		{Day: 7, Currency: 200, Boosters: Inventory{Bomb: 3, Hammer: 3, Shuffle: 3, Rainbow: 2}},
	}
}

// CanClaimDaily reports whether no reward was claimed on now's calendar day.
func CanClaimDaily(p Progress, now time.Time) bool {
	if p.LastDaily.IsZero() {
		return true
	}
	last := p.LastDaily.In(now.Location())
	y1, m1, d1 := last.Date()
	y2, m2, d2 := now.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

// NextDailyReward returns the reward the next claim would grant.
func NextDailyReward(p Progress, rewards []DailyReward) (DailyReward, bool) {
	if len(rewards) == 0 {
		return DailyReward{}, false
	}
	day := p.Streak%len(rewards) + 1
	return rewards[day-1], true
}

// ClaimDaily grants the next reward in the cycle.
// The streak advances by one and wraps after the last day; missed days
// do not reset it. Returns false when already claimed today.
func ClaimDaily(p Progress, rewards []DailyReward, now time.Time) (Progress, DailyReward, bool) {
	if !CanClaimDaily(p, now) {
		return p, DailyReward{}, false
	}
	r, ok := NextDailyReward(p, rewards)
	if !ok {
		return p, DailyReward{}, false
	}
	p.Streak = p.Streak%len(rewards) + 1
	p.Currency += r.Currency
	p.Boosters = p.Boosters.Plus(r.Boosters)
	p.LastDaily = now
	return p, r, true
}
