package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/garden-match/internal/config"
	"github.com/vovakirdan/garden-match/internal/games/garden"
	gcore "github.com/vovakirdan/garden-match/internal/games/garden/core"
	"github.com/vovakirdan/garden-match/internal/games/garden/levels"
	"github.com/vovakirdan/garden-match/internal/storage"
)

// Profile is one player's view of the store. Without a store progress
// lives in memory for the duration of the process.
type Profile struct {
	Player string
	Store  *storage.Store
	Config config.GardenConfig
	Levels *levels.Set
	Preset config.DifficultyPreset
	Logger *log.Logger

	progress gcore.Progress
	loaded   bool
}

// NewProfile creates a profile and loads the player's progress.
func NewProfile(player string, store *storage.Store, cfg config.GardenConfig, set *levels.Set, preset config.DifficultyPreset, logger *log.Logger) *Profile {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if set == nil {
		set = levels.Default()
	}
	p := &Profile{
		Player: player,
		Store:  store,
		Config: cfg,
		Levels: set,
		Preset: preset,
		Logger: logger,
	}
	p.Progress()
	return p
}

// Progress returns the player's current progress.
func (p *Profile) Progress() gcore.Progress {
	if p.loaded {
		return p.progress
	}
	def := p.Config.StartingProgress()
	p.progress = def
	if p.Store != nil {
		loaded, err := p.Store.LoadProgress(p.Player, def)
		if err != nil {
			p.Logger.Warn("could not load progress", "player", p.Player, "error", err)
		} else {
			p.progress = loaded
		}
	}
	p.loaded = true
	return p.progress
}

// Record persists a finished session and returns the updated progress.
// Store failures are logged and the in-memory result is kept.
func (p *Profile) Record(st gcore.State) gcore.Progress {
	local := p.Progress().Apply(st.Delta)
	if p.Store == nil {
		p.progress = local
		return local
	}

	a := storage.AttemptFromState(p.Player, st)
	saved, err := p.Store.FinishSession(a, p.Config.StartingProgress(), st.Delta)
	if err != nil {
		p.Logger.Warn("could not save session", "player", p.Player, "level", a.Level, "error", err)
		p.progress = local
		return local
	}
	p.progress = saved
	return saved
}

// Spend persists a mid-level delta such as boosters used and returns
// the updated progress.
func (p *Profile) Spend(d gcore.ProgressDelta) gcore.Progress {
	local := p.Progress().Apply(d)
	if p.Store == nil {
		p.progress = local
		return local
	}
	saved, err := p.Store.ApplyDelta(p.Player, p.Config.StartingProgress(), d)
	if err != nil {
		p.Logger.Warn("could not save boosters", "player", p.Player, "error", err)
		p.progress = local
		return local
	}
	p.progress = saved
	return saved
}

// ClaimDaily grants today's reward if available.
func (p *Profile) ClaimDaily(now time.Time) (gcore.DailyReward, bool, error) {
	rewards := p.Config.Rewards()
	if p.Store == nil {
		next, r, ok := gcore.ClaimDaily(p.Progress(), rewards, now)
		p.progress = next
		return r, ok, nil
	}
	next, r, ok, err := p.Store.ClaimDaily(p.Player, p.Config.StartingProgress(), rewards, now)
	if err != nil {
		return gcore.DailyReward{}, false, err
	}
	p.progress = next
	return r, ok, nil
}

// RefillLives buys a full set of lives.
func (p *Profile) RefillLives() (bool, error) {
	if p.Store == nil {
		next, ok := gcore.RefillLives(p.Progress(), gcore.LifeRefillPrice)
		p.progress = next
		return ok, nil
	}
	next, ok, err := p.Store.RefillLives(p.Player, p.Config.StartingProgress(), gcore.LifeRefillPrice)
	if err != nil {
		return false, err
	}
	p.progress = next
	return ok, nil
}

// BestByLevel returns the player's best results, empty without a store.
func (p *Profile) BestByLevel() map[int]storage.LevelBest {
	if p.Store == nil {
		return nil
	}
	best, err := p.Store.BestByLevel(p.Player)
	if err != nil {
		p.Logger.Warn("could not load best scores", "player", p.Player, "error", err)
		return nil
	}
	return best
}

// NewGame creates a garden game for this player starting at level.
// Level 0 starts at the highest unlocked level.
func (p *Profile) NewGame(level int) *garden.Game {
	g := garden.NewWithOptions(garden.Options{
		Config:   p.Config,
		Levels:   p.Levels,
		Progress: p.Progress(),
		Preset:   p.Preset,
		Logger:   p.Logger,
	})
	if level > 0 {
		g.SetLevel(level)
	}
	return g
}

// playLevel is the level "Play" starts: the highest unlocked one.
func (p *Profile) playLevel() int {
	n := p.Progress().UnlockedLevels
	if c := p.Levels.Count(); n > c {
		n = c
	}
	if n < 1 {
		n = 1
	}
	return n
}
