// Package garden adapts the match-3 engine to the platform game loop.
package garden

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/garden-match/internal/config"
	platformcore "github.com/vovakirdan/garden-match/internal/core"
	"github.com/vovakirdan/garden-match/internal/games/garden/core"
	"github.com/vovakirdan/garden-match/internal/games/garden/levels"
	"github.com/vovakirdan/garden-match/internal/registry"
)

// GameID is the registry identifier.
const GameID = "garden"

// Mode is what a Select press does at the cursor.
type Mode uint8

const (
	ModeSwap   Mode = iota // Select, then swap with a neighbour
	ModeBomb               // Detonate a bomb at the cursor
	ModeHammer             // Smash the gem at the cursor
)

// Options configure a new Game.
type Options struct {
	Config   config.GardenConfig
	Levels   *levels.Set
	Progress core.Progress
	Preset   config.DifficultyPreset
	Logger   *log.Logger
}

// DefaultOptions returns options built from the embedded configuration.
func DefaultOptions() Options {
	cfg := config.DefaultGardenConfig()
	return Options{
		Config:   cfg,
		Levels:   levels.Default(),
		Progress: cfg.StartingProgress(),
		Preset:   config.DifficultyNormal,
		Logger:   log.New(io.Discard),
	}
}

// Package-level defaults used by New, so the registry factory stays
// argument free.
var (
	mu                 sync.Mutex
	defaults           = DefaultOptions()
	selectedStartLevel int
)

// Configure replaces the options New uses.
func Configure(opts Options) {
	mu.Lock()
	defer mu.Unlock()
	defaults = opts.withDefaults()
}

// SetProgress updates the progress New starts from.
func SetProgress(p core.Progress) {
	mu.Lock()
	defer mu.Unlock()
	defaults.Progress = p
}

// SetStartLevel sets the level the next game starts on. 0 means the
// highest unlocked level.
func SetStartLevel(level int) {
	mu.Lock()
	defer mu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	mu.Lock()
	defer mu.Unlock()
	return selectedStartLevel
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Levels == nil {
		o.Levels = d.Levels
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	if o.Preset == "" {
		o.Preset = d.Preset
	}
	if o.Progress == (core.Progress{}) {
		o.Progress = o.Config.StartingProgress()
	}
	return o
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game is one player's run through the campaign.
type Game struct {
	opts     Options
	log      *log.Logger
	engine   *core.Engine
	rng      *rand.Rand
	progress core.Progress
	state    core.State
	level    int

	cursor core.Pos
	mode   Mode
	hint   *core.Move

	// Screen dimensions
	screenW int
	screenH int

	tick         uint64
	cascadeTicks int
	idleTicks    int
	paused       bool
	tooSmall     bool
	noLives      bool
	finished     bool // Campaign completed, no next level

	outcome *core.State // Terminal state waiting to be persisted
	spent   core.Inventory // Boosters of this attempt already reported
}

// New creates a game from the package defaults, consuming the selected
// start level.
func New() *Game {
	mu.Lock()
	opts := defaults
	start := selectedStartLevel
	selectedStartLevel = 0
	mu.Unlock()

	g := NewWithOptions(opts)
	if start > 0 {
		g.SetLevel(start)
	}
	return g
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		opts:     opts,
		log:      opts.Logger.WithPrefix(GameID),
		progress: opts.Progress,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Garden Match"
}

// Reset starts the current level with a new seed.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = core.NewEngine(g.opts.Config.Rules(), g.rng)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false

	if g.level < 1 {
		g.level = g.progress.UnlockedLevels
	}
	g.checkScreenSize()
	g.startLevel()
}

// startLevel begins an attempt at g.level.
func (g *Game) startLevel() {
	count := g.opts.Levels.Count()
	if g.level > count {
		g.level = count
	}
	if g.level < 1 {
		g.level = 1
	}

	g.cursor = core.P(0, 0)
	g.mode = ModeSwap
	g.hint = nil
	g.cascadeTicks = 0
	g.idleTicks = 0
	g.finished = false
	g.outcome = nil
	g.spent = core.Inventory{}

	g.noLives = g.progress.Lives <= 0
	if g.noLives {
		g.state = core.State{Level: g.levelConfig()}
		g.log.Info("out of lives", "level", g.level)
		return
	}

	g.state = g.engine.StartLevel(g.levelConfig(), g.progress)
	g.logGeneration()
	g.log.Info("level started", "level", g.level, "moves", g.state.MovesLeft, "target", g.state.Level.TargetScore)
}

// levelConfig returns the current level with the difficulty preset applied.
func (g *Game) levelConfig() core.LevelConfig {
	return config.ApplyPreset(g.opts.Levels.Lookup(g.level), g.opts.Preset)
}

func (g *Game) logGeneration() {
	if g.state.GenStats.Escapes > 0 {
		g.log.Warn("board generated with unavoidable runs", "level", g.level, "escapes", g.state.GenStats.Escapes)
	}
}

// Resize updates the screen size without restarting the level.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	size := g.opts.Levels.Lookup(g.level).GridSize
	if size < 1 {
		size = 8
	}
	minW := size*cellW + 2
	if minW < hudWidth {
		minW = hudWidth
	}
	minH := size + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionQuit) {
		g.Abandon()
		return platformcore.StepResult{State: g.State(), Quit: true}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.state.Active() {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if g.noLives || g.state.Status.Terminal() {
		g.handleEndScreen(in)
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if g.state.InFlight {
		g.advanceCascade()
		return platformcore.StepResult{State: g.State()}
	}

	g.handleAction(in)
	g.updateHint(in)

	return platformcore.StepResult{State: g.State()}
}

// handleEndScreen reacts to restart and next on the result overlay.
func (g *Game) handleEndScreen(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionNext) && g.state.Status == core.StatusWon:
		if g.level >= g.opts.Levels.Count() {
			g.finished = true
			return
		}
		g.level++
		g.startLevel()
	case in.Has(platformcore.ActionRestart):
		g.startLevel()
	}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	size := g.state.Board.Size
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row--
	case in.Has(platformcore.ActionDown):
		g.cursor.Row++
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col--
	case in.Has(platformcore.ActionRight):
		g.cursor.Col++
	default:
		return
	}
	g.cursor.Row = platformcore.Clamp(g.cursor.Row, 0, size-1)
	g.cursor.Col = platformcore.Clamp(g.cursor.Col, 0, size-1)
}

// handleAction applies a select, booster or hint press.
func (g *Game) handleAction(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionCancel):
		g.mode = ModeSwap
		g.state.Selected = nil
	case in.Has(platformcore.ActionBomb):
		g.toggleMode(ModeBomb, core.BoosterBomb)
	case in.Has(platformcore.ActionHammer):
		g.toggleMode(ModeHammer, core.BoosterHammer)
	case in.Has(platformcore.ActionShuffle):
		g.apply(g.engine.UseShuffle(g.state))
		g.logGeneration()
	case in.Has(platformcore.ActionHint):
		g.showHint()
	case in.Has(platformcore.ActionSelect):
		switch g.mode {
		case ModeBomb:
			g.apply(g.engine.UseBomb(g.state, g.cursor))
		case ModeHammer:
			g.apply(g.engine.UseHammer(g.state, g.cursor))
		default:
			g.apply(g.engine.Select(g.state, g.cursor))
		}
		g.mode = ModeSwap
	}
}

func (g *Game) toggleMode(m Mode, b core.Booster) {
	if g.mode == m {
		g.mode = ModeSwap
		return
	}
	if g.state.Boosters.Count(b) > 0 {
		g.mode = m
		g.state.Selected = nil
	}
}

// apply installs the successor state and starts cascade pacing if needed.
func (g *Game) apply(next core.State) {
	g.state = next
	if next.InFlight {
		g.cascadeTicks = 0
		g.hint = nil
	}
}

// advanceCascade runs one cascade pass every CascadeDelay ticks.
func (g *Game) advanceCascade() {
	g.cascadeTicks++
	if g.cascadeTicks < g.opts.Config.CascadeDelay() {
		return
	}
	g.cascadeTicks = 0
	g.state = g.engine.Step(g.state)
	if g.state.Status.Terminal() {
		g.finish()
	}
}

// updateHint tracks idle time and reveals a move after HintAfterTicks.
func (g *Game) updateHint(in platformcore.InputFrame) {
	if !in.Empty() {
		g.idleTicks = 0
		if !in.Has(platformcore.ActionHint) {
			g.hint = nil
		}
		return
	}
	g.idleTicks++
	after := g.opts.Config.Presentation.HintAfterTicks
	if after > 0 && g.idleTicks >= after && g.hint == nil {
		g.showHint()
	}
}

func (g *Game) showHint() {
	if m, ok := core.BestMove(g.state.Board); ok {
		g.hint = &m
	}
}

// finish records a terminal state for the platform to persist.
// The outcome carries only boosters not yet reported by TakeBoosterDelta.
func (g *Game) finish() {
	st := g.state
	st.Delta.BoostersUsed = st.Delta.BoostersUsed.Minus(g.spent)
	g.spent = g.state.Delta.BoostersUsed
	g.outcome = &st
	g.progress = g.progress.Apply(st.Delta)
	g.hint = nil
	g.mode = ModeSwap
	g.log.Info("level finished",
		"level", g.level,
		"outcome", st.Status,
		"score", st.Score,
		"stars", st.Stars(),
		"moves_left", st.MovesLeft,
	)
}

// Abandon ends an active level early. Boosters already spent stay spent.
func (g *Game) Abandon() {
	if g.state.Board == nil || g.state.Status.Terminal() {
		return
	}
	g.state = g.engine.Abandon(g.state)
	g.finish()
}

// TakeOutcome returns the last finished session once.
func (g *Game) TakeOutcome() (core.State, bool) {
	if g.outcome == nil {
		return core.State{}, false
	}
	st := *g.outcome
	g.outcome = nil
	return st, true
}

// TakeBoosterDelta returns the boosters spent since the last call so
// they can be persisted before the level ends.
func (g *Game) TakeBoosterDelta() (core.ProgressDelta, bool) {
	used := g.state.Delta.BoostersUsed.Minus(g.spent)
	if used.IsZero() {
		return core.ProgressDelta{}, false
	}
	g.spent = g.state.Delta.BoostersUsed
	d := core.ProgressDelta{BoostersUsed: used}
	g.progress = g.progress.Apply(d)
	return d, true
}

// SetProgress replaces the player's progress, typically with the value
// the store persisted after an outcome.
func (g *Game) SetProgress(p core.Progress) {
	g.progress = p
	if g.noLives && p.Lives > 0 && g.engine != nil {
		g.startLevel()
	}
}

// Progress returns the player's progress as the game sees it.
func (g *Game) Progress() core.Progress {
	return g.progress
}

// SetLevel chooses the level the next Reset starts. It takes effect
// immediately on a running game.
func (g *Game) SetLevel(level int) {
	g.level = level
	if g.engine != nil {
		g.startLevel()
	}
}

// Level returns the current level number.
func (g *Game) Level() int {
	return g.level
}

// Session returns the current engine state.
func (g *Game) Session() core.State {
	return g.state
}

// State returns the platform summary.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.state.Score,
		GameOver: g.noLives || g.state.Status.Terminal(),
		Won:      g.state.Status == core.StatusWon,
		Paused:   g.paused || g.tooSmall,
	}
}

// LevelCount returns the number of levels in the default campaign.
func LevelCount() int {
	mu.Lock()
	defer mu.Unlock()
	return defaults.Levels.Count()
}

// LevelNames returns display names for the default campaign.
func LevelNames() []string {
	mu.Lock()
	defer mu.Unlock()
	return defaults.Levels.Names()
}

// UnlockedLevels returns the highest level the default progress allows.
func UnlockedLevels() int {
	mu.Lock()
	defer mu.Unlock()
	return defaults.Progress.UnlockedLevels
}
