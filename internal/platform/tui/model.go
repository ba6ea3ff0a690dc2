// Package tui provides the Bubble Tea integration for Garden Match.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/garden-match/internal/config"
	"github.com/vovakirdan/garden-match/internal/core"
	gcore "github.com/vovakirdan/garden-match/internal/games/garden/core"
	"github.com/vovakirdan/garden-match/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// outcomeReporter is implemented by games whose finished sessions are
// persisted to the player's profile.
type outcomeReporter interface {
	TakeOutcome() (gcore.State, bool)
	SetProgress(p gcore.Progress)
}

// boosterReporter is implemented by games that report booster use
// before the session ends.
type boosterReporter interface {
	TakeBoosterDelta() (gcore.ProgressDelta, bool)
	SetProgress(p gcore.Progress)
}

// resizer is implemented by games that keep their state across a resize.
type resizer interface {
	Resize(width, height int)
}

// abandoner is implemented by games that report an unfinished session.
type abandoner interface {
	Abandon()
}

// GameModel runs one game with back-to-menu capability.
type GameModel struct {
	game       registry.Game
	profile    *Profile
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. profile may be nil, in which case
// outcomes are not persisted.
func NewGameModel(game registry.Game, profile *Profile, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		profile:    profile,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		if a, ok := m.game.(abandoner); ok {
			a.Abandon()
		}
		m.collectOutcome()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.collectOutcome()

	if result.Quit {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// collectOutcome persists spent boosters and a finished session, if any.
func (m GameModel) collectOutcome() {
	if m.profile == nil {
		return
	}
	if b, ok := m.game.(boosterReporter); ok {
		if d, ok := b.TakeBoosterDelta(); ok {
			b.SetProgress(m.profile.Spend(d))
		}
	}

	r, ok := m.game.(outcomeReporter)
	if !ok || m.profile == nil {
		return
	}
	st, ok := r.TakeOutcome()
	if !ok {
		return
	}
	r.SetProgress(m.profile.Record(st))
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits.
func Run(game registry.Game, profile *Profile, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, profile, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
