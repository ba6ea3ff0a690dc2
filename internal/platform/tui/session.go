package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/garden-match/internal/core"
)

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLevels
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player:
// menu -> level select / game / scoreboard -> menu.
// It is the top-level model for both SSH sessions and the local menu.
type SessionModel struct {
	profile  *Profile
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	levels   LevelSelectModel
	scores   ScoreboardModel
	game     *GameModel
	quitting bool
}

// NewSessionModel creates a session starting at the main menu.
func NewSessionModel(profile *Profile, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		profile: profile,
		config:  cfg,
		menu:    NewMenuModel(profile, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLevels:
		return m.updateLevels(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch m.menu.Choice() {
	case ChoicePlay:
		return m.startGame(m.profile.playLevel())
	case ChoiceLevels:
		m.levels = NewLevelSelectModel(m.profile, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLevels
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.profile, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.levels.Update(msg)
	if lm, ok := next.(LevelSelectModel); ok {
		m.levels = lm
	}

	if level := m.levels.Selected(); level > 0 {
		return m.startGame(level)
	}
	if m.levels.WantsBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}
	return m, cmd
}

// startGame switches to a new game at level.
func (m SessionModel) startGame(level int) (tea.Model, tea.Cmd) {
	gm := NewGameModel(m.profile.NewGame(level), m.profile, m.config)
	m.game = &gm
	m.screen = screenGame
	return m, m.game.Init()
}

// backToMenu rebuilds the menu so it reflects the latest progress.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	online := m.menu.online
	m.menu = NewMenuModel(m.profile, m.config.ScreenW, m.config.ScreenH)
	m.menu.online = online
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenLevels:
		return m.levels.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the full menu flow in the local terminal.
func RunSession(profile *Profile, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(profile, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
