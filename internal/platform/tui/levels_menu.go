package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/garden-match/internal/games/garden/levels"
	"github.com/vovakirdan/garden-match/internal/storage"
)

var (
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// LevelSelectModel lets the player pick any unlocked level.
type LevelSelectModel struct {
	profile   *Profile
	best      map[int]storage.LevelBest
	cursor    int // 0-based level index
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // Chosen level, 0 while choosing
	back      bool
}

// NewLevelSelectModel creates a level selector starting at the highest
// unlocked level.
func NewLevelSelectModel(profile *Profile, width, height int) LevelSelectModel {
	return LevelSelectModel{
		profile:   profile,
		best:      profile.BestByLevel(),
		cursor:    profile.playLevel() - 1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// unlocked returns the number of playable levels.
func (m LevelSelectModel) unlocked() int {
	return m.profile.playLevel()
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.profile.Levels.Count() - 1
	page := m.pageSize()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.back = true
	case MenuActionUp:
		m.cursor--
	case MenuActionDown:
		m.cursor++
	case MenuActionLeft:
		m.cursor -= page
	case MenuActionRight:
		m.cursor += page
	case MenuActionSelect:
		if m.cursor < m.unlocked() {
			m.selected = m.cursor + 1
		}
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > last {
		m.cursor = last
	}
	return m, nil
}

// pageSize is the number of level rows that fit on screen.
func (m LevelSelectModel) pageSize() int {
	n := m.height - 8
	if n < 5 {
		n = 5
	}
	return n
}

// View renders the level list around the cursor.
func (m LevelSelectModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	page := m.pageSize()
	start := m.cursor - page/2
	if start < 0 {
		start = 0
	}
	end := start + page
	if count := m.profile.Levels.Count(); end > count {
		end = count
		start = max(0, end-page)
	}

	for i := start; i < end; i++ {
		b.WriteString(centerText(m.levelLine(i), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Level  |  Left/Right: Page  |  Enter: Play  |  Esc: Back", m.width))

	return b.String()
}

// levelLine formats one row of the list.
func (m LevelSelectModel) levelLine(i int) string {
	n := i + 1
	lvl := m.profile.Levels.Lookup(n)
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	text := fmt.Sprintf("%s%3d. %-12s  %2d moves  target %6d", cursor, n, levels.Tier(n), lvl.Moves, lvl.TargetScore)
	if n > m.unlocked() {
		return lockedStyle.Render(text + "  locked")
	}

	stars := "   "
	if best, ok := m.best[n]; ok {
		stars = strings.Repeat("★", best.BestStars) + strings.Repeat("☆", 3-best.BestStars)
	}
	if i == m.cursor {
		text = menuCursorStyle.Render(text)
	}
	return text + "  " + starStyle.Render(stars)
}

// Selected returns the chosen level, or 0 while still choosing.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}
