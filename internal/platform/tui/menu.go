package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gcore "github.com/vovakirdan/garden-match/internal/games/garden/core"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceLevels
	ChoiceScores
	ChoiceQuit
)

// menuItem is one line of the main menu.
type menuItem struct {
	label  string
	choice MenuChoice
	run    func(m *MenuModel) // Inline action, handled without leaving the menu
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuStatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuNoteStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	profile   *Profile
	items     []menuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	note      string
	choice    MenuChoice
	now       func() time.Time
	online    func() int // Connected players, nil outside the server
}

// NewMenuModel creates the main menu for a profile.
func NewMenuModel(profile *Profile, width, height int) MenuModel {
	return MenuModel{
		profile: profile,
		items: []menuItem{
			{label: "Play", choice: ChoicePlay},
			{label: "Select Level...", choice: ChoiceLevels},
			{label: "Daily Reward", run: (*MenuModel).claimDaily},
			{label: fmt.Sprintf("Refill Lives (%d coins)", gcore.LifeRefillPrice), run: (*MenuModel).refillLives},
			{label: "High Scores", choice: ChoiceScores},
			{label: "Quit", choice: ChoiceQuit},
		},
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		now:       time.Now,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.run != nil {
			item.run(&m)
			return m, nil
		}
		m.note = ""
		m.choice = item.choice
	}
	return m, nil
}

func (m *MenuModel) claimDaily() {
	reward, ok, err := m.profile.ClaimDaily(m.now())
	switch {
	case err != nil:
		m.note = "Could not claim reward: " + err.Error()
	case !ok:
		m.note = "Already claimed today. Come back tomorrow!"
	default:
		m.note = fmt.Sprintf("Day %d reward: +%d coins%s", reward.Day, reward.Currency, boosterList(reward.Boosters))
	}
}

func (m *MenuModel) refillLives() {
	ok, err := m.profile.RefillLives()
	switch {
	case err != nil:
		m.note = "Could not refill lives: " + err.Error()
	case !ok:
		p := m.profile.Progress()
		if p.Lives >= p.MaxLives {
			m.note = "Lives are already full."
		} else {
			m.note = fmt.Sprintf("Not enough coins (%d needed).", gcore.LifeRefillPrice)
		}
	default:
		m.note = "Lives refilled!"
	}
}

// boosterList formats the non-zero boosters of an inventory.
func boosterList(inv gcore.Inventory) string {
	var parts []string
	for _, b := range gcore.AllBoosters {
		if n := inv.Count(b); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, b))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder
	p := m.profile.Progress()

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G A R D E N   M A T C H"), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%s  |  Lives %d/%d  |  Coins %d  |  Level %d  |  Streak %d",
		m.profile.Player, p.Lives, p.MaxLives, p.Currency, p.UnlockedLevels, p.Streak)
	b.WriteString(centerText(menuStatStyle.Render(stats), m.width))
	b.WriteString("\n")
	if m.online != nil {
		b.WriteString(centerText(menuStatStyle.Render(fmt.Sprintf("%d gardeners online", m.online())), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		label := item.label
		if item.choice == ChoicePlay {
			label = fmt.Sprintf("Play Level %d", m.profile.playLevel())
		}
		line := "  " + label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuNoteStyle.Render(m.note), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the pending choice and clears it.
func (m *MenuModel) Choice() MenuChoice {
	c := m.choice
	m.choice = ChoiceNone
	return c
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
