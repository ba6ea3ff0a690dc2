package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/garden-match/internal/config"
	"github.com/vovakirdan/garden-match/internal/core"
	"github.com/vovakirdan/garden-match/internal/games/garden/levels"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testProfile() *Profile {
	return NewProfile("tester", nil, config.DefaultGardenConfig(), levels.Default(), config.DifficultyNormal, nil)
}

func testSession() SessionModel {
	return NewSessionModel(testProfile(), core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 7})
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		exit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRune('q'), core.ActionQuit, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{keyRune('h'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionSelect, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel, false},
		{keyRune('b'), core.ActionBomb, false},
		{keyRune('x'), core.ActionHammer, false},
		{keyRune('f'), core.ActionShuffle, false},
		{keyRune('?'), core.ActionHint, false},
		{keyRune('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, exit := km.MapKey(tt.msg)
		if action != tt.action || exit != tt.exit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, exit, tt.action, tt.exit)
		}
	}
}

func TestMapKeyToFrameIgnoresExit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyRune('b'), &frame) {
		t.Fatal("b reported as exit")
	}
	if !frame.Has(core.ActionBomb) {
		t.Error("frame missing bomb action")
	}

	frame.Clear()
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Fatal("ctrl+c not reported as exit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("exit key should not be queued as an action")
	}
}

func TestSessionStartsAtMenu(t *testing.T) {
	m := testSession()
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if !strings.Contains(m.View(), "Play Level 1") {
		t.Errorf("menu view missing play item:\n%s", m.View())
	}
}

func TestSessionLevelSelectAndBack(t *testing.T) {
	m := testSession()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenLevels {
		t.Fatalf("screen = %v, want levels", m.screen)
	}

	// Level 2 is locked for a new player.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenLevels {
		t.Fatalf("locked level started a game")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", m.screen)
	}
}

func TestSessionPlayAndQuitToMenu(t *testing.T) {
	m := testSession()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if !strings.Contains(m.View(), "Level 1") {
		t.Errorf("game view missing level:\n%s", m.View())
	}

	m = send(t, m, keyRune('q'))
	m = send(t, m, TickMsg(time.Now()))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after quitting the level", m.screen)
	}

	// Abandoning costs no life.
	p := m.profile.Progress()
	if p.Lives != p.MaxLives {
		t.Errorf("lives = %d, want %d", p.Lives, p.MaxLives)
	}
}

func TestSessionScoresWithoutStore(t *testing.T) {
	m := testSession()
	for i := 0; i < 4; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if !strings.Contains(m.View(), "not saved") {
		t.Errorf("scoreboard should explain missing store:\n%s", m.View())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
}

func TestMenuDailyRewardInline(t *testing.T) {
	m := testSession()
	m.menu.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	before := m.profile.Progress().Currency

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu {
		t.Fatalf("daily reward left the menu")
	}
	if got := m.profile.Progress().Currency; got <= before {
		t.Errorf("currency = %d, want more than %d", got, before)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Already claimed") {
		t.Errorf("second claim should be refused:\n%s", m.View())
	}
}
