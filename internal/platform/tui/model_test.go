package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/garden-match/internal/config"
	"github.com/vovakirdan/garden-match/internal/core"
	gcore "github.com/vovakirdan/garden-match/internal/games/garden/core"
	"github.com/vovakirdan/garden-match/internal/games/garden/levels"
	"github.com/vovakirdan/garden-match/internal/storage"
)

func tick(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm
}

func TestGameModelPersistsBoostersMidLevel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "garden.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	set := &levels.Set{Name: "test", Levels: []gcore.LevelConfig{
		{Level: 1, GridSize: 8, Moves: 20, TargetScore: 100000, GemKinds: 4},
	}}
	cfg := config.DefaultGardenConfig()
	profile := NewProfile("tester", store, cfg, set, config.DifficultyNormal, nil)
	before := profile.Progress().Boosters.Bomb
	if before == 0 {
		t.Fatal("starting progress has no bombs")
	}

	g := profile.NewGame(1)
	m := NewGameModel(g, profile, core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 3})
	m.Init()

	m = tick(t, m, keyRune('b'))
	m = tick(t, m, TickMsg(time.Now()))
	m = tick(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, TickMsg(time.Now()))
	for i := 0; i < 1000 && g.Session().InFlight; i++ {
		m = tick(t, m, TickMsg(time.Now()))
	}

	if !g.Session().Active() {
		t.Fatalf("status = %v, want the level still running", g.Session().Status)
	}
	if g.Session().Delta.BoostersUsed.Bomb != 1 {
		t.Fatalf("bomb was not used: %+v", g.Session().Delta.BoostersUsed)
	}

	stored, err := store.LoadProgress("tester", cfg.StartingProgress())
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if stored.Boosters.Bomb != before-1 {
		t.Errorf("stored bombs = %d, want %d before the level ends", stored.Boosters.Bomb, before-1)
	}

	// Leaving the level must not charge the bomb a second time.
	m = tick(t, m, keyRune('q'))
	tick(t, m, TickMsg(time.Now()))
	stored, err = store.LoadProgress("tester", cfg.StartingProgress())
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if stored.Boosters.Bomb != before-1 {
		t.Errorf("stored bombs after quitting = %d, want %d", stored.Boosters.Bomb, before-1)
	}
}
