package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/garden-match/internal/config"
	"github.com/vovakirdan/garden-match/internal/core"
	"github.com/vovakirdan/garden-match/internal/games/garden/levels"
	"github.com/vovakirdan/garden-match/internal/platform/tui"
	"github.com/vovakirdan/garden-match/internal/storage"
)

// env is everything a command needs: configuration, the level set,
// logging and the player's store.
type env struct {
	Config  config.GardenConfig
	Preset  config.DifficultyPreset
	Levels  *levels.Set
	Logger  *log.Logger
	Store   *storage.Store // nil when the database could not be opened
	logFile io.Closer
}

// loadEnv reads configuration and levels and opens the store.
// Interactive commands log to a file so the alt screen stays clean.
func loadEnv(interactive bool) (*env, error) {
	e := &env{}

	logger, closer, err := newLogger(interactive)
	if err != nil {
		return nil, err
	}
	e.Logger = logger
	e.logFile = closer

	e.Config, err = config.LoadGarden(flagConfig)
	if err != nil {
		e.Close()
		return nil, err
	}

	preset := flagDifficulty
	if preset == "" {
		preset = string(e.Config.Difficulty)
	}
	e.Preset, err = config.ParsePreset(preset)
	if err != nil {
		e.Close()
		return nil, err
	}

	e.Levels, err = levels.LoadOrDefault(e.Config.LevelsPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("cannot load levels: %w", err)
	}

	// The game still works without storage, progress is just not kept.
	e.Store, err = storage.Open(flagDBPath)
	if err != nil {
		e.Logger.Warn("could not open progress database", "path", flagDBPath, "error", err)
		if interactive {
			fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		}
		e.Store = nil
	}

	e.Logger.Debug("environment loaded",
		"levels", e.Levels.Count(), "preset", e.Preset, "db", flagDBPath, "player", flagPlayer)
	return e, nil
}

// newLogger creates the command logger.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	if !toFile {
		return log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           level,
		}), nil, nil
	}

	path := flagLogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, config.AppDir, "garden.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	}), f, nil
}

// Profile returns the profile of the --player.
func (e *env) Profile() *tui.Profile {
	return tui.NewProfile(flagPlayer, e.Store, e.Config, e.Levels, e.Preset, e.Logger)
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.Store != nil {
		if err := e.Store.Close(); err != nil {
			e.Logger.Warn("could not close store", "error", err)
		}
	}
	if e.logFile != nil {
		//nolint:errcheck // Nothing left to report to
		e.logFile.Close()
	}
}

// runtimeConfig builds the platform config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// requireStore fails commands that only make sense with a database.
func (e *env) requireStore() error {
	if e.Store == nil {
		return fmt.Errorf("progress database %s is not available", flagDBPath)
	}
	return nil
}
