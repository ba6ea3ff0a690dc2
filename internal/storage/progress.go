package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

// querier is the subset of *sql.DB and *sql.Tx the helpers need.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// LoadProgress returns the player's progress, creating it from def on
// first use.
func (s *Store) LoadProgress(player string, def core.Progress) (core.Progress, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return def, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	p, err := loadOrCreate(tx, player, def)
	if err != nil {
		return def, err
	}
	if err := tx.Commit(); err != nil {
		return def, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return p, nil
}

// SaveProgress overwrites the player's progress.
func (s *Store) SaveProgress(player string, p core.Progress) error {
	return saveProgress(s.db, player, p)
}

// ApplyDelta folds a session delta into the stored progress and returns
// the result. The read and the write share one transaction.
func (s *Store) ApplyDelta(player string, def core.Progress, d core.ProgressDelta) (core.Progress, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return def, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	p, err := loadOrCreate(tx, player, def)
	if err != nil {
		return def, err
	}
	p = p.Apply(d)
	if err := saveProgress(tx, player, p); err != nil {
		return def, err
	}
	if err := tx.Commit(); err != nil {
		return def, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return p, nil
}

// ClaimDaily grants today's login reward if it was not claimed yet.
func (s *Store) ClaimDaily(player string, def core.Progress, rewards []core.DailyReward, now time.Time) (core.Progress, core.DailyReward, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return def, core.DailyReward{}, false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	p, err := loadOrCreate(tx, player, def)
	if err != nil {
		return def, core.DailyReward{}, false, err
	}
	next, reward, ok := core.ClaimDaily(p, rewards, now)
	if !ok {
		return p, core.DailyReward{}, false, nil
	}
	if err := saveProgress(tx, player, next); err != nil {
		return p, core.DailyReward{}, false, err
	}
	if err := tx.Commit(); err != nil {
		return p, core.DailyReward{}, false, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return next, reward, true, nil
}

// ResetProgress deletes the player's progress and attempt history.
// Both tables are cleared in one transaction.
func (s *Store) ResetProgress(player string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM attempts WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM progress WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

func loadOrCreate(q querier, player string, def core.Progress) (core.Progress, error) {
	var p core.Progress
	var lastDaily sql.NullString
	err := q.QueryRow(
		`SELECT lives, max_lives, currency, unlocked_levels, total_score,
		        bombs, hammers, shuffles, rainbows, streak, last_daily
		 FROM progress WHERE player = ?`,
		player,
	).Scan(
		&p.Lives, &p.MaxLives, &p.Currency, &p.UnlockedLevels, &p.TotalScore,
		&p.Boosters.Bomb, &p.Boosters.Hammer, &p.Boosters.Shuffle, &p.Boosters.Rainbow,
		&p.Streak, &lastDaily,
	)
	if errors.Is(err, sql.ErrNoRows) {
		if err := saveProgress(q, player, def); err != nil {
			return def, err
		}
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	if lastDaily.Valid {
		p.LastDaily = parseTime(lastDaily.String)
	}
	return p, nil
}

func saveProgress(q querier, player string, p core.Progress) error {
	var lastDaily any
	if !p.LastDaily.IsZero() {
		lastDaily = p.LastDaily.Format(time.RFC3339)
	}
	_, err := q.Exec(
		`INSERT INTO progress
		 (player, lives, max_lives, currency, unlocked_levels, total_score,
		  bombs, hammers, shuffles, rainbows, streak, last_daily, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
		  lives = excluded.lives,
		  max_lives = excluded.max_lives,
		  currency = excluded.currency,
		  unlocked_levels = excluded.unlocked_levels,
		  total_score = excluded.total_score,
		  bombs = excluded.bombs,
		  hammers = excluded.hammers,
		  shuffles = excluded.shuffles,
		  rainbows = excluded.rainbows,
		  streak = excluded.streak,
		  last_daily = excluded.last_daily,
		  updated_at = CURRENT_TIMESTAMP`,
		player, p.Lives, p.MaxLives, p.Currency, p.UnlockedLevels, p.TotalScore,
		p.Boosters.Bomb, p.Boosters.Hammer, p.Boosters.Shuffle, p.Boosters.Rainbow,
		p.Streak, lastDaily,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// RefillLives buys a full set of lives for the player at price.
// It reports false when the purchase was refused.
func (s *Store) RefillLives(player string, def core.Progress, price int) (core.Progress, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return def, false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	p, err := loadOrCreate(tx, player, def)
	if err != nil {
		return def, false, err
	}
	next, ok := core.RefillLives(p, price)
	if !ok {
		return p, false, nil
	}
	if err := saveProgress(tx, player, next); err != nil {
		return p, false, err
	}
	if err := tx.Commit(); err != nil {
		return p, false, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return next, true, nil
}
