package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

// Attempt is one finished level session.
type Attempt struct {
	ID        int64
	SessionID string
	Player    string
	Level     int
	Score     int
	MovesLeft int
	Outcome   string
	Stars     int
	CreatedAt time.Time
}

// LevelBest is a player's best result on one level.
type LevelBest struct {
	Level     int
	BestScore int
	BestStars int
	Attempts  int
}

// PlayerStats contains aggregated statistics for a player.
type PlayerStats struct {
	Player     string
	Attempts   int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// AttemptFromState builds the attempt record for a finished session.
func AttemptFromState(player string, s core.State) Attempt {
	return Attempt{
		Player:    player,
		Level:     s.Level.Level,
		Score:     s.Score,
		MovesLeft: s.MovesLeft,
		Outcome:   s.Status.String(),
		Stars:     s.Stars(),
	}
}

// RecordAttempt stores a finished session and returns its session ID.
// A fresh UUID is generated when a.SessionID is empty.
func (s *Store) RecordAttempt(a Attempt) (string, error) {
	if a.SessionID == "" {
		a.SessionID = uuid.NewString()
	}
	if err := insertAttempt(s.db, a); err != nil {
		return "", err
	}
	return a.SessionID, nil
}

// FinishSession records the attempt and applies the session delta to the
// player's progress in a single transaction.
func (s *Store) FinishSession(a Attempt, def core.Progress, d core.ProgressDelta) (core.Progress, error) {
	if a.SessionID == "" {
		a.SessionID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return def, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := insertAttempt(tx, a); err != nil {
		return def, err
	}
	p, err := loadOrCreate(tx, a.Player, def)
	if err != nil {
		return def, err
	}
	p = p.Apply(d)
	if err := saveProgress(tx, a.Player, p); err != nil {
		return def, err
	}
	if err := tx.Commit(); err != nil {
		return def, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return p, nil
}

func insertAttempt(q querier, a Attempt) error {
	_, err := q.Exec(
		`INSERT INTO attempts (session_id, player, level, score, moves_left, outcome, stars)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.SessionID, a.Player, a.Level, a.Score, a.MovesLeft, a.Outcome, a.Stars,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save attempt: %w", err)
	}
	return nil
}

// TopScores retrieves the top N won attempts for a level across players.
// Results are ordered by score descending.
func (s *Store) TopScores(level, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, level, score, moves_left, outcome, stars, created_at
		 FROM attempts
		 WHERE level = ? AND outcome = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		level, core.StatusWon.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Player, &a.Level, &a.Score,
			&a.MovesLeft, &a.Outcome, &a.Stars, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecentAttempts returns the player's latest attempts, newest first.
func (s *Store) RecentAttempts(player string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, level, score, moves_left, outcome, stars, created_at
		 FROM attempts
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Player, &a.Level, &a.Score,
			&a.MovesLeft, &a.Outcome, &a.Stars, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestByLevel returns the player's best won result per level, ordered by
// level. Levels never won are omitted.
func (s *Store) BestByLevel(player string) (map[int]LevelBest, error) {
	rows, err := s.db.Query(
		`SELECT level, MAX(score), MAX(stars), COUNT(*)
		 FROM attempts
		 WHERE player = ? AND outcome = ?
		 GROUP BY level`,
		player, core.StatusWon.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[int]LevelBest)
	for rows.Next() {
		var b LevelBest
		if err := rows.Scan(&b.Level, &b.BestScore, &b.BestStars, &b.Attempts); err != nil {
			return nil, fmt.Errorf("storage: cannot scan best row: %w", err)
		}
		best[b.Level] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return best, nil
}

// PlayerStats retrieves aggregated statistics for a player.
func (s *Store) PlayerStats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        MAX(created_at)
		 FROM attempts WHERE player = ?`,
		core.StatusWon.String(), player,
	).Scan(&stats.Attempts, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}
