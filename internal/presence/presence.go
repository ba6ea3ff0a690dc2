// Package presence tracks which players are connected to the server.
// A player may hold one session at a time, so two connections never
// write the same progress row concurrently.
package presence

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyConnected is returned when a player already has a session.
var ErrAlreadyConnected = errors.New("presence: player already connected")

// SessionID identifies one connection.
type SessionID string

// Session describes one connected player.
type Session struct {
	ID      SessionID
	Player  string
	Remote  string
	Started time.Time
}

// Registry tracks active sessions by player.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Claim registers a session for player. The returned release function
// removes it again and is safe to call more than once.
func (r *Registry) Claim(player, remote string) (Session, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[player]; ok {
		return Session{}, nil, ErrAlreadyConnected
	}

	s := Session{
		ID:      SessionID(uuid.NewString()),
		Player:  player,
		Remote:  remote,
		Started: r.now(),
	}
	r.sessions[player] = s

	var once sync.Once
	release := func() {
		once.Do(func() { r.release(s) })
	}
	return s, release, nil
}

// release removes s unless the player has since claimed a new session.
func (r *Registry) release(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.sessions[s.Player]; ok && cur.ID == s.ID {
		delete(r.sessions, s.Player)
	}
}

// Get returns the session of a player.
func (r *Registry) Get(player string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[player]
	return s, ok
}

// Online returns the active sessions ordered by start time.
func (r *Registry) Online() []Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].Player < out[j].Player
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

// Count returns the number of connected players.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
