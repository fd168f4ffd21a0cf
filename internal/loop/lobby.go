package loop

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// LobbyEvent is a notice from the lobby to its players.
type LobbyEvent int

const (
	EventServerShutdown LobbyEvent = iota
)

// Handle is a player's membership in a lobby.
type Handle struct {
	ID       string
	Username string
	Events   chan LobbyEvent
}

// Score is a result reported to the lobby.
type Score struct {
	Username string
	Points   int
}

// Lobby tracks the players of one server. Every player runs an independent
// game; the lobby only counts them, keeps the best score and announces
// shutdowns. Safe for concurrent use.
type Lobby struct {
	mu      sync.RWMutex
	players map[string]*Handle
	best    Score
}

// NewLobby creates an empty lobby.
func NewLobby() *Lobby {
	return &Lobby{players: make(map[string]*Handle)}
}

// Register adds a player and returns its handle.
func (l *Lobby) Register(username string) *Handle {
	h := &Handle{
		ID:       uuid.NewString(),
		Username: username,
		Events:   make(chan LobbyEvent, 4),
	}
	l.mu.Lock()
	l.players[h.ID] = h
	l.mu.Unlock()
	return h
}

// Unregister removes a player. Unknown IDs are ignored.
func (l *Lobby) Unregister(id string) {
	l.mu.Lock()
	delete(l.players, id)
	l.mu.Unlock()
}

// Players returns the number of connected players.
func (l *Lobby) Players() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.players)
}

// ReportScore records a finished game and reports whether it is the new best.
func (l *Lobby) ReportScore(username string, points int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if points <= l.best.Points {
		return false
	}
	l.best = Score{Username: username, Points: points}
	return true
}

// Best returns the best score reported so far.
func (l *Lobby) Best() Score {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.best
}

// Shutdown notifies all players about the shutdown and waits for them to
// disconnect, up to the given timeout.
func (l *Lobby) Shutdown(timeout time.Duration) {
	l.mu.RLock()
	for _, h := range l.players {
		select {
		case h.Events <- EventServerShutdown:
		default:
		}
	}
	l.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if l.Players() == 0 {
				return
			}
		}
	}
}
