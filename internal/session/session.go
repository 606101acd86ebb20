// Package session tracks connected player sessions so scores recorded
// over SSH can be attributed to a player name.
package session

import (
	"fmt"
	"sync"
	"time"
)

// ID uniquely identifies a player's connection (e.g., an SSH session).
type ID string

// Player describes one connected player.
type Player struct {
	SessionID   ID
	Name        string
	RemoteAddr  string
	ConnectedAt time.Time
}

// NewID builds a session ID from the remote address and connect time.
func NewID(remoteAddr string, at time.Time) ID {
	return ID(fmt.Sprintf("%s-%d", remoteAddr, at.UnixNano()))
}

// Registry tracks active player sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	players map[ID]Player
}

// NewRegistry creates a new session registry.
func NewRegistry() *Registry {
	return &Registry{
		players: make(map[ID]Player),
	}
}

// Register adds a player session to the registry.
func (r *Registry) Register(p Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[p.SessionID] = p
}

// Unregister removes a session from the registry.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
}

// Get retrieves a player by session ID.
func (r *Registry) Get(id ID) (Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	return p, ok
}

// Count returns the number of connected sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// List returns a snapshot of all connected players.
func (r *Registry) List() []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		result = append(result, p)
	}
	return result
}
