package lobby

import (
	"sync"

	"partyhub/models"
)

// Registry owns the set of active lobbies. It is the sole owner of Lobby
// instances: lobbies enter through Create and leave through Remove. The
// registry's own lock only guards the map; per-lobby membership state is
// guarded by each lobby's mutex.
type Registry struct {
	mu      sync.RWMutex
	lobbies map[string]*Lobby
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{lobbies: make(map[string]*Lobby)}
}

// Create inserts a new empty lobby with a fresh identifier and the given
// region. Identifier generation retries under the write lock until it
// lands on an unused id, so two concurrent Create calls can never insert
// colliding lobbies.
func (r *Registry) Create(region string) *Lobby {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := newHexID()
	for {
		if _, exists := r.lobbies[id]; !exists {
			break
		}
		id = newHexID()
	}

	lb := newLobby(id, region)
	r.lobbies[id] = lb
	return lb
}

// Find looks a lobby up by identifier.
func (r *Registry) Find(id string) (*Lobby, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lb, ok := r.lobbies[id]
	return lb, ok
}

// Remove deletes a lobby from the active set. Removing an absent id is a
// no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lobbies, id)
}

// Count returns the number of active lobbies.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lobbies)
}

// ByPeer returns every lobby that has a member bound to the given
// connection id. Used by the disconnect path, where the departing member
// is only known by its connection.
func (r *Registry) ByPeer(peerID string) []*Lobby {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Lobby
	for _, lb := range r.lobbies {
		if lb.HasPeer(peerID) {
			out = append(out, lb)
		}
	}
	return out
}

// Snapshots returns sanitized views of every active lobby, for the REST
// surface.
func (r *Registry) Snapshots() []models.LobbySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LobbySnapshot, 0, len(r.lobbies))
	for _, lb := range r.lobbies {
		out = append(out, lb.Snapshot())
	}
	return out
}
