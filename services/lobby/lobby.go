package lobby

import (
	"errors"
	"sync"

	"partyhub/models"
)

var (
	// ErrLobbyClosed is returned when joining a lobby that already lost
	// its last member and is being removed from the registry.
	ErrLobbyClosed = errors.New("lobby is closed")

	// ErrDuplicateMember is returned when a user id is already present in
	// the lobby's member list.
	ErrDuplicateMember = errors.New("user is already a member of this lobby")
)

// Player is one lobby membership record. The peer reference targets sends
// and liveness checks; it stays unexported so it can never leak into a
// serialized payload.
type Player struct {
	UserID   int
	Name     string
	IsLeader bool
	peer     Peer
}

// NewPlayer builds a membership record bound to the requester's connection.
func NewPlayer(userID int, name string, isLeader bool, peer Peer) *Player {
	return &Player{
		UserID:   userID,
		Name:     name,
		IsLeader: isLeader,
		peer:     peer,
	}
}

// Lobby is a party of players preparing to enter a match together. Member
// order is join order and the member at position 0 is always the leader.
// Every membership mutation happens under the lobby's own mutex, so
// requests against different lobbies proceed in parallel while requests
// against the same lobby are fully serialized.
type Lobby struct {
	mu      sync.Mutex
	id      string
	region  string
	members []*Player
	closed  bool
}

func newLobby(id, region string) *Lobby {
	return &Lobby{id: id, region: region}
}

// ID returns the lobby's immutable identifier.
func (l *Lobby) ID() string { return l.id }

// Region returns the lobby's immutable region tag.
func (l *Lobby) Region() string { return l.region }

// Join appends a member. It fails when the lobby already emptied out
// (a concurrent leave destroyed it) or when the user id is taken.
func (l *Lobby) Join(p *Player) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrLobbyClosed
	}
	for _, m := range l.members {
		if m.UserID == p.UserID {
			return ErrDuplicateMember
		}
	}
	l.members = append(l.members, p)
	return nil
}

// Remove deletes the member with the given user id and applies the
// departure rule: if members remain, the first one becomes leader; if none
// remain, the lobby closes and must be dropped from the registry by the
// caller. A missing user id is a no-op, which keeps the rule idempotent
// when an explicit leave races a disconnect event for the same member.
func (l *Lobby) Remove(userID int) (removed, empty bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.removeAt(l.indexOf(func(m *Player) bool { return m.UserID == userID }))
}

// RemoveByPeer is Remove keyed by connection id, used by the disconnect
// path where only the peer is known.
func (l *Lobby) RemoveByPeer(peerID string) (removed, empty bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.removeAt(l.indexOf(func(m *Player) bool { return m.peer != nil && m.peer.ID() == peerID }))
}

func (l *Lobby) indexOf(match func(*Player) bool) int {
	for i, m := range l.members {
		if match(m) {
			return i
		}
	}
	return -1
}

// removeAt must be called with the mutex held.
func (l *Lobby) removeAt(i int) (removed, empty bool) {
	if i < 0 {
		return false, false
	}
	l.members = append(l.members[:i], l.members[i+1:]...)
	if len(l.members) == 0 {
		l.closed = true
		return true, true
	}
	l.members[0].IsLeader = true
	return true, false
}

// HasPeer reports whether any member is bound to the given connection id.
func (l *Lobby) HasPeer(peerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.indexOf(func(m *Player) bool { return m.peer != nil && m.peer.ID() == peerID }) >= 0
}

// MemberCount returns the current number of members.
func (l *Lobby) MemberCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.members)
}

// Leader returns the peer of the current leader, if any.
func (l *Lobby) Leader() (Peer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.members) == 0 {
		return nil, false
	}
	return l.members[0].peer, true
}

// Peers returns the peers of all current members except the one with the
// given connection id. Pass an empty string to get every member's peer.
// The returned slice is a consistent point-in-time copy, so callers can
// send to it without holding the lobby lock.
func (l *Lobby) Peers(excludePeerID string) []Peer {
	l.mu.Lock()
	defer l.mu.Unlock()

	peers := make([]Peer, 0, len(l.members))
	for _, m := range l.members {
		if m.peer == nil || m.peer.ID() == excludePeerID {
			continue
		}
		peers = append(peers, m.peer)
	}
	return peers
}

// Snapshot builds the sanitized outward-facing view of the lobby. Member
// state is copied field by field; the connection handle is deliberately
// left behind.
func (l *Lobby) Snapshot() models.LobbySnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := models.LobbySnapshot{
		ID:      l.id,
		Region:  l.region,
		Members: make([]models.PlayerSnapshot, len(l.members)),
	}
	for i, m := range l.members {
		snap.Members[i] = models.PlayerSnapshot{
			UserID:   m.UserID,
			Name:     m.Name,
			IsLeader: m.IsLeader,
		}
	}
	return snap
}
