package lobby

import "log"

// Relay fans messages out to lobby members. It works on point-in-time peer
// snapshots taken under the lobby lock, and emits with no lock held, so a
// slow client never stalls membership changes. Dead targets are skipped
// silently; cleanup of disconnected members is the leave/disconnect rule's
// job, not the relay's.
type Relay struct{}

// NewRelay returns a relay.
func NewRelay() *Relay {
	return &Relay{}
}

// ToOthers sends an event to every still-connected member of the lobby
// except the originator.
func (r *Relay) ToOthers(lb *Lobby, origin Peer, event string, payload interface{}) {
	r.send(lb.Peers(origin.ID()), event, payload)
}

// ToLeader sends an event to the current leader only. The leader's client
// redistributes lobby updates to its own UI, so membership changes are not
// broadcast to everyone here.
func (r *Relay) ToLeader(lb *Lobby, event string, payload interface{}) {
	leader, ok := lb.Leader()
	if !ok {
		return
	}
	r.send([]Peer{leader}, event, payload)
}

func (r *Relay) send(peers []Peer, event string, payload interface{}) {
	for _, p := range peers {
		if !p.Connected() {
			continue
		}
		if err := p.Emit(event, payload); err != nil {
			log.Printf("[RELAY-ERROR] emit %q to %s failed: %v", event, p.ID(), err)
		}
	}
}
