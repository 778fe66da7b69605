package lobby

import (
	"encoding/json"
	"fmt"
	"log"

	"partyhub/models"
)

// Outbound event names.
const (
	EventLobbyCreated       = "lobby_created"
	EventLobbyJoined        = "lobby_joined"
	EventLobbyUpdate        = "lobby_update"
	EventMatchJoin          = "match_join"
	EventMatchLeave         = "match_leave_with_party"
	EventMatchmakingStarted = "matchmaking_started"
	EventError              = "error"
)

// Service is the request-handling core: it validates requests, mutates
// registry and lobby state, and hands state changes to the relay. The
// registry is injected at construction so tests get an isolated instance.
type Service struct {
	registry *Registry
	relay    *Relay
}

// NewService wires the session service to its registry and relay.
func NewService(registry *Registry, relay *Relay) *Service {
	return &Service{registry: registry, relay: relay}
}

// Registry exposes the registry for the read-only HTTP surface.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Dispatch routes one inbound request from a peer to its handler. The
// switch is exhaustive over the Request variants.
func (s *Service) Dispatch(peer Peer, req Request) {
	switch r := req.(type) {
	case CreateLobbyRequest:
		s.handleCreate(peer, r)
	case JoinLobbyRequest:
		s.handleJoin(peer, r)
	case LeaveLobbyRequest:
		s.handleLeave(peer, r)
	case MatchJoinRequest:
		s.handleMatchJoin(peer, r)
	case MatchLeaveWithPartyRequest:
		s.handleMatchLeave(peer, r)
	case MatchmakingRequest:
		s.handleMatchmaking(peer, r)
	default:
		log.Printf("[DISPATCH-ERROR] unhandled request type %T from %s", req, peer.ID())
	}
}

func (s *Service) handleCreate(peer Peer, req CreateLobbyRequest) {
	player := NewPlayer(req.UserID, req.Name, true, peer)

	lb := s.registry.Create(req.Region)
	if err := lb.Join(player); err != nil {
		// Freshly created lobby, nothing can have closed it yet.
		log.Printf("[CREATE-ERROR] joining own lobby %s: %v", lb.ID(), err)
		s.registry.Remove(lb.ID())
		return
	}

	// The creation response historically carries success=false; deployed
	// clients key on the payload, so the flag stays as-is for wire compat.
	s.reply(peer, EventLobbyCreated, models.WireResponse{
		Success: false,
		Payload: marshalSnapshot(lb.Snapshot()),
	})

	log.Printf("[CREATE] lobby %s created by %s (userID=%d, region=%s)",
		lb.ID(), req.Name, req.UserID, req.Region)
}

func (s *Service) handleJoin(peer Peer, req JoinLobbyRequest) {
	lb, ok := s.registry.Find(req.LobbyID)
	if !ok {
		s.reply(peer, EventLobbyJoined, models.WireResponse{
			Success: false,
			Payload: fmt.Sprintf("lobby %s not found", req.LobbyID),
		})
		return
	}

	if lb.Region() != req.Region {
		s.reply(peer, EventLobbyJoined, models.WireResponse{
			Success: false,
			Payload: fmt.Sprintf("lobby %s is hosted in region %s, not %s",
				lb.ID(), lb.Region(), req.Region),
		})
		return
	}

	player := NewPlayer(req.UserID, req.Name, false, peer)
	if err := lb.Join(player); err != nil {
		reason := fmt.Sprintf("lobby %s not found", req.LobbyID)
		if err == ErrDuplicateMember {
			reason = fmt.Sprintf("userID %d is already in lobby %s", req.UserID, lb.ID())
		}
		s.reply(peer, EventLobbyJoined, models.WireResponse{Success: false, Payload: reason})
		return
	}

	s.reply(peer, EventLobbyJoined, models.WireResponse{
		Success: true,
		Payload: marshalSnapshot(lb.Snapshot()),
	})
	s.sendUpdateLobby(lb)

	log.Printf("[JOIN] %s (userID=%d) joined lobby %s", req.Name, req.UserID, lb.ID())
}

func (s *Service) handleLeave(peer Peer, req LeaveLobbyRequest) {
	lb, ok := s.registry.Find(req.LobbyID)
	if !ok {
		// Leaving an unknown lobby is a no-op so a retried or duplicated
		// leave never errors.
		return
	}

	removed, empty := lb.Remove(req.UserID)
	s.applyDeparture(lb, removed, empty)

	if removed {
		log.Printf("[LEAVE] userID=%d left lobby %s", req.UserID, lb.ID())
	}
}

// HandleDisconnect runs the same departure rule as an explicit leave for
// every lobby the closed connection was a member of. The transport layer
// invokes it from its connection-closed event.
func (s *Service) HandleDisconnect(peer Peer) {
	for _, lb := range s.registry.ByPeer(peer.ID()) {
		removed, empty := lb.RemoveByPeer(peer.ID())
		s.applyDeparture(lb, removed, empty)

		if removed {
			log.Printf("[DISCONNECT] peer %s removed from lobby %s", peer.ID(), lb.ID())
		}
	}
}

// applyDeparture finishes a member removal: an emptied lobby leaves the
// registry, otherwise the promoted leader gets the fresh snapshot. Invoked
// after the lobby lock is released, so the update send holds no lock.
func (s *Service) applyDeparture(lb *Lobby, removed, empty bool) {
	if !removed {
		return
	}
	if empty {
		s.registry.Remove(lb.ID())
		log.Printf("[LOBBY] lobby %s emptied and destroyed", lb.ID())
		return
	}
	s.sendUpdateLobby(lb)
}

func (s *Service) handleMatchJoin(peer Peer, req MatchJoinRequest) {
	lb, ok := s.registry.Find(req.LobbyID)
	if !ok {
		s.reply(peer, EventError, models.ErrorMessage{Error: fmt.Sprintf("lobby %s not found", req.LobbyID)})
		return
	}

	s.relay.ToOthers(lb, peer, EventMatchJoin, req)
	log.Printf("[MATCH] lobby %s entering match room %q", lb.ID(), req.RoomName)
}

func (s *Service) handleMatchLeave(peer Peer, req MatchLeaveWithPartyRequest) {
	lb, ok := s.registry.Find(req.LobbyID)
	if !ok {
		s.reply(peer, EventError, models.ErrorMessage{Error: fmt.Sprintf("lobby %s not found", req.LobbyID)})
		return
	}

	s.relay.ToOthers(lb, peer, EventMatchLeave, req)
	log.Printf("[MATCH] lobby %s leaving match room %q", lb.ID(), req.RoomName)
}

func (s *Service) handleMatchmaking(peer Peer, req MatchmakingRequest) {
	lb, ok := s.registry.Find(req.LobbyID)
	if !ok {
		s.reply(peer, EventError, models.ErrorMessage{Error: fmt.Sprintf("lobby %s not found", req.LobbyID)})
		return
	}

	s.relay.ToOthers(lb, peer, EventMatchmakingStarted, req)
	log.Printf("[MATCHMAKING] lobby %s started matchmaking (leader %s)", lb.ID(), req.LeaderName)
}

// sendUpdateLobby pushes the sanitized snapshot to the current leader. The
// leader's client fans membership changes out to the rest of the party, so
// only position 0 is targeted here.
func (s *Service) sendUpdateLobby(lb *Lobby) {
	s.relay.ToLeader(lb, EventLobbyUpdate, models.WireResponse{
		Success: true,
		Payload: marshalSnapshot(lb.Snapshot()),
	})
}

func (s *Service) reply(peer Peer, event string, payload interface{}) {
	if !peer.Connected() {
		return
	}
	if err := peer.Emit(event, payload); err != nil {
		log.Printf("[REPLY-ERROR] emit %q to %s failed: %v", event, peer.ID(), err)
	}
}

func marshalSnapshot(snap models.LobbySnapshot) string {
	data, err := json.Marshal(snap)
	if err != nil {
		// LobbySnapshot contains only plain serializable fields.
		log.Printf("[SNAPSHOT-ERROR] marshaling lobby %s: %v", snap.ID, err)
		return "{}"
	}
	return string(data)
}
