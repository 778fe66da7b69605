package handlers

import (
	"partyhub/services/lobby"
	socketio_types "partyhub/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleMatchJoin decodes a match_join event: the leader pulls the party
// into a match room. Expected payload: {roomName, lobbyID} — the same
// shape the event is relayed out with.
func HandleMatchJoin(svc *lobby.Service, client *socket.Socket) func(args ...interface{}) {
	peer := &socketio_types.SocketPeer{Client: client}
	return func(args ...interface{}) {
		var req lobby.MatchJoinRequest
		if !decodeRequest(client, "match_join", args, &req) {
			return
		}
		if !requireFields(client, map[string]string{
			"roomName": req.RoomName,
			"lobbyID":  req.LobbyID,
		}) {
			return
		}

		svc.Dispatch(peer, req)
	}
}

// HandleMatchLeaveWithParty decodes a match_leave_with_party event.
// Expected payload: {roomName, lobbyID}.
func HandleMatchLeaveWithParty(svc *lobby.Service, client *socket.Socket) func(args ...interface{}) {
	peer := &socketio_types.SocketPeer{Client: client}
	return func(args ...interface{}) {
		var req lobby.MatchLeaveWithPartyRequest
		if !decodeRequest(client, "match_leave_with_party", args, &req) {
			return
		}
		if !requireFields(client, map[string]string{
			"roomName": req.RoomName,
			"lobbyID":  req.LobbyID,
		}) {
			return
		}

		svc.Dispatch(peer, req)
	}
}

// HandleStartMatchmaking decodes a start_matchmaking event. Expected
// payload: {lobbyID, leaderName}.
func HandleStartMatchmaking(svc *lobby.Service, client *socket.Socket) func(args ...interface{}) {
	peer := &socketio_types.SocketPeer{Client: client}
	return func(args ...interface{}) {
		var req lobby.MatchmakingRequest
		if !decodeRequest(client, "start_matchmaking", args, &req) {
			return
		}
		if !requireFields(client, map[string]string{
			"lobbyID":    req.LobbyID,
			"leaderName": req.LeaderName,
		}) {
			return
		}

		svc.Dispatch(peer, req)
	}
}
