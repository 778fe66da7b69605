package handlers

import (
	"partyhub/services/lobby"
	socketio_types "partyhub/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleCreateLobby decodes a create_lobby event and dispatches it to the
// session service. Expected payload: {userID, name, region}.
func HandleCreateLobby(svc *lobby.Service, client *socket.Socket) func(args ...interface{}) {
	peer := &socketio_types.SocketPeer{Client: client}
	return func(args ...interface{}) {
		var req lobby.CreateLobbyRequest
		if !decodeRequest(client, "create_lobby", args, &req) {
			return
		}
		if !requireFields(client, map[string]string{
			"name":   req.Name,
			"region": req.Region,
		}) {
			return
		}

		svc.Dispatch(peer, req)
	}
}

// HandleJoinLobby decodes a join_lobby event. Expected payload:
// {lobbyID, userID, name, region}.
func HandleJoinLobby(svc *lobby.Service, client *socket.Socket) func(args ...interface{}) {
	peer := &socketio_types.SocketPeer{Client: client}
	return func(args ...interface{}) {
		var req lobby.JoinLobbyRequest
		if !decodeRequest(client, "join_lobby", args, &req) {
			return
		}
		if !requireFields(client, map[string]string{
			"lobbyID": req.LobbyID,
			"name":    req.Name,
			"region":  req.Region,
		}) {
			return
		}

		svc.Dispatch(peer, req)
	}
}

// HandleLeaveLobby decodes a leave_lobby event. Expected payload:
// {lobbyID, userID}.
func HandleLeaveLobby(svc *lobby.Service, client *socket.Socket) func(args ...interface{}) {
	peer := &socketio_types.SocketPeer{Client: client}
	return func(args ...interface{}) {
		var req lobby.LeaveLobbyRequest
		if !decodeRequest(client, "leave_lobby", args, &req) {
			return
		}
		if !requireFields(client, map[string]string{
			"lobbyID": req.LobbyID,
		}) {
			return
		}

		svc.Dispatch(peer, req)
	}
}
