package lobby

// Request is the closed set of inbound lobby operations. Each variant is a
// plain payload struct; Service.Dispatch switches over the set
// exhaustively, so adding an operation means adding a variant and a case.
type Request interface {
	isRequest()
}

// CreateLobbyRequest opens a new lobby with the requester as leader.
type CreateLobbyRequest struct {
	UserID int    `json:"userID"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// JoinLobbyRequest adds the requester to an existing lobby.
type JoinLobbyRequest struct {
	LobbyID string `json:"lobbyID"`
	UserID  int    `json:"userID"`
	Name    string `json:"name"`
	Region  string `json:"region"`
}

// LeaveLobbyRequest removes a member from a lobby.
type LeaveLobbyRequest struct {
	LobbyID string `json:"lobbyID"`
	UserID  int    `json:"userID"`
}

// MatchJoinRequest asks the other lobby members to enter a match room.
// It is relayed verbatim; lobby state is not touched.
type MatchJoinRequest struct {
	RoomName string `json:"roomName"`
	LobbyID  string `json:"lobbyID"`
}

// MatchLeaveWithPartyRequest asks the other lobby members to leave a match
// room together. Relayed verbatim.
type MatchLeaveWithPartyRequest struct {
	RoomName string `json:"roomName"`
	LobbyID  string `json:"lobbyID"`
}

// MatchmakingRequest tells the other lobby members that the leader started
// matchmaking. Relayed verbatim.
type MatchmakingRequest struct {
	LobbyID    string `json:"lobbyID"`
	LeaderName string `json:"leaderName"`
}

func (CreateLobbyRequest) isRequest()         {}
func (JoinLobbyRequest) isRequest()           {}
func (LeaveLobbyRequest) isRequest()          {}
func (MatchJoinRequest) isRequest()           {}
func (MatchLeaveWithPartyRequest) isRequest() {}
func (MatchmakingRequest) isRequest()         {}
