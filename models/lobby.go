package models

// LobbySnapshot is the outward-facing view of a lobby. It is what clients
// receive in creation/join responses and in lobby updates; it never carries
// connection-identifying data.
type LobbySnapshot struct {
	ID      string           `json:"id"`
	Region  string           `json:"region"`
	Members []PlayerSnapshot `json:"members"`
}

// PlayerSnapshot mirrors one lobby member inside a LobbySnapshot.
type PlayerSnapshot struct {
	UserID   int    `json:"userID"`
	Name     string `json:"name"`
	IsLeader bool   `json:"isLeader"`
}

// WireResponse is the common response envelope: a success flag plus a
// payload string holding either a serialized LobbySnapshot or a
// human-readable failure reason.
type WireResponse struct {
	Success bool   `json:"success"`
	Payload string `json:"payload"`
}

// ErrorMessage is emitted when a request is malformed or cannot be served.
type ErrorMessage struct {
	Error string `json:"error"`
}
