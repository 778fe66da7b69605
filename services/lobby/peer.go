package lobby

// Peer is the handle the lobby core keeps for a connected client. The
// transport layer (services/socket_io) supplies the concrete
// implementation; the core only needs to address a member, push a message
// to it and check that the underlying connection is still alive.
type Peer interface {
	// ID uniquely identifies the underlying connection for as long as it
	// lives. It is never serialized into client-facing payloads.
	ID() string

	// Emit pushes an event with a payload to the client. Sends are
	// fire-and-forget from the core's point of view.
	Emit(event string, payload interface{}) error

	// Connected reports whether the underlying connection is still open.
	Connected() bool
}
