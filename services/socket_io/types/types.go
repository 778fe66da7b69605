package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer holds the socket.io server plus a map of the currently
// connected sockets, keyed by socket id. The map is what lets the rest of
// the system enumerate live peers.
type SocketServer struct {
	Sio_server  *socket.Server
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Connections: make(map[string]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[string(client.Id())] = client
}

func (s *SocketServer) RemoveConnection(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, id)
}

// ConnectionCount returns how many sockets are currently tracked.
func (s *SocketServer) ConnectionCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Connections)
}

// SocketPeer adapts a socket.io connection to the lobby core's peer
// interface.
type SocketPeer struct {
	Client *socket.Socket
}

func (p *SocketPeer) ID() string {
	return string(p.Client.Id())
}

func (p *SocketPeer) Emit(event string, payload interface{}) error {
	return p.Client.Emit(event, payload)
}

func (p *SocketPeer) Connected() bool {
	return p.Client.Connected()
}
