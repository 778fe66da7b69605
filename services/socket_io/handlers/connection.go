package handlers

import (
	"log"
	"time"

	redis_models "partyhub/models/redis"
	"partyhub/services/lobby"
	"partyhub/services/redis"
	socketio_types "partyhub/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleDisconnecting runs the same departure rule as an explicit leave for
// every lobby the closing connection belongs to, marks the peer offline in
// the presence cache, and drops the socket from the connection map.
func HandleDisconnecting(svc *lobby.Service, client *socket.Socket,
	sio *socketio_types.SocketServer, rc *redis.RedisClient) func(args ...interface{}) {
	peer := &socketio_types.SocketPeer{Client: client}
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] socket %s disconnecting", client.Id())

		svc.HandleDisconnect(peer)

		if rc != nil {
			presence := &redis_models.PlayerPresence{
				SocketID: string(client.Id()),
				Status:   redis_models.StatusOffline,
				LastPing: time.Now().Unix(),
			}
			if err := rc.SavePlayerPresence(presence); err != nil {
				log.Printf("[DISCONNECT-ERROR] marking %s offline: %v", client.Id(), err)
			}
		}

		sio.RemoveConnection(string(client.Id()))
		log.Printf("[DISCONNECT-DONE] socket %s removed, %d connections left",
			client.Id(), sio.ConnectionCount())
	}
}
