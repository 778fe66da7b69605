package socket_io

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	redis_models "partyhub/models/redis"
	"partyhub/services/lobby"
	"partyhub/services/redis"
	"partyhub/services/socket_io/handlers"
	socketio_types "partyhub/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io endpoint on the gin router and registers the
// lobby event handlers for every incoming connection.
func (sio *MySocketServer) Start(router *gin.Engine, svc *lobby.Service, rc *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Connections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		(*socketio_types.SocketServer)(sio).AddConnection(client)
		log.Printf("[CONNECT] socket %s connected, %d connections total",
			client.Id(), (*socketio_types.SocketServer)(sio).ConnectionCount())

		if rc != nil {
			presence := &redis_models.PlayerPresence{
				SocketID: string(client.Id()),
				Status:   redis_models.StatusOnline,
				LastPing: time.Now().Unix(),
			}
			if err := rc.SavePlayerPresence(presence); err != nil {
				log.Printf("[CONNECT-ERROR] saving presence for %s: %v", client.Id(), err)
			}
		}

		// Open a new lobby with the requester as leader
		client.On("create_lobby", handlers.HandleCreateLobby(svc, client))

		// Join an existing lobby by id
		client.On("join_lobby", handlers.HandleJoinLobby(svc, client))

		// Exit a lobby voluntarily
		client.On("leave_lobby", handlers.HandleLeaveLobby(svc, client))

		// Leader pulls the party into a match room
		client.On("match_join", handlers.HandleMatchJoin(svc, client))

		// Leader pulls the party out of a match room
		client.On("match_leave_with_party", handlers.HandleMatchLeaveWithParty(svc, client))

		// Leader starts matchmaking for the party
		client.On("start_matchmaking", handlers.HandleStartMatchmaking(svc, client))

		// NOTE: runs the same departure rule as an explicit leave
		client.On("disconnecting", handlers.HandleDisconnecting(svc, client,
			(*socketio_types.SocketServer)(sio), rc))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
