package main

import (
	"log"
	"os"

	"partyhub/config"
	"partyhub/middleware"
	"partyhub/routes"
	"partyhub/services/lobby"
	"partyhub/services/redis"
	"partyhub/services/socket_io"
	socketio_types "partyhub/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Presence cache is optional: lobby state is all in-memory.
	redisClient, err := config.Connect_redis()
	if err != nil {
		log.Printf("Warning: Redis unavailable, presence tracking disabled: %v", err)
		redisClient = nil
	} else {
		defer redis.CloseRedis(redisClient)
	}

	registry := lobby.NewRegistry()
	service := lobby.NewService(registry, lobby.NewRelay())

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, registry)

	sio := (*socket_io.MySocketServer)(socketio_types.NewSocketServer())
	sio.Start(r, service, redisClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("USE_HTTPS") == "true" {
		certFile := os.Getenv("CERT_FILE")
		keyFile := os.Getenv("KEY_FILE")

		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
