package routes

import (
	"partyhub/controllers"
	"partyhub/services/lobby"
	"partyhub/utils"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, registry *lobby.Registry) {
	router.Use(utils.Logger())

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/lobbies", controllers.GetAllLobbies(registry))

	api.GET("/lobbies/:lobby_id", controllers.GetLobbyInfo(registry))
}
