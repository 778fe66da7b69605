package controllers

import (
	"net/http"

	"partyhub/services/lobby"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Description Returns pong when the server is up
// @Tags health
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary Lists all active lobbies
// @Description Returns sanitized snapshots of every active lobby
// @Tags lobby
// @Produce json
// @Success 200 {array} models.LobbySnapshot
// @Router /lobbies [get]
func GetAllLobbies(registry *lobby.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, registry.Snapshots())
	}
}

// @Summary Gives info of a lobby
// @Description Given a lobby id, returns its sanitized snapshot
// @Tags lobby
// @Produce json
// @Param lobby_id path string true "Id of the lobby wanted"
// @Success 200 {object} models.LobbySnapshot
// @Failure 404 {object} object{error=string}
// @Router /lobbies/{lobby_id} [get]
func GetLobbyInfo(registry *lobby.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		lobbyID := c.Param("lobby_id")

		lb, ok := registry.Find(lobbyID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
			return
		}

		c.JSON(http.StatusOK, lb.Snapshot())
	}
}
