package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kingkung/internal/lobby"
	"kingkung/internal/room"
)

// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// @Summary List public rooms awaiting a second player
// @Tags Lobby
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /lobby [get]
func LobbyHandler(dir *lobby.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": dir.Snapshot()})
	}
}

// @Summary Room summary
// @Description Players, privacy and last winner for one room code
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code} [get]
func RoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, ok := rm.Summary(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
