package http

import (
	"github.com/gin-gonic/gin"

	"kingkung/internal/api/ws"
	"kingkung/internal/lobby"
	"kingkung/internal/room"
)

func NewRouter(hub *ws.Hub, rm *room.Manager, dir *lobby.Directory) *gin.Engine {
	r := gin.Default()

	// Game protocol lives on the websocket; REST is discovery only.
	r.GET("/ws", hub.HandleWS)

	r.GET("/health", HealthHandler())
	r.GET("/lobby", LobbyHandler(dir))
	r.GET("/rooms/:code", RoomHandler(rm))

	return r
}
