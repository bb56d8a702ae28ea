package http

import (
	"castle-siege/internal/api/ws"
	"castle-siege/internal/config"
	"castle-siege/internal/room"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for renderer live updates
	r.GET("/ws", hub.HandleWS)

	r.GET("/healthz", HealthHandler())
	r.GET("/config", GetConfigHandler(cfg))

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.DELETE("/rooms/:code", DeleteRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/rooms/:code/click", ClickHandler(rm))
	r.POST("/rooms/:code/move", MoveHandler(rm))
	r.GET("/rooms/:code/targets", TargetsHandler(rm))
	r.GET("/rooms/:code/legal-moves", LegalMovesHandler(rm))

	return r
}
