package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard-server/middleware"
	ws "hr-dashboard-server/websocket"
)

// RegisterEventRoutes registers the live event stream. The token travels as a
// query parameter because browsers cannot set headers on a WebSocket
// handshake.
func RegisterEventRoutes(router *gin.RouterGroup, hub *ws.Hub) {
	router.GET("/ws/events", middleware.WebSocketAuthMiddleware(), func(c *gin.Context) {
		ws.Serve(hub, c.Writer, c.Request, c.GetUint("user_id"))
	})
}
