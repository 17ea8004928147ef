package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers front-desk check-in and check-out routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/reception")
	group.Use(authMiddleware, staffMiddleware)
	{
		group.POST("/checkin", h.CheckIn)
		group.POST("/checkout", h.CheckOut)
	}
}
