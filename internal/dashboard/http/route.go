package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the admin dashboard routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/dashboard")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("/stats", h.Stats)
	}
}
