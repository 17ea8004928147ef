package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers room CRUD routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", adminMiddleware, h.Create)
		group.PUT("/:id", adminMiddleware, h.Update)
		group.DELETE("/:id", adminMiddleware, h.Delete)
	}
}

// RegisterHousekeepingRoutes registers the room status endpoint used by
// housekeeping staff after cleaning.
func RegisterHousekeepingRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, housekeepingMiddleware gin.HandlerFunc) {
	group := g.Group("/housekeeping")
	group.Use(authMiddleware, housekeepingMiddleware)
	{
		group.PUT("/rooms/:id/status", h.UpdateStatus)
	}
}
