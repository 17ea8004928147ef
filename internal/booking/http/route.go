package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking lifecycle routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/mybookings", h.MyBookings)
		group.GET("", staffMiddleware, h.List)
		group.GET("/:id", h.Get)
		group.PUT("/:id/cancel", h.Cancel)
	}
}
