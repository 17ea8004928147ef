package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers invoicing and payment routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/invoices")
	group.Use(authMiddleware)
	{
		group.POST("", staffMiddleware, h.Generate)
		group.POST("/:id/pay", staffMiddleware, h.Pay)
		group.GET("/:id", h.Get)
	}
}
