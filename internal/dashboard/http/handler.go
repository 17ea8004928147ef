package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomify/roomify-backend/internal/dashboard"
	"github.com/roomify/roomify-backend/internal/pkg/response"
)

type Handler struct {
	service dashboard.Service
}

func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewStatsResponse(stats))
}
