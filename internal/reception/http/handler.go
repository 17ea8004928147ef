package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	bookingHttp "github.com/roomify/roomify-backend/internal/booking/http"
	"github.com/roomify/roomify-backend/internal/pkg/response"
	"github.com/roomify/roomify-backend/internal/reception"
)

type Handler struct {
	service reception.Service
}

func NewHandler(service reception.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.CheckIn(c.Request.Context(), req.BookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckResponse{
		Message: "guest checked in successfully",
		Booking: bookingHttp.NewBookingResponse(b),
	})
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.CheckOut(c.Request.Context(), req.BookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckResponse{
		Message: "guest checked out successfully",
		Booking: bookingHttp.NewBookingResponse(b),
	})
}
