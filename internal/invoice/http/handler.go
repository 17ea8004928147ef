package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomify/roomify-backend/internal/auth"
	"github.com/roomify/roomify-backend/internal/invoice"
	"github.com/roomify/roomify-backend/internal/pkg/response"
)

type Handler struct {
	service invoice.Service
}

func NewHandler(service invoice.Service) *Handler {
	return &Handler{service: service}
}

// Generate creates the invoice for a booking. Staff only.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	inv, err := h.service.Generate(c.Request.Context(), req.BookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewInvoiceResponse(inv))
}

// Pay records the single settling payment for an invoice. Staff only.
func (h *Handler) Pay(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	inv, p, err := h.service.RecordPayment(c.Request.Context(), c.Param("id"), req.Amount, invoice.Method(req.Method))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, RecordPaymentResponse{
		Message: "payment recorded successfully",
		Invoice: NewInvoiceResponse(inv),
		Payment: NewPaymentResponse(p),
	})
}

// Get returns an invoice by id. Owner or any staff role.
func (h *Handler) Get(c *gin.Context) {
	inv, err := h.service.GetByID(c.Request.Context(), c.Param("id"), auth.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewInvoiceResponse(inv))
}
