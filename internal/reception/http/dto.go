package http

import (
	bookingHttp "github.com/roomify/roomify-backend/internal/booking/http"
)

type CheckRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type CheckResponse struct {
	Message string                      `json:"message"`
	Booking bookingHttp.BookingResponse `json:"booking"`
}
