package http

import (
	"time"

	"github.com/roomify/roomify-backend/internal/invoice"
	userHttp "github.com/roomify/roomify-backend/internal/user/http"
)

// PaymentResponse is the payment record in API responses.
type PaymentResponse struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPaymentResponse converts a domain payment to its API representation.
func NewPaymentResponse(p *invoice.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

// BookingTag is the booking summary embedded in invoice responses.
type BookingTag struct {
	ID           string    `json:"id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Status       string    `json:"status"`
}

// InvoiceResponse is the populated invoice returned by the API.
type InvoiceResponse struct {
	ID         string           `json:"id"`
	User       userHttp.UserTag `json:"user"`
	Booking    BookingTag       `json:"booking"`
	Amount     float64          `json:"amount"`
	Status     string           `json:"status"`
	IssuedDate time.Time        `json:"issued_date"`
	Payment    *PaymentResponse `json:"payment,omitempty"`
}

// NewInvoiceResponse converts a domain invoice to its API representation.
func NewInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:   inv.ID,
		User: userHttp.UserTag{ID: inv.UserID, Name: inv.UserName, Email: inv.UserEmail},
		Booking: BookingTag{
			ID:           inv.Booking.ID,
			CheckInDate:  inv.Booking.CheckInDate,
			CheckOutDate: inv.Booking.CheckOutDate,
			Status:       inv.Booking.Status,
		},
		Amount:     inv.Amount,
		Status:     string(inv.Status),
		IssuedDate: inv.IssuedDate,
	}
	if inv.Payment != nil {
		p := NewPaymentResponse(inv.Payment)
		resp.Payment = &p
	}
	return resp
}

// GenerateInvoiceRequest defines the payload for generating an invoice.
type GenerateInvoiceRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// RecordPaymentRequest defines the payload for settling an invoice.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"required"`
}

// RecordPaymentResponse returns the updated invoice and the new payment.
type RecordPaymentResponse struct {
	Message string          `json:"message"`
	Invoice InvoiceResponse `json:"invoice"`
	Payment PaymentResponse `json:"payment"`
}
