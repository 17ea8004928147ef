package http

import (
	"fmt"
	"time"

	"github.com/roomify/roomify-backend/internal/booking"
	catHttp "github.com/roomify/roomify-backend/internal/catalog/http"
	roomHttp "github.com/roomify/roomify-backend/internal/room/http"
	userHttp "github.com/roomify/roomify-backend/internal/user/http"
)

// BookingResponse is the populated booking returned by the API.
type BookingResponse struct {
	ID           string               `json:"id"`
	User         userHttp.UserTag     `json:"user"`
	Rooms        []roomHttp.RoomTag   `json:"rooms"`
	Services     []catHttp.ServiceTag `json:"services"`
	CheckInDate  time.Time            `json:"check_in_date"`
	CheckOutDate time.Time            `json:"check_out_date"`
	TotalPrice   float64              `json:"total_price"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// NewBookingResponse converts a domain booking to its API representation.
func NewBookingResponse(b *booking.Booking) BookingResponse {
	rooms := make([]roomHttp.RoomTag, len(b.Rooms))
	for i, r := range b.Rooms {
		rooms[i] = roomHttp.RoomTag{ID: r.ID, RoomNumber: r.RoomNumber, Type: r.Type}
	}

	services := make([]catHttp.ServiceTag, len(b.Services))
	for i, s := range b.Services {
		services[i] = catHttp.ServiceTag{ID: s.ID, Description: s.Description, Price: s.Price}
	}

	return BookingResponse{
		ID:           b.ID,
		User:         userHttp.UserTag{ID: b.UserID, Name: b.UserName, Email: b.UserEmail},
		Rooms:        rooms,
		Services:     services,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// CreateBookingRequest defines the payload for creating a booking.
// Dates are calendar dates; full RFC 3339 timestamps are also accepted.
type CreateBookingRequest struct {
	RoomIDs      []string `json:"room_ids" binding:"required,min=1,dive,uuid"`
	ServiceIDs   []string `json:"service_ids" binding:"omitempty,dive,uuid"`
	CheckInDate  string   `json:"check_in_date" binding:"required"`
	CheckOutDate string   `json:"check_out_date" binding:"required"`
}

// ParseDate parses a booking date in either date-only or RFC 3339 form.
func ParseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
}
