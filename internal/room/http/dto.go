package http

import (
	"time"

	"github.com/roomify/roomify-backend/internal/room"
)

// RoomResponse is the shape of room data returned in API responses.
type RoomResponse struct {
	ID            string    `json:"id"`
	RoomNumber    string    `json:"room_number"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	PricePerNight float64   `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RoomTag is a brief representation of a room embedded in booking responses.
type RoomTag struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Type       string `json:"type"`
}

// NewRoomResponse converts a domain room.Room to its API representation.
func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Type:          string(r.Type),
		Status:        string(r.Status),
		PricePerNight: r.PricePerNight,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// CreateRoomRequest defines the payload for creating a room.
type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=Single Double Suite Deluxe"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
}

// UpdateRoomRequest defines fields allowed to be updated on a room.
// Use pointers to distinguish between "field not sent" and zero values.
type UpdateRoomRequest struct {
	RoomNumber    *string  `json:"room_number"`
	Type          *string  `json:"type" binding:"omitempty,oneof=Single Double Suite Deluxe"`
	PricePerNight *float64 `json:"price_per_night" binding:"omitempty,gt=0"`
}

// UpdateStatusRequest defines the payload for the housekeeping status endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Available Occupied Maintenance"`
}
