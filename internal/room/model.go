package room

import (
	"net/http"
	"time"

	"github.com/roomify/roomify-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrDuplicateNumber = apperror.New(http.StatusConflict, "room number already exists")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "invalid room type")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid room status")
)

// Type classifies a room for guests.
type Type string

const (
	TypeSingle Type = "Single"
	TypeDouble Type = "Double"
	TypeSuite  Type = "Suite"
	TypeDeluxe Type = "Deluxe"
)

// Valid reports whether the type is one of the known room types.
func (t Type) Valid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypeDeluxe:
		return true
	}
	return false
}

// Status tracks the physical state of a room. Maintenance means the room
// needs cleaning after checkout, not that it is broken.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusOccupied    Status = "Occupied"
	StatusMaintenance Status = "Maintenance"
)

// Valid reports whether the status is one of the known room statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

// Room is a bookable hotel room.
type Room struct {
	ID            string // UUID
	RoomNumber    string // unique
	Type          Type
	Status        Status
	PricePerNight float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
