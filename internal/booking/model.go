package booking

import (
	"net/http"
	"time"

	"github.com/roomify/roomify-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrNoRooms          = apperror.New(http.StatusBadRequest, "no room ids provided")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrRoomsMissing     = apperror.New(http.StatusNotFound, "one or more rooms not found")
	ErrServicesMissing  = apperror.New(http.StatusNotFound, "one or more services not found")
	ErrNotAuthorized    = apperror.New(http.StatusUnauthorized, "not authorized for this booking")
	// ErrStaleStatus is returned by the repository when a guarded status
	// transition found the booking in a different state than expected.
	ErrStaleStatus = apperror.New(http.StatusBadRequest, "booking status changed concurrently")
)

// ErrRoomUnavailable reports a date conflict on a specific room.
func ErrRoomUnavailable(roomNumber string) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "room %s is not available for the selected dates", roomNumber)
}

// ErrCannotCancel reports a cancel attempt on a non-Confirmed booking.
func ErrCannotCancel(status Status) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "cannot cancel booking with status: %s", status)
}

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// CanTransitionTo encodes the lifecycle state machine:
// Confirmed -> {Active, Cancelled}, Active -> Completed.
// Completed and Cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusActive || next == StatusCancelled
	case StatusActive:
		return next == StatusCompleted
	}
	return false
}

// RoomRef is the room summary carried on a populated booking.
type RoomRef struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Type       string `json:"type"`
}

// ServiceRef is the service summary carried on a populated booking.
type ServiceRef struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Booking is a guest's reservation of one or more rooms for a date range.
// TotalPrice is computed once at creation and never recomputed, even if
// room or service prices change later.
type Booking struct {
	ID           string // UUID
	UserID       string
	UserName     string
	UserEmail    string
	Rooms        []RoomRef
	Services     []ServiceRef
	CheckInDate  time.Time
	CheckOutDate time.Time
	TotalPrice   float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
