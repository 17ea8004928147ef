package catalog

import (
	"net/http"
	"time"

	"github.com/roomify/roomify-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "service not found")
	ErrInvalidType = apperror.New(http.StatusBadRequest, "invalid service type")
)

// ServiceType classifies an extra service offered to guests.
type ServiceType string

const (
	TypeFood      ServiceType = "Food"
	TypeLaundry   ServiceType = "Laundry"
	TypeTransport ServiceType = "Transport"
	TypeOther     ServiceType = "Other"
)

// Valid reports whether the type is one of the known service types.
func (t ServiceType) Valid() bool {
	switch t {
	case TypeFood, TypeLaundry, TypeTransport, TypeOther:
		return true
	}
	return false
}

// Service is an extra offering (food, laundry, ...) a guest may attach to
// a booking. Its price is added once to the booking total, independent of
// the number of nights.
type Service struct {
	ID          string // UUID
	Type        ServiceType
	Description string
	Price       float64
	IsAvailable bool
	CreatedAt   time.Time
}
