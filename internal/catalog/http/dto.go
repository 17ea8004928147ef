package http

import (
	"time"

	"github.com/roomify/roomify-backend/internal/catalog"
)

// ServiceResponse is the shape of catalog service data in API responses.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceTag is a brief representation of a service embedded in booking responses.
type ServiceTag struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// NewServiceResponse converts a domain catalog.Service to its API representation.
func NewServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Type:        string(s.Type),
		Description: s.Description,
		Price:       s.Price,
		IsAvailable: s.IsAvailable,
		CreatedAt:   s.CreatedAt,
	}
}

// CreateServiceRequest defines the payload for adding a catalog service.
type CreateServiceRequest struct {
	Type        string  `json:"type" binding:"required,oneof=Food Laundry Transport Other"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	IsAvailable *bool   `json:"is_available"`
}

// UpdateServiceRequest defines fields allowed to be updated on a service.
type UpdateServiceRequest struct {
	Type        *string  `json:"type" binding:"omitempty,oneof=Food Laundry Transport Other"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available"`
}
