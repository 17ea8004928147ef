package room

import (
	"context"
)

// CreateRequest carries the fields needed to create a room.
type CreateRequest struct {
	RoomNumber    string
	Type          Type
	PricePerNight float64
}

// UpdateRequest carries the optional fields of a room update.
// Nil pointers mean "leave unchanged".
type UpdateRequest struct {
	RoomNumber    *string
	Type          *Type
	PricePerNight *float64
}

// Service defines business logic related to rooms.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Room, error)
	List(ctx context.Context) ([]*Room, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	// UpdateStatus is the housekeeping entry point: it flips a room between
	// Available, Occupied and Maintenance without touching any booking.
	UpdateStatus(ctx context.Context, id string, status Status) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new room Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}

	rm := &Room{
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		Status:        StatusAvailable, // rooms start out bookable
		PricePerNight: req.PricePerNight,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByIDs(ctx context.Context, ids []string) ([]*Room, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		rm.RoomNumber = *req.RoomNumber
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, ErrInvalidType
		}
		rm.Type = *req.Type
	}
	if req.PricePerNight != nil {
		rm.PricePerNight = *req.PricePerNight
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Room, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
