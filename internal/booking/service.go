package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/roomify/roomify-backend/internal/auth"
	"github.com/roomify/roomify-backend/internal/catalog"
	"github.com/roomify/roomify-backend/internal/room"
)

// CreateRequest carries everything needed to create a booking.
type CreateRequest struct {
	UserID       string
	RoomIDs      []string
	ServiceIDs   []string
	CheckInDate  time.Time
	CheckOutDate time.Time
}

// Service defines the booking lifecycle business logic.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Cancel(ctx context.Context, id string, actor auth.Actor) (*Booking, error)
	GetByID(ctx context.Context, id string, actor auth.Actor) (*Booking, error)
	ListOwn(ctx context.Context, userID string) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	catalog     catalog.Catalog
}

// NewService creates a new booking Service.
func NewService(repo Repository, roomService room.Service, cat catalog.Catalog) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		catalog:     cat,
	}
}

// Overlaps reports whether two half-open [checkIn, checkOut) date ranges
// intersect: an existing stay conflicts with a new one iff the existing
// check-in falls before the new check-out AND the existing check-out falls
// after the new check-in. Back-to-back stays (one guest checking out the
// day another checks in) do not overlap. The availability query in the
// repository applies this same predicate in SQL.
func Overlaps(existingCheckIn, existingCheckOut, newCheckIn, newCheckOut time.Time) bool {
	return existingCheckIn.Before(newCheckOut) && existingCheckOut.After(newCheckIn)
}

// Nights returns the number of billable nights between check-in and
// check-out: the ceiling of the span in days, floored at 1. Dates are
// validated ordered before this runs; the floor is kept for robustness.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		nights = 1
	}
	return nights
}

// TotalPrice computes the immutable booking price: the summed nightly rate
// of every room times the night count, plus each service price once.
func TotalPrice(rooms []*room.Room, services []*catalog.Service, nights int) float64 {
	var roomTotal float64
	for _, rm := range rooms {
		roomTotal += rm.PricePerNight
	}

	var serviceTotal float64
	for _, s := range services {
		serviceTotal += s.Price
	}

	return roomTotal*float64(nights) + serviceTotal
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if len(req.RoomIDs) == 0 {
		return nil, ErrNoRooms
	}
	if !req.CheckInDate.Before(req.CheckOutDate) {
		return nil, ErrInvalidDateRange
	}

	// Resolve every referenced room and service up front. A count mismatch
	// means at least one id does not exist.
	rooms, err := s.roomService.GetByIDs(ctx, req.RoomIDs)
	if err != nil {
		return nil, err
	}
	if len(rooms) != len(req.RoomIDs) {
		return nil, ErrRoomsMissing
	}

	var services []*catalog.Service
	if len(req.ServiceIDs) > 0 {
		services, err = s.catalog.GetByIDs(ctx, req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if len(services) != len(req.ServiceIDs) {
			return nil, ErrServicesMissing
		}
	}

	b := &Booking{
		UserID:       req.UserID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalPrice:   TotalPrice(rooms, services, Nights(req.CheckInDate, req.CheckOutDate)),
		Status:       StatusConfirmed,
	}

	// The repository re-checks availability under row locks; the whole
	// request fails if any room has a conflicting Confirmed/Active booking.
	if err := s.repo.Create(ctx, b, req.RoomIDs, req.ServiceIDs); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Cancel(ctx context.Context, id string, actor auth.Actor) (*Booking, error) {
	b, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status != StatusConfirmed {
		return nil, ErrCannotCancel(b.Status)
	}
	if !actor.CanAccessOwned(b.UserID) {
		return nil, ErrNotAuthorized
	}

	// A merely Confirmed booking never marked its rooms Occupied, so
	// cancelling has no room side effects.
	if err := s.repo.UpdateStatus(ctx, id, StatusConfirmed, StatusCancelled); err != nil {
		if errors.Is(err, ErrStaleStatus) {
			if cur, gerr := s.repo.GetByID(ctx, id); gerr == nil {
				return nil, ErrCannotCancel(cur.Status)
			}
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id string, actor auth.Actor) (*Booking, error) {
	b, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccessOwned(b.UserID) {
		return nil, ErrNotAuthorized
	}
	return b, nil
}

func (s *service) ListOwn(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListAll(ctx)
}

// getExisting resolves a booking id, normalizing malformed ids to NotFound
// instead of leaking a parsing error.
func (s *service) getExisting(ctx context.Context, id string) (*Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
