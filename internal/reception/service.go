package reception

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/roomify/roomify-backend/internal/booking"
	"github.com/roomify/roomify-backend/internal/invoice"
	"github.com/roomify/roomify-backend/internal/pkg/apperror"
	"github.com/roomify/roomify-backend/internal/room"
)

var (
	// ErrNotActive signals a check-out attempt on a booking that is not Active.
	ErrNotActive = apperror.New(http.StatusBadRequest, "booking is not active, cannot check out")
	// ErrInvoiceNotPaid gates check-out until the booking's invoice is settled.
	ErrInvoiceNotPaid = apperror.New(http.StatusBadRequest, "cannot check out: invoice is not paid")
)

// ErrAlreadyInState signals a check-in attempt on a booking that has
// already left the Confirmed state.
func ErrAlreadyInState(status booking.Status) error {
	return apperror.Newf(http.StatusBadRequest, "booking is already %s", status)
}

// BookingSource provides booking lookups. Satisfied by booking.Repository.
type BookingSource interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
}

// InvoiceSource provides invoice lookups. Satisfied by invoice.Repository.
type InvoiceSource interface {
	GetByBookingID(ctx context.Context, bookingID string) (*invoice.Invoice, error)
}

// Service drives the front-desk check-in and check-out flows.
type Service interface {
	CheckIn(ctx context.Context, bookingID string) (*booking.Booking, error)
	CheckOut(ctx context.Context, bookingID string) (*booking.Booking, error)
}

type service struct {
	repo     Repository
	bookings BookingSource
	invoices InvoiceSource
}

// NewService creates a new reception Service.
func NewService(repo Repository, bookings BookingSource, invoices InvoiceSource) Service {
	return &service{repo: repo, bookings: bookings, invoices: invoices}
}

// CheckIn moves a Confirmed booking to Active and marks its rooms Occupied.
func (s *service) CheckIn(ctx context.Context, bookingID string) (*booking.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != booking.StatusConfirmed {
		return nil, ErrAlreadyInState(b.Status)
	}

	err = s.repo.Transition(ctx, bookingID, booking.StatusConfirmed, booking.StatusActive, room.StatusOccupied)
	if errors.Is(err, booking.ErrStaleStatus) {
		// Lost a race with a concurrent transition. Report the state we lost to.
		if cur, gerr := s.bookings.GetByID(ctx, bookingID); gerr == nil {
			return nil, ErrAlreadyInState(cur.Status)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// CheckOut moves an Active booking to Completed and marks its rooms
// Maintenance for cleaning. It refuses until the invoice is Paid.
func (s *service) CheckOut(ctx context.Context, bookingID string) (*booking.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != booking.StatusActive {
		return nil, ErrNotActive
	}

	inv, err := s.invoices.GetByBookingID(ctx, bookingID)
	if errors.Is(err, invoice.ErrNotFound) {
		return nil, ErrInvoiceNotPaid
	}
	if err != nil {
		return nil, err
	}
	if inv.Status != invoice.StatusPaid {
		return nil, ErrInvoiceNotPaid
	}

	err = s.repo.Transition(ctx, bookingID, booking.StatusActive, booking.StatusCompleted, room.StatusMaintenance)
	if errors.Is(err, booking.ErrStaleStatus) {
		return nil, ErrNotActive
	}
	if err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *service) getBooking(ctx context.Context, bookingID string) (*booking.Booking, error) {
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, booking.ErrNotFound
	}
	return s.bookings.GetByID(ctx, bookingID)
}
