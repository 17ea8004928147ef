package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roomify/roomify-backend/internal/auth"
	"github.com/roomify/roomify-backend/internal/booking"
)

// BookingSource is the narrow view of booking storage the invoicing engine
// needs. Satisfied by booking.Repository.
type BookingSource interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
}

// Service defines the invoicing and payment business logic.
type Service interface {
	// Generate creates the invoice for a booking, copying the booking's
	// total price as the invoice amount. At most one invoice per booking.
	Generate(ctx context.Context, bookingID string) (*Invoice, error)
	// RecordPayment settles a pending invoice with a single payment.
	// A second payment attempt on a Paid invoice is rejected.
	RecordPayment(ctx context.Context, invoiceID string, amount float64, method Method) (*Invoice, *Payment, error)
	GetByID(ctx context.Context, id string, actor auth.Actor) (*Invoice, error)
	GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error)
}

type service struct {
	repo     Repository
	bookings BookingSource
}

// NewService creates a new invoice Service.
func NewService(repo Repository, bookings BookingSource) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
	}
}

func (s *service) Generate(ctx context.Context, bookingID string) (*Invoice, error) {
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, ErrBookingNotFound
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	inv := &Invoice{
		BookingID: b.ID,
		UserID:    b.UserID,
		Amount:    b.TotalPrice, // price fixed at booking time
		Status:    StatusPending,
	}

	// The uniqueness constraint on booking_id turns a concurrent duplicate
	// generation into ErrAlreadyExists instead of a second invoice.
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, inv.ID)
}

func (s *service) RecordPayment(ctx context.Context, invoiceID string, amount float64, method Method) (*Invoice, *Payment, error) {
	if _, err := uuid.Parse(invoiceID); err != nil {
		return nil, nil, ErrNotFound
	}
	if !method.Valid() {
		return nil, nil, ErrInvalidMethod
	}

	// The submitted amount is recorded as-is; it is deliberately not
	// validated against the invoice amount.
	p := &Payment{
		Amount: amount,
		Method: method,
		Status: PaymentCompleted,
	}

	if err := s.repo.RecordPayment(ctx, invoiceID, p); err != nil {
		return nil, nil, err
	}

	inv, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	return inv, p, nil
}

func (s *service) GetByID(ctx context.Context, id string, actor auth.Actor) (*Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanViewInvoice(inv.UserID) {
		return nil, ErrNotAuthorized
	}
	return inv, nil
}

func (s *service) GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error) {
	return s.repo.GetByBookingID(ctx, bookingID)
}
