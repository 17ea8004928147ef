package reception

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roomify/roomify-backend/internal/booking"
	"github.com/roomify/roomify-backend/internal/invoice"
	"github.com/roomify/roomify-backend/internal/pkg/apperror"
	"github.com/roomify/roomify-backend/internal/room"
)

const testBookingID = "3f1d9a62-8f0e-4a8a-9a31-6a2a1d1f0c01"

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Transition(ctx context.Context, bookingID string, from, to booking.Status, roomStatus room.Status) error {
	args := m.Called(ctx, bookingID, from, to, roomStatus)
	return args.Error(0)
}

type MockBookingSource struct {
	mock.Mock
}

func (m *MockBookingSource) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

type MockInvoiceSource struct {
	mock.Mock
}

func (m *MockInvoiceSource) GetByBookingID(ctx context.Context, bookingID string) (*invoice.Invoice, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func newTestService() (Service, *MockRepository, *MockBookingSource, *MockInvoiceSource) {
	repo := new(MockRepository)
	bookings := new(MockBookingSource)
	invoices := new(MockInvoiceSource)
	return NewService(repo, bookings, invoices), repo, bookings, invoices
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed booking is activated", func(t *testing.T) {
		svc, repo, bookings, _ := newTestService()

		confirmed := &booking.Booking{ID: testBookingID, Status: booking.StatusConfirmed}
		active := &booking.Booking{ID: testBookingID, Status: booking.StatusActive}
		bookings.On("GetByID", ctx, testBookingID).Return(confirmed, nil).Once()
		repo.On("Transition", ctx, testBookingID, booking.StatusConfirmed, booking.StatusActive, room.StatusOccupied).Return(nil)
		bookings.On("GetByID", ctx, testBookingID).Return(active, nil).Once()

		b, err := svc.CheckIn(ctx, testBookingID)

		assert.NoError(t, err)
		assert.Equal(t, booking.StatusActive, b.Status)
		repo.AssertExpectations(t)
		bookings.AssertExpectations(t)
	})

	t.Run("rejects booking that already left confirmed", func(t *testing.T) {
		svc, repo, bookings, _ := newTestService()

		active := &booking.Booking{ID: testBookingID, Status: booking.StatusActive}
		bookings.On("GetByID", ctx, testBookingID).Return(active, nil)

		_, err := svc.CheckIn(ctx, testBookingID)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Message, "Active")
		repo.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed id reads as not found", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CheckIn(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, booking.ErrNotFound)
	})

	t.Run("lost race reports current state", func(t *testing.T) {
		svc, repo, bookings, _ := newTestService()

		confirmed := &booking.Booking{ID: testBookingID, Status: booking.StatusConfirmed}
		cancelled := &booking.Booking{ID: testBookingID, Status: booking.StatusCancelled}
		bookings.On("GetByID", ctx, testBookingID).Return(confirmed, nil).Once()
		repo.On("Transition", ctx, testBookingID, booking.StatusConfirmed, booking.StatusActive, room.StatusOccupied).
			Return(booking.ErrStaleStatus)
		bookings.On("GetByID", ctx, testBookingID).Return(cancelled, nil).Once()

		_, err := svc.CheckIn(ctx, testBookingID)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Message, "Cancelled")
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()

	active := func() *booking.Booking {
		return &booking.Booking{ID: testBookingID, Status: booking.StatusActive}
	}

	t.Run("paid invoice allows check-out", func(t *testing.T) {
		svc, repo, bookings, invoices := newTestService()

		completed := &booking.Booking{ID: testBookingID, Status: booking.StatusCompleted}
		bookings.On("GetByID", ctx, testBookingID).Return(active(), nil).Once()
		invoices.On("GetByBookingID", ctx, testBookingID).Return(&invoice.Invoice{Status: invoice.StatusPaid}, nil)
		repo.On("Transition", ctx, testBookingID, booking.StatusActive, booking.StatusCompleted, room.StatusMaintenance).Return(nil)
		bookings.On("GetByID", ctx, testBookingID).Return(completed, nil).Once()

		b, err := svc.CheckOut(ctx, testBookingID)

		assert.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, b.Status)
		repo.AssertExpectations(t)
	})

	t.Run("pending invoice blocks check-out", func(t *testing.T) {
		svc, repo, bookings, invoices := newTestService()

		bookings.On("GetByID", ctx, testBookingID).Return(active(), nil)
		invoices.On("GetByBookingID", ctx, testBookingID).Return(&invoice.Invoice{Status: invoice.StatusPending}, nil)

		_, err := svc.CheckOut(ctx, testBookingID)

		assert.ErrorIs(t, err, ErrInvoiceNotPaid)
		repo.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing invoice blocks check-out", func(t *testing.T) {
		svc, _, bookings, invoices := newTestService()

		bookings.On("GetByID", ctx, testBookingID).Return(active(), nil)
		invoices.On("GetByBookingID", ctx, testBookingID).Return(nil, invoice.ErrNotFound)

		_, err := svc.CheckOut(ctx, testBookingID)

		assert.ErrorIs(t, err, ErrInvoiceNotPaid)
	})

	t.Run("rejects booking that is not active", func(t *testing.T) {
		svc, _, bookings, invoices := newTestService()

		confirmed := &booking.Booking{ID: testBookingID, Status: booking.StatusConfirmed}
		bookings.On("GetByID", ctx, testBookingID).Return(confirmed, nil)

		_, err := svc.CheckOut(ctx, testBookingID)

		assert.ErrorIs(t, err, ErrNotActive)
		invoices.AssertNotCalled(t, "GetByBookingID", mock.Anything, mock.Anything)
	})

	t.Run("lost race reads as not active", func(t *testing.T) {
		svc, repo, bookings, invoices := newTestService()

		bookings.On("GetByID", ctx, testBookingID).Return(active(), nil)
		invoices.On("GetByBookingID", ctx, testBookingID).Return(&invoice.Invoice{Status: invoice.StatusPaid}, nil)
		repo.On("Transition", ctx, testBookingID, booking.StatusActive, booking.StatusCompleted, room.StatusMaintenance).
			Return(booking.ErrStaleStatus)

		_, err := svc.CheckOut(ctx, testBookingID)

		assert.ErrorIs(t, err, ErrNotActive)
	})
}
