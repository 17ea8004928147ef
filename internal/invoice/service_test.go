package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roomify/roomify-backend/internal/auth"
	"github.com/roomify/roomify-backend/internal/booking"
)

const (
	testInvoiceID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c05"
	testBookingID = "3f1d9a62-8f0e-4a8a-9a31-6a2a1d1f0c01"
	testGuestID   = "7b9f0c44-1d2e-4f5a-8b6c-9d0e1f2a3b04"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, inv *Invoice) error {
	args := m.Called(ctx, inv)
	if inv != nil && args.Error(0) == nil {
		inv.ID = testInvoiceID // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Invoice), args.Error(1)
}

func (m *MockRepository) GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Invoice), args.Error(1)
}

func (m *MockRepository) RecordPayment(ctx context.Context, invoiceID string, p *Payment) error {
	args := m.Called(ctx, invoiceID, p)
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

func newTestService() (Service, *MockRepository, *MockBookingSource) {
	repo := new(MockRepository)
	bookings := new(MockBookingSource)
	return NewService(repo, bookings), repo, bookings
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("amount copied from booking total", func(t *testing.T) {
		svc, repo, bookings := newTestService()

		b := &booking.Booking{ID: testBookingID, UserID: testGuestID, TotalPrice: 265, Status: booking.StatusConfirmed}
		bookings.On("GetByID", ctx, testBookingID).Return(b, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*invoice.Invoice")).
			Run(func(args mock.Arguments) {
				inv := args.Get(1).(*Invoice)
				assert.Equal(t, 265.0, inv.Amount)
				assert.Equal(t, StatusPending, inv.Status)
				assert.Equal(t, testGuestID, inv.UserID)
			}).
			Return(nil)
		repo.On("GetByID", ctx, testInvoiceID).Return(&Invoice{
			ID:        testInvoiceID,
			BookingID: testBookingID,
			Amount:    265,
			Status:    StatusPending,
		}, nil)

		inv, err := svc.Generate(ctx, testBookingID)

		assert.NoError(t, err)
		assert.Equal(t, testInvoiceID, inv.ID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, bookings := newTestService()

		bookings.On("GetByID", ctx, testBookingID).Return(nil, booking.ErrNotFound)

		_, err := svc.Generate(ctx, testBookingID)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("malformed booking id", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Generate(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("second invoice for same booking rejected", func(t *testing.T) {
		svc, repo, bookings := newTestService()

		b := &booking.Booking{ID: testBookingID, UserID: testGuestID, TotalPrice: 100}
		bookings.On("GetByID", ctx, testBookingID).Return(b, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*invoice.Invoice")).Return(ErrAlreadyExists)

		_, err := svc.Generate(ctx, testBookingID)

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("settles pending invoice", func(t *testing.T) {
		svc, repo, _ := newTestService()

		repo.On("RecordPayment", ctx, testInvoiceID, mock.AnythingOfType("*invoice.Payment")).
			Run(func(args mock.Arguments) {
				p := args.Get(2).(*Payment)
				assert.Equal(t, 265.0, p.Amount)
				assert.Equal(t, MethodCash, p.Method)
				assert.Equal(t, PaymentCompleted, p.Status)
			}).
			Return(nil)
		repo.On("GetByID", ctx, testInvoiceID).Return(&Invoice{ID: testInvoiceID, Status: StatusPaid}, nil)

		inv, p, err := svc.RecordPayment(ctx, testInvoiceID, 265, MethodCash)

		assert.NoError(t, err)
		assert.Equal(t, StatusPaid, inv.Status)
		assert.Equal(t, PaymentCompleted, p.Status)
	})

	t.Run("second payment rejected", func(t *testing.T) {
		svc, repo, _ := newTestService()

		repo.On("RecordPayment", ctx, testInvoiceID, mock.AnythingOfType("*invoice.Payment")).
			Return(ErrAlreadyPaid)

		_, _, err := svc.RecordPayment(ctx, testInvoiceID, 265, MethodCash)

		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("invalid method rejected", func(t *testing.T) {
		svc, repo, _ := newTestService()

		_, _, err := svc.RecordPayment(ctx, testInvoiceID, 265, Method("Barter"))

		assert.ErrorIs(t, err, ErrInvalidMethod)
		repo.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("amount mismatch is accepted as submitted", func(t *testing.T) {
		svc, repo, _ := newTestService()

		repo.On("RecordPayment", ctx, testInvoiceID, mock.AnythingOfType("*invoice.Payment")).
			Run(func(args mock.Arguments) {
				p := args.Get(2).(*Payment)
				assert.Equal(t, 10.0, p.Amount)
			}).
			Return(nil)
		repo.On("GetByID", ctx, testInvoiceID).Return(&Invoice{ID: testInvoiceID, Amount: 265, Status: StatusPaid}, nil)

		_, p, err := svc.RecordPayment(ctx, testInvoiceID, 10, MethodUPI)

		assert.NoError(t, err)
		assert.Equal(t, 10.0, p.Amount)
	})

	t.Run("malformed invoice id", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, _, err := svc.RecordPayment(ctx, "not-a-uuid", 265, MethodCash)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetByIDAuthorization(t *testing.T) {
	ctx := context.Background()

	inv := &Invoice{ID: testInvoiceID, UserID: testGuestID, Status: StatusPending}

	cases := []struct {
		name    string
		actor   auth.Actor
		wantErr error
	}{
		{"owner can view", auth.Actor{ID: testGuestID, Role: auth.RoleGuest}, nil},
		{"receptionist can view", auth.Actor{ID: "other", Role: auth.RoleReceptionist}, nil},
		{"admin can view", auth.Actor{ID: "other", Role: auth.RoleAdmin}, nil},
		{"other guest cannot view", auth.Actor{ID: "other", Role: auth.RoleGuest}, ErrNotAuthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			repo.On("GetByID", ctx, testInvoiceID).Return(inv, nil)

			got, err := svc.GetByID(ctx, testInvoiceID, tc.actor)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testInvoiceID, got.ID)
			}
		})
	}
}
