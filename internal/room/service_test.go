package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *MockRepository) GetByIDs(ctx context.Context, ids []string) ([]*Room, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Room), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Room), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, r *Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("new rooms start available", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*room.Room")).
			Run(func(args mock.Arguments) {
				rm := args.Get(1).(*Room)
				assert.Equal(t, StatusAvailable, rm.Status)
			}).
			Return(nil)

		rm, err := svc.Create(ctx, CreateRequest{RoomNumber: "101", Type: TypeDouble, PricePerNight: 120})

		assert.NoError(t, err)
		assert.Equal(t, StatusAvailable, rm.Status)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateRequest{RoomNumber: "101", Type: Type("Penthouse"), PricePerNight: 120})

		assert.ErrorIs(t, err, ErrInvalidType)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateRoomStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid status", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateStatus", ctx, "r1", StatusMaintenance).Return(nil)
		repo.On("GetByID", ctx, "r1").Return(&Room{ID: "r1", Status: StatusMaintenance}, nil)

		rm, err := svc.UpdateStatus(ctx, "r1", StatusMaintenance)

		assert.NoError(t, err)
		assert.Equal(t, StatusMaintenance, rm.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.UpdateStatus(ctx, "r1", Status("Dirty"))

		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateRoomPartial(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	existing := &Room{ID: "r1", RoomNumber: "101", Type: TypeSingle, Status: StatusAvailable, PricePerNight: 80}
	repo.On("GetByID", ctx, "r1").Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*room.Room")).Return(nil)

	price := 95.0
	rm, err := svc.Update(ctx, "r1", UpdateRequest{PricePerNight: &price})

	assert.NoError(t, err)
	assert.Equal(t, 95.0, rm.PricePerNight)
	// Untouched fields keep their values
	assert.Equal(t, "101", rm.RoomNumber)
	assert.Equal(t, TypeSingle, rm.Type)
}
