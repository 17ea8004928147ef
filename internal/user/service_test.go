package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roomify/roomify-backend/internal/auth"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*User), args.Error(1)
}

func (m *MockRepository) UpdateRole(ctx context.Context, id string, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new accounts default to guest role", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		repo.On("GetByEmail", ctx, "alice@example.com").Return(nil, ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

		u, err := svc.Register(ctx, "Alice", "  Alice@Example.com ", "password123")

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleGuest, u.Role)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, "hashed:password123", u.PasswordHash)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		repo.On("GetByEmail", ctx, "alice@example.com").Return(&User{Email: "alice@example.com"}, nil)

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")

		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("short password rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "short")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	stored := &User{ID: "u1", Email: "alice@example.com", PasswordHash: "hashed:password123", Role: auth.RoleGuest}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		repo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		u, err := svc.Login(ctx, "alice@example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		repo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		_, err := svc.Login(ctx, "alice@example.com", "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, ErrNotFound)

		_, err := svc.Login(ctx, "ghost@example.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("valid role", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		repo.On("UpdateRole", ctx, "u1", "Receptionist").Return(nil)
		repo.On("GetByID", ctx, "u1").Return(&User{ID: "u1", Role: auth.RoleReceptionist}, nil)

		u, err := svc.UpdateRole(ctx, "u1", auth.RoleReceptionist)

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleReceptionist, u.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, fakeHasher{})

		_, err := svc.UpdateRole(ctx, "u1", auth.Role("Manager"))

		assert.ErrorIs(t, err, ErrInvalidRole)
		repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})
}
