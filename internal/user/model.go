package user

import (
	"errors"
	"time"

	"github.com/roomify/roomify-backend/internal/auth"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid user role")
)

// User represents an account in the system. Role controls which parts of
// the hotel workflow the account may operate.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash string
	Role         auth.Role
	CreatedAt    time.Time
}
