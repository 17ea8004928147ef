package invoice

import (
	"net/http"
	"time"

	"github.com/roomify/roomify-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "invoice not found")
	ErrBookingNotFound = apperror.New(http.StatusNotFound, "booking not found")
	ErrAlreadyExists   = apperror.New(http.StatusBadRequest, "invoice already exists for this booking")
	ErrAlreadyPaid     = apperror.New(http.StatusBadRequest, "invoice is already paid")
	ErrInvalidMethod   = apperror.New(http.StatusBadRequest, "invalid payment method")
	ErrNotAuthorized   = apperror.New(http.StatusUnauthorized, "not authorized for this invoice")
)

// Status is the settlement state of an invoice.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "Cancelled"
)

// Method is how a payment was made.
type Method string

const (
	MethodCash       Method = "Cash"
	MethodCreditCard Method = "Credit Card"
	MethodDebitCard  Method = "Debit Card"
	MethodUPI        Method = "UPI/Online"
)

// Valid reports whether the method is one of the accepted payment methods.
func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodUPI:
		return true
	}
	return false
}

// PaymentStatus is the outcome of a payment attempt.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

// Payment is the single settlement record attached to an invoice. No
// partial payments are modeled: one Completed payment settles the invoice.
type Payment struct {
	ID        string // UUID
	InvoiceID string
	Amount    float64
	Method    Method
	Status    PaymentStatus
	CreatedAt time.Time
}

// BookingRef is the booking summary carried on a populated invoice.
type BookingRef struct {
	ID           string    `json:"id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Status       string    `json:"status"`
}

// Invoice is the billing record for a booking. Amount is copied from the
// booking's total price at generation time and never recomputed. At most
// one invoice exists per booking, enforced by a storage-level uniqueness
// constraint.
type Invoice struct {
	ID         string // UUID
	BookingID  string
	UserID     string
	UserName   string
	UserEmail  string
	Amount     float64
	Status     Status
	IssuedDate time.Time
	Booking    BookingRef
	Payment    *Payment // set once paid
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
