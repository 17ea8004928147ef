package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing invoice and payment data.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id string) (*Invoice, error)
	GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error)
	// RecordPayment inserts the payment and flips the invoice to Paid in one
	// transaction. The invoice row is locked first; an already-Paid invoice
	// yields ErrAlreadyPaid and no payment row is written.
	RecordPayment(ctx context.Context, invoiceID string, p *Payment) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, inv *Invoice) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.invoices").
		Columns("booking_id", "user_id", "amount", "status", "issued_date").
		Values(inv.BookingID, inv.UserID, inv.Amount, inv.Status, squirrel.Expr("now()")).
		Suffix("RETURNING id, issued_date, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create invoice query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&inv.ID, &inv.IssuedDate, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// invoices.booking_id carries a unique constraint: one invoice
			// per booking, even under concurrent generation.
			return ErrAlreadyExists
		}
		return fmt.Errorf("create invoice failed: %w", err)
	}
	return nil
}

// invoiceSelect is the populated invoice projection shared by reads.
const invoiceSelect = `
	SELECT
		i.id,
		i.booking_id,
		i.user_id,
		u.name,
		u.email,
		i.amount,
		i.status,
		i.issued_date,
		i.created_at,
		i.updated_at,
		b.check_in_date,
		b.check_out_date,
		b.status,
		p.id,
		p.amount,
		p.method,
		p.status,
		p.created_at
	FROM public.invoices i
	JOIN public.users u ON u.id = i.user_id
	JOIN public.bookings b ON b.id = i.booking_id
	LEFT JOIN public.payments p ON p.id = i.payment_id
`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Invoice, error) {
	return r.getOne(ctx, invoiceSelect+" WHERE i.id = $1", id)
}

func (r *pgxRepository) GetByBookingID(ctx context.Context, bookingID string) (*Invoice, error) {
	return r.getOne(ctx, invoiceSelect+" WHERE i.booking_id = $1", bookingID)
}

func (r *pgxRepository) getOne(ctx context.Context, query string, arg any) (*Invoice, error) {
	row := r.pool.QueryRow(ctx, query, arg)

	var inv Invoice
	var payID, payMethod, payStatus *string
	var payAmount *float64
	var payCreatedAt *time.Time

	if err := row.Scan(
		&inv.ID, &inv.BookingID, &inv.UserID, &inv.UserName, &inv.UserEmail,
		&inv.Amount, &inv.Status, &inv.IssuedDate, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.Booking.CheckInDate, &inv.Booking.CheckOutDate, &inv.Booking.Status,
		&payID, &payAmount, &payMethod, &payStatus, &payCreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice failed: %w", err)
	}

	inv.Booking.ID = inv.BookingID
	if payID != nil {
		inv.Payment = &Payment{
			ID:        *payID,
			InvoiceID: inv.ID,
			Amount:    *payAmount,
			Method:    Method(*payMethod),
			Status:    PaymentStatus(*payStatus),
			CreatedAt: *payCreatedAt,
		}
	}
	return &inv, nil
}

func (r *pgxRepository) RecordPayment(ctx context.Context, invoiceID string, p *Payment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin record payment tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the invoice row so two concurrent payments serialize here.
	var status Status
	err = tx.QueryRow(ctx,
		"SELECT status FROM public.invoices WHERE id = $1 FOR UPDATE", invoiceID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock invoice failed: %w", err)
	}
	if status == StatusPaid {
		return ErrAlreadyPaid
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.payments").
		Columns("invoice_id", "amount", "method", "status").
		Values(invoiceID, p.Amount, p.Method, p.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create payment query failed: %w", err)
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("create payment failed: %w", err)
	}
	p.InvoiceID = invoiceID

	query, args, err = psql.Update("public.invoices").
		Set("status", StatusPaid).
		Set("payment_id", p.ID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": invoiceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update invoice query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark invoice paid failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit record payment tx failed: %w", err)
	}
	return nil
}
