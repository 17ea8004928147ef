package reception

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roomify/roomify-backend/internal/booking"
	"github.com/roomify/roomify-backend/internal/room"
)

// Repository applies the check-in/check-out state changes. The booking
// transition and the room status updates land in one transaction so a
// booking can never end up Active with its rooms still Available (or
// Completed with its rooms still Occupied).
type Repository interface {
	Transition(ctx context.Context, bookingID string, from, to booking.Status, roomStatus room.Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Transition(ctx context.Context, bookingID string, from, to booking.Status, roomStatus room.Status) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transition tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Guarded transition: only applies when the booking is still in the
	// expected state. Re-running a transition is a precondition failure,
	// never a double application.
	ct, err := tx.Exec(ctx, `
		UPDATE public.bookings
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, to, bookingID, from)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return booking.ErrStaleStatus
	}

	if _, err := tx.Exec(ctx, `
		UPDATE public.rooms
		SET status = $1, updated_at = now()
		WHERE id IN (
			SELECT room_id FROM public.booking_rooms WHERE booking_id = $2
		)
	`, roomStatus, bookingID); err != nil {
		return fmt.Errorf("update room statuses failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transition tx failed: %w", err)
	}
	return nil
}
