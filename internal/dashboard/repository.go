package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roomify/roomify-backend/internal/booking"
	"github.com/roomify/roomify-backend/internal/invoice"
	"github.com/roomify/roomify-backend/internal/room"
)

// Repository aggregates KPI figures straight from the database.
type Repository interface {
	Revenue(ctx context.Context) (float64, error)
	BookingCounts(ctx context.Context) (total int, completed int, err error)
	Occupancy(ctx context.Context) (Occupancy, error)
	DailyActivity(ctx context.Context, dayStart, dayEnd time.Time) (DailyActivity, error)
	RoomStatusCounts(ctx context.Context) ([]RoomStatusCount, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Revenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM public.invoices
		WHERE status = $1
	`, invoice.StatusPaid).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("query revenue failed: %w", err)
	}
	return revenue, nil
}

func (r *pgxRepository) BookingCounts(ctx context.Context) (int, int, error) {
	var total, completed int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		FROM public.bookings
	`, booking.StatusCompleted).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("query booking counts failed: %w", err)
	}
	return total, completed, nil
}

func (r *pgxRepository) Occupancy(ctx context.Context) (Occupancy, error) {
	var occ Occupancy
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE status = $1), COUNT(*)
		FROM public.rooms
	`, room.StatusOccupied).Scan(&occ.OccupiedRooms, &occ.TotalRooms)
	if err != nil {
		return Occupancy{}, fmt.Errorf("query occupancy failed: %w", err)
	}
	return occ, nil
}

// DailyActivity counts state transitions that landed today. Check-ins are
// bookings moved to Active and check-outs bookings moved to Completed,
// both identified by their updated_at falling inside [dayStart, dayEnd).
func (r *pgxRepository) DailyActivity(ctx context.Context, dayStart, dayEnd time.Time) (DailyActivity, error) {
	var act DailyActivity
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2)
		FROM public.bookings
		WHERE updated_at >= $3 AND updated_at < $4
	`, booking.StatusActive, booking.StatusCompleted, dayStart, dayEnd).Scan(&act.CheckInsToday, &act.CheckOutsToday)
	if err != nil {
		return DailyActivity{}, fmt.Errorf("query daily activity failed: %w", err)
	}
	return act, nil
}

func (r *pgxRepository) RoomStatusCounts(ctx context.Context) ([]RoomStatusCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM public.rooms
		GROUP BY status
		ORDER BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("query room status counts failed: %w", err)
	}
	defer rows.Close()

	counts := []RoomStatusCount{}
	for rows.Next() {
		var c RoomStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan room status count failed: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room status counts failed: %w", err)
	}
	return counts, nil
}
