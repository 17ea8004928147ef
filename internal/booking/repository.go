package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing booking data from storage.
type Repository interface {
	// Create inserts the booking together with its room and service links.
	// Availability is re-checked inside the same transaction after locking
	// the requested room rows, so two concurrent requests for the same room
	// and overlapping dates cannot both succeed. All-or-nothing across the
	// whole room set.
	Create(ctx context.Context, b *Booking, roomIDs, serviceIDs []string) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	// UpdateStatus performs a guarded transition: the UPDATE only applies
	// when the stored status still equals from. A stale status yields
	// ErrStaleStatus so callers can report the actual current state.
	UpdateStatus(ctx context.Context, id string, from, to Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking, roomIDs, serviceIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the requested rooms in id order. Ordered locking keeps two
	// concurrent multi-room requests from deadlocking each other.
	const lockQuery = `
		SELECT id FROM public.rooms
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`
	rows, err := tx.Query(ctx, lockQuery, roomIDs)
	if err != nil {
		return fmt.Errorf("lock rooms failed: %w", err)
	}
	var locked int
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan locked room failed: %w", err)
		}
		locked++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock rooms failed: %w", err)
	}
	if locked != len(roomIDs) {
		return ErrRoomsMissing
	}

	// SQL form of the Overlaps predicate: an existing Confirmed/Active
	// booking conflicts iff existingCheckIn < newCheckOut AND
	// existingCheckOut > newCheckIn.
	const conflictQuery = `
		SELECT r.room_number
		FROM public.rooms r
		WHERE r.id = ANY($1)
		AND EXISTS (
			SELECT 1
			FROM public.bookings b
			JOIN public.booking_rooms br ON br.booking_id = b.id
			WHERE br.room_id = r.id
			AND b.status IN ('Confirmed', 'Active')
			AND b.check_in_date < $3
			AND b.check_out_date > $2
		)
		ORDER BY r.room_number
		LIMIT 1
	`
	var conflictRoom string
	err = tx.QueryRow(ctx, conflictQuery, roomIDs, b.CheckInDate, b.CheckOutDate).Scan(&conflictRoom)
	if err == nil {
		return ErrRoomUnavailable(conflictRoom)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check room availability failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "check_in_date", "check_out_date", "total_price", "status").
		Values(b.UserID, b.CheckInDate, b.CheckOutDate, b.TotalPrice, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	// Room order is preserved via position so populated responses list the
	// rooms in the order the guest requested them.
	roomInsert := psql.Insert("public.booking_rooms").Columns("booking_id", "room_id", "position")
	for i, roomID := range roomIDs {
		roomInsert = roomInsert.Values(b.ID, roomID, i)
	}
	query, args, err = roomInsert.ToSql()
	if err != nil {
		return fmt.Errorf("build booking rooms query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("link booking rooms failed: %w", err)
	}

	if len(serviceIDs) > 0 {
		svcInsert := psql.Insert("public.booking_services").Columns("booking_id", "service_id")
		for _, serviceID := range serviceIDs {
			svcInsert = svcInsert.Values(b.ID, serviceID)
		}
		query, args, err = svcInsert.ToSql()
		if err != nil {
			return fmt.Errorf("build booking services query failed: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("link booking services failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking tx failed: %w", err)
	}
	return nil
}

// bookingSelect is the populated booking projection shared by all reads.
// Room and service summaries are aggregated as JSON to avoid N+1 queries.
const bookingSelect = `
	SELECT
		b.id,
		b.user_id,
		u.name,
		u.email,
		b.check_in_date,
		b.check_out_date,
		b.total_price,
		b.status,
		b.created_at,
		b.updated_at,
		COALESCE(
			(
				SELECT json_agg(json_build_object('id', r.id, 'room_number', r.room_number, 'type', r.type) ORDER BY br.position)
				FROM public.booking_rooms br
				JOIN public.rooms r ON r.id = br.room_id
				WHERE br.booking_id = b.id
			),
			'[]'::json
		) AS rooms,
		COALESCE(
			(
				SELECT json_agg(json_build_object('id', s.id, 'description', s.description, 'price', s.price))
				FROM public.booking_services bs
				JOIN public.services s ON s.id = bs.service_id
				WHERE bs.booking_id = b.id
			),
			'[]'::json
		) AS services
	FROM public.bookings b
	JOIN public.users u ON u.id = b.user_id
`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var roomsJSON, servicesJSON []byte

	if err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.UserEmail,
		&b.CheckInDate, &b.CheckOutDate, &b.TotalPrice, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
		&roomsJSON, &servicesJSON,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(roomsJSON, &b.Rooms); err != nil {
		return nil, fmt.Errorf("decode booking rooms failed: %w", err)
	}
	if err := json.Unmarshal(servicesJSON, &b.Services); err != nil {
		return nil, fmt.Errorf("decode booking services failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	row := r.pool.QueryRow(ctx, bookingSelect+" WHERE b.id = $1", id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return r.list(ctx, bookingSelect+" WHERE b.user_id = $1 ORDER BY b.created_at DESC", userID)
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Booking, error) {
	return r.list(ctx, bookingSelect+" ORDER BY b.created_at DESC")
}

func (r *pgxRepository) list(ctx context.Context, query string, args ...any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, from, to Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrStaleStatus
	}
	return nil
}
