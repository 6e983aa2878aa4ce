package repository

import (
	"context"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository is the write side of the slot store. Slot uniqueness is
// enforced by the bookings_slot_key constraint, so check-then-insert has no
// TOCTOU window: the insert itself is the check.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (id, name, surname, email, phone, date, time_of_day, session, cancel_url, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''), $10)`,
		b.ID(), b.Name(), b.Surname(), b.Email(), b.Phone(),
		b.Slot().Date(), b.Slot().Time(), b.Session().String(), b.CancelURL(), b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindBySlot(ctx context.Context, slot booking.Slot) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, surname, email, phone, date, time_of_day, session, cancel_url, created_at
		FROM bookings
		WHERE date = $1 AND time_of_day = $2`,
		slot.Date(), slot.Time(),
	)

	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by slot", err)
	}
	return b, nil
}

// DeleteFirstByEmail removes and returns the first booking matching the
// email in storage order (created_at, then id). Callers rely on exactly one
// record being removed even when the email holds several bookings.
func (r *BookingRepository) DeleteFirstByEmail(ctx context.Context, email string) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `
		DELETE FROM bookings
		WHERE id = (
			SELECT id FROM bookings
			WHERE email = $1
			ORDER BY created_at, id
			LIMIT 1
		)
		RETURNING id, name, surname, email, phone, date, time_of_day, session, cancel_url, created_at`,
		email,
	)

	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete booking by email", err)
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id        uuid.UUID
		name      string
		surname   string
		email     string
		phone     pgtype.Text
		date      time.Time
		timeOfDay string
		session   string
		cancelURL pgtype.Text
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &surname, &email, &phone, &date, &timeOfDay, &session, &cancelURL, &createdAt); err != nil {
		return nil, err
	}

	slot, err := booking.NewSlot(date.Format(booking.DateLayout), timeOfDay)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		id, name, surname, email, phone.String,
		slot, booking.Session(session), cancelURL.String, createdAt,
	), nil
}
