package readstore

import (
	"context"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra"
	"zen-booking/internal/pkg/pgconv"
	"zen-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) List(ctx context.Context, date *string) ([]*queries.BookingView, error) {
	query := `
		SELECT id, name, surname, email, phone, date, time_of_day, session, cancel_url, created_at
		FROM bookings`
	args := []any{}
	if date != nil {
		query += ` WHERE date = $1`
		args = append(args, *date)
	}
	query += ` ORDER BY date, time_of_day`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *BookingReadStore) FindFirstByEmail(ctx context.Context, email string) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, surname, email, phone, date, time_of_day, session, cancel_url, created_at
		FROM bookings
		WHERE email = $1
		ORDER BY created_at, id
		LIMIT 1`,
		email,
	)

	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by email", err)
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		id        uuid.UUID
		phone     pgtype.Text
		date      time.Time
		session   string
		cancelURL pgtype.Text
	)
	err := row.Scan(&id, &view.Name, &view.Surname, &view.Email, &phone, &date, &view.Time, &session, &cancelURL, &view.CreatedAt)
	if err != nil {
		return nil, err
	}

	view.ID = id
	view.Date = date.Format(booking.DateLayout)
	view.Session = booking.Session(session)
	view.Phone = pgconv.StringPtrFromPgtype(phone)
	view.CancelURL = pgconv.StringPtrFromPgtype(cancelURL)
	return &view, nil
}
