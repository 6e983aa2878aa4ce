//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertBooking seeds a booking row directly, bypassing the API
func InsertBooking(t *testing.T, db DBLike, email, date, timeOfDay, session string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, name, surname, email, phone, date, time_of_day, session, cancel_url, created_at)
		VALUES ($1, 'Test', 'User', $2, NULL, $3, $4, $5, NULL, $6)`,
		id, email, date, timeOfDay, session, time.Now().UTC(),
	)
	require.NoError(t, err, "failed to seed booking")
	return id
}

func CountBookings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM bookings").Scan(&n)
	require.NoError(t, err, "failed to count bookings")
	return n
}

func CountDeadLetters(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM notification_dead_letters").Scan(&n)
	require.NoError(t, err, "failed to count dead letters")
	return n
}

// ResetDB truncates all mutable tables between subtests
func ResetDB(db DBLike) error {
	_, err := db.Exec(context.Background(),
		"TRUNCATE bookings, notification_dead_letters")
	return err
}
