package shared

import (
	"context"
	"time"

	"zen-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// FailedNotification is one dead letter: a notification that could not be
// delivered, kept durably so retry policy stays a separate concern from the
// notifier itself.
type FailedNotification struct {
	ID            uuid.UUID
	Recipient     string
	Role          booking.Role
	Kind          booking.NotificationKind
	Booking       booking.Snapshot
	Attempts      int32
	LastError     *string
	NextAttemptAt time.Time
}

type DeadLetterQueue interface {
	Record(ctx context.Context, fn *FailedNotification) error
	// Due drains letters whose next attempt is at or before now.
	Due(ctx context.Context, now time.Time, limit int32) ([]*FailedNotification, error)
	Resolve(ctx context.Context, id uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, attemptErr string, nextAttemptAt time.Time) error
}
