package shared

import (
	"context"

	"zen-booking/internal/domain/booking"
)

// Notifier delivers templated booking emails. Delivery failure is reported
// as a value; it must never fail the booking operation that triggered it.
type Notifier interface {
	SendConfirmation(ctx context.Context, b *booking.Booking, role booking.Role) error
	SendCancellation(ctx context.Context, b *booking.Booking, role booking.Role) error
}
