package commands

import (
	"context"

	"zen-booking/internal/domain/booking"
)

type BookingRepository interface {
	// Insert persists the booking; a KindDuplicateKey repository error means
	// the slot is already taken.
	Insert(ctx context.Context, b *booking.Booking) error
	FindBySlot(ctx context.Context, slot booking.Slot) (*booking.Booking, error)
	DeleteFirstByEmail(ctx context.Context, email string) (*booking.Booking, error)
}

type PaymentGateway interface {
	CreateCheckout(ctx context.Context, draft booking.Draft) (*booking.CheckoutIntent, error)
	// VerifyCompletionEvent must authenticate the payload before any of it
	// is trusted. A nil event with nil error is an acknowledged no-op.
	VerifyCompletionEvent(payload []byte, signature string) (*booking.CompletionEvent, error)
	RetrieveCheckout(ctx context.Context, checkoutID string) (*booking.CompletionEvent, error)
}
