//go:build unit

package mail

import (
	"context"
	"errors"
	"testing"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/pkg/config"
	"zen-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	name string
	err  error
	sent []Message
	from string
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Send(_ context.Context, from string, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.from = from
	f.sent = append(f.sent, msg)
	return nil
}

func newNotifier(backends ...Backend) *FallbackNotifier {
	return NewFallbackNotifier(config.NewTestConfig(), backends)
}

func TestFallbackNotifier(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().Entity()

	t.Run("first backend handles delivery", func(t *testing.T) {
		primary := &fakeBackend{name: "primary"}
		secondary := &fakeBackend{name: "secondary"}

		err := newNotifier(primary, secondary).SendConfirmation(ctx, b, booking.RoleUser)
		require.NoError(t, err)
		require.Len(t, primary.sent, 1)
		assert.Empty(t, secondary.sent)
		assert.Equal(t, "noreply@example.com", primary.from)
		assert.Equal(t, b.Email(), primary.sent[0].To)
	})

	t.Run("falls back in order when a backend fails", func(t *testing.T) {
		primary := &fakeBackend{name: "primary", err: errors.New("connection refused")}
		secondary := &fakeBackend{name: "secondary"}

		err := newNotifier(primary, secondary).SendConfirmation(ctx, b, booking.RoleUser)
		require.NoError(t, err)
		require.Len(t, secondary.sent, 1)
	})

	t.Run("reports failure when every backend fails", func(t *testing.T) {
		primary := &fakeBackend{name: "primary", err: errors.New("connection refused")}
		secondary := &fakeBackend{name: "secondary", err: errors.New("550 rejected")}

		err := newNotifier(primary, secondary).SendConfirmation(ctx, b, booking.RoleUser)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "550 rejected")
	})

	t.Run("admin notifications go to the configured admin address", func(t *testing.T) {
		backend := &fakeBackend{name: "primary"}

		err := newNotifier(backend).SendConfirmation(ctx, b, booking.RoleAdmin)
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)
		assert.Equal(t, "admin@example.com", backend.sent[0].To)
		assert.Contains(t, backend.sent[0].Subject, "New booking")
	})
}

func TestTemplates(t *testing.T) {
	t.Run("user confirmation includes cancel link when present", func(t *testing.T) {
		b := builder.NewBookingBuilder().Entity()
		msg := confirmationMessage(b, booking.RoleUser, b.Email(), "Zen Healing")

		assert.Equal(t, "Zen Healing - Booking Confirmation", msg.Subject)
		assert.Contains(t, msg.Body, "Hi Alice,")
		assert.Contains(t, msg.Body, "2030-06-15")
		assert.Contains(t, msg.Body, b.CancelURL())
		assert.Contains(t, msg.Body, "- Zen Healing Team")
	})

	t.Run("missing phone renders as N/A", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithPhone("")
		msg := confirmationMessage(bb.Entity(), booking.RoleAdmin, "admin@example.com", "Zen Healing")

		assert.Contains(t, msg.Body, "Phone: N/A")
	})

	t.Run("cancellation message names the cancelled slot", func(t *testing.T) {
		b := builder.NewBookingBuilder().Entity()
		msg := cancellationMessage(b, booking.RoleUser, b.Email(), "Zen Healing")

		assert.Equal(t, "Zen Healing - Booking Cancelled", msg.Subject)
		assert.Contains(t, msg.Body, "has been cancelled")
		assert.Contains(t, msg.Body, "2030-06-15")
	})
}
