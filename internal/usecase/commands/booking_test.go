//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra"
	"zen-booking/internal/infra/gateway"
	"zen-booking/internal/pkg/clock"
	"zen-booking/internal/pkg/config"
	"zen-booking/internal/usecase/commands"
	"zen-booking/internal/usecase/shared"
	"zen-booking/tests/common/builder"
	commandsmock "zen-booking/tests/mock/commands"
	sharedmock "zen-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commandsFixture struct {
	repo        *commandsmock.MockBookingRepository
	gateway     *commandsmock.MockPaymentGateway
	notifier    *sharedmock.MockNotifier
	deadLetters *sharedmock.MockDeadLetterQueue
	clock       *clock.FixedClock
	cmds        commands.BookingCommands
}

func newCommandsFixture(t *testing.T) *commandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &commandsFixture{
		repo:        commandsmock.NewMockBookingRepository(ctrl),
		gateway:     commandsmock.NewMockPaymentGateway(ctrl),
		notifier:    sharedmock.NewMockNotifier(ctrl),
		deadLetters: sharedmock.NewMockDeadLetterQueue(ctrl),
		clock:       clock.NewFixedClock(time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)),
	}
	f.cmds = commands.NewBookingCommands(
		f.repo, f.gateway, f.notifier, f.deadLetters, f.clock, config.NewTestConfig(),
	)
	return f
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr("insert failed",
		&pgconn.PgError{Code: "23505", ConstraintName: "bookings_slot_key"})
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func (f *commandsFixture) expectNotifications(kind booking.NotificationKind) {
	for range 2 {
		switch kind {
		case booking.KindCancellation:
			f.notifier.EXPECT().SendCancellation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		default:
			f.notifier.EXPECT().SendConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		}
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and notifies user and admin", func(t *testing.T) {
		f := newCommandsFixture(t)
		draft := builder.NewBookingBuilder().Draft()

		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendConfirmation(ctx, gomock.Any(), booking.RoleUser).Return(nil)
		f.notifier.EXPECT().SendConfirmation(ctx, gomock.Any(), booking.RoleAdmin).Return(nil)

		b, err := f.cmds.CreateBooking(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, draft.Email, b.Email())
		assert.Equal(t, f.clock.Now(), b.CreatedAt())
	})

	t.Run("slot conflict", func(t *testing.T) {
		f := newCommandsFixture(t)

		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(duplicateKeyErr())

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().Draft())
		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("invalid draft never reaches the repository", func(t *testing.T) {
		f := newCommandsFixture(t)
		bb := builder.NewBookingBuilder()
		bb.Email = ""

		_, err := f.cmds.CreateBooking(ctx, bb.Draft())
		assert.ErrorIs(t, err, commands.ErrMissingFields)
	})

	t.Run("unknown session maps to invalid session", func(t *testing.T) {
		f := newCommandsFixture(t)
		bb := builder.NewBookingBuilder()
		bb.Session = "2-hr"

		_, err := f.cmds.CreateBooking(ctx, bb.Draft())
		assert.ErrorIs(t, err, commands.ErrInvalidSession)
	})

	t.Run("notification failure records dead letter without failing the booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		sendErr := errors.New("smtp: connection refused")

		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendConfirmation(ctx, gomock.Any(), booking.RoleUser).Return(sendErr)
		f.notifier.EXPECT().SendConfirmation(ctx, gomock.Any(), booking.RoleAdmin).Return(nil)
		f.deadLetters.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, fn *shared.FailedNotification) error {
				assert.Equal(t, booking.RoleUser, fn.Role)
				assert.Equal(t, booking.KindConfirmation, fn.Kind)
				assert.Equal(t, "alice@example.com", fn.Recipient)
				assert.EqualValues(t, 1, fn.Attempts)
				require.NotNil(t, fn.LastError)
				assert.Contains(t, *fn.LastError, "connection refused")
				return nil
			})

		b, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().Draft())
		require.NoError(t, err)
		assert.NotNil(t, b)
	})
}

func TestCreateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("returns hosted checkout intent", func(t *testing.T) {
		f := newCommandsFixture(t)
		draft := builder.NewBookingBuilder().Draft()
		intent := &booking.CheckoutIntent{
			CheckoutID:  "cs_test_123",
			RedirectURL: "https://checkout.stripe.com/pay/cs_test_123",
		}

		f.gateway.EXPECT().CreateCheckout(ctx, draft).Return(intent, nil)

		got, err := f.cmds.CreateCheckout(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, intent, got)
	})

	t.Run("invalid draft skips the gateway", func(t *testing.T) {
		f := newCommandsFixture(t)
		bb := builder.NewBookingBuilder()
		bb.Date = "someday"

		_, err := f.cmds.CreateCheckout(ctx, bb.Draft())
		assert.ErrorIs(t, err, commands.ErrMissingFields)
	})

	t.Run("gateway outage maps to unavailable", func(t *testing.T) {
		f := newCommandsFixture(t)
		draft := builder.NewBookingBuilder().Draft()

		f.gateway.EXPECT().CreateCheckout(ctx, draft).
			Return(nil, gateway.NewGatewayError(gateway.KindUnavailable, "stripe timeout"))

		_, err := f.cmds.CreateCheckout(ctx, draft)
		assert.ErrorIs(t, err, commands.ErrGatewayUnavailable)
	})
}

func TestHandleCompletionEvent(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	t.Run("verified event books the slot and notifies", func(t *testing.T) {
		f := newCommandsFixture(t)
		event := builder.NewBookingBuilder().CompletionEvent()

		f.gateway.EXPECT().VerifyCompletionEvent(payload, "sig").Return(event, nil)
		f.repo.EXPECT().FindBySlot(ctx, gomock.Any()).Return(nil, notFoundErr())
		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
		f.expectNotifications(booking.KindConfirmation)

		result, err := f.cmds.HandleCompletionEvent(ctx, payload, "sig")
		require.NoError(t, err)
		assert.False(t, result.Duplicate)
		assert.Equal(t, event.Draft.Email, result.Booking.Email())
	})

	t.Run("bad signature has no side effects", func(t *testing.T) {
		f := newCommandsFixture(t)

		f.gateway.EXPECT().VerifyCompletionEvent(payload, "bad").
			Return(nil, gateway.NewGatewayError(gateway.KindBadSignature, "signature mismatch"))

		_, err := f.cmds.HandleCompletionEvent(ctx, payload, "bad")
		assert.ErrorIs(t, err, commands.ErrInvalidSignature)
	})

	t.Run("irrelevant event type is acknowledged as no-op", func(t *testing.T) {
		f := newCommandsFixture(t)

		f.gateway.EXPECT().VerifyCompletionEvent(payload, "sig").Return(nil, nil)

		result, err := f.cmds.HandleCompletionEvent(ctx, payload, "sig")
		require.NoError(t, err)
		assert.Nil(t, result.Booking)
	})

	t.Run("duplicate delivery is acknowledged without a second insert", func(t *testing.T) {
		f := newCommandsFixture(t)
		bb := builder.NewBookingBuilder()
		event := bb.CompletionEvent()
		existing := bb.Entity()

		f.gateway.EXPECT().VerifyCompletionEvent(payload, "sig").Return(event, nil)
		f.repo.EXPECT().FindBySlot(ctx, gomock.Any()).Return(existing, nil)

		result, err := f.cmds.HandleCompletionEvent(ctx, payload, "sig")
		require.NoError(t, err)
		assert.True(t, result.Duplicate)
		assert.Equal(t, existing.ID(), result.Booking.ID())
	})

	t.Run("insert race against a concurrent delivery is treated as duplicate", func(t *testing.T) {
		f := newCommandsFixture(t)
		event := builder.NewBookingBuilder().CompletionEvent()

		f.gateway.EXPECT().VerifyCompletionEvent(payload, "sig").Return(event, nil)
		f.repo.EXPECT().FindBySlot(ctx, gomock.Any()).Return(nil, notFoundErr())
		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(duplicateKeyErr())

		result, err := f.cmds.HandleCompletionEvent(ctx, payload, "sig")
		require.NoError(t, err)
		assert.True(t, result.Duplicate)
	})

	t.Run("incomplete metadata is rejected", func(t *testing.T) {
		f := newCommandsFixture(t)
		event := builder.NewBookingBuilder().CompletionEvent()
		event.Draft.Date = ""

		f.gateway.EXPECT().VerifyCompletionEvent(payload, "sig").Return(event, nil)

		_, err := f.cmds.HandleCompletionEvent(ctx, payload, "sig")
		assert.ErrorIs(t, err, commands.ErrIncompleteMetadata)
	})
}

func TestConfirmCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("paid checkout books the slot", func(t *testing.T) {
		f := newCommandsFixture(t)
		event := builder.NewBookingBuilder().CompletionEvent()

		f.gateway.EXPECT().RetrieveCheckout(ctx, event.CheckoutID).Return(event, nil)
		f.repo.EXPECT().FindBySlot(ctx, gomock.Any()).Return(nil, notFoundErr())
		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
		f.expectNotifications(booking.KindConfirmation)

		result, err := f.cmds.ConfirmCheckout(ctx, event.CheckoutID)
		require.NoError(t, err)
		assert.False(t, result.Duplicate)
	})

	t.Run("unpaid checkout is rejected", func(t *testing.T) {
		f := newCommandsFixture(t)
		event := builder.NewBookingBuilder().CompletionEvent()
		event.Paid = false

		f.gateway.EXPECT().RetrieveCheckout(ctx, event.CheckoutID).Return(event, nil)

		_, err := f.cmds.ConfirmCheckout(ctx, event.CheckoutID)
		assert.ErrorIs(t, err, commands.ErrCheckoutNotPaid)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes first match and sends cancellation emails", func(t *testing.T) {
		f := newCommandsFixture(t)
		existing := builder.NewBookingBuilder().Entity()

		f.repo.EXPECT().DeleteFirstByEmail(ctx, existing.Email()).Return(existing, nil)
		f.notifier.EXPECT().SendCancellation(ctx, existing, booking.RoleUser).Return(nil)
		f.notifier.EXPECT().SendCancellation(ctx, existing, booking.RoleAdmin).Return(nil)

		b, err := f.cmds.CancelBooking(ctx, existing.Email())
		require.NoError(t, err)
		assert.Equal(t, existing.ID(), b.ID())
	})

	t.Run("no booking for email", func(t *testing.T) {
		f := newCommandsFixture(t)

		f.repo.EXPECT().DeleteFirstByEmail(ctx, "ghost@example.com").Return(nil, notFoundErr())

		_, err := f.cmds.CancelBooking(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("empty email", func(t *testing.T) {
		f := newCommandsFixture(t)

		_, err := f.cmds.CancelBooking(ctx, "")
		assert.ErrorIs(t, err, booking.ErrMissingFields)
	})
}
