package commands

import (
	"context"
	"errors"
	"log/slog"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra"
	"zen-booking/internal/infra/gateway"
	"zen-booking/internal/pkg/clock"
	"zen-booking/internal/pkg/config"
	"zen-booking/internal/pkg/errs"
	"zen-booking/internal/pkg/metrics"
	"zen-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingFields      = errs.New("missing required fields")
	ErrSlotConflict       = errs.New("slot already booked")
	ErrInvalidSession     = errs.New("invalid session type")
	ErrInvalidSignature   = errs.New("invalid webhook signature")
	ErrIncompleteMetadata = errs.New("incomplete payment metadata")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrCheckoutNotPaid    = errs.New("checkout not paid")
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")
	ErrStorageFailure     = errs.New("storage operation failed")
)

// CompletionResult reports what a completion delivery did. Duplicate
// deliveries are acknowledged without a second insert or notification.
type CompletionResult struct {
	Booking   *booking.Booking
	Duplicate bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, draft booking.Draft) (*booking.Booking, error)
	CreateCheckout(ctx context.Context, draft booking.Draft) (*booking.CheckoutIntent, error)
	HandleCompletionEvent(ctx context.Context, payload []byte, signature string) (*CompletionResult, error)
	ConfirmCheckout(ctx context.Context, checkoutID string) (*CompletionResult, error)
	CancelBooking(ctx context.Context, email string) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	repo        BookingRepository
	gateway     PaymentGateway
	notifier    shared.Notifier
	deadLetters shared.DeadLetterQueue
	clock       clock.Clock
	cancelURL   string
	adminEmail  string
}

func NewBookingCommands(
	repo BookingRepository,
	gw PaymentGateway,
	notifier shared.Notifier,
	deadLetters shared.DeadLetterQueue,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:        repo,
		gateway:     gw,
		notifier:    notifier,
		deadLetters: deadLetters,
		clock:       clk,
		cancelURL:   cfg.Stripe.ClientURL + "/cancel-booking",
		adminEmail:  cfg.Admin.Email,
	}
}

// CreateBooking is the direct path: validate, persist, notify. The slot
// uniqueness constraint in the repository is the conflict check, so a
// concurrent request for the same slot cannot slip through between a read
// and the write.
func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, draft booking.Draft) (*booking.Booking, error) {
	b, err := u.newBooking(draft)
	if err != nil {
		return nil, err
	}

	if err := u.repo.Insert(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			metrics.SlotConflictsTotal.Inc()
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	metrics.BookingsTotal.WithLabelValues("direct").Inc()

	u.notify(ctx, b, booking.KindConfirmation)
	return b, nil
}

func (u *bookingCommandsImpl) CreateCheckout(ctx context.Context, draft booking.Draft) (*booking.CheckoutIntent, error) {
	if err := draft.Validate(); err != nil {
		return nil, markValidation(err)
	}

	intent, err := u.gateway.CreateCheckout(ctx, draft)
	if err != nil {
		if gateway.IsKind(err, gateway.KindUnknownSession) {
			return nil, errs.Mark(err, ErrInvalidSession)
		}
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}
	return intent, nil
}

func (u *bookingCommandsImpl) HandleCompletionEvent(ctx context.Context, payload []byte, signature string) (*CompletionResult, error) {
	event, err := u.gateway.VerifyCompletionEvent(payload, signature)
	if err != nil {
		if gateway.IsKind(err, gateway.KindBadSignature) {
			return nil, errs.Mark(err, ErrInvalidSignature)
		}
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}
	if event == nil {
		// Event type we do not act on; acknowledge so the gateway stops
		// retrying it.
		metrics.WebhookEventsTotal.WithLabelValues("ignored").Inc()
		return &CompletionResult{}, nil
	}

	result, err := u.applyCompletion(ctx, event)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if result.Duplicate {
		metrics.WebhookEventsTotal.WithLabelValues("duplicate").Inc()
	} else {
		metrics.WebhookEventsTotal.WithLabelValues("applied").Inc()
	}
	return result, nil
}

// ConfirmCheckout is the fallback completion path for environments the
// webhook cannot reach. It runs the same validation and the same idempotent
// persistence as the webhook path.
func (u *bookingCommandsImpl) ConfirmCheckout(ctx context.Context, checkoutID string) (*CompletionResult, error) {
	event, err := u.gateway.RetrieveCheckout(ctx, checkoutID)
	if err != nil {
		if gateway.IsKind(err, gateway.KindNotPaid) {
			return nil, errs.Mark(err, ErrCheckoutNotPaid)
		}
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}
	if !event.Paid {
		return nil, ErrCheckoutNotPaid
	}
	return u.applyCompletion(ctx, event)
}

func (u *bookingCommandsImpl) applyCompletion(ctx context.Context, event *booking.CompletionEvent) (*CompletionResult, error) {
	if err := event.Draft.Validate(); err != nil {
		// The payment went through but the metadata cannot produce a
		// booking; reject the delivery so the gateway retries and flags it
		// for manual reconciliation.
		slog.Error("payment completion event has unusable metadata",
			"checkout_id", event.CheckoutID, "email", event.CustomerEmail, "error", err)
		return nil, errs.Mark(err, ErrIncompleteMetadata)
	}

	slot, err := event.Draft.Slot()
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteMetadata)
	}

	if existing, findErr := u.repo.FindBySlot(ctx, slot); findErr == nil {
		slog.Info("duplicate completion delivery, slot already booked",
			"checkout_id", event.CheckoutID, "slot", slot.String())
		return &CompletionResult{Booking: existing, Duplicate: true}, nil
	} else if !infra.IsKind(findErr, infra.KindNotFound) {
		return nil, errs.Mark(findErr, ErrStorageFailure)
	}

	b, err := u.newBooking(event.Draft)
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteMetadata)
	}

	if err := u.repo.Insert(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the race against another delivery of the same event;
			// treat exactly like the pre-check hit.
			return &CompletionResult{Booking: b, Duplicate: true}, nil
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	metrics.BookingsTotal.WithLabelValues("payment").Inc()

	u.notify(ctx, b, booking.KindConfirmation)
	return &CompletionResult{Booking: b}, nil
}

func (u *bookingCommandsImpl) CancelBooking(ctx context.Context, email string) (*booking.Booking, error) {
	if email == "" {
		return nil, &booking.MissingFieldsError{Fields: []string{"email"}}
	}

	b, err := u.repo.DeleteFirstByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	metrics.CancellationsTotal.Inc()

	u.notify(ctx, b, booking.KindCancellation)
	return b, nil
}

func (u *bookingCommandsImpl) newBooking(draft booking.Draft) (*booking.Booking, error) {
	b, err := booking.NewBooking(draft, u.cancelURL, u.clock.Now())
	if err != nil {
		return nil, markValidation(err)
	}
	return b, nil
}

// notify sends to user and admin independently, best-effort. A failed send
// is logged and recorded as a dead letter; it never rolls back or fails the
// booking operation, because the reservation itself succeeded.
func (u *bookingCommandsImpl) notify(ctx context.Context, b *booking.Booking, kind booking.NotificationKind) {
	for _, role := range []booking.Role{booking.RoleUser, booking.RoleAdmin} {
		var err error
		switch kind {
		case booking.KindCancellation:
			err = u.notifier.SendCancellation(ctx, b, role)
		default:
			err = u.notifier.SendConfirmation(ctx, b, role)
		}
		if err == nil {
			continue
		}

		slog.Warn("notification failed, recording dead letter",
			"booking_id", b.ID(), "role", string(role), "kind", string(kind), "error", err)

		msg := err.Error()
		letter := &shared.FailedNotification{
			ID:            uuid.New(),
			Recipient:     u.recipient(b, role),
			Role:          role,
			Kind:          kind,
			Booking:       b.Snapshot(),
			Attempts:      1,
			LastError:     &msg,
			NextAttemptAt: u.clock.Now(),
		}
		if recordErr := u.deadLetters.Record(ctx, letter); recordErr != nil {
			slog.Error("failed to record dead letter", "booking_id", b.ID(), "error", recordErr)
		}
	}
}

func (u *bookingCommandsImpl) recipient(b *booking.Booking, role booking.Role) string {
	if role == booking.RoleAdmin {
		return u.adminEmail
	}
	return b.Email()
}

func markValidation(err error) error {
	switch {
	case errors.Is(err, booking.ErrUnknownSession):
		return errs.Mark(err, ErrInvalidSession)
	default:
		return errs.Mark(err, ErrMissingFields)
	}
}
