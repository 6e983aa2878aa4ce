package mail

import (
	"context"
	"log/slog"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/pkg/config"
	"zen-booking/internal/pkg/errs"
	"zen-booking/internal/pkg/metrics"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Backend is one way of getting a message out. Backends are tried in order;
// selection stays here and never leaks into business logic.
type Backend interface {
	Name() string
	Send(ctx context.Context, from string, msg Message) error
}

type FallbackNotifier struct {
	backends   []Backend
	from       string
	fromName   string
	adminEmail string
	timeout    time.Duration
}

func NewFallbackNotifier(cfg config.Config, backends []Backend) *FallbackNotifier {
	return &FallbackNotifier{
		backends:   backends,
		from:       cfg.Mail.From,
		fromName:   cfg.Mail.FromName,
		adminEmail: cfg.Admin.Email,
		timeout:    cfg.Mail.Timeout,
	}
}

func (n *FallbackNotifier) SendConfirmation(ctx context.Context, b *booking.Booking, role booking.Role) error {
	return n.deliver(ctx, booking.KindConfirmation, confirmationMessage(b, role, n.recipient(b, role), n.fromName))
}

func (n *FallbackNotifier) SendCancellation(ctx context.Context, b *booking.Booking, role booking.Role) error {
	return n.deliver(ctx, booking.KindCancellation, cancellationMessage(b, role, n.recipient(b, role), n.fromName))
}

func (n *FallbackNotifier) recipient(b *booking.Booking, role booking.Role) string {
	if role == booking.RoleAdmin {
		return n.adminEmail
	}
	return b.Email()
}

func (n *FallbackNotifier) deliver(ctx context.Context, kind booking.NotificationKind, msg Message) error {
	var lastErr error
	for _, backend := range n.backends {
		sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
		err := backend.Send(sendCtx, n.from, msg)
		cancel()

		if err == nil {
			slog.Info("email sent", "backend", backend.Name(), "to", msg.To, "kind", string(kind))
			metrics.EmailsSentTotal.WithLabelValues(string(kind), "sent").Inc()
			return nil
		}

		slog.Warn("email backend failed", "backend", backend.Name(), "to", msg.To, "error", err)
		lastErr = err
	}

	metrics.EmailsSentTotal.WithLabelValues(string(kind), "failed").Inc()
	return errs.Wrap(lastErr, "all notifier backends failed")
}
