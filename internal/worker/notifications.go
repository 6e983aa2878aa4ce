package worker

import (
	"context"
	"log/slog"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/pkg/clock"
	"zen-booking/internal/pkg/config"
	"zen-booking/internal/pkg/metrics"
	"zen-booking/internal/usecase/shared"
)

// NotificationRetryWorker drains the dead-letter queue on an interval and
// re-attempts delivery with exponential backoff up to a bounded number of
// attempts. Retry policy lives here, not in the notifier.
type NotificationRetryWorker struct {
	queue    shared.DeadLetterQueue
	notifier shared.Notifier
	clock    clock.Clock
	cfg      config.RetryConfig
}

func NewNotificationRetryWorker(
	queue shared.DeadLetterQueue,
	notifier shared.Notifier,
	clk clock.Clock,
	cfg config.Config,
) *NotificationRetryWorker {
	return &NotificationRetryWorker{
		queue:    queue,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg.Retry,
	}
}

func (w *NotificationRetryWorker) Run(ctx context.Context) {
	slog.Info("notification retry worker started", "interval", w.cfg.Interval)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("notification retry worker stopped")
			return
		case <-ticker.C:
			w.DrainOnce(ctx)
		}
	}
}

// DrainOnce processes one batch of due dead letters.
func (w *NotificationRetryWorker) DrainOnce(ctx context.Context) {
	now := w.clock.Now()
	letters, err := w.queue.Due(ctx, now, w.cfg.BatchSize)
	if err != nil {
		slog.Error("failed to load due dead letters", "error", err)
		return
	}

	for _, letter := range letters {
		w.retry(ctx, letter)
	}
}

func (w *NotificationRetryWorker) retry(ctx context.Context, letter *shared.FailedNotification) {
	b, err := booking.FromSnapshot(letter.Booking)
	if err != nil {
		slog.Error("dead letter payload is unusable, dropping",
			"dead_letter_id", letter.ID, "error", err)
		w.resolve(ctx, letter)
		return
	}

	var sendErr error
	switch letter.Kind {
	case booking.KindCancellation:
		sendErr = w.notifier.SendCancellation(ctx, b, letter.Role)
	default:
		sendErr = w.notifier.SendConfirmation(ctx, b, letter.Role)
	}

	if sendErr == nil {
		metrics.DeadLetterRetriesTotal.WithLabelValues("delivered").Inc()
		slog.Info("dead letter delivered", "dead_letter_id", letter.ID, "recipient", letter.Recipient)
		w.resolve(ctx, letter)
		return
	}

	if letter.Attempts+1 >= w.cfg.MaxAttempts {
		metrics.DeadLetterRetriesTotal.WithLabelValues("abandoned").Inc()
		slog.Error("dead letter abandoned after max attempts",
			"dead_letter_id", letter.ID, "recipient", letter.Recipient,
			"attempts", letter.Attempts+1, "error", sendErr)
		w.resolve(ctx, letter)
		return
	}

	metrics.DeadLetterRetriesTotal.WithLabelValues("rescheduled").Inc()
	next := w.clock.Now().Add(w.backoff(letter.Attempts))
	if err := w.queue.Reschedule(ctx, letter.ID, sendErr.Error(), next); err != nil {
		slog.Error("failed to reschedule dead letter", "dead_letter_id", letter.ID, "error", err)
	}
}

func (w *NotificationRetryWorker) backoff(attempts int32) time.Duration {
	d := w.cfg.Backoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d > time.Hour {
			return time.Hour
		}
	}
	return d
}

func (w *NotificationRetryWorker) resolve(ctx context.Context, letter *shared.FailedNotification) {
	if err := w.queue.Resolve(ctx, letter.ID); err != nil {
		slog.Error("failed to resolve dead letter", "dead_letter_id", letter.ID, "error", err)
	}
}
