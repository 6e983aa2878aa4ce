package repository

import (
	"context"
	"encoding/json"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra"
	"zen-booking/internal/pkg/pgconv"
	"zen-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeadLetterRepository struct {
	pool *pgxpool.Pool
}

func NewDeadLetterRepository(pool *pgxpool.Pool) *DeadLetterRepository {
	return &DeadLetterRepository{pool: pool}
}

func (r *DeadLetterRepository) Record(ctx context.Context, fn *shared.FailedNotification) error {
	payload, err := json.Marshal(fn.Booking)
	if err != nil {
		return infra.WrapRepoErr("failed to encode dead letter payload", err, infra.KindDBFailure)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO notification_dead_letters (id, recipient, role, kind, payload, attempts, last_error, next_attempt_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		fn.ID, fn.Recipient, string(fn.Role), string(fn.Kind), payload, fn.Attempts,
		pgconv.StringPtrToPgtype(fn.LastError), fn.NextAttemptAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record dead letter", err)
	}
	return nil
}

func (r *DeadLetterRepository) Due(ctx context.Context, now time.Time, limit int32) ([]*shared.FailedNotification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, recipient, role, kind, payload, attempts, last_error, next_attempt_at
		FROM notification_dead_letters
		WHERE next_attempt_at <= $1
		ORDER BY next_attempt_at
		LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query due dead letters", err)
	}
	defer rows.Close()

	var result []*shared.FailedNotification
	for rows.Next() {
		var (
			fn      shared.FailedNotification
			role    string
			kind    string
			payload []byte
			lastErr pgtype.Text
		)
		if err := rows.Scan(&fn.ID, &fn.Recipient, &role, &kind, &payload, &fn.Attempts, &lastErr, &fn.NextAttemptAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan dead letter", err)
		}
		if err := json.Unmarshal(payload, &fn.Booking); err != nil {
			return nil, infra.WrapRepoErr("failed to decode dead letter payload", err, infra.KindDBFailure)
		}
		fn.Role = booking.Role(role)
		fn.Kind = booking.NotificationKind(kind)
		fn.LastError = pgconv.StringPtrFromPgtype(lastErr)
		result = append(result, &fn)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate dead letters", err)
	}
	return result, nil
}

func (r *DeadLetterRepository) Resolve(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notification_dead_letters WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to resolve dead letter", err)
	}
	return nil
}

func (r *DeadLetterRepository) Reschedule(ctx context.Context, id uuid.UUID, attemptErr string, nextAttemptAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE notification_dead_letters
		SET attempts = attempts + 1, last_error = $2, next_attempt_at = $3
		WHERE id = $1`,
		id, attemptErr, nextAttemptAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule dead letter", err)
	}
	return nil
}
