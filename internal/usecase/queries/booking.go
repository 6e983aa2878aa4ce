package queries

import (
	"context"
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra"
	"zen-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// BookingView is the read model returned across the API boundary.
type BookingView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Surname   string          `json:"surname"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone,omitempty"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Session   booking.Session `json:"session"`
	CancelURL *string         `json:"cancel_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type BookingReadStore interface {
	List(ctx context.Context, date *string) ([]*BookingView, error)
	// FindFirstByEmail returns the first booking in storage order for the
	// email (the record the cancellation flow would remove).
	FindFirstByEmail(ctx context.Context, email string) (*BookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context, date *string) ([]*BookingView, error)
	FindByEmail(ctx context.Context, email string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) List(ctx context.Context, date *string) ([]*BookingView, error) {
	if date != nil {
		if _, err := booking.NewSlot(*date, "00:00"); err != nil {
			return nil, errs.Mark(err, booking.ErrInvalidDate)
		}
	}
	return q.store.List(ctx, date)
}

func (q *bookingQueriesImpl) FindByEmail(ctx context.Context, email string) (*BookingView, error) {
	view, err := q.store.FindFirstByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}
