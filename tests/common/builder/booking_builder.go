//go:build unit || e2e

package builder

import (
	"time"

	"zen-booking/internal/domain/booking"
	reqdto "zen-booking/internal/handler/dto/request"
	"zen-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	Name      string
	Surname   string
	Email     string
	Phone     string
	Date      string
	Time      string
	Session   booking.Session
	CancelURL string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		Name:      "Alice",
		Surname:   "Smith",
		Email:     "alice@example.com",
		Phone:     "+447700900123",
		Date:      "2030-06-15",
		Time:      "10:00",
		Session:   booking.Session30Min,
		CancelURL: "http://localhost:3000/cancel-booking",
		CreatedAt: time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithSlot(date, timeOfDay string) *BookingBuilder {
	b.Date = date
	b.Time = timeOfDay
	return b
}

func (b *BookingBuilder) WithSession(session booking.Session) *BookingBuilder {
	b.Session = session
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) Draft() booking.Draft {
	return booking.Draft{
		Name:    b.Name,
		Surname: b.Surname,
		Email:   b.Email,
		Phone:   b.Phone,
		Date:    b.Date,
		Time:    b.Time,
		Session: b.Session,
	}
}

func (b *BookingBuilder) Entity() *booking.Booking {
	slot, err := booking.NewSlot(b.Date, b.Time)
	if err != nil {
		panic("builder produced invalid slot: " + err.Error())
	}
	return booking.Reconstruct(
		b.ID, b.Name, b.Surname, b.Email, b.Phone,
		slot, b.Session, b.CancelURL, b.CreatedAt,
	)
}

func (b *BookingBuilder) View() *queries.BookingView {
	view := &queries.BookingView{
		ID:        b.ID,
		Name:      b.Name,
		Surname:   b.Surname,
		Email:     b.Email,
		Date:      b.Date,
		Time:      b.Time,
		Session:   b.Session,
		CreatedAt: b.CreatedAt,
	}
	if b.Phone != "" {
		phone := b.Phone
		view.Phone = &phone
	}
	if b.CancelURL != "" {
		cancelURL := b.CancelURL
		view.CancelURL = &cancelURL
	}
	return view
}

func (b *BookingBuilder) CreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:    b.Name,
		Surname: b.Surname,
		Email:   b.Email,
		Phone:   b.Phone,
		Date:    b.Date,
		Time:    b.Time,
		Session: string(b.Session),
	}
}

func (b *BookingBuilder) CheckoutRequest() reqdto.CreateCheckoutRequest {
	return reqdto.CreateCheckoutRequest{
		Name:    b.Name,
		Surname: b.Surname,
		Email:   b.Email,
		Phone:   b.Phone,
		Date:    b.Date,
		Time:    b.Time,
		Session: string(b.Session),
	}
}

func (b *BookingBuilder) CompletionEvent() *booking.CompletionEvent {
	return &booking.CompletionEvent{
		CheckoutID:    "cs_test_" + b.ID.String()[:8],
		CustomerEmail: b.Email,
		Draft:         b.Draft(),
		Paid:          true,
	}
}
