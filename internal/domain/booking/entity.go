package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingFields = errors.New("missing required fields")

// MissingFieldsError reports which required fields were absent. It matches
// ErrMissingFields under errors.Is.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// Draft is a booking request before persistence: either an inbound create
// payload or the metadata recovered from a payment completion event.
type Draft struct {
	Name    string
	Surname string
	Email   string
	Phone   string
	Date    string
	Time    string
	Session Session
}

func (d Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Surname) == "" {
		missing = append(missing, "surname")
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(d.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(d.Time) == "" {
		missing = append(missing, "time")
	}
	if d.Session == "" {
		missing = append(missing, "session")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if _, err := NewSlot(d.Date, d.Time); err != nil {
		return err
	}
	if !d.Session.IsValid() {
		return ErrUnknownSession
	}
	return nil
}

func (d Draft) Slot() (Slot, error) {
	return NewSlot(d.Date, d.Time)
}

// Booking is immutable once created; its lifecycle ends with deletion.
type Booking struct {
	id        uuid.UUID
	name      string
	surname   string
	email     string
	phone     string
	slot      Slot
	session   Session
	cancelURL string
	createdAt time.Time
}

func NewBooking(d Draft, cancelURL string, now time.Time) (*Booking, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	slot, err := d.Slot()
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		name:      strings.TrimSpace(d.Name),
		surname:   strings.TrimSpace(d.Surname),
		email:     strings.TrimSpace(d.Email),
		phone:     strings.TrimSpace(d.Phone),
		slot:      slot,
		session:   d.Session,
		cancelURL: cancelURL,
		createdAt: now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, surname, email, phone string,
	slot Slot,
	session Session,
	cancelURL string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		name:      name,
		surname:   surname,
		email:     email,
		phone:     phone,
		slot:      slot,
		session:   session,
		cancelURL: cancelURL,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Name() string         { return b.name }
func (b *Booking) Surname() string      { return b.surname }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) Phone() string        { return b.phone }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) Session() Session     { return b.session }
func (b *Booking) CancelURL() string    { return b.cancelURL }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// Snapshot is the serializable form of a Booking, used for dead-letter
// payloads and event metadata round-trips.
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Session   Session   `json:"session"`
	CancelURL string    `json:"cancel_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:        b.id,
		Name:      b.name,
		Surname:   b.surname,
		Email:     b.email,
		Phone:     b.phone,
		Date:      b.slot.Date(),
		Time:      b.slot.Time(),
		Session:   b.session,
		CancelURL: b.cancelURL,
		CreatedAt: b.createdAt,
	}
}

func FromSnapshot(s Snapshot) (*Booking, error) {
	slot, err := NewSlot(s.Date, s.Time)
	if err != nil {
		return nil, err
	}
	return Reconstruct(s.ID, s.Name, s.Surname, s.Email, s.Phone, slot, s.Session, s.CancelURL, s.CreatedAt), nil
}
