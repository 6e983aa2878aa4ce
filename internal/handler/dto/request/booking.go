package request

import (
	"strings"

	"zen-booking/internal/domain/booking"
)

type CreateBookingRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Session string `json:"session" binding:"required"`
}

func (r CreateBookingRequest) ToDraft() booking.Draft {
	return booking.Draft{
		Name:    strings.TrimSpace(r.Name),
		Surname: strings.TrimSpace(r.Surname),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Date:    strings.TrimSpace(r.Date),
		Time:    strings.TrimSpace(r.Time),
		Session: booking.Session(strings.TrimSpace(r.Session)),
	}
}

// CreateCheckoutRequest carries the same booking fields as a direct create;
// the record is only persisted after the payment completes.
type CreateCheckoutRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Session string `json:"session" binding:"required"`
}

func (r CreateCheckoutRequest) ToDraft() booking.Draft {
	return booking.Draft{
		Name:    strings.TrimSpace(r.Name),
		Surname: strings.TrimSpace(r.Surname),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Date:    strings.TrimSpace(r.Date),
		Time:    strings.TrimSpace(r.Time),
		Session: booking.Session(strings.TrimSpace(r.Session)),
	}
}

type CancelBookingRequest struct {
	Email string `json:"email" binding:"required,email"`
}
