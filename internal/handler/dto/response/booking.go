package response

import (
	"time"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Session   string    `json:"session"`
	CancelURL *string   `json:"cancelUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        v.ID,
		Name:      v.Name,
		Surname:   v.Surname,
		Email:     v.Email,
		Phone:     v.Phone,
		Date:      v.Date,
		Time:      v.Time,
		Session:   string(v.Session),
		CancelURL: v.CancelURL,
		CreatedAt: v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return out
}

func FromBooking(b *booking.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:        b.ID(),
		Name:      b.Name(),
		Surname:   b.Surname(),
		Email:     b.Email(),
		Date:      b.Slot().Date(),
		Time:      b.Slot().Time(),
		Session:   string(b.Session()),
		CreatedAt: b.CreatedAt(),
	}
	if phone := b.Phone(); phone != "" {
		resp.Phone = &phone
	}
	if cancelURL := b.CancelURL(); cancelURL != "" {
		resp.CancelURL = &cancelURL
	}
	return resp
}

// CheckoutResponse points the client at the hosted payment page.
type CheckoutResponse struct {
	CheckoutID string `json:"checkoutId"`
	URL        string `json:"url"`
}

func FromCheckoutIntent(intent *booking.CheckoutIntent) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutID: intent.CheckoutID,
		URL:        intent.RedirectURL,
	}
}

// WebhookAckResponse is the acknowledgement body the payment provider
// expects for every accepted event delivery.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
