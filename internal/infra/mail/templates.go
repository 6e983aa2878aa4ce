package mail

import (
	"fmt"

	"zen-booking/internal/domain/booking"
)

func confirmationMessage(b *booking.Booking, role booking.Role, to, fromName string) Message {
	phone := b.Phone()
	if phone == "" {
		phone = "N/A"
	}

	if role == booking.RoleAdmin {
		return Message{
			To:      to,
			Subject: fmt.Sprintf("New booking: %s %s", b.Name(), b.Surname()),
			Body: fmt.Sprintf(
				"New booking received:\n\n"+
					"Name: %s %s\nEmail: %s\nPhone: %s\nDate: %s\nTime: %s\nSession: %s\n",
				b.Name(), b.Surname(), b.Email(), phone, b.Slot().Date(), b.Slot().Time(), b.Session(),
			),
		}
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for booking your %s with %s!\n\n"+
			"Date: %s\nTime: %s\nPhone: %s\n",
		b.Name(), b.Session(), fromName, b.Slot().Date(), b.Slot().Time(), phone,
	)
	if b.CancelURL() != "" {
		body += fmt.Sprintf("\nNeed to cancel? Visit %s\n", b.CancelURL())
	}
	body += fmt.Sprintf("\nWe look forward to seeing you soon.\n\n- %s Team\n", fromName)

	return Message{
		To:      to,
		Subject: fmt.Sprintf("%s - Booking Confirmation", fromName),
		Body:    body,
	}
}

func cancellationMessage(b *booking.Booking, role booking.Role, to, fromName string) Message {
	if role == booking.RoleAdmin {
		return Message{
			To:      to,
			Subject: fmt.Sprintf("%s - Booking Cancelled", fromName),
			Body: fmt.Sprintf(
				"Booking cancelled:\n\n"+
					"Name: %s %s\nEmail: %s\nDate: %s\nTime: %s\nSession: %s\n",
				b.Name(), b.Surname(), b.Email(), b.Slot().Date(), b.Slot().Time(), b.Session(),
			),
		}
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf("%s - Booking Cancelled", fromName),
		Body: fmt.Sprintf(
			"Hi %s,\n\n"+
				"Your %s on %s at %s has been cancelled.\n\n- %s Team\n",
			b.Name(), b.Session(), b.Slot().Date(), b.Slot().Time(), fromName,
		),
	}
}
