package booking

// CheckoutIntent is the externally-hosted payment flow handle returned to
// the client, which redirects the user to RedirectURL to pay.
type CheckoutIntent struct {
	CheckoutID  string
	RedirectURL string
}

// CompletionEvent is the verified, parsed form of an asynchronous payment
// completion notification. The booking draft travels as opaque metadata on
// the checkout, so the event is self-describing and no server-side
// pending-booking store is needed.
type CompletionEvent struct {
	CheckoutID    string
	CustomerEmail string
	Draft         Draft
	Paid          bool
}
