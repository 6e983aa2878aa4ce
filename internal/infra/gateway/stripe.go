package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/pkg/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const completedEventType = "checkout.session.completed"

// StripeGateway creates hosted checkout sessions and verifies asynchronous
// completion events. The booking draft rides on the checkout as metadata so
// the completion event carries everything needed to persist the booking.
type StripeGateway struct {
	api    *client.API
	prices *booking.PriceTable
	cfg    config.StripeConfig
}

func NewStripeGateway(cfg config.Config, prices *booking.PriceTable) *StripeGateway {
	return &StripeGateway{
		api:    client.New(cfg.Stripe.SecretKey, nil),
		prices: prices,
		cfg:    cfg.Stripe,
	}
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, draft booking.Draft) (*booking.CheckoutIntent, error) {
	price, err := g.prices.For(draft.Session)
	if err != nil {
		return nil, wrapGatewayErr(KindUnknownSession, "no price for session", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(draft.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyGBP)),
					UnitAmount: stripe.Int64(price.AmountPence),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(price.DisplayName),
						Description: stripe.String(fmt.Sprintf(
							"Booking for %s at %s with %s %s", draft.Date, draft.Time, draft.Name, draft.Surname,
						)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.cfg.ClientURL + "/success"),
		CancelURL:  stripe.String(g.cfg.ClientURL + "/cancel"),
	}
	params.AddMetadata("name", draft.Name)
	params.AddMetadata("surname", draft.Surname)
	params.AddMetadata("phone", draft.Phone)
	params.AddMetadata("date", draft.Date)
	params.AddMetadata("time", draft.Time)
	params.AddMetadata("session", draft.Session.String())

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, wrapGatewayErr(KindUnavailable, "failed to create checkout session", err)
	}

	return &booking.CheckoutIntent{
		CheckoutID:  session.ID,
		RedirectURL: session.URL,
	}, nil
}

// VerifyCompletionEvent authenticates the raw webhook payload before
// anything in it is trusted. A nil event with nil error means the event type
// is not one we act on and should simply be acknowledged.
func (g *StripeGateway) VerifyCompletionEvent(payload []byte, signature string) (*booking.CompletionEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.cfg.WebhookSecret)
	if err != nil {
		return nil, wrapGatewayErr(KindBadSignature, "webhook signature verification failed", err)
	}

	if string(event.Type) != completedEventType {
		slog.Debug("ignoring webhook event", "type", event.Type)
		return nil, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, wrapGatewayErr(KindUnavailable, "failed to decode checkout session from event", err)
	}

	return completionFromSession(&session, true), nil
}

// RetrieveCheckout reconstructs a completion event directly from the
// checkout session, for environments the webhook cannot reach.
func (g *StripeGateway) RetrieveCheckout(ctx context.Context, checkoutID string) (*booking.CompletionEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	session, err := g.api.CheckoutSessions.Get(checkoutID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return nil, wrapGatewayErr(KindNotPaid, "checkout session not found", err)
		}
		return nil, wrapGatewayErr(KindUnavailable, "failed to retrieve checkout session", err)
	}

	paid := session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	return completionFromSession(session, paid), nil
}

func completionFromSession(session *stripe.CheckoutSession, paid bool) *booking.CompletionEvent {
	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	meta := session.Metadata
	return &booking.CompletionEvent{
		CheckoutID:    session.ID,
		CustomerEmail: email,
		Paid:          paid,
		Draft: booking.Draft{
			Name:    meta["name"],
			Surname: meta["surname"],
			Email:   email,
			Phone:   meta["phone"],
			Date:    meta["date"],
			Time:    meta["time"],
			Session: booking.Session(meta["session"]),
		},
	}
}
