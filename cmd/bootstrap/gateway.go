package bootstrap

import (
	"zen-booking/internal/domain/booking"
	"zen-booking/internal/infra/gateway"
	"zen-booking/internal/infra/mail"
	"zen-booking/internal/pkg/config"
	"zen-booking/internal/usecase/commands"
	"zen-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		booking.NewDefaultPriceTable,
		fx.Annotate(
			gateway.NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		func(cfg config.Config) []mail.Backend {
			return mail.NewSMTPBackends(cfg.Mail)
		},
		fx.Annotate(
			mail.NewFallbackNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)
