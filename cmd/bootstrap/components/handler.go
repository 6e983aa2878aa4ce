package components

import (
	"zen-booking/internal/handler"
	"zen-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
