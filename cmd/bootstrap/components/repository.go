package components

import (
	"zen-booking/internal/infra/readstore"
	repo_impl "zen-booking/internal/infra/repository"
	"zen-booking/internal/usecase/commands"
	"zen-booking/internal/usecase/queries"
	"zen-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewDeadLetterRepository,
			fx.As(new(shared.DeadLetterQueue)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)
