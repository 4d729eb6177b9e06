package components

import (
	"stokship/internal/pkg/clock"
	"stokship/internal/pkg/config"
	"stokship/internal/usecase/commands"
	"stokship/internal/usecase/expiration"
	"stokship/internal/usecase/queries"
	"stokship/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseExpirationModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationEngine,
		commands.NewDealCommands,
		commands.NewOfferItemCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDealQueries,
		queries.NewOfferItemQueries,
	),
)

var usecaseExpirationModule = fx.Module("usecase/expiration",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			deals commands.DealCommands,
			notifier shared.Notifier,
			lock shared.RunLock,
			clk clock.Clock,
			cfg config.Config,
		) expiration.Sweeper {
			return expiration.NewSweeper(uow, deals, notifier, lock, clk, cfg.Expiration)
		},
	),
)
