package components

import (
	"shiftcore/internal/pkg/clock"
	"shiftcore/internal/usecase/commands"
	"shiftcore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSignupCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewCreditQueries,
		queries.NewSummaryQueries,
	),
)
