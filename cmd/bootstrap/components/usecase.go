package components

import (
	"travelmate/internal/usecase/commands"
	"travelmate/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewTripCommands,
		commands.NewSavedTripCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTripQueries,
		queries.NewSavedTripQueries,
		queries.NewCatalogQueries,
	),
)
