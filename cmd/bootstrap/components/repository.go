package components

import (
	"travelmate/internal/infra/repository"
	"travelmate/internal/usecase/commands"
	"travelmate/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each repository serves both sides: the read-store port for queries and the
// write port for commands.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewTripRepository,
			fx.As(new(queries.TripReadStore)),
			fx.As(new(commands.TripRepository)),
		),
		fx.Annotate(
			repository.NewSavedTripRepository,
			fx.As(new(queries.SavedTripReadStore)),
			fx.As(new(commands.SavedTripRepository)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(commands.CatalogRepository)),
		),
	),
)
