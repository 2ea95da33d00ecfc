package bootstrap

import (
	"log/slog"

	"travelmate/internal/infra/memstore"
	"travelmate/internal/pkg/clock"
	"travelmate/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewSystemClock,
		memstore.New,
	),
	fx.Invoke(seedStore),
)

func seedStore(store *memstore.Store, cfg config.Config, logger *slog.Logger) {
	if !cfg.Store.Seed {
		logger.Info("store seeding disabled")
		return
	}
	memstore.Seed(store)
	logger.Info("store seeded",
		"users", store.Users.Len(),
		"flights", store.Flights.Len(),
		"hotels", store.Hotels.Len(),
		"activities", store.Activities.Len(),
		"deals", store.Deals.Len(),
		"trips", store.Trips.Len(),
	)
}
