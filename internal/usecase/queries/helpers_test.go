//go:build unit

package queries_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"travelmate/internal/infra/memstore"
	"travelmate/internal/infra/repository"
	"travelmate/internal/pkg/clock"
)

type repos struct {
	store     *memstore.Store
	users     *repository.UserRepository
	trips     *repository.TripRepository
	savedTrip *repository.SavedTripRepository
	catalog   *repository.CatalogRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()
	store := memstore.New(clock.NewMockClock(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))
	memstore.Seed(store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repos{
		store:     store,
		users:     repository.NewUserRepository(store, logger),
		trips:     repository.NewTripRepository(store, logger),
		savedTrip: repository.NewSavedTripRepository(store, logger),
		catalog:   repository.NewCatalogRepository(store, logger),
	}
}
