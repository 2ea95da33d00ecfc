//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"travelmate/internal/infra/memstore"
	"travelmate/internal/infra/repository"
	"travelmate/internal/pkg/clock"
)

var now = time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New(clock.NewMockClock(now))
	memstore.Seed(store)
	return store
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserRepo(t *testing.T) *repository.UserRepository {
	return repository.NewUserRepository(seededStore(t), discardLogger())
}
