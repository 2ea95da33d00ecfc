//go:build unit

package repository

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"travelmate/internal/infra/memstore"
	"travelmate/internal/pkg/clock"
)

var seedTime = time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *memstore.Store {
	t.Helper()
	s := memstore.New(clock.NewMockClock(seedTime))
	memstore.Seed(s)
	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
