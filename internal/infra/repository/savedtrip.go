package repository

import (
	"context"
	"log/slog"

	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/infra"
	"travelmate/internal/infra/memstore"
)

type SavedTripRepository struct {
	store  *memstore.Store
	logger *slog.Logger
}

func NewSavedTripRepository(store *memstore.Store, logger *slog.Logger) *SavedTripRepository {
	return &SavedTripRepository{
		store:  store,
		logger: logger,
	}
}

func (r *SavedTripRepository) ListByUser(ctx context.Context, userID int64) ([]savedtrip.SavedTrip, error) {
	return r.store.SavedTrips.List(func(s *savedtrip.SavedTrip) bool {
		return s.UserID == userID
	}), nil
}

func (r *SavedTripRepository) Create(ctx context.Context, s *savedtrip.SavedTrip) (*savedtrip.SavedTrip, error) {
	created := r.store.SavedTrips.Create(*s)
	return &created, nil
}

func (r *SavedTripRepository) Delete(ctx context.Context, id int64) error {
	if !r.store.SavedTrips.Delete(id) {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "saved trip not found", nil)
	}
	return nil
}
