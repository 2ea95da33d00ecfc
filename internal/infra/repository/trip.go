package repository

import (
	"context"
	"log/slog"

	"travelmate/internal/domain/trip"
	"travelmate/internal/infra"
	"travelmate/internal/infra/memstore"
)

type TripRepository struct {
	store  *memstore.Store
	logger *slog.Logger
}

func NewTripRepository(store *memstore.Store, logger *slog.Logger) *TripRepository {
	return &TripRepository{
		store:  store,
		logger: logger,
	}
}

func (r *TripRepository) FindByID(ctx context.Context, id int64) (*trip.Trip, error) {
	t, ok := r.store.Trips.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "trip not found", nil)
	}
	return &t, nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID int64) ([]trip.Trip, error) {
	return r.store.Trips.List(func(t *trip.Trip) bool {
		return t.BelongsTo(userID)
	}), nil
}

// ListOtherUsers returns up to limit trips not owned by userID, oldest first.
func (r *TripRepository) ListOtherUsers(ctx context.Context, userID int64, limit int) ([]trip.Trip, error) {
	return r.store.Trips.ListN(func(t *trip.Trip) bool {
		return !t.BelongsTo(userID)
	}, limit), nil
}

func (r *TripRepository) Create(ctx context.Context, t *trip.Trip) (*trip.Trip, error) {
	created := r.store.Trips.Create(*t)
	return &created, nil
}

// Update merges p onto the stored trip. The patch must already be validated.
func (r *TripRepository) Update(ctx context.Context, id int64, p trip.Patch) (*trip.Trip, error) {
	updated, ok := r.store.Trips.Update(id, p.ApplyTo)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "trip not found", nil)
	}
	return &updated, nil
}

func (r *TripRepository) Delete(ctx context.Context, id int64) error {
	if !r.store.Trips.Delete(id) {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "trip not found", nil)
	}
	return nil
}
