package queries

//go:generate mockgen -source=trip.go -destination=../../../tests/mock/queries/trip_mock.go -package=queriesmock -exclude_interfaces=TripReadStore

import (
	"context"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/domain/trip"
	"travelmate/internal/infra"
	"travelmate/internal/pkg/errs"
	"travelmate/internal/pkg/itinerary"
)

// RecommendationLimit caps how many trips Recommend returns.
const RecommendationLimit = 6

var ErrTripNotFound = errs.Mark(errs.New("trip not found"), errs.ErrNotFound)

type TripQueries interface {
	GetTrip(ctx context.Context, id int64) (*trip.Trip, error)
	ListUserTrips(ctx context.Context, userID int64) ([]trip.Trip, error)
	Recommend(ctx context.Context, userID int64) ([]trip.Trip, error)
	GetItinerary(ctx context.Context, id int64) (*itinerary.Document, error)
}

type TripReadStore interface {
	FindByID(ctx context.Context, id int64) (*trip.Trip, error)
	ListByUser(ctx context.Context, userID int64) ([]trip.Trip, error)
	ListOtherUsers(ctx context.Context, userID int64, limit int) ([]trip.Trip, error)
}

type tripQueriesImpl struct {
	trips   TripReadStore
	users   UserReadStore
	catalog CatalogReadStore
}

func NewTripQueries(trips TripReadStore, users UserReadStore, catalog CatalogReadStore) TripQueries {
	return &tripQueriesImpl{
		trips:   trips,
		users:   users,
		catalog: catalog,
	}
}

func (q *tripQueriesImpl) GetTrip(ctx context.Context, id int64) (*trip.Trip, error) {
	t, err := q.trips.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrTripNotFound)
	}
	return t, nil
}

// ListUserTrips never fails for an unknown user; it returns an empty list.
func (q *tripQueriesImpl) ListUserTrips(ctx context.Context, userID int64) ([]trip.Trip, error) {
	return q.trips.ListByUser(ctx, userID)
}

// Recommend suggests trips planned by other users, oldest first.
func (q *tripQueriesImpl) Recommend(ctx context.Context, userID int64) ([]trip.Trip, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []trip.Trip{}, nil
		}
		return nil, err
	}
	return q.trips.ListOtherUsers(ctx, userID, RecommendationLimit)
}

// GetItinerary resolves the catalog ids in the trip details. Dangling ids
// are skipped.
func (q *tripQueriesImpl) GetItinerary(ctx context.Context, id int64) (*itinerary.Document, error) {
	t, err := q.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := &itinerary.Document{Trip: *t}
	if t.Details == nil {
		return doc, nil
	}

	if doc.Flights, err = resolve(ctx, t.Details.Flights, q.catalog.FindFlight); err != nil {
		return nil, err
	}
	if doc.Hotels, err = resolve(ctx, t.Details.Hotels, q.catalog.FindHotel); err != nil {
		return nil, err
	}
	if doc.Activities, err = resolve(ctx, t.Details.Activities, q.catalog.FindActivity); err != nil {
		return nil, err
	}
	return doc, nil
}

func resolve[T catalog.Flight | catalog.Hotel | catalog.Activity](
	ctx context.Context,
	ids []int64,
	find func(context.Context, int64) (*T, error),
) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		item, err := find(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}
