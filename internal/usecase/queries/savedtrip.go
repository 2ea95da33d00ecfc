package queries

//go:generate mockgen -source=savedtrip.go -destination=../../../tests/mock/queries/savedtrip_mock.go -package=queriesmock -exclude_interfaces=SavedTripReadStore

import (
	"context"

	"travelmate/internal/domain/savedtrip"
)

type SavedTripQueries interface {
	ListUserSavedTrips(ctx context.Context, userID int64) ([]savedtrip.SavedTrip, error)
}

type SavedTripReadStore interface {
	ListByUser(ctx context.Context, userID int64) ([]savedtrip.SavedTrip, error)
}

type savedTripQueriesImpl struct {
	readStore SavedTripReadStore
}

func NewSavedTripQueries(readStore SavedTripReadStore) SavedTripQueries {
	return &savedTripQueriesImpl{readStore: readStore}
}

func (q *savedTripQueriesImpl) ListUserSavedTrips(ctx context.Context, userID int64) ([]savedtrip.SavedTrip, error) {
	return q.readStore.ListByUser(ctx, userID)
}
