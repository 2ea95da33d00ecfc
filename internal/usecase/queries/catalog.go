package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock -exclude_interfaces=CatalogReadStore

import (
	"context"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/infra"
	"travelmate/internal/pkg/config"
	"travelmate/internal/pkg/errs"
)

var (
	ErrFlightNotFound   = errs.Mark(errs.New("flight not found"), errs.ErrNotFound)
	ErrHotelNotFound    = errs.Mark(errs.New("hotel not found"), errs.ErrNotFound)
	ErrActivityNotFound = errs.Mark(errs.New("activity not found"), errs.ErrNotFound)
	ErrDealNotFound     = errs.Mark(errs.New("deal not found"), errs.ErrNotFound)
)

type CatalogQueries interface {
	SearchFlights(ctx context.Context, search catalog.FlightSearch) ([]catalog.Flight, error)
	GetFlight(ctx context.Context, id int64) (*catalog.Flight, error)
	SearchHotels(ctx context.Context, search catalog.HotelSearch) ([]catalog.Hotel, error)
	GetHotel(ctx context.Context, id int64) (*catalog.Hotel, error)
	SearchActivities(ctx context.Context, search catalog.ActivitySearch) ([]catalog.Activity, error)
	GetActivity(ctx context.Context, id int64) (*catalog.Activity, error)
	ListDeals(ctx context.Context, dealType string) ([]catalog.Deal, error)
	GetDeal(ctx context.Context, id int64) (*catalog.Deal, error)
}

type CatalogReadStore interface {
	SearchFlights(ctx context.Context, search catalog.FlightSearch) ([]catalog.Flight, error)
	FindFlight(ctx context.Context, id int64) (*catalog.Flight, error)
	SearchHotels(ctx context.Context, search catalog.HotelSearch) ([]catalog.Hotel, error)
	FindHotel(ctx context.Context, id int64) (*catalog.Hotel, error)
	SearchActivities(ctx context.Context, search catalog.ActivitySearch) ([]catalog.Activity, error)
	FindActivity(ctx context.Context, id int64) (*catalog.Activity, error)
	ListDeals(ctx context.Context, filter catalog.DealFilter) ([]catalog.Deal, error)
	FindDeal(ctx context.Context, id int64) (*catalog.Deal, error)
}

type catalogQueriesImpl struct {
	readStore   CatalogReadStore
	flightMatch catalog.MatchMode
}

func NewCatalogQueries(readStore CatalogReadStore, cfg config.SearchConfig) CatalogQueries {
	return &catalogQueriesImpl{
		readStore:   readStore,
		flightMatch: catalog.MatchMode(cfg.FlightMatch),
	}
}

// SearchFlights ignores any mode on the incoming search; the configured one
// always applies.
func (q *catalogQueriesImpl) SearchFlights(ctx context.Context, search catalog.FlightSearch) ([]catalog.Flight, error) {
	search.Mode = q.flightMatch
	return q.readStore.SearchFlights(ctx, search)
}

func (q *catalogQueriesImpl) GetFlight(ctx context.Context, id int64) (*catalog.Flight, error) {
	f, err := q.readStore.FindFlight(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrFlightNotFound)
	}
	return f, nil
}

func (q *catalogQueriesImpl) SearchHotels(ctx context.Context, search catalog.HotelSearch) ([]catalog.Hotel, error) {
	return q.readStore.SearchHotels(ctx, search)
}

func (q *catalogQueriesImpl) GetHotel(ctx context.Context, id int64) (*catalog.Hotel, error) {
	h, err := q.readStore.FindHotel(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrHotelNotFound)
	}
	return h, nil
}

func (q *catalogQueriesImpl) SearchActivities(ctx context.Context, search catalog.ActivitySearch) ([]catalog.Activity, error) {
	return q.readStore.SearchActivities(ctx, search)
}

func (q *catalogQueriesImpl) GetActivity(ctx context.Context, id int64) (*catalog.Activity, error) {
	a, err := q.readStore.FindActivity(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrActivityNotFound)
	}
	return a, nil
}

// ListDeals accepts any type string; unknown types simply match nothing.
func (q *catalogQueriesImpl) ListDeals(ctx context.Context, dealType string) ([]catalog.Deal, error) {
	return q.readStore.ListDeals(ctx, catalog.DealFilter{Type: dealType})
}

func (q *catalogQueriesImpl) GetDeal(ctx context.Context, id int64) (*catalog.Deal, error) {
	d, err := q.readStore.FindDeal(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrDealNotFound)
	}
	return d, nil
}

// notFoundAs swaps a repository miss for the usecase sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
