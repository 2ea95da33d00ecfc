package repository

import (
	"context"
	"log/slog"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/infra"
	"travelmate/internal/infra/memstore"
)

// CatalogRepository serves flights, hotels, activities and deals. Searches
// are full scans in insertion order; an empty result is not an error.
type CatalogRepository struct {
	store  *memstore.Store
	logger *slog.Logger
}

func NewCatalogRepository(store *memstore.Store, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		store:  store,
		logger: logger,
	}
}

func (r *CatalogRepository) SearchFlights(ctx context.Context, s catalog.FlightSearch) ([]catalog.Flight, error) {
	return r.store.Flights.List(func(f *catalog.Flight) bool { return s.Matches(*f) }), nil
}

func (r *CatalogRepository) FindFlight(ctx context.Context, id int64) (*catalog.Flight, error) {
	f, ok := r.store.Flights.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "flight not found", nil)
	}
	return &f, nil
}

func (r *CatalogRepository) CreateFlight(ctx context.Context, f *catalog.Flight) (*catalog.Flight, error) {
	created := r.store.Flights.Create(*f)
	return &created, nil
}

func (r *CatalogRepository) SearchHotels(ctx context.Context, s catalog.HotelSearch) ([]catalog.Hotel, error) {
	return r.store.Hotels.List(func(h *catalog.Hotel) bool { return s.Matches(*h) }), nil
}

func (r *CatalogRepository) FindHotel(ctx context.Context, id int64) (*catalog.Hotel, error) {
	h, ok := r.store.Hotels.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "hotel not found", nil)
	}
	return &h, nil
}

func (r *CatalogRepository) CreateHotel(ctx context.Context, h *catalog.Hotel) (*catalog.Hotel, error) {
	created := r.store.Hotels.Create(*h)
	return &created, nil
}

func (r *CatalogRepository) SearchActivities(ctx context.Context, s catalog.ActivitySearch) ([]catalog.Activity, error) {
	return r.store.Activities.List(func(a *catalog.Activity) bool { return s.Matches(*a) }), nil
}

func (r *CatalogRepository) FindActivity(ctx context.Context, id int64) (*catalog.Activity, error) {
	a, ok := r.store.Activities.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "activity not found", nil)
	}
	return &a, nil
}

func (r *CatalogRepository) CreateActivity(ctx context.Context, a *catalog.Activity) (*catalog.Activity, error) {
	created := r.store.Activities.Create(*a)
	return &created, nil
}

func (r *CatalogRepository) ListDeals(ctx context.Context, f catalog.DealFilter) ([]catalog.Deal, error) {
	return r.store.Deals.List(func(d *catalog.Deal) bool { return f.Matches(*d) }), nil
}

func (r *CatalogRepository) FindDeal(ctx context.Context, id int64) (*catalog.Deal, error) {
	d, ok := r.store.Deals.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "deal not found", nil)
	}
	return &d, nil
}

func (r *CatalogRepository) CreateDeal(ctx context.Context, d *catalog.Deal) (*catalog.Deal, error) {
	created := r.store.Deals.Create(*d)
	return &created, nil
}
