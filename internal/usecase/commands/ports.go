package commands

import (
	"context"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/domain/trip"
	"travelmate/internal/domain/user"
)

// Write-side ports, implemented by internal/infra/repository.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	UpdatePreferences(ctx context.Context, id int64, prefs *user.Preferences) (*user.User, error)
}

type TripRepository interface {
	FindByID(ctx context.Context, id int64) (*trip.Trip, error)
	Create(ctx context.Context, t *trip.Trip) (*trip.Trip, error)
	Update(ctx context.Context, id int64, p trip.Patch) (*trip.Trip, error)
	Delete(ctx context.Context, id int64) error
}

type SavedTripRepository interface {
	Create(ctx context.Context, s *savedtrip.SavedTrip) (*savedtrip.SavedTrip, error)
	Delete(ctx context.Context, id int64) error
}

type CatalogRepository interface {
	CreateFlight(ctx context.Context, f *catalog.Flight) (*catalog.Flight, error)
	CreateHotel(ctx context.Context, h *catalog.Hotel) (*catalog.Hotel, error)
	CreateActivity(ctx context.Context, a *catalog.Activity) (*catalog.Activity, error)
	CreateDeal(ctx context.Context, d *catalog.Deal) (*catalog.Deal, error)
}
