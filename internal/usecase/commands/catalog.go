package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

import (
	"context"

	"travelmate/internal/domain/catalog"
)

// CatalogCommands adds inventory. Records are normalized by the catalog
// constructors before they reach the store.
type CatalogCommands interface {
	CreateFlight(ctx context.Context, f catalog.Flight) (*catalog.Flight, error)
	CreateHotel(ctx context.Context, h catalog.Hotel) (*catalog.Hotel, error)
	CreateActivity(ctx context.Context, a catalog.Activity) (*catalog.Activity, error)
	CreateDeal(ctx context.Context, d catalog.Deal) (*catalog.Deal, error)
}

type catalogCommandsImpl struct {
	repo CatalogRepository
}

func NewCatalogCommands(repo CatalogRepository) CatalogCommands {
	return &catalogCommandsImpl{repo: repo}
}

func (uc *catalogCommandsImpl) CreateFlight(ctx context.Context, f catalog.Flight) (*catalog.Flight, error) {
	valid, err := catalog.NewFlight(f)
	if err != nil {
		return nil, err
	}
	return uc.repo.CreateFlight(ctx, valid)
}

func (uc *catalogCommandsImpl) CreateHotel(ctx context.Context, h catalog.Hotel) (*catalog.Hotel, error) {
	valid, err := catalog.NewHotel(h)
	if err != nil {
		return nil, err
	}
	return uc.repo.CreateHotel(ctx, valid)
}

func (uc *catalogCommandsImpl) CreateActivity(ctx context.Context, a catalog.Activity) (*catalog.Activity, error) {
	valid, err := catalog.NewActivity(a)
	if err != nil {
		return nil, err
	}
	return uc.repo.CreateActivity(ctx, valid)
}

func (uc *catalogCommandsImpl) CreateDeal(ctx context.Context, d catalog.Deal) (*catalog.Deal, error) {
	valid, err := catalog.NewDeal(d)
	if err != nil {
		return nil, err
	}
	return uc.repo.CreateDeal(ctx, valid)
}
