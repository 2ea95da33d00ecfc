//go:build unit

package commands_test

import (
	"context"
	"testing"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/infra/repository"
	"travelmate/internal/pkg/errs"
	"travelmate/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogCommands(t *testing.T) commands.CatalogCommands {
	return commands.NewCatalogCommands(repository.NewCatalogRepository(seededStore(t), discardLogger()))
}

func TestCatalogCommands_CreateFlight(t *testing.T) {
	uc := newCatalogCommands(t)

	got, err := uc.CreateFlight(context.Background(), catalog.Flight{
		ID: 77, FromCity: "Oslo", ToCity: "Lima", DepartureDate: "2025-01-10",
		Price: "950.00", Airline: "LATAM",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, 1, got.Passengers)
	assert.Equal(t, catalog.CabinEconomy, got.Class)

	_, err = uc.CreateFlight(context.Background(), catalog.Flight{FromCity: "Oslo"})
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
}

func TestCatalogCommands_CreateOthers(t *testing.T) {
	uc := newCatalogCommands(t)
	ctx := context.Background()

	h, err := uc.CreateHotel(ctx, catalog.Hotel{
		Name: "Harbor Inn", Location: "Oslo, Norway", CheckIn: "2025-01-10", CheckOut: "2025-01-12",
		Price: "140.00", Rating: "4.2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), h.ID)
	assert.Equal(t, 1, h.Rooms)

	a, err := uc.CreateActivity(ctx, catalog.Activity{
		Name: "Fjord Cruise", Location: "Oslo, Norway", Price: "75.00",
		Duration: "3 hours", Type: "Nature", Rating: "4.6",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID)

	d, err := uc.CreateDeal(ctx, catalog.Deal{
		Type: catalog.DealActivities, Title: "Fjord Cruise", OriginalPrice: "99.00", CurrentPrice: "75.00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.ID)

	_, err = uc.CreateDeal(ctx, catalog.Deal{Type: "cruises", Title: "x", OriginalPrice: "1", CurrentPrice: "1"})
	assert.ErrorIs(t, err, catalog.ErrInvalidDealType)
}
