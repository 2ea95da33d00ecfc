//go:build unit

package repository

import (
	"context"
	"testing"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_SearchFlights(t *testing.T) {
	tests := []struct {
		name    string
		search  catalog.FlightSearch
		wantIDs []int64
	}{
		{
			name:    "destination alone is enough",
			search:  catalog.FlightSearch{From: "Berlin", To: "Paris"},
			wantIDs: []int64{1},
		},
		{
			name:    "origin alone is enough",
			search:  catalog.FlightSearch{From: "los angeles", To: "Sydney"},
			wantIDs: []int64{2},
		},
		{
			name:    "all mode needs both",
			search:  catalog.FlightSearch{From: "Berlin", To: "Paris", Mode: catalog.MatchAll},
			wantIDs: []int64{},
		},
		{
			name:    "no match",
			search:  catalog.FlightSearch{From: "Oslo", To: "Lima"},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewCatalogRepository(newSeededStore(t), discardLogger())

			flights, err := repo.SearchFlights(context.Background(), tt.search)

			require.NoError(t, err)
			ids := make([]int64, 0, len(flights))
			for _, f := range flights {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogRepository_SearchHotelsCaseInsensitive(t *testing.T) {
	repo := NewCatalogRepository(newSeededStore(t), discardLogger())

	for _, dest := range []string{"rome", "ROME", "Rome, Italy"} {
		hotels, err := repo.SearchHotels(context.Background(), catalog.HotelSearch{Destination: dest})
		require.NoError(t, err)
		require.Len(t, hotels, 1, dest)
		assert.Equal(t, "Grand Hotel Rome", hotels[0].Name)
	}
}

func TestCatalogRepository_SearchActivities(t *testing.T) {
	repo := NewCatalogRepository(newSeededStore(t), discardLogger())
	ctx := context.Background()

	got, err := repo.SearchActivities(ctx, catalog.ActivitySearch{Destination: "tokyo", Type: "adventure"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mount Fuji Day Trip", got[0].Name)

	maxPrice := 100.0
	got, err = repo.SearchActivities(ctx, catalog.ActivitySearch{Destination: "Tokyo", PriceRange: &catalog.PriceRange{Max: &maxPrice}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogRepository_ListDeals(t *testing.T) {
	repo := NewCatalogRepository(newSeededStore(t), discardLogger())
	ctx := context.Background()

	all, err := repo.ListDeals(ctx, catalog.DealFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	explicitAll, err := repo.ListDeals(ctx, catalog.DealFilter{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, explicitAll, 4)

	hotels, err := repo.ListDeals(ctx, catalog.DealFilter{Type: "hotels"})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Grand Hotel Rome", hotels[0].Title)
}

func TestCatalogRepository_FindAndCreate(t *testing.T) {
	repo := NewCatalogRepository(newSeededStore(t), discardLogger())
	ctx := context.Background()

	_, err := repo.FindFlight(ctx, 3)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	created, err := repo.CreateFlight(ctx, &catalog.Flight{FromCity: "Oslo", ToCity: "Lima", Price: "900.00"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	found, err := repo.FindFlight(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Lima", found.ToCity)

	_, err = repo.FindHotel(ctx, 9)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	_, err = repo.FindActivity(ctx, 9)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	_, err = repo.FindDeal(ctx, 9)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	deal, err := repo.CreateDeal(ctx, &catalog.Deal{Type: catalog.DealPackages, Title: "Iceland"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), deal.ID)
}
