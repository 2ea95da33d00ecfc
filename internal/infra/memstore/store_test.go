//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/domain/trip"
	"travelmate/internal/domain/user"
	"travelmate/internal/infra/memstore"
	"travelmate/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 11, 20, 9, 30, 0, 0, time.UTC)

func seededStore(t *testing.T) (*memstore.Store, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(fixedNow)
	s := memstore.New(clk)
	memstore.Seed(s)
	return s, clk
}

func TestSeed(t *testing.T) {
	s, _ := seededStore(t)

	assert.Equal(t, 1, s.Users.Len())
	assert.Equal(t, 2, s.Flights.Len())
	assert.Equal(t, 2, s.Hotels.Len())
	assert.Equal(t, 2, s.Activities.Len())
	assert.Equal(t, 4, s.Deals.Len())
	assert.Equal(t, 3, s.Trips.Len())
	assert.Zero(t, s.SavedTrips.Len())

	u, ok := s.Users.Get(1)
	require.True(t, ok)
	assert.Equal(t, "john@example.com", u.Email)
	require.NotNil(t, u.Preferences)
	assert.Equal(t, []string{"Europe", "Asia"}, u.Preferences.Destinations)

	greek, ok := s.Trips.Get(3)
	require.True(t, ok)
	assert.Nil(t, greek.StartDate)
	assert.Equal(t, trip.StatusSaved, greek.Status)
	assert.Equal(t, fixedNow, greek.CreatedAt)

	maldives, ok := s.Deals.Get(4)
	require.True(t, ok)
	require.NotNil(t, maldives.ValidUntil)
	assert.Equal(t, time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC), *maldives.ValidUntil)
}

func TestSeed_NextIDsContinue(t *testing.T) {
	s, _ := seededStore(t)

	assert.Equal(t, int64(2), s.Users.Create(user.User{Name: "Jane", Email: "jane@example.com"}).ID)
	assert.Equal(t, int64(4), s.Trips.Create(trip.Trip{UserID: 1, Name: "n", Destination: "d", Status: trip.StatusSaved}).ID)
	assert.Equal(t, int64(5), s.Deals.Create(catalog.Deal{Type: catalog.DealHotels}).ID)
	assert.Equal(t, int64(1), s.SavedTrips.Create(savedtrip.SavedTrip{UserID: 1}).ID)
}

func TestTrips_CreateStampsAndRoundTrips(t *testing.T) {
	s, clk := seededStore(t)
	clk.Tick(time.Hour)

	created := s.Trips.Create(trip.Trip{
		UserID:      2,
		Name:        "Lisbon",
		Destination: "Lisbon, Portugal",
		Status:      trip.StatusUpcoming,
		Details:     &trip.Details{Hotels: []int64{1}},
	})
	assert.Equal(t, fixedNow.Add(time.Hour), created.CreatedAt)

	got, ok := s.Trips.Get(created.ID)
	require.True(t, ok)
	if diff := cmp.Diff(created, got); diff != "" {
		t.Errorf("trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTrips_UpdateKeepsCreatedAt(t *testing.T) {
	s, clk := seededStore(t)
	clk.Tick(24 * time.Hour)

	updated, ok := s.Trips.Update(1, func(tr *trip.Trip) { tr.Name = "Alps" })
	require.True(t, ok)
	assert.Equal(t, fixedNow, updated.CreatedAt)
	assert.Equal(t, "Zurich, Switzerland", updated.Destination)
}

func TestDeleteUserDoesNotCascade(t *testing.T) {
	s, _ := seededStore(t)

	require.True(t, s.Users.Delete(1))
	assert.Len(t, s.Trips.List(func(tr *trip.Trip) bool { return tr.UserID == 1 }), 3)
}

func TestReset(t *testing.T) {
	s, _ := seededStore(t)
	s.Reset()
	assert.Zero(t, s.Trips.Len())
	assert.Zero(t, s.Deals.Len())

	memstore.Seed(s)
	assert.Equal(t, 4, s.Deals.Len())
	_, ok := s.Deals.Get(4)
	assert.True(t, ok)
}
