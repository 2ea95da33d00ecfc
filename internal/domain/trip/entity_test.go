//go:build unit

package trip_test

import (
	"testing"
	"time"

	"travelmate/internal/domain/trip"
	"travelmate/internal/pkg/patch"
	"travelmate/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() trip.NewTripParams {
	return trip.NewTripParams{
		UserID:      1,
		Name:        "Swiss Alps Adventure",
		Destination: "Zurich, Switzerland",
		StartDate:   ptr.To("2024-12-15"),
		EndDate:     ptr.To("2024-12-22"),
		Status:      "upcoming",
		TotalPrice:  ptr.To("1299.00"),
		Details:     &trip.Details{Flights: []int64{1}, Hotels: []int64{1}, Activities: []int64{1}},
	}
}

func TestNewTrip(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := trip.NewTrip(validParams())
		require.NoError(t, err)
		assert.Equal(t, trip.StatusUpcoming, actual.Status)
		assert.Zero(t, actual.ID)
		assert.True(t, actual.CreatedAt.IsZero())
	})

	testCases := []struct {
		name   string
		mutate func(*trip.NewTripParams)
		errIs  error
	}{
		{name: "zero user id", mutate: func(p *trip.NewTripParams) { p.UserID = 0 }, errIs: trip.ErrInvalidUserID},
		{name: "blank name", mutate: func(p *trip.NewTripParams) { p.Name = "  " }, errIs: trip.ErrEmptyName},
		{name: "blank destination", mutate: func(p *trip.NewTripParams) { p.Destination = "" }, errIs: trip.ErrEmptyDestination},
		{name: "unknown status", mutate: func(p *trip.NewTripParams) { p.Status = "cancelled" }, errIs: trip.ErrInvalidStatus},
		{name: "non-numeric total price", mutate: func(p *trip.NewTripParams) { p.TotalPrice = ptr.To("cheap") }, errIs: trip.ErrInvalidPrice},
		{name: "saved trip without dates", mutate: func(p *trip.NewTripParams) {
			p.Status = "saved"
			p.StartDate = nil
			p.EndDate = nil
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			actual, err := trip.NewTrip(p)
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, actual)
		})
	}
}

func TestPatch(t *testing.T) {
	base := func() *trip.Trip {
		tr, err := trip.NewTrip(validParams())
		require.NoError(t, err)
		tr.ID = 7
		tr.CreatedAt = time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
		return tr
	}

	t.Run("present fields overwrite, absent fields stay", func(t *testing.T) {
		tr := base()
		want := *base()
		want.Name = "Alps, extended"
		want.Status = trip.StatusCompleted

		p := trip.Patch{Name: patch.Value(" Alps, extended "), Status: patch.Value("completed")}
		require.NoError(t, p.Validate())
		p.ApplyTo(tr)

		if diff := cmp.Diff(&want, tr); diff != "" {
			t.Errorf("Trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("null clears nullable fields", func(t *testing.T) {
		tr := base()
		p := trip.Patch{StartDate: patch.Null[string](), TotalPrice: patch.Null[string]()}
		require.NoError(t, p.Validate())
		p.ApplyTo(tr)
		assert.Nil(t, tr.StartDate)
		assert.Nil(t, tr.TotalPrice)
		require.NotNil(t, tr.EndDate)
	})

	t.Run("details are replaced, not merged", func(t *testing.T) {
		tr := base()
		p := trip.Patch{Details: patch.Value(trip.Details{Hotels: []int64{2}})}
		p.ApplyTo(tr)
		require.NotNil(t, tr.Details)
		assert.Empty(t, tr.Details.Flights)
		assert.Equal(t, []int64{2}, tr.Details.Hotels)
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name  string
			patch trip.Patch
			errIs error
		}{
			{name: "empty patch", patch: trip.Patch{}},
			{name: "null name", patch: trip.Patch{Name: patch.Null[string]()}, errIs: trip.ErrNullField},
			{name: "blank destination", patch: trip.Patch{Destination: patch.Value(" ")}, errIs: trip.ErrEmptyDestination},
			{name: "bad status", patch: trip.Patch{Status: patch.Value("lost")}, errIs: trip.ErrInvalidStatus},
			{name: "null user id", patch: trip.Patch{UserID: patch.Null[int64]()}, errIs: trip.ErrInvalidUserID},
			{name: "negative user id", patch: trip.Patch{UserID: patch.Value[int64](-1)}, errIs: trip.ErrInvalidUserID},
			{name: "non-numeric total price", patch: trip.Patch{TotalPrice: patch.Value("abc")}, errIs: trip.ErrInvalidPrice},
			{name: "negative total price", patch: trip.Patch{TotalPrice: patch.Value("-1")}, errIs: trip.ErrInvalidPrice},
			{name: "valid total price", patch: trip.Patch{TotalPrice: patch.Value("2100.50")}},
			{name: "null total price", patch: trip.Patch{TotalPrice: patch.Null[string]()}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.patch.Validate()
				if tc.errIs == nil {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.True(t, trip.Patch{}.IsEmpty())
		assert.False(t, trip.Patch{EndDate: patch.Null[string]()}.IsEmpty())
	})
}
