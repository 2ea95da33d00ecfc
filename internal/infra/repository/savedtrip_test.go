//go:build unit

package repository

import (
	"context"
	"testing"

	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/infra"
	"travelmate/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedTripRepository(t *testing.T) {
	repo := NewSavedTripRepository(newSeededStore(t), discardLogger())
	ctx := context.Background()

	first, err := repo.Create(ctx, &savedtrip.SavedTrip{UserID: 1, TripID: ptr.To(int64(3))})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &savedtrip.SavedTrip{UserID: 2, FlightID: ptr.To(int64(1)), ActivityIDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, seedTime, first.CreatedAt)

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ptr.To(int64(3)), mine[0].TripID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.True(t, infra.IsKind(repo.Delete(ctx, first.ID), infra.KindNotFound))

	mine, err = repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
