//go:build unit

package commands_test

import (
	"context"
	"testing"

	"travelmate/internal/domain/savedtrip"
	"travelmate/internal/infra/repository"
	"travelmate/internal/pkg/ptr"
	"travelmate/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedTripCommands(t *testing.T) {
	uc := commands.NewSavedTripCommands(repository.NewSavedTripRepository(seededStore(t), discardLogger()))
	ctx := context.Background()

	created, err := uc.CreateSavedTrip(ctx, savedtrip.NewSavedTripParams{
		UserID:     1,
		HotelID:    ptr.To(int64(2)),
		CustomName: ptr.To("  Tokyo stay  "),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, ptr.To("Tokyo stay"), created.CustomName)
	assert.Equal(t, now, created.CreatedAt)

	_, err = uc.CreateSavedTrip(ctx, savedtrip.NewSavedTripParams{UserID: 0})
	assert.ErrorIs(t, err, savedtrip.ErrInvalidUserID)

	require.NoError(t, uc.DeleteSavedTrip(ctx, created.ID))
	assert.ErrorIs(t, uc.DeleteSavedTrip(ctx, created.ID), commands.ErrSavedTripNotFound)
}
