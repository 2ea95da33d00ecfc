//go:build unit

package repository

import (
	"context"
	"testing"

	"travelmate/internal/domain/user"
	"travelmate/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByID(t *testing.T) {
	repo := NewUserRepository(newSeededStore(t), discardLogger())

	u, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)

	_, err = repo.FindByID(context.Background(), 42)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository(newSeededStore(t), discardLogger())

	email, err := user.NewEmail("JOHN@example.com")
	require.NoError(t, err)
	u, err := repo.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	other, err := user.NewEmail("nobody@example.com")
	require.NoError(t, err)
	_, err = repo.FindByEmail(context.Background(), other)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		wantKind infra.RepositoryErrorKind
		wantID   int64
	}{
		{name: "new email", email: "jane@example.com", wantID: 2},
		{name: "duplicate email ignoring case", email: "John@Example.com", wantKind: infra.KindDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewUserRepository(newSeededStore(t), discardLogger())
			email, err := user.NewEmail(tt.email)
			require.NoError(t, err)
			u, err := user.NewUser("Jane", email, nil)
			require.NoError(t, err)

			created, err := repo.Create(context.Background(), u)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, created.ID)
		})
	}
}

func TestUserRepository_UpdatePreferences(t *testing.T) {
	repo := NewUserRepository(newSeededStore(t), discardLogger())
	prefs := &user.Preferences{Budget: "$5,000+", Alerts: []string{"price-drop"}}

	updated, err := repo.UpdatePreferences(context.Background(), 1, prefs)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, "$5,000+", updated.Preferences.Budget)
	assert.Empty(t, updated.Preferences.Destinations)

	_, err = repo.UpdatePreferences(context.Background(), 7, prefs)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
