//go:build unit

package commands_test

import (
	"context"
	"testing"

	"travelmate/internal/domain/user"
	"travelmate/internal/pkg/errs"
	"travelmate/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCommands_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		req           commands.CreateUserRequest
		wantErr       error
		wantDomainErr bool
	}{
		{
			name: "success",
			req:  commands.CreateUserRequest{Name: "Jane Roe", Email: "jane@example.com"},
		},
		{
			name:    "duplicate email",
			req:     commands.CreateUserRequest{Name: "John Again", Email: "JOHN@example.com"},
			wantErr: commands.ErrEmailTaken,
		},
		{
			name:          "invalid email",
			req:           commands.CreateUserRequest{Name: "Jane", Email: "jane"},
			wantDomainErr: true,
		},
		{
			name:          "blank name",
			req:           commands.CreateUserRequest{Name: "  ", Email: "blank@example.com"},
			wantDomainErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := commands.NewUserCommands(newUserRepo(t), discardLogger())

			got, err := uc.CreateUser(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantDomainErr:
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(2), got.ID)
				assert.Equal(t, "Jane Roe", got.Name)
			}
		})
	}
}

func TestUserCommands_UpdatePreferences(t *testing.T) {
	uc := commands.NewUserCommands(newUserRepo(t), discardLogger())
	prefs := &user.Preferences{Budget: "$500 - $1,000", Style: []string{"City Breaks"}}

	got, err := uc.UpdatePreferences(context.Background(), 1, prefs)
	require.NoError(t, err)
	assert.Equal(t, []string{"City Breaks"}, got.Preferences.Style)

	_, err = uc.UpdatePreferences(context.Background(), 404, prefs)
	assert.ErrorIs(t, err, commands.ErrUserNotFound)
}
