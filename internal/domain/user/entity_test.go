//go:build unit

package user_test

import (
	"testing"

	"travelmate/internal/domain/user"
	"travelmate/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		email, err := user.NewEmail("  jane@example.com ")
		require.NoError(t, err)
		prefs := &user.Preferences{Budget: "$500 - $1,000", Style: []string{"Cultural"}}

		actual, err := user.NewUser(" Jane Roe ", email, prefs)
		require.NoError(t, err)

		expected := &user.User{Name: "Jane Roe", Email: "jane@example.com", Preferences: prefs}
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.Zero(t, actual.ID)
	})

	t.Run("email validation", func(t *testing.T) {
		testCases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "valid address", email: "valid@example.com"},
			{name: "empty address", email: "", errIs: user.ErrInvalidEmail},
			{name: "missing domain", email: "invalid-email", errIs: user.ErrInvalidEmail},
			{name: "missing at sign", email: "invalidemail.com", errIs: user.ErrInvalidEmail},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := user.NewEmail(tc.email)
				if tc.errIs == nil {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			})
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		email, _ := user.NewEmail("a@example.com")
		_, err := user.NewUser("   ", email, nil)
		require.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("email comparison ignores case", func(t *testing.T) {
		u := &user.User{Email: "John@Example.com"}
		assert.True(t, u.SameEmail("john@example.com"))
		assert.False(t, u.SameEmail("jane@example.com"))
	})
}
