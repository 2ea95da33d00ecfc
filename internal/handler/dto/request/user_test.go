//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"travelmate/internal/domain/user"
	"travelmate/internal/handler/dto/request"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *user.Preferences
		wantErr bool
	}{
		{
			name: "web client spelling",
			body: `{"travelStyle":["Beach & Relaxation"],"budget":"$500 - $1,000"}`,
			want: &user.Preferences{Budget: "$500 - $1,000", Style: []string{"Beach & Relaxation"}},
		},
		{
			name: "stored spelling",
			body: `{"style":["Cultural"]}`,
			want: &user.Preferences{Style: []string{"Cultural"}},
		},
		{
			name: "travelStyle wins over style",
			body: `{"style":["Cultural"],"travelStyle":["Adventure"]}`,
			want: &user.Preferences{Style: []string{"Adventure"}},
		},
		{
			name: "unmodeled keys are kept",
			body: `{"alerts":["Deals"],"currency":"EUR","party":{"adults":2}}`,
			want: &user.Preferences{
				Alerts: []string{"Deals"},
				Extra:  map[string]any{"currency": "EUR", "party": map[string]any{"adults": float64(2)}},
			},
		},
		{name: "wrong type for a modeled key", body: `{"budget":5}`, wantErr: true},
		{name: "not an object", body: `["budget"]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got request.PreferencesRequest
			err := json.Unmarshal([]byte(tc.body), &got)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got.ToDomain()); diff != "" {
				t.Errorf("preferences mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
