package response

import (
	"encoding/json"
	"maps"

	"travelmate/internal/domain/user"
)

type PreferencesResponse struct {
	Budget        string         `json:"budget"`
	Style         []string       `json:"style"`
	TravelStyle   []string       `json:"travelStyle"`
	Destinations  []string       `json:"destinations"`
	Accommodation string         `json:"accommodation"`
	Alerts        []string       `json:"alerts"`
	Extra         map[string]any `json:"-"`
}

// MarshalJSON renders the stored extra keys next to the modeled ones. The
// travel style goes out under both names it is read from.
func (p PreferencesResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+6)
	maps.Copy(out, p.Extra)
	out["budget"] = p.Budget
	out["style"] = p.Style
	out["travelStyle"] = p.TravelStyle
	out["destinations"] = p.Destinations
	out["accommodation"] = p.Accommodation
	out["alerts"] = p.Alerts
	return json.Marshal(out)
}

type UserResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Preferences *PreferencesResponse `json:"preferences"`
}

func FromUser(u *user.User) *UserResponse {
	resp := &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if p := u.Preferences; p != nil {
		resp.Preferences = &PreferencesResponse{
			Budget:        p.Budget,
			Style:         orEmpty(p.Style),
			TravelStyle:   orEmpty(p.Style),
			Destinations:  orEmpty(p.Destinations),
			Accommodation: p.Accommodation,
			Alerts:        orEmpty(p.Alerts),
			Extra:         p.Extra,
		}
	}
	return resp
}

// orEmpty keeps list fields rendering as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// mapSlice converts a list, always yielding a non-nil slice.
func mapSlice[A, B any](in []A, fn func(*A) B) []B {
	out := make([]B, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}
